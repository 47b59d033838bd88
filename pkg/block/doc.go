// Package block defines the program blocks of a jigsaw-style visual
// programming editor and the workspace that owns them.
//
// # Blocks and Connectors
//
// A [Block] exposes a fixed set of [Connector] values:
//
//   - at most one plug-type connector: a [KindPlug] (value blocks) or a
//     [KindBefore] (command blocks), never both
//   - any number of [KindSocket] connectors, in order
//   - at most one [KindAfter] connector, where the next command chains on
//
// The plug-or-before rule is structural: a block stores a single leading
// connector, and [New] rejects inputs that would need two:
//
//	b, err := block.New("sum", "+",
//	    block.NewPlug("number"),
//	    block.NewSocket("number"),
//	    block.NewSocket("number"))
//
// Each connector carries a data type tag ([Connector.Type]) that link rules
// compare. Connectors know their owning block but not their screen position.
//
// # Workspace
//
// A [Workspace] registers blocks by [ID] and notifies [Listener] values of
// additions, removals and reported changes. Link rules that keep caches
// derived from the block set register as listeners.
//
// # Concurrency
//
// Blocks and workspaces are not safe for concurrent mutation. The editor
// drives them from its interaction thread.
package block
