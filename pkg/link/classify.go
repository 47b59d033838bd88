package link

import (
	"github.com/openblocks/blocklink/pkg/block"
)

// HasPlugEquivalent reports whether b has an outgoing connector, i.e. a plug
// or a before connector. It returns false for a nil block.
func HasPlugEquivalent(b *block.Block) bool {
	return b != nil && b.Lead() != nil
}

// PlugEquivalent returns the plug of b if present, else its before
// connector, else nil. A block cannot hold both (see [block.New]).
func PlugEquivalent(b *block.Block) *block.Connector {
	if !HasPlugEquivalent(b) {
		return nil
	}
	if p := b.Plug(); p != nil {
		return p
	}
	return b.Before()
}

// SocketEquivalents returns the incoming connectors of b: its sockets in
// order, followed by its after connector when present. The result is a
// fresh slice and is empty (not nil) for a nil block.
func SocketEquivalents(b *block.Block) []*block.Connector {
	if b == nil {
		return []*block.Connector{}
	}
	out := b.Sockets()
	if out == nil {
		out = []*block.Connector{}
	}
	if b.HasAfter() {
		out = append(out, b.After())
	}
	return out
}
