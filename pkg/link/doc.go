// Package link decides which block connectors may join and picks the best
// join for a block being dragged across the canvas.
//
// # Overview
//
// A [Checker] holds an ordered [rules.Set] and answers two questions:
//
//   - [Checker.CanLink]: may this connector on block A join that connector
//     on block B? If so, the configured [Factory] builds the [Link].
//   - [Checker.FindBestLink]: among candidate neighbors of a dragged block,
//     which admissible connector pair is closest, within the threshold?
//
// # Plug and Socket Equivalents
//
// Matching works on two roles. A block's plug-equivalent is its plug or its
// before connector ([PlugEquivalent]); its socket-equivalents are its sockets
// followed by its after connector ([SocketEquivalents]). A dragged block can
// plug into a neighbor, or a neighbor can plug into the dragged block; both
// directions are scanned.
//
// # Geometry
//
// The checker never asks the rendering layer for layout. Positions come
// through the [Renderable] interface: a block origin plus a connector offset
// gives the absolute point, and pairs are ranked by Euclidean distance. A
// pair must be strictly closer than the threshold ([DefaultThreshold] unless
// configured) and strictly closer than the best pair so far.
//
// # Basic Usage
//
//	ws := block.NewWorkspace()
//	// ... ws.Add blocks ...
//	c := link.NewChecker(ws, link.Options{
//	    Rules: rules.NewSet(rules.NewTypeMatch(), rules.NewShapeMatch()),
//	})
//	l, err := c.FindBestLink(draggedView, neighborViews)
//	if err != nil {
//	    return err
//	}
//	if l == nil {
//	    // nothing close enough can connect
//	}
//
// # Concurrency
//
// Checker is synchronous and not safe for concurrent use. It reads the
// workspace and the renderables as a snapshot for the duration of one call.
package link
