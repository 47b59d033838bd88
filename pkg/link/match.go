package link

import (
	"time"

	"github.com/openblocks/blocklink/pkg/block"
	"github.com/openblocks/blocklink/pkg/geom"
	"github.com/openblocks/blocklink/pkg/observability"
)

// Renderable is the on-screen representation of a block, as far as
// matching needs it. The rendering layer implements it; tests can use
// synthetic coordinates.
type Renderable interface {
	// BlockID identifies the block in the workspace.
	BlockID() block.ID
	// Visible reports whether the block is currently shown.
	Visible() bool
	// Collapsed reports whether the block is folded down to its header.
	Collapsed() bool
	// Location is the block origin in canvas coordinates.
	Location() geom.Point
	// ConnectorPoint is the position of c relative to the block origin.
	ConnectorPoint(c *block.Connector) geom.Point
}

// AbsolutePoint returns the canvas position of c on r: the block origin
// plus the connector offset.
func AbsolutePoint(r Renderable, c *block.Connector) geom.Point {
	return r.Location().Add(r.ConnectorPoint(c))
}

// Match is the closest admissible connector pair found by FindBestMatch.
type Match struct {
	Block        *block.Block     // The dragged block
	Neighbor     *block.Block     // The block being linked to
	BlockConn    *block.Connector // Connector on the dragged block
	NeighborConn *block.Connector // Connector on the neighbor
	Distance     float64          // On-screen distance between the connectors
}

// FindBestMatch searches neighbors for the admissible connector pair
// closest to dragged, strictly closer than the checker threshold.
//
// For each neighbor, the dragged block's plug-equivalent is tried against
// the neighbor's socket-equivalents, then the neighbor's plug-equivalent
// against the dragged block's socket-equivalents. A pair replaces the
// current best only when it is strictly closer and admissible, so among
// equally distant pairs the first one scanned wins. Scan order is neighbor
// order, then the two directions in turn, then socket order with the after
// connector last.
//
// Neighbors are skipped when they are the dragged block itself, when either
// block is invisible or collapsed, or when either block is unknown to the
// workspace. FindBestMatch reports false when nothing qualifies.
func (c *Checker) FindBestMatch(dragged Renderable, neighbors []Renderable) (Match, bool) {
	if dragged == nil {
		return Match{}, false
	}
	start := time.Now()
	draggedID := dragged.BlockID()
	hooks := observability.Link()
	hooks.OnMatchStart(draggedID, len(neighbors))

	best, found := c.scan(dragged, neighbors)

	if found {
		hooks.OnMatchComplete(draggedID, best.Neighbor.ID(), best.Distance, true, time.Since(start))
		c.logger.Debug("best link",
			"dragged", draggedID,
			"neighbor", best.Neighbor.ID(),
			"from", best.BlockConn,
			"to", best.NeighborConn,
			"distance", best.Distance)
	} else {
		hooks.OnMatchComplete(draggedID, "", 0, false, time.Since(start))
	}
	return best, found
}

func (c *Checker) scan(dragged Renderable, neighbors []Renderable) (Match, bool) {
	b1, ok := c.ws.Block(dragged.BlockID())
	if !ok {
		c.logger.Debug("dragged block not in workspace", "block", dragged.BlockID())
		return Match{}, false
	}
	if c.rules.Len() == 0 {
		c.logger.Debug("rule set is empty; no pair is admissible", "dragged", b1.ID())
	}

	best := Match{Block: b1, Distance: c.threshold}
	found := false

	plug1 := PlugEquivalent(b1)
	sockets1 := SocketEquivalents(b1)

	for _, r2 := range neighbors {
		if r2 == nil {
			continue
		}
		b2, ok := c.ws.Block(r2.BlockID())
		if !ok || b2 == b1 || b2.ID() == b1.ID() {
			continue
		}
		if !dragged.Visible() || !r2.Visible() || dragged.Collapsed() || r2.Collapsed() {
			continue
		}

		// dragged plug -> neighbor sockets
		if plug1 != nil {
			p := AbsolutePoint(dragged, plug1)
			for _, s := range SocketEquivalents(b2) {
				d := p.Distance(AbsolutePoint(r2, s))
				if d < best.Distance && c.admit(b1, b2, plug1, s, d) {
					best = Match{Block: b1, Neighbor: b2, BlockConn: plug1, NeighborConn: s, Distance: d}
					found = true
				}
			}
		}

		// neighbor plug -> dragged sockets
		if plug2 := PlugEquivalent(b2); plug2 != nil {
			p := AbsolutePoint(r2, plug2)
			for _, s := range sockets1 {
				d := p.Distance(AbsolutePoint(dragged, s))
				if d < best.Distance && c.admit(b1, b2, s, plug2, d) {
					best = Match{Block: b1, Neighbor: b2, BlockConn: s, NeighborConn: plug2, Distance: d}
					found = true
				}
			}
		}
	}

	if !found {
		return Match{}, false
	}
	return best, true
}

func (c *Checker) admit(a, b *block.Block, ca, cb *block.Connector, d float64) bool {
	if c.Admissible(a, b, ca, cb) {
		return true
	}
	c.logger.Debug("pair rejected by rules", "from", ca, "to", cb, "distance", d)
	return false
}

// FindBestLink runs [Checker.FindBestMatch] and, when a pair is found,
// asks the Factory for the link between the dragged block and the chosen
// neighbor. The dragged block and its connector come first.
//
// FindBestLink returns nil, nil when no pair qualifies. A non-nil error
// comes from the Factory.
func (c *Checker) FindBestLink(dragged Renderable, neighbors []Renderable) (*Link, error) {
	m, ok := c.FindBestMatch(dragged, neighbors)
	if !ok {
		return nil, nil
	}
	return c.Link(m)
}

// Link asks the Factory for the link described by m, with the dragged
// block first.
func (c *Checker) Link(m Match) (*Link, error) {
	return c.factory.Build(m.Block, m.Neighbor, m.BlockConn, m.NeighborConn)
}
