package scene

import (
	"fmt"

	"github.com/openblocks/blocklink/pkg/block"
	"github.com/openblocks/blocklink/pkg/geom"
	"github.com/openblocks/blocklink/pkg/link"
)

// Scene is a workspace of blocks together with where each block is drawn.
//
// The workspace is the model; views carry the on-screen state the link
// checker needs. Views are kept in block insertion order.
type Scene struct {
	ws    *block.Workspace
	views map[block.ID]*View
	order []block.ID
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{ws: block.NewWorkspace(), views: make(map[block.ID]*View)}
}

// Workspace returns the underlying block registry.
func (s *Scene) Workspace() *block.Workspace { return s.ws }

// Add registers b in the workspace and places it at loc.
func (s *Scene) Add(b *block.Block, loc geom.Point) (*View, error) {
	if err := s.ws.Add(b); err != nil {
		return nil, err
	}
	v := &View{block: b, loc: loc, offsets: make(map[*block.Connector]geom.Point)}
	s.views[b.ID()] = v
	s.order = append(s.order, b.ID())
	return v, nil
}

// Block returns the block registered under id.
func (s *Scene) Block(id block.ID) (*block.Block, bool) { return s.ws.Block(id) }

// View returns the view of the block registered under id.
func (s *Scene) View(id block.ID) (*View, bool) {
	v, ok := s.views[id]
	return v, ok
}

// Views returns every view in insertion order.
func (s *Scene) Views() []*View {
	out := make([]*View, len(s.order))
	for i, id := range s.order {
		out[i] = s.views[id]
	}
	return out
}

// Len returns the number of blocks in the scene.
func (s *Scene) Len() int { return len(s.order) }

// Neighbors returns the views of every block except id, in insertion order,
// ready to pass to [link.Checker.FindBestLink].
func (s *Scene) Neighbors(id block.ID) []link.Renderable {
	out := make([]link.Renderable, 0, len(s.order))
	for _, other := range s.order {
		if other != id {
			out = append(out, s.views[other])
		}
	}
	return out
}

// View is the on-screen state of one block. It implements [link.Renderable].
type View struct {
	block     *block.Block
	loc       geom.Point
	offsets   map[*block.Connector]geom.Point
	hidden    bool
	collapsed bool
}

// Block returns the block this view draws.
func (v *View) Block() *block.Block { return v.block }

// BlockID returns the ID of the drawn block.
func (v *View) BlockID() block.ID { return v.block.ID() }

// Visible reports whether the block is shown.
func (v *View) Visible() bool { return !v.hidden }

// Collapsed reports whether the block is folded.
func (v *View) Collapsed() bool { return v.collapsed }

// Location returns the block origin.
func (v *View) Location() geom.Point { return v.loc }

// ConnectorPoint returns the offset of c from the block origin. Connectors
// without a recorded offset sit at the origin.
func (v *View) ConnectorPoint(c *block.Connector) geom.Point { return v.offsets[c] }

// MoveTo places the block origin at p.
func (v *View) MoveTo(p geom.Point) { v.loc = p }

// SetVisible shows or hides the block.
func (v *View) SetVisible(visible bool) { v.hidden = !visible }

// SetCollapsed folds or unfolds the block.
func (v *View) SetCollapsed(collapsed bool) { v.collapsed = collapsed }

// SetOffset records where c is drawn relative to the block origin.
func (v *View) SetOffset(c *block.Connector, p geom.Point) error {
	if !v.block.Owns(c) {
		return fmt.Errorf("%w: %s on %s", link.ErrForeignConnector, c, v.block.ID())
	}
	v.offsets[c] = p
	return nil
}

var _ link.Renderable = (*View)(nil)
