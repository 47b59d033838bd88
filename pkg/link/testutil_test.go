package link

import (
	"testing"

	"github.com/openblocks/blocklink/pkg/block"
	"github.com/openblocks/blocklink/pkg/geom"
	"github.com/openblocks/blocklink/pkg/rules"
)

// view is a synthetic Renderable with fixed coordinates.
type view struct {
	id        block.ID
	loc       geom.Point
	offsets   map[*block.Connector]geom.Point
	hidden    bool
	collapsed bool
}

func newView(id block.ID, x, y float64) *view {
	return &view{id: id, loc: geom.Pt(x, y), offsets: make(map[*block.Connector]geom.Point)}
}

func (v *view) at(c *block.Connector, x, y float64) *view {
	v.offsets[c] = geom.Pt(x, y)
	return v
}

func (v *view) BlockID() block.ID                            { return v.id }
func (v *view) Visible() bool                                { return !v.hidden }
func (v *view) Collapsed() bool                              { return v.collapsed }
func (v *view) Location() geom.Point                         { return v.loc }
func (v *view) ConnectorPoint(c *block.Connector) geom.Point { return v.offsets[c] }

// fixture bundles a workspace and checker for a test.
type fixture struct {
	t  *testing.T
	ws *block.Workspace
	c  *Checker
}

func newFixture(t *testing.T, rs ...rules.Rule) *fixture {
	t.Helper()
	ws := block.NewWorkspace()
	n := 0
	c := NewChecker(ws, Options{
		Rules: rules.NewSet(rs...),
		Factory: DefaultFactory{NewID: func() string {
			n++
			return "link-" + string(rune('0'+n))
		}},
	})
	return &fixture{t: t, ws: ws, c: c}
}

func (f *fixture) add(id block.ID, conns ...*block.Connector) *block.Block {
	f.t.Helper()
	b, err := block.New(id, string(id), conns...)
	if err != nil {
		f.t.Fatalf("block.New(%s): %v", id, err)
	}
	if err := f.ws.Add(b); err != nil {
		f.t.Fatalf("Add(%s): %v", id, err)
	}
	return b
}

func views(vs ...*view) []Renderable {
	out := make([]Renderable, len(vs))
	for i, v := range vs {
		out[i] = v
	}
	return out
}
