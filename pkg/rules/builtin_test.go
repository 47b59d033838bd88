package rules

import (
	"testing"

	"github.com/openblocks/blocklink/pkg/block"
)

func TestTypeMatch(t *testing.T) {
	r := NewTypeMatch()
	if !r.Mandatory() || r.Name() != "type-match" {
		t.Fatalf("unexpected defaults: %s mandatory=%v", r.Name(), r.Mandatory())
	}
	tests := []struct {
		a, b string
		want bool
	}{
		{"number", "number", true},
		{"number", "string", false},
		{AnyType, "string", true},
		{"boolean", AnyType, true},
		{"", "", true},
	}
	for _, tt := range tests {
		if got := r.CanLink(nil, nil, block.NewPlug(tt.a), block.NewSocket(tt.b)); got != tt.want {
			t.Errorf("TypeMatch(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
	if r.CanLink(nil, nil, nil, block.NewSocket("x")) {
		t.Error("nil connector should not match")
	}
}

func TestShapeMatch(t *testing.T) {
	r := NewShapeMatch()
	if r.Mandatory() {
		t.Fatal("ShapeMatch should be advisory")
	}
	k := func(kind block.Kind) *block.Connector { return block.NewConnector(kind, "t") }
	tests := []struct {
		name string
		a, b block.Kind
		want bool
	}{
		{"plug-socket", block.KindPlug, block.KindSocket, true},
		{"socket-plug", block.KindSocket, block.KindPlug, true},
		{"before-after", block.KindBefore, block.KindAfter, true},
		{"after-before", block.KindAfter, block.KindBefore, true},
		{"plug-after", block.KindPlug, block.KindAfter, false},
		{"before-socket", block.KindBefore, block.KindSocket, false},
		{"socket-socket", block.KindSocket, block.KindSocket, false},
		{"plug-plug", block.KindPlug, block.KindPlug, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.CanLink(nil, nil, k(tt.a), k(tt.b)); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGenusFilterTracksWorkspace(t *testing.T) {
	ws := block.NewWorkspace()
	pre := block.MustNew("pre", "")
	pre.SetGenus("comment")
	_ = ws.Add(pre)

	gf := NewGenusFilter("comment")
	gf.Seed(ws.Blocks())
	ws.AddListener(gf)

	if !gf.Denied("pre") {
		t.Error("seeded block should be denied")
	}

	a := block.MustNew("a", "")
	a.SetGenus("sum")
	b := block.MustNew("b", "")
	b.SetGenus("comment")
	_ = ws.Add(a)
	_ = ws.Add(b)

	if !gf.CanLink(a, a, nil, nil) {
		t.Error("sum block should be allowed")
	}
	if gf.CanLink(a, b, nil, nil) {
		t.Error("comment block should be vetoed")
	}

	// Mutation without a change event keeps the cached verdict.
	a.SetGenus("comment")
	if gf.Denied("a") {
		t.Error("cache should not change without an event")
	}
	ws.Changed("a")
	if !gf.Denied("a") {
		t.Error("cache should refresh after Changed")
	}

	ws.Remove("b")
	if gf.Denied("b") {
		t.Error("removed block should leave the cache")
	}
	if gf.CanLink(nil, a, nil, nil) {
		t.Error("nil block should not match")
	}
}

func TestGenusFilterSeedSkipsNil(t *testing.T) {
	c := block.MustNew("c", "")
	c.SetGenus("comment")

	gf := NewGenusFilter("comment")
	gf.Seed([]*block.Block{nil, c, nil})
	if !gf.Denied("c") {
		t.Error("block after nil entry should be seeded")
	}
}

func TestAlwaysNever(t *testing.T) {
	if a := Always(); a.Mandatory() || !a.CanLink(nil, nil, nil, nil) {
		t.Error("Always should be an accepting advisory rule")
	}
	if n := Never(); !n.Mandatory() || n.CanLink(nil, nil, nil, nil) {
		t.Error("Never should be a rejecting mandatory rule")
	}
	if Func("nil", false, nil).CanLink(nil, nil, nil, nil) {
		t.Error("Func with nil fn should reject")
	}
	if Always() == Always() {
		t.Error("each Always call should yield a distinct rule")
	}
}
