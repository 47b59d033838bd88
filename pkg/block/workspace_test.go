package block

import (
	"errors"
	"testing"
)

type recorder struct{ events []Event }

func (r *recorder) WorkspaceChanged(e Event) { r.events = append(r.events, e) }

func TestWorkspaceAddRemove(t *testing.T) {
	w := NewWorkspace()
	a := MustNew("a", "A")
	b := MustNew("b", "B")

	if err := w.Add(a); err != nil {
		t.Fatalf("Add a: %v", err)
	}
	if err := w.Add(b); err != nil {
		t.Fatalf("Add b: %v", err)
	}
	if err := w.Add(MustNew("a", "dup")); !errors.Is(err, ErrDuplicateBlockID) {
		t.Errorf("duplicate Add error = %v", err)
	}
	if err := w.Add(nil); !errors.Is(err, ErrInvalidBlockID) {
		t.Errorf("nil Add error = %v", err)
	}

	if got, ok := w.Block("a"); !ok || got != a {
		t.Error("Block(a) lookup failed")
	}
	if blocks := w.Blocks(); len(blocks) != 2 || blocks[0] != a || blocks[1] != b {
		t.Errorf("Blocks = %v, want [a b]", blocks)
	}

	if !w.Remove("a") {
		t.Error("Remove(a) = false")
	}
	if w.Remove("a") {
		t.Error("second Remove(a) = true")
	}
	if _, ok := w.Block("a"); ok {
		t.Error("a still present")
	}
	if w.Len() != 1 {
		t.Errorf("Len = %d, want 1", w.Len())
	}
}

func TestWorkspaceListeners(t *testing.T) {
	w := NewWorkspace()
	r := &recorder{}
	w.AddListener(r)
	w.AddListener(r)
	if w.Listeners() != 1 {
		t.Fatalf("Listeners = %d, want 1", w.Listeners())
	}

	a := MustNew("a", "A")
	_ = w.Add(a)
	w.Changed("a")
	w.Changed("missing")
	w.Remove("a")

	want := []EventKind{EventBlockAdded, EventBlockChanged, EventBlockRemoved}
	if len(r.events) != len(want) {
		t.Fatalf("got %d events, want %d", len(r.events), len(want))
	}
	for i, k := range want {
		if r.events[i].Kind != k || r.events[i].Block != a {
			t.Errorf("event %d = %v/%v, want %v/a", i, r.events[i].Kind, r.events[i].Block, k)
		}
	}

	w.RemoveListener(r)
	_ = w.Add(MustNew("b", "B"))
	if len(r.events) != 3 {
		t.Error("removed listener still notified")
	}
}

func TestEventKindString(t *testing.T) {
	if EventBlockAdded.String() != "added" || EventBlockRemoved.String() != "removed" || EventBlockChanged.String() != "changed" {
		t.Error("unexpected EventKind names")
	}
	if EventKind(7).String() != "EventKind(7)" {
		t.Error("unknown EventKind name")
	}
}
