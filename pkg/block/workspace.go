package block

import (
	"fmt"
	"reflect"
	"slices"
)

// EventKind identifies a workspace lifecycle event.
type EventKind int

const (
	// EventBlockAdded is emitted after a block is registered.
	EventBlockAdded EventKind = iota
	// EventBlockRemoved is emitted after a block is unregistered.
	EventBlockRemoved
	// EventBlockChanged is emitted when a caller reports a block mutation.
	EventBlockChanged
)

func (k EventKind) String() string {
	switch k {
	case EventBlockAdded:
		return "added"
	case EventBlockRemoved:
		return "removed"
	case EventBlockChanged:
		return "changed"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event describes a change to the workspace block set.
type Event struct {
	Kind  EventKind
	Block *Block // The affected block; still populated for removals
}

// Listener receives workspace lifecycle events.
//
// Implementations must be comparable (typically pointer types) because
// listeners are identified by equality when registering and removing.
type Listener interface {
	WorkspaceChanged(Event)
}

// Lookup resolves block identities.
type Lookup interface {
	Block(id ID) (*Block, bool)
}

// Workspace is the registry of blocks on the canvas, keyed by ID.
//
// Blocks are kept in insertion order. Listeners are notified synchronously,
// in registration order, after each mutation.
//
// Workspace is not safe for concurrent use without external synchronization.
type Workspace struct {
	blocks    map[ID]*Block
	order     []ID
	listeners []Listener
}

// NewWorkspace creates an empty workspace.
func NewWorkspace() *Workspace {
	return &Workspace{blocks: make(map[ID]*Block)}
}

// Add registers b. Returns [ErrInvalidBlockID] for a nil block or empty ID
// and [ErrDuplicateBlockID] when the ID is already in use.
func (w *Workspace) Add(b *Block) error {
	if b == nil || b.id == "" {
		return ErrInvalidBlockID
	}
	if _, exists := w.blocks[b.id]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateBlockID, b.id)
	}
	w.blocks[b.id] = b
	w.order = append(w.order, b.id)
	w.notify(Event{Kind: EventBlockAdded, Block: b})
	return nil
}

// Remove unregisters the block with the given ID and reports whether it existed.
func (w *Workspace) Remove(id ID) bool {
	b, ok := w.blocks[id]
	if !ok {
		return false
	}
	delete(w.blocks, id)
	w.order = slices.DeleteFunc(w.order, func(x ID) bool { return x == id })
	w.notify(Event{Kind: EventBlockRemoved, Block: b})
	return true
}

// Changed notifies listeners that the block with the given ID was mutated.
// Unknown IDs are ignored.
func (w *Workspace) Changed(id ID) {
	if b, ok := w.blocks[id]; ok {
		w.notify(Event{Kind: EventBlockChanged, Block: b})
	}
}

// Block returns the block registered under id.
func (w *Workspace) Block(id ID) (*Block, bool) {
	b, ok := w.blocks[id]
	return b, ok
}

// Blocks returns all blocks in insertion order.
func (w *Workspace) Blocks() []*Block {
	out := make([]*Block, len(w.order))
	for i, id := range w.order {
		out[i] = w.blocks[id]
	}
	return out
}

// Len returns the number of registered blocks.
func (w *Workspace) Len() int { return len(w.order) }

// AddListener registers l for lifecycle events. A listener that is already
// registered, or that is not comparable, is ignored.
func (w *Workspace) AddListener(l Listener) {
	if l == nil || !reflect.TypeOf(l).Comparable() || slices.Contains(w.listeners, l) {
		return
	}
	w.listeners = append(w.listeners, l)
}

// RemoveListener unregisters l.
func (w *Workspace) RemoveListener(l Listener) {
	if l == nil || !reflect.TypeOf(l).Comparable() {
		return
	}
	w.listeners = slices.DeleteFunc(w.listeners, func(x Listener) bool { return x == l })
}

// Listeners returns the number of registered listeners.
func (w *Workspace) Listeners() int { return len(w.listeners) }

func (w *Workspace) notify(e Event) {
	for _, l := range slices.Clone(w.listeners) {
		l.WorkspaceChanged(e)
	}
}

var _ Lookup = (*Workspace)(nil)
