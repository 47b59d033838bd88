package block

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrInvalidBlockID is returned by [New] and [Workspace.Add] when the block
	// ID is empty. All blocks must have non-empty identifiers.
	ErrInvalidBlockID = errors.New("block ID must not be empty")

	// ErrDuplicateBlockID is returned by [Workspace.Add] when a block with the
	// same ID is already registered.
	ErrDuplicateBlockID = errors.New("duplicate block ID")

	// ErrMultipleLeads is returned by [New] when more than one plug-type
	// connector (plug or before) is supplied. A block has at most one.
	ErrMultipleLeads = errors.New("block has more than one plug-type connector")

	// ErrMultipleAfters is returned by [New] when more than one after
	// connector is supplied.
	ErrMultipleAfters = errors.New("block has more than one after connector")

	// ErrConnectorOwned is returned by [New] when a connector already belongs
	// to another block. Connectors belong to exactly one block.
	ErrConnectorOwned = errors.New("connector already belongs to a block")

	// ErrNilConnector is returned by [New] when a nil connector is supplied.
	ErrNilConnector = errors.New("nil connector")
)

// ID identifies a block inside a [Workspace].
type ID string

// Kind is the shape of a connector.
type Kind int

const (
	// KindPlug is an outgoing value connector, the left edge of an expression block.
	KindPlug Kind = iota
	// KindBefore is the top connector of a command block.
	KindBefore
	// KindSocket is an ordinary incoming connector.
	KindSocket
	// KindAfter is the bottom connector of a command block, where the next
	// command in a sequence attaches.
	KindAfter
)

var kindNames = [...]string{"plug", "before", "socket", "after"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind returns the Kind named s ("plug", "before", "socket" or "after").
func ParseKind(s string) (Kind, bool) {
	i := slices.Index(kindNames[:], s)
	if i < 0 {
		return 0, false
	}
	return Kind(i), true
}

// IsLead reports whether k is a plug-type kind (plug or before).
func (k Kind) IsLead() bool { return k == KindPlug || k == KindBefore }

// Connector is an attachment point on a block.
//
// A connector is created detached and becomes owned by the first block it
// is passed to in [New]. Connectors do not know their screen position; the
// rendering layer supplies positions when needed.
type Connector struct {
	Type  string // Data type tag consulted by rules, e.g. "number"
	Label string // Display label, optional

	kind  Kind
	owner ID
}

// NewConnector returns a detached connector of the given kind and type tag.
func NewConnector(kind Kind, typ string) *Connector {
	return &Connector{kind: kind, Type: typ}
}

// NewPlug returns a detached plug connector.
func NewPlug(typ string) *Connector { return NewConnector(KindPlug, typ) }

// NewBefore returns a detached before connector.
func NewBefore(typ string) *Connector { return NewConnector(KindBefore, typ) }

// NewSocket returns a detached socket connector.
func NewSocket(typ string) *Connector { return NewConnector(KindSocket, typ) }

// NewAfter returns a detached after connector.
func NewAfter(typ string) *Connector { return NewConnector(KindAfter, typ) }

// WithLabel sets the connector label and returns c for chaining.
func (c *Connector) WithLabel(label string) *Connector {
	c.Label = label
	return c
}

// Kind returns the connector shape.
func (c *Connector) Kind() Kind { return c.kind }

// Block returns the ID of the owning block, or "" while detached.
func (c *Connector) Block() ID { return c.owner }

func (c *Connector) String() string {
	if c == nil {
		return "<nil>"
	}
	name := c.Label
	if name == "" {
		name = c.kind.String()
	}
	return fmt.Sprintf("%s.%s[%s]", c.owner, name, c.Type)
}

// Block is a program node with a fixed connector topology.
//
// The leading connector is a single field holding either a plug or a before
// connector, so a block can never expose both. Sockets keep the order they
// were given in. The zero value is not usable; create blocks with [New].
type Block struct {
	id    ID
	label string
	genus string

	lead    *Connector
	sockets []*Connector
	after   *Connector
}

// New creates a block owning the given connectors.
//
// Connectors are grouped by kind: at most one plug-type connector (plug or
// before), any number of sockets kept in argument order, and at most one after
// connector. New returns [ErrMultipleLeads] or [ErrMultipleAfters] when the
// topology is illegal and [ErrConnectorOwned] when a connector is already
// attached elsewhere or given twice. On error no connector is modified.
func New(id ID, label string, conns ...*Connector) (*Block, error) {
	if id == "" {
		return nil, ErrInvalidBlockID
	}
	b := &Block{id: id, label: label}
	seen := make(map[*Connector]bool, len(conns))
	for _, c := range conns {
		if c == nil {
			return nil, ErrNilConnector
		}
		if (c.owner != "" && c.owner != id) || seen[c] {
			return nil, fmt.Errorf("%w: %s", ErrConnectorOwned, c)
		}
		seen[c] = true
		switch c.kind {
		case KindPlug, KindBefore:
			if b.lead != nil {
				return nil, fmt.Errorf("%w: %s and %s", ErrMultipleLeads, b.lead.kind, c.kind)
			}
			b.lead = c
		case KindAfter:
			if b.after != nil {
				return nil, ErrMultipleAfters
			}
			b.after = c
		default:
			b.sockets = append(b.sockets, c)
		}
	}
	for _, c := range conns {
		c.owner = id
	}
	return b, nil
}

// MustNew is like [New] but panics on error. Intended for tests and fixtures.
func MustNew(id ID, label string, conns ...*Connector) *Block {
	b, err := New(id, label, conns...)
	if err != nil {
		panic(err)
	}
	return b
}

// ID returns the block identity.
func (b *Block) ID() ID { return b.id }

// Label returns the display label.
func (b *Block) Label() string { return b.label }

// Genus returns the block family name (e.g. "sum", "if"), or "".
func (b *Block) Genus() string { return b.genus }

// SetGenus sets the block family name. Call [Workspace.Changed] afterwards
// so listeners can refresh.
func (b *Block) SetGenus(g string) { b.genus = g }

// SetLabel sets the display label.
func (b *Block) SetLabel(l string) { b.label = l }

// Lead returns the plug or before connector, or nil.
func (b *Block) Lead() *Connector { return b.lead }

// HasPlug reports whether the leading connector is a plug.
func (b *Block) HasPlug() bool { return b.lead != nil && b.lead.kind == KindPlug }

// HasBefore reports whether the leading connector is a before connector.
func (b *Block) HasBefore() bool { return b.lead != nil && b.lead.kind == KindBefore }

// Plug returns the plug connector, or nil.
func (b *Block) Plug() *Connector {
	if b.HasPlug() {
		return b.lead
	}
	return nil
}

// Before returns the before connector, or nil.
func (b *Block) Before() *Connector {
	if b.HasBefore() {
		return b.lead
	}
	return nil
}

// Sockets returns a copy of the ordinary sockets in order.
func (b *Block) Sockets() []*Connector { return slices.Clone(b.sockets) }

// NumSockets returns the number of ordinary sockets.
func (b *Block) NumSockets() int { return len(b.sockets) }

// HasAfter reports whether the block has an after connector.
func (b *Block) HasAfter() bool { return b.after != nil }

// After returns the after connector, or nil.
func (b *Block) After() *Connector { return b.after }

// Owns reports whether c is one of the block's connectors.
func (b *Block) Owns(c *Connector) bool {
	if c == nil || c.owner != b.id {
		return false
	}
	return c == b.lead || c == b.after || slices.Contains(b.sockets, c)
}

// Connectors returns every connector of the block: the leading connector,
// then sockets, then the after connector.
func (b *Block) Connectors() []*Connector {
	out := make([]*Connector, 0, len(b.sockets)+2)
	if b.lead != nil {
		out = append(out, b.lead)
	}
	out = append(out, b.sockets...)
	if b.after != nil {
		out = append(out, b.after)
	}
	return out
}

func (b *Block) String() string { return string(b.id) }
