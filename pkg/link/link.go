package link

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/openblocks/blocklink/pkg/block"
)

var (
	// ErrNilEndpoint is returned by [DefaultFactory.Build] when a block or
	// connector argument is nil.
	ErrNilEndpoint = errors.New("link endpoint is nil")

	// ErrForeignConnector is returned by [DefaultFactory.Build] when a
	// connector does not belong to the block it is paired with.
	ErrForeignConnector = errors.New("connector does not belong to block")
)

// Link is an approved connection between a connector on Block1 and a
// connector on Block2.
//
// Links come from a [Factory]; the checker never builds them directly.
// When produced by [Checker.FindBestLink], Block1 is the dragged block.
type Link struct {
	ID     string
	Block1 block.ID
	Block2 block.ID
	Conn1  *block.Connector
	Conn2  *block.Connector
}

// Plug returns the plug-type connector of the link (plug or before).
func (l *Link) Plug() *block.Connector {
	if l.Conn1 != nil && l.Conn1.Kind().IsLead() {
		return l.Conn1
	}
	return l.Conn2
}

// Socket returns the socket-type connector of the link (socket or after).
func (l *Link) Socket() *block.Connector {
	if l.Plug() == l.Conn1 {
		return l.Conn2
	}
	return l.Conn1
}

func (l *Link) String() string {
	return fmt.Sprintf("%s -> %s", l.Plug(), l.Socket())
}

// Factory materializes a Link for an admissible pair.
type Factory interface {
	Build(a, b *block.Block, ca, cb *block.Connector) (*Link, error)
}

// FactoryFunc adapts a function to [Factory].
type FactoryFunc func(a, b *block.Block, ca, cb *block.Connector) (*Link, error)

// Build calls f.
func (f FactoryFunc) Build(a, b *block.Block, ca, cb *block.Connector) (*Link, error) {
	return f(a, b, ca, cb)
}

// DefaultFactory builds links with random UUID identifiers after checking
// that each connector belongs to its block.
type DefaultFactory struct {
	// NewID generates link IDs. Defaults to uuid.NewString.
	NewID func() string
}

// Build implements [Factory].
func (f DefaultFactory) Build(a, b *block.Block, ca, cb *block.Connector) (*Link, error) {
	if a == nil || b == nil || ca == nil || cb == nil {
		return nil, ErrNilEndpoint
	}
	if !a.Owns(ca) {
		return nil, fmt.Errorf("%w: %s on %s", ErrForeignConnector, ca, a.ID())
	}
	if !b.Owns(cb) {
		return nil, fmt.Errorf("%w: %s on %s", ErrForeignConnector, cb, b.ID())
	}
	newID := f.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	return &Link{
		ID:     newID(),
		Block1: a.ID(),
		Block2: b.ID(),
		Conn1:  ca,
		Conn2:  cb,
	}, nil
}

var (
	_ Factory = DefaultFactory{}
	_ Factory = FactoryFunc(nil)
)
