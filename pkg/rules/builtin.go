package rules

import (
	"slices"

	"github.com/openblocks/blocklink/pkg/block"
)

// AnyType is the polymorphic type tag. A connector tagged AnyType matches
// every other type in [TypeMatch].
const AnyType = "poly"

// TypeMatch accepts pairs whose connector type tags are equal, or where
// either side is [AnyType]. It is mandatory by default.
type TypeMatch struct{ Base }

// NewTypeMatch returns a mandatory type-match rule.
func NewTypeMatch() *TypeMatch {
	return &TypeMatch{Base{RuleName: "type-match", Required: true}}
}

// CanLink compares the connector type tags.
func (r *TypeMatch) CanLink(_, _ *block.Block, ca, cb *block.Connector) bool {
	if ca == nil || cb == nil {
		return false
	}
	return ca.Type == cb.Type || ca.Type == AnyType || cb.Type == AnyType
}

// ShapeMatch accepts pairs whose connector shapes fit together: a plug into
// a socket, or a before connector onto an after connector, in either order.
// It is advisory by default.
type ShapeMatch struct{ Base }

// NewShapeMatch returns an advisory shape-match rule.
func NewShapeMatch() *ShapeMatch {
	return &ShapeMatch{Base{RuleName: "shape-match"}}
}

// CanLink checks the connector kinds.
func (r *ShapeMatch) CanLink(_, _ *block.Block, ca, cb *block.Connector) bool {
	if ca == nil || cb == nil {
		return false
	}
	return fits(ca.Kind(), cb.Kind()) || fits(cb.Kind(), ca.Kind())
}

func fits(lead, other block.Kind) bool {
	return (lead == block.KindPlug && other == block.KindSocket) ||
		(lead == block.KindBefore && other == block.KindAfter)
}

// GenusFilter vetoes links that involve a block of a denied genus.
//
// The filter does not inspect blocks while matching. It keeps a cache of
// denied block IDs that is rebuilt from workspace lifecycle events, so it
// must be registered as a workspace listener (the link checker does this
// when the rule is added). A block is judged by its genus as of the last
// event delivered for it.
type GenusFilter struct {
	Base
	deny   []string
	denied map[block.ID]bool
}

// NewGenusFilter returns a mandatory rule denying the given genera.
func NewGenusFilter(deny ...string) *GenusFilter {
	return &GenusFilter{
		Base:   Base{RuleName: "genus-filter", Required: true},
		deny:   slices.Clone(deny),
		denied: make(map[block.ID]bool),
	}
}

// Seed indexes blocks that existed before the filter started listening.
func (r *GenusFilter) Seed(blocks []*block.Block) {
	for _, b := range blocks {
		if b == nil {
			continue
		}
		r.index(b)
	}
}

// WorkspaceChanged keeps the denied-block cache in step with the workspace.
func (r *GenusFilter) WorkspaceChanged(e block.Event) {
	if e.Block == nil {
		return
	}
	switch e.Kind {
	case block.EventBlockRemoved:
		delete(r.denied, e.Block.ID())
	default:
		r.index(e.Block)
	}
}

// Denied reports whether id is currently cached as denied.
func (r *GenusFilter) Denied(id block.ID) bool { return r.denied[id] }

// CanLink rejects the pair when either block is cached as denied.
func (r *GenusFilter) CanLink(a, b *block.Block, _, _ *block.Connector) bool {
	if a == nil || b == nil {
		return false
	}
	return !r.denied[a.ID()] && !r.denied[b.ID()]
}

func (r *GenusFilter) index(b *block.Block) {
	if slices.Contains(r.deny, b.Genus()) {
		r.denied[b.ID()] = true
	} else {
		delete(r.denied, b.ID())
	}
}

var (
	_ Rule           = (*TypeMatch)(nil)
	_ Rule           = (*ShapeMatch)(nil)
	_ Rule           = (*GenusFilter)(nil)
	_ block.Listener = (*GenusFilter)(nil)
	_ Rule           = (*FuncRule)(nil)
)
