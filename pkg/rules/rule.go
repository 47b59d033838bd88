package rules

import (
	"github.com/openblocks/blocklink/pkg/block"
)

// Rule is a compatibility predicate over a candidate connection.
//
// CanLink receives the two blocks and the connector of each that would be
// joined. Mandatory rules veto a pair when they return false; advisory rules
// vote, and at least one advisory vote is needed for a pair to be admissible.
//
// Rules are identified by equality, so implementations must be comparable.
// Use pointer receivers.
type Rule interface {
	Name() string
	Mandatory() bool
	CanLink(a, b *block.Block, ca, cb *block.Connector) bool
}

// Base carries the name and mandatory flag shared by the built-in rules.
type Base struct {
	RuleName string
	Required bool
}

// Name returns the rule name.
func (b *Base) Name() string { return b.RuleName }

// Mandatory reports whether the rule is a hard veto.
func (b *Base) Mandatory() bool { return b.Required }

// FuncRule adapts a plain function to [Rule].
type FuncRule struct {
	Base
	fn func(a, b *block.Block, ca, cb *block.Connector) bool
}

// Func returns a rule backed by fn. Each call returns a distinct rule, so two
// Func rules never compare equal even when built from the same function.
func Func(name string, mandatory bool, fn func(a, b *block.Block, ca, cb *block.Connector) bool) *FuncRule {
	return &FuncRule{Base: Base{RuleName: name, Required: mandatory}, fn: fn}
}

// CanLink calls the wrapped function. A nil function rejects.
func (r *FuncRule) CanLink(a, b *block.Block, ca, cb *block.Connector) bool {
	if r.fn == nil {
		return false
	}
	return r.fn(a, b, ca, cb)
}

// Always returns an advisory rule that accepts every pair.
func Always() *FuncRule {
	return Func("always", false, func(*block.Block, *block.Block, *block.Connector, *block.Connector) bool { return true })
}

// Never returns a mandatory rule that rejects every pair.
func Never() *FuncRule {
	return Func("never", true, func(*block.Block, *block.Block, *block.Connector, *block.Connector) bool { return false })
}
