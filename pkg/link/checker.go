package link

import (
	"github.com/charmbracelet/log"

	"github.com/openblocks/blocklink/pkg/block"
	"github.com/openblocks/blocklink/pkg/observability"
	"github.com/openblocks/blocklink/pkg/rules"
)

// DefaultThreshold is the maximum on-screen distance, in canvas units, at
// which two connectors are considered for a link during a drag.
const DefaultThreshold = 20.0

// Workspace is what the checker needs from the block registry: identity
// lookup, and listener registration for rules that observe the block set.
// [*block.Workspace] satisfies it.
type Workspace interface {
	block.Lookup
	AddListener(block.Listener)
	RemoveListener(block.Listener)
}

// Options configures a Checker.
type Options struct {
	// Threshold is the exclusive upper bound on connector distance for
	// FindBestLink. Values that are not positive select DefaultThreshold.
	Threshold float64

	// Rules is the initial rule set. Listener rules already in the set are
	// registered with the workspace by NewChecker. Nil means empty.
	Rules *rules.Set

	// Factory builds approved links. Nil means DefaultFactory{}.
	Factory Factory

	// Logger receives debug output about rejected and chosen pairs.
	// Nil means log.Default().
	Logger *log.Logger
}

// Checker decides whether connectors may link and finds the best link for
// a dragged block.
//
// Checker is not safe for concurrent use. Matching is synchronous and never
// blocks; the editor calls it from its interaction thread.
type Checker struct {
	ws        Workspace
	rules     *rules.Set
	factory   Factory
	logger    *log.Logger
	threshold float64
}

// NewChecker creates a checker bound to ws. A nil ws is replaced by an empty
// workspace, so the checker finds no blocks and never links.
func NewChecker(ws Workspace, opts Options) *Checker {
	if ws == nil {
		ws = block.NewWorkspace()
	}
	if !(opts.Threshold > 0) {
		opts.Threshold = DefaultThreshold
	}
	if opts.Rules == nil {
		opts.Rules = &rules.Set{}
	}
	if opts.Factory == nil {
		opts.Factory = DefaultFactory{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	c := &Checker{
		ws:        ws,
		rules:     opts.Rules,
		factory:   opts.Factory,
		logger:    opts.Logger,
		threshold: opts.Threshold,
	}
	for _, r := range c.rules.Rules() {
		if l := c.rules.Listener(r); l != nil {
			ws.AddListener(l)
		}
	}
	return c
}

// Threshold returns the distance bound used by FindBestLink.
func (c *Checker) Threshold() float64 { return c.threshold }

// Rules returns the registered rules in evaluation order.
func (c *Checker) Rules() []rules.Rule { return c.rules.Rules() }

// AddRule appends r to the rule set, moving it to the end if it is already
// registered. A rule that also implements [block.Listener] is registered
// with the workspace so it can follow block lifecycle events.
func (c *Checker) AddRule(r rules.Rule) error {
	if err := c.rules.Add(r); err != nil {
		return err
	}
	if l := c.rules.Listener(r); l != nil {
		c.ws.AddListener(l)
	}
	c.logger.Debug("rule added", "rule", r.Name(), "mandatory", r.Mandatory(), "rules", c.rules.Len())
	return nil
}

// RemoveRule deletes r from the rule set and unregisters its workspace
// listener, if any. It reports whether r was registered.
func (c *Checker) RemoveRule(r rules.Rule) bool {
	l := c.rules.Listener(r)
	if !c.rules.Remove(r) {
		return false
	}
	if l != nil {
		c.ws.RemoveListener(l)
	}
	return true
}

// Admissible reports whether the registered rules allow joining ca on a
// with cb on b. See [rules.Evaluate] for how rules are combined.
func (c *Checker) Admissible(a, b *block.Block, ca, cb *block.Connector) bool {
	ok := c.rules.Admissible(a, b, ca, cb)
	observability.Link().OnCheck(idOf(a), idOf(b), ok)
	return ok
}

// CanLink returns the link joining ca on a with cb on b, built by the
// configured Factory, when the pair is admissible.
//
// CanLink returns nil, nil when the pair is not admissible or any argument
// is nil. A non-nil error comes from the Factory.
func (c *Checker) CanLink(a, b *block.Block, ca, cb *block.Connector) (*Link, error) {
	if a == nil || b == nil || ca == nil || cb == nil {
		return nil, nil
	}
	if !c.Admissible(a, b, ca, cb) {
		return nil, nil
	}
	return c.factory.Build(a, b, ca, cb)
}

func idOf(b *block.Block) block.ID {
	if b == nil {
		return ""
	}
	return b.ID()
}
