package rules

import (
	"errors"
	"iter"
	"reflect"
	"slices"

	"github.com/openblocks/blocklink/pkg/block"
)

// ErrInvalidRule is returned by [Set.Add] and [Set.Insert] for nil rules and
// for rules whose dynamic type is not comparable.
var ErrInvalidRule = errors.New("rule must be a non-nil comparable value")

type entry struct {
	rule     Rule
	listener block.Listener // non-nil when the rule also observes the workspace
}

// Set is an ordered collection of rules in which each rule appears once.
//
// The zero value is an empty set ready to use. Set is not safe for
// concurrent use without external synchronization.
type Set struct {
	entries []entry
}

// NewSet returns a set holding rs in order. Invalid rules are skipped;
// repeated rules keep their last position.
func NewSet(rs ...Rule) *Set {
	s := &Set{}
	for _, r := range rs {
		_ = s.Add(r)
	}
	return s
}

// Add appends r to the end of the set. A rule already in the set is first
// removed from its old position, so re-adding moves it to the end and the
// set never holds duplicates.
//
// If r also implements [block.Listener], the listener handle is recorded with
// the entry and can be fetched with [Set.Listener].
func (s *Set) Add(r Rule) error {
	if !valid(r) {
		return ErrInvalidRule
	}
	s.remove(r)
	s.entries = append(s.entries, newEntry(r))
	return nil
}

// Insert places r at index i, clamped to [0, Len()]. Like [Set.Add], an
// existing occurrence is removed first; i refers to positions after that
// removal.
func (s *Set) Insert(i int, r Rule) error {
	if !valid(r) {
		return ErrInvalidRule
	}
	s.remove(r)
	i = max(0, min(i, len(s.entries)))
	s.entries = slices.Insert(s.entries, i, newEntry(r))
	return nil
}

// Remove deletes r and reports whether it was present.
func (s *Set) Remove(r Rule) bool {
	if !valid(r) {
		return false
	}
	return s.remove(r)
}

// Contains reports whether r is in the set.
func (s *Set) Contains(r Rule) bool {
	return valid(r) && s.index(r) >= 0
}

// Listener returns the workspace listener recorded for r, or nil when r is
// not in the set or does not observe the workspace.
func (s *Set) Listener(r Rule) block.Listener {
	if !valid(r) {
		return nil
	}
	if i := s.index(r); i >= 0 {
		return s.entries[i].listener
	}
	return nil
}

// Rules returns the rules in evaluation order. The slice is a copy.
func (s *Set) Rules() []Rule {
	out := make([]Rule, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.rule
	}
	return out
}

// Len returns the number of rules.
func (s *Set) Len() int { return len(s.entries) }

// Admissible evaluates the set against a candidate pair. See [Evaluate].
func (s *Set) Admissible(a, b *block.Block, ca, cb *block.Connector) bool {
	return Evaluate(s.All(), a, b, ca, cb)
}

// All returns an iterator over the rules in evaluation order.
func (s *Set) All() iter.Seq[Rule] {
	return func(yield func(Rule) bool) {
		for _, e := range s.entries {
			if !yield(e.rule) {
				return
			}
		}
	}
}

func (s *Set) index(r Rule) int {
	return slices.IndexFunc(s.entries, func(e entry) bool { return e.rule == r })
}

func (s *Set) remove(r Rule) bool {
	i := s.index(r)
	if i < 0 {
		return false
	}
	s.entries = slices.Delete(s.entries, i, i+1)
	return true
}

func newEntry(r Rule) entry {
	e := entry{rule: r}
	if l, ok := r.(block.Listener); ok {
		e.listener = l
	}
	return e
}

func valid(r Rule) bool {
	return r != nil && reflect.TypeOf(r).Comparable()
}
