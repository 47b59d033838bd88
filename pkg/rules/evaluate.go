package rules

import (
	"iter"

	"github.com/openblocks/blocklink/pkg/block"
)

// Evaluate combines rs into a single admissibility decision for the pair
// (a, b, ca, cb).
//
// Rules are consulted in order. The first mandatory rule that rejects ends
// the evaluation with false. Advisory results are OR-ed together, and the
// final answer is that OR: at least one advisory rule must accept.
//
// Two consequences follow and are relied upon by existing rule sets:
//   - an empty sequence is never admissible
//   - a sequence of only mandatory rules is never admissible, even when all
//     of them accept
func Evaluate(rs iter.Seq[Rule], a, b *block.Block, ca, cb *block.Connector) bool {
	accepted := false
	for r := range rs {
		ok := r.CanLink(a, b, ca, cb)
		if !r.Mandatory() {
			accepted = accepted || ok
		} else if !ok {
			return false
		}
	}
	return accepted
}
