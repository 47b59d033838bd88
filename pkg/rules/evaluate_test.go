package rules

import (
	"slices"
	"testing"

	"github.com/openblocks/blocklink/pkg/block"
)

func fixed(name string, mandatory, result bool) *FuncRule {
	return Func(name, mandatory, func(*block.Block, *block.Block, *block.Connector, *block.Connector) bool {
		return result
	})
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name  string
		rules []Rule
		want  bool
	}{
		{"empty set", nil, false},
		{"single accepting advisory", []Rule{fixed("a", false, true)}, true},
		{"single rejecting advisory", []Rule{fixed("a", false, false)}, false},
		{"mandatory only, all pass", []Rule{fixed("m1", true, true), fixed("m2", true, true)}, false},
		{"rejecting mandatory beats advisory", []Rule{fixed("m", true, false), fixed("a", false, true)}, false},
		{"rejecting mandatory after advisory", []Rule{fixed("a", false, true), fixed("m", true, false)}, false},
		{"one of several advisories", []Rule{fixed("a1", false, false), fixed("a2", false, true), fixed("a3", false, false)}, true},
		{"passing mandatory plus advisory", []Rule{fixed("m", true, true), fixed("a", false, true)}, true},
		{"passing mandatory, advisories reject", []Rule{fixed("m", true, true), fixed("a", false, false)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(slices.Values(tt.rules), nil, nil, nil, nil); got != tt.want {
				t.Errorf("Evaluate = %v, want %v", got, tt.want)
			}
			if got := NewSet(tt.rules...).Admissible(nil, nil, nil, nil); got != tt.want {
				t.Errorf("Set.Admissible = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluateShortCircuitsOnVeto(t *testing.T) {
	calls := 0
	counting := Func("count", false, func(*block.Block, *block.Block, *block.Connector, *block.Connector) bool {
		calls++
		return true
	})
	s := NewSet(fixed("veto", true, false), counting)
	if s.Admissible(nil, nil, nil, nil) {
		t.Fatal("veto should reject")
	}
	if calls != 0 {
		t.Errorf("rules after a veto were consulted %d times", calls)
	}
}
