package automaton

import (
	"testing"

	"github.com/dekarrin/clrgen/internal/clrgen/grammar"
	"github.com/stretchr/testify/assert"
)

func Test_Build_state_zero_is_closure_of_start_item(t *testing.T) {
	g := grammar.MustParse("S -> C C\nC -> c C | d\n")

	coll := Build(g)

	expected := g.Closure(grammar.NewItemSet(grammar.LR1Item{
		LR0Item:   g.Production(0).InitialItem(),
		Lookahead: grammar.EndMarker,
	}))

	assert.Equal(t, expected.Key(), coll.States[0].Key())
}

func Test_Build_no_two_states_equal(t *testing.T) {
	g := grammar.MustParse("S -> C C\nC -> c C | d\n")

	coll := Build(g)

	seen := map[string]bool{}
	for i, s := range coll.States {
		key := s.Key()
		assert.False(t, seen[key], "state %d duplicates an earlier state", i)
		seen[key] = true
	}
}

func Test_Build_transitions_are_consistent_with_goto(t *testing.T) {
	g := grammar.MustParse("S -> C C\nC -> c C | d\n")

	coll := Build(g)

	for i, s := range coll.States {
		for X, j := range coll.Transitions[i] {
			expected := g.Goto(s, X)
			assert.Equal(t, expected.Key(), coll.States[j].Key())
		}
	}
}

func Test_Build_expression_grammar_has_reachable_accept_state(t *testing.T) {
	g := grammar.MustParse("E -> E + T | T\nT -> T * F | F\nF -> ( E ) | i\n")

	coll := Build(g)

	j, ok := coll.Next(0, "E")
	if assert.True(t, ok, "state 0 must have a transition on E") {
		found := false
		for _, item := range coll.States[j].Items() {
			if item.NonTerminal == g.AugmentedStart() && item.Complete() && item.Lookahead == grammar.EndMarker {
				found = true
			}
		}
		assert.True(t, found, "GOTO(I0, E) must contain the completed augmented-start item")
	}
}
