package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func exprGrammar() *Grammar {
	return MustParse("E -> E + T | T\nT -> T * F | F\nF -> ( E ) | i\n")
}

func Test_Closure_initial_state(t *testing.T) {
	g := exprGrammar()

	start := g.Closure(NewItemSet(LR1Item{
		LR0Item:   g.Production(0).InitialItem(),
		Lookahead: EndMarker,
	}))

	// [E' -> .E, $] plus its closure should include every item that can
	// begin a derivation of E, T, F under lookahead $/+/*.
	assert.True(t, start.Has(LR1Item{
		LR0Item:   LR0Item{NonTerminal: "E'", Left: nil, Right: []string{"E"}},
		Lookahead: "$",
	}))
	assert.True(t, start.Has(LR1Item{
		LR0Item:   LR0Item{NonTerminal: "F", Left: nil, Right: []string{"i"}},
		Lookahead: "$",
	}))
	assert.True(t, start.Has(LR1Item{
		LR0Item:   LR0Item{NonTerminal: "F", Left: nil, Right: []string{"i"}},
		Lookahead: "+",
	}))
	assert.True(t, start.Has(LR1Item{
		LR0Item:   LR0Item{NonTerminal: "F", Left: nil, Right: []string{"i"}},
		Lookahead: "*",
	}))

	for _, item := range start.Items() {
		assert.NotEqual(t, Epsilon, item.Lookahead, "no item may have epsilon as lookahead")
	}
}

func Test_Closure_idempotent(t *testing.T) {
	g := exprGrammar()

	start := g.Closure(NewItemSet(LR1Item{
		LR0Item:   g.Production(0).InitialItem(),
		Lookahead: EndMarker,
	}))

	twice := g.Closure(start)

	assert.Equal(t, start.Key(), twice.Key())
}

func Test_Goto_advances_dot(t *testing.T) {
	g := exprGrammar()

	start := g.Closure(NewItemSet(LR1Item{
		LR0Item:   g.Production(0).InitialItem(),
		Lookahead: EndMarker,
	}))

	onI := g.Goto(start, "i")
	assert.True(t, onI.Has(LR1Item{
		LR0Item:   LR0Item{NonTerminal: "F", Left: []string{"i"}, Right: nil},
		Lookahead: "$",
	}))
	assert.True(t, onI.Has(LR1Item{
		LR0Item:   LR0Item{NonTerminal: "F", Left: []string{"i"}, Right: nil},
		Lookahead: "+",
	}))
}

func Test_Goto_empty_when_symbol_not_next(t *testing.T) {
	g := exprGrammar()

	start := g.Closure(NewItemSet(LR1Item{
		LR0Item:   g.Production(0).InitialItem(),
		Lookahead: EndMarker,
	}))

	assert.Empty(t, g.Goto(start, ")"))
}

func Test_Goto_independent_of_insertion_order(t *testing.T) {
	g := exprGrammar()

	start := g.Closure(NewItemSet(LR1Item{
		LR0Item:   g.Production(0).InitialItem(),
		Lookahead: EndMarker,
	}))

	items := start.Items()

	forward := NewItemSet(items...)
	backward := NewItemSet()
	for i := len(items) - 1; i >= 0; i-- {
		backward.Add(items[i])
	}

	assert.Equal(t, g.Goto(forward, "T").Key(), g.Goto(backward, "T").Key())
}
