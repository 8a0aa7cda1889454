// Package automaton builds the canonical collection of LR(1) item sets and
// the transition table over grammar symbols (C5), by worklist construction
// over the CLOSURE/GOTO primitives in package grammar.
package automaton

import (
	"sort"

	"github.com/dekarrin/clrgen/internal/clrgen/grammar"
)

// Collection is the canonical collection: an ordered sequence of item sets
// (state 0 = Closure({[S' -> . S, $]})) plus the transition map
// δ: StateIndex × SymbolName -> StateIndex (§3, §4.6).
type Collection struct {
	States      []grammar.ItemSet
	Transitions []map[string]int
}

// NumStates returns the number of states in the collection.
func (c *Collection) NumStates() int {
	return len(c.States)
}

// Next returns the destination state for a transition out of state i on
// symbol, and whether one exists.
func (c *Collection) Next(i int, symbol string) (int, bool) {
	j, ok := c.Transitions[i][symbol]
	return j, ok
}

// Build runs the worklist construction described in §4.6: starting from
// I0 = Closure({[S' -> . S, $]}), repeatedly compute GOTO(Ii, X) for every
// symbol X appearing after some dot in Ii, deduplicating against existing
// states by set-equality (grammar.ItemSet.Key) before appending a new one.
func Build(g *grammar.Grammar) *Collection {
	startProd := g.Production(0)
	start := g.Closure(grammar.NewItemSet(grammar.LR1Item{
		LR0Item:   startProd.InitialItem(),
		Lookahead: grammar.EndMarker,
	}))

	coll := &Collection{
		States:      []grammar.ItemSet{start},
		Transitions: []map[string]int{{}},
	}
	indexByKey := map[string]int{start.Key(): 0}

	worklist := []int{0}
	for len(worklist) > 0 {
		i := worklist[0]
		worklist = worklist[1:]

		for _, X := range nextSymbols(coll.States[i]) {
			J := g.Goto(coll.States[i], X)
			if len(J) == 0 {
				continue
			}

			key := J.Key()
			if j, ok := indexByKey[key]; ok {
				coll.Transitions[i][X] = j
				continue
			}

			j := len(coll.States)
			coll.States = append(coll.States, J)
			coll.Transitions = append(coll.Transitions, map[string]int{})
			indexByKey[key] = j
			coll.Transitions[i][X] = j

			worklist = append(worklist, j)
		}
	}

	return coll
}

// nextSymbols returns, in a deterministic (alphabetical) order, the distinct
// symbols appearing immediately after some dot in I. Iteration order across
// symbols within a state is not externally observable per §4.6 but must be
// stable within a run; sorting satisfies that trivially.
func nextSymbols(I grammar.ItemSet) []string {
	seen := map[string]bool{}
	for _, item := range I {
		if sym, ok := item.NextSymbol(); ok {
			seen[sym] = true
		}
	}

	syms := make([]string, 0, len(seen))
	for s := range seen {
		syms = append(syms, s)
	}
	sort.Strings(syms)
	return syms
}
