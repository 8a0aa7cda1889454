// Package table builds the ACTION/GOTO tables from a grammar's canonical
// collection (C6), following Algorithm 4.56 ("Construction of canonical-LR
// parsing tables") from the purple dragon book, and detects shift/reduce and
// reduce/reduce conflicts as report-only data rather than aborting
// construction.
package table

import (
	"strconv"

	"github.com/dekarrin/clrgen/internal/clrgen/automaton"
	"github.com/dekarrin/clrgen/internal/clrgen/clrerr"
	"github.com/dekarrin/clrgen/internal/clrgen/grammar"
)

// Table holds the compiled ACTION and GOTO tables plus any conflicts found
// while building them. A non-empty Conflicts means the grammar is not
// CLR(1); the table is still usable, since the first action written into
// each conflicting cell is kept (§4.7).
type Table struct {
	Grammar    *grammar.Grammar
	Collection *automaton.Collection

	action []map[string]Action
	goTo   []map[string]int

	Conflicts []clrerr.Conflict
}

// IsCLR1 reports whether table construction found zero conflicts.
func (t *Table) IsCLR1() bool {
	return len(t.Conflicts) == 0
}

// Initial returns the index of the start state.
func (t *Table) Initial() int {
	return 0
}

// Action returns the ACTION table entry for (state, symbol). The zero value
// has Type == Error when no entry exists.
func (t *Table) Action(state int, symbol string) Action {
	return t.action[state][symbol]
}

// Goto returns the GOTO table entry for (state, nonTerminal), and whether it
// exists.
func (t *Table) Goto(state int, nonTerminal string) (int, bool) {
	j, ok := t.goTo[state][nonTerminal]
	return j, ok
}

// Build constructs the ACTION and GOTO tables from coll over g, following
// the three steps of Algorithm 4.56:
//
//  1. [A -> α · a β, b] with a terminal and GOTO(Ii, a) = Ij: ACTION[i,a] =
//     Shift(j).
//  2. [A -> α ·, b] with A != S': ACTION[i,b] = Reduce(A -> α).
//     [S' -> S ·, $]: ACTION[i,$] = Accept.
//  3. GOTO[i, A] = j for every non-terminal transition δ(i, A) = j.
func Build(g *grammar.Grammar, coll *automaton.Collection) *Table {
	t := &Table{
		Grammar:    g,
		Collection: coll,
		action:     make([]map[string]Action, coll.NumStates()),
		goTo:       make([]map[string]int, coll.NumStates()),
	}

	for i := range t.action {
		t.action[i] = map[string]Action{}
		t.goTo[i] = map[string]int{}
	}

	augStart := g.AugmentedStart()
	origStart := g.OriginalStart()

	for i, I := range coll.States {
		for _, item := range I.Items() {
			if sym, ok := item.NextSymbol(); ok && g.IsTerminal(sym) {
				if j, ok := coll.Next(i, sym); ok {
					t.set(i, sym, Action{Type: Shift, Target: j})
				}
				continue
			}

			if !item.Complete() {
				continue
			}

			if item.NonTerminal == augStart && item.Lookahead == grammar.EndMarker &&
				len(item.Left) == 1 && item.Left[0] == origStart {
				t.set(i, grammar.EndMarker, Action{Type: Accept})
				continue
			}

			if item.NonTerminal != augStart {
				prodIdx := prodIndexFor(g, item.NonTerminal, item.Left)
				t.set(i, item.Lookahead, Action{
					Type:        Reduce,
					ProdIndex:   prodIdx,
					ProdNonTerm: item.NonTerminal,
					ProdRhs:     grammar.Rhs(item.Left),
				})
			}
		}

		for X, j := range coll.Transitions[i] {
			if g.IsNonTerminal(X) {
				t.goTo[i][X] = j
			}
		}
	}

	return t
}

// set writes an ACTION cell, recording a conflict instead of overwriting
// when a different action is already present (§4.7). Shift-vs-shift to the
// same target and identical reductions are no-ops rather than conflicts.
func (t *Table) set(state int, symbol string, act Action) {
	existing, has := t.action[state][symbol]
	if !has {
		t.action[state][symbol] = act
		return
	}
	if existing.Equal(act) {
		return
	}

	kind := clrerr.ShiftReduce
	if existing.Type == Reduce && act.Type == Reduce {
		kind = clrerr.ReduceReduce
	}

	t.Conflicts = append(t.Conflicts, clrerr.Conflict{
		Type:     kind,
		State:    stateName(state),
		Symbol:   symbol,
		Kept:     existing.String(),
		Rejected: act.String(),
	})
	// first entry is kept; the second write is dropped.
}

// prodIndexFor finds the stable production index matching (nonTerminal,
// rhs), so reductions can be identified by an integer even though the item
// only carries the symbol sequence (§9, "Stable production indices").
func prodIndexFor(g *grammar.Grammar, nonTerminal string, rhs []string) int {
	for _, p := range g.ProductionsFor(nonTerminal) {
		if grammar.Rhs(rhs).Equal(p.Rule) {
			return p.Index
		}
	}
	return -1
}

func stateName(i int) string {
	return strconv.Itoa(i)
}
