package grammar

import (
	"sort"
	"strings"

	"github.com/dekarrin/clrgen/internal/util"
)

// ItemSet is a util.SVSet[LR1Item] keyed by each item's own printable form,
// the same "value keyed by its own String()" pattern the teacher's DFA
// construction uses for its initial item set
// (internal/ictiobus/automaton/dfa.go builds
// util.SVSet[grammar.LR1Item]{initialItem.String(): initialItem}).
type ItemSet util.SVSet[LR1Item]

// NewItemSet builds an ItemSet from a list of items.
func NewItemSet(items ...LR1Item) ItemSet {
	s := ItemSet(util.NewSVSet[LR1Item]())
	for _, it := range items {
		s.Add(it)
	}
	return s
}

// Add inserts item into the set, keyed by its own printable form.
func (s ItemSet) Add(item LR1Item) {
	util.SVSet[LR1Item](s).Set(item.String(), item)
}

// Has reports whether item (by printable form) is already in the set.
func (s ItemSet) Has(item LR1Item) bool {
	return util.SVSet[LR1Item](s).Has(item.String())
}

// Items returns the set's members as a slice; order is not significant for
// equality but is kept stable for display by sorting the keys.
func (s ItemSet) Items() []LR1Item {
	keys := util.SVSet[LR1Item](s).Elements()
	sort.Strings(keys)

	items := make([]LR1Item, len(keys))
	for i, k := range keys {
		items[i] = s[k]
	}
	return items
}

// Key returns the canonicalised string used to test two ItemSets for
// set-equality in O(n) (§9, "Equality of item sets"): the sorted
// concatenation of each member's printable form.
func (s ItemSet) Key() string {
	keys := util.SVSet[LR1Item](s).Elements()
	sort.Strings(keys)
	return strings.Join(keys, "\x00")
}

// Closure computes the least fixed point of s under the CLOSURE rule
// (§4.4): for every [A -> α · B β, a] in the closure, for every production
// B -> γ, for every terminal b in FIRST(β a) \ {ε}, add [B -> · γ, b].
//
// A worklist plus the set's own printable-form keys (rather than a separate
// seen-set) provide the deduplication discipline §4.4 requires.
func (g *Grammar) Closure(s ItemSet) ItemSet {
	closure := ItemSet{}
	for k, v := range s {
		closure[k] = v
	}

	worklist := s.Items()

	for len(worklist) > 0 {
		item := worklist[0]
		worklist = worklist[1:]

		nextSym, ok := item.NextSymbol()
		if !ok || !g.IsNonTerminal(nextSym) {
			continue
		}
		B := nextSym

		// β is everything in Right after B.
		beta := item.Right[1:]
		lookaheadSeq := append(append([]string{}, beta...), item.Lookahead)
		betaAFirst := g.FIRSTSeq(lookaheadSeq)

		for _, prod := range g.ProductionsFor(B) {
			for b := range betaAFirst {
				if b == Epsilon {
					continue
				}

				newItem := LR1Item{
					LR0Item:   prod.InitialItem(),
					Lookahead: b,
				}

				if !closure.Has(newItem) {
					closure.Add(newItem)
					worklist = append(worklist, newItem)
				}
			}
		}
	}

	return closure
}

// Goto computes GOTO(I, X) = Closure of the items obtained by advancing the
// dot over X in every item of I that has X immediately after its dot
// (§4.5). Empty when no item in I has X after its dot.
func (g *Grammar) Goto(I ItemSet, X string) ItemSet {
	moved := ItemSet{}
	for _, item := range I {
		next, ok := item.NextSymbol()
		if !ok || next != X {
			continue
		}
		moved.Add(item.Advance())
	}

	if len(moved) == 0 {
		return ItemSet{}
	}

	return g.Closure(moved)
}
