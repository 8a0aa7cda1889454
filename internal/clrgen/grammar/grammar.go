package grammar

import (
	"fmt"
	"strings"

	"github.com/dekarrin/clrgen/internal/util"
)

// Grammar is an augmented context-free grammar: an ordered, indexed list of
// productions (production 0 is always the augmented start S' -> S), the
// augmented start symbol, and the terminal/non-terminal name sets derived
// from how each name is used in the source text.
//
// A Grammar is built once by Parse and is immutable thereafter (§3,
// "Lifecycles"): FIRST sets, the canonical collection, and the tables are
// all pure functions of a Grammar value.
type Grammar struct {
	productions  []Production
	origStart    string
	augStart     string
	terminals    map[string]bool
	nonTerminals map[string]bool

	// byNonTerminal indexes production indices by lhs name, in the order
	// they were added, for fast CLOSURE/FIRST iteration.
	byNonTerminal map[string][]int

	// firstCache memoises FIRST(X) per non-terminal. Safe to share across
	// calls because the grammar is immutable once built (§3, "Lifecycles").
	firstCache map[string]map[string]bool
}

// New returns an empty Grammar with no productions. AddProduction must be
// used to build it up; most callers will go through Parse instead.
func New() *Grammar {
	return &Grammar{
		terminals:     map[string]bool{},
		nonTerminals:  map[string]bool{},
		byNonTerminal: map[string][]int{},
	}
}

// NumProductions returns the number of productions, including the augmented
// start production at index 0.
func (g *Grammar) NumProductions() int {
	return len(g.productions)
}

// Production returns the production at index i.
func (g *Grammar) Production(i int) Production {
	return g.productions[i]
}

// Productions returns all productions in index order.
func (g *Grammar) Productions() []Production {
	return g.productions
}

// ProductionsFor returns, in definition order, the productions whose lhs is
// nonTerminal.
func (g *Grammar) ProductionsFor(nonTerminal string) []Production {
	idxs := g.byNonTerminal[nonTerminal]
	out := make([]Production, len(idxs))
	for i, idx := range idxs {
		out[i] = g.productions[idx]
	}
	return out
}

// AugmentedStart returns the name of the fresh start symbol S' introduced
// by augmentation.
func (g *Grammar) AugmentedStart() string {
	return g.augStart
}

// OriginalStart returns the name of the grammar's original start symbol S,
// i.e. the lhs of the first rule that appeared in the source text.
func (g *Grammar) OriginalStart() string {
	return g.origStart
}

// IsTerminal reports whether name is classified as a terminal.
func (g *Grammar) IsTerminal(name string) bool {
	return g.terminals[name]
}

// IsNonTerminal reports whether name is classified as a non-terminal.
func (g *Grammar) IsNonTerminal(name string) bool {
	return g.nonTerminals[name]
}

// Terminals returns the terminal name set in a stable (alphabetical) order.
func (g *Grammar) Terminals() []string {
	return util.OrderedKeys(g.terminals)
}

// NonTerminals returns the non-terminal name set in a stable (alphabetical)
// order, including S'.
func (g *Grammar) NonTerminals() []string {
	return util.OrderedKeys(g.nonTerminals)
}

// markNonTerminal records name as a non-terminal.
func (g *Grammar) markNonTerminal(name string) {
	g.nonTerminals[name] = true
}

// markTerminal records name as a terminal.
func (g *Grammar) markTerminal(name string) {
	g.terminals[name] = true
}

// addProduction appends a new production for nonTerminal with the given rhs
// and classifies every symbol it introduces.
func (g *Grammar) addProduction(nonTerminal string, rhs Rhs) int {
	idx := len(g.productions)
	g.productions = append(g.productions, Production{
		Index:       idx,
		NonTerminal: nonTerminal,
		Rule:        rhs,
	})
	g.byNonTerminal[nonTerminal] = append(g.byNonTerminal[nonTerminal], idx)
	return idx
}

// GenerateUniqueName returns a non-terminal name derived from base that does
// not already appear in g's non-terminal set, following the augmentation
// rule in §4.1: append a prime, and keep appending primes until the name is
// free.
func (g *Grammar) GenerateUniqueName(base string) string {
	candidate := base + "'"
	for g.nonTerminals[candidate] {
		candidate += "'"
	}
	return candidate
}

// String renders the grammar as one "LHS -> alt1 | alt2 | ..." line per
// non-terminal, in non-terminal definition order, matching the textual
// surface a user would have typed in.
func (g *Grammar) String() string {
	var sb strings.Builder

	seen := map[string]bool{}
	for _, p := range g.productions {
		if seen[p.NonTerminal] {
			continue
		}
		seen[p.NonTerminal] = true

		alts := g.ProductionsFor(p.NonTerminal)
		parts := make([]string, len(alts))
		for i, a := range alts {
			parts[i] = a.Rule.String()
		}

		sb.WriteString(p.NonTerminal)
		sb.WriteString(" -> ")
		sb.WriteString(strings.Join(parts, " | "))
		sb.WriteString("\n")
	}

	return sb.String()
}

// Validate checks the structural invariants from §3: every symbol on some
// rhs is classified consistently with the terminal/non-terminal sets, and
// every non-terminal other than the augmented start is reachable from some
// rule. It does not check that the grammar is itself LR(1); that's C6's job.
func (g *Grammar) Validate() error {
	if len(g.productions) < 1 {
		return fmt.Errorf("grammar has no productions")
	}
	if len(g.terminals) < 1 {
		return fmt.Errorf("grammar defines no terminals")
	}

	var errs []string

	producedNonTerms := map[string]bool{}

	for _, p := range g.productions {
		for _, sym := range p.Rule {
			if g.IsNonTerminal(sym) {
				producedNonTerms[sym] = true
			} else if !g.IsTerminal(sym) {
				errs = append(errs, fmt.Sprintf("symbol %q used by %q is neither a known terminal nor a known non-terminal", sym, p.NonTerminal))
			}
		}
	}

	for _, nt := range g.NonTerminals() {
		if nt == g.augStart {
			continue
		}
		if !producedNonTerms[nt] {
			errs = append(errs, fmt.Sprintf("non-terminal %q is not produced by any rule", nt))
		}
	}

	if _, ok := g.byNonTerminal[g.augStart]; !ok {
		errs = append(errs, fmt.Sprintf("no production defined for augmented start symbol %q", g.augStart))
	}

	if len(errs) > 0 {
		return fmt.Errorf("grammar is malformed:\n  %s", strings.Join(errs, "\n  "))
	}

	return nil
}
