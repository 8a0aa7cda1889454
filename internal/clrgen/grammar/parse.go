package grammar

import (
	"strings"

	"github.com/dekarrin/clrgen/internal/clrgen/clrerr"
)

// epsilonTokens are the spellings that denote an ε-production when they are
// the sole contents of an alternative (§4.1, §6).
var epsilonTokens = map[string]bool{
	"ε":  true,
	"''": true,
	`""`: true,
}

// Parse turns grammar text into an augmented Grammar (C2). Non-empty lines
// are production rules of the form "LHS -> ALT1 | ALT2 | ...". The lhs of
// the first rule becomes the original start symbol; a fresh start symbol S'
// is introduced and S' -> S is inserted as production 0.
func Parse(text string) (*Grammar, error) {
	lines := strings.Split(text, "\n")

	type rawRule struct {
		lineNo int
		lhs    string
		alts   [][]string
	}

	var rules []rawRule
	lhsSeen := map[string]bool{}

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		arrowIdx := strings.Index(trimmed, "->")
		if arrowIdx < 0 {
			return nil, clrerr.NewMalformedRuleError(i+1, line, "missing \"->\"")
		}

		lhs := strings.TrimSpace(trimmed[:arrowIdx])
		if lhs == "" {
			return nil, clrerr.NewMalformedRuleError(i+1, line, "empty left-hand side")
		}

		rhsText := strings.TrimSpace(trimmed[arrowIdx+2:])
		altStrs := strings.Split(rhsText, "|")

		var alts [][]string
		for _, altStr := range altStrs {
			altStr = strings.TrimSpace(altStr)

			if altStr == "" || epsilonTokens[altStr] {
				alts = append(alts, nil)
				continue
			}

			syms := strings.Fields(altStr)
			alts = append(alts, syms)
		}

		rules = append(rules, rawRule{lineNo: i + 1, lhs: lhs, alts: alts})
		lhsSeen[lhs] = true
	}

	if len(rules) == 0 {
		return nil, clrerr.NewEmptyGrammarError(text)
	}

	g := New()

	for lhs := range lhsSeen {
		g.markNonTerminal(lhs)
	}

	for _, r := range rules {
		for _, alt := range r.alts {
			for _, sym := range alt {
				if !g.IsNonTerminal(sym) {
					g.markTerminal(sym)
				}
			}
		}
	}

	// reserve index 0 for the augmented start production; real productions
	// get appended starting at index 1, then production 0 is filled in once
	// the fresh start name is known.
	g.productions = append(g.productions, Production{})

	for _, r := range rules {
		for _, alt := range r.alts {
			g.addProduction(r.lhs, Rhs(alt))
		}
	}

	origStart := rules[0].lhs
	g.origStart = origStart

	augStart := g.GenerateUniqueName(origStart)
	g.markNonTerminal(augStart)
	g.augStart = augStart

	g.productions[0] = Production{Index: 0, NonTerminal: augStart, Rule: Rhs{origStart}}
	g.byNonTerminal[augStart] = append([]int{0}, g.byNonTerminal[augStart]...)

	return g, nil
}

// MustParse is Parse but panics on error; used by tests that embed grammar
// literals inline.
func MustParse(text string) *Grammar {
	g, err := Parse(text)
	if err != nil {
		panic(err.Error())
	}
	return g
}
