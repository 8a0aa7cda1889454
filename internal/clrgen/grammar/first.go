package grammar

// FIRST computes FIRST(X) for a single symbol (§4.2). Terminals and the
// end-marker map to the singleton {X}. Non-terminals are resolved through
// every alternative production, folding FIRST across the rhs.
//
// Results of outermost lookups are memoised per non-terminal on the grammar,
// since a Grammar is immutable once built. Left-recursive non-terminals
// terminate because firstOf tracks the non-terminals being expanded on the
// current call path, not because of the memo.
func (g *Grammar) FIRST(X string) map[string]bool {
	if g.IsTerminal(X) || X == EndMarker {
		return map[string]bool{X: true}
	}

	if g.firstCache == nil {
		g.firstCache = map[string]map[string]bool{}
	}

	return g.firstOf(X, map[string]bool{})
}

// firstOf computes FIRST(X) for a non-terminal X, tracking the set of
// non-terminals currently being expanded on this call path (visiting) so a
// left-recursive or mutually-recursive cycle returns an empty partial result
// instead of looping forever; the caller's other alternatives still
// contribute their own FIRST sets normally.
//
// A result is only cached when this call is the outermost one (visiting held
// nothing but X while it ran): any call nested inside another symbol's
// active cycle can see a truncated result because one of its own
// dependencies is still being computed further up the stack, and caching
// that truncated value would poison every later, independent lookup of X.
func (g *Grammar) firstOf(X string, visiting map[string]bool) map[string]bool {
	if cached, ok := g.firstCache[X]; ok {
		return cached
	}
	if visiting[X] {
		return map[string]bool{}
	}
	topLevel := len(visiting) == 0
	visiting[X] = true

	result := map[string]bool{}
	for _, p := range g.ProductionsFor(X) {
		seqFirst := g.firstOfSeq(p.Rule, visiting)
		for sym := range seqFirst {
			result[sym] = true
		}
	}

	delete(visiting, X)
	if topLevel {
		if g.firstCache == nil {
			g.firstCache = map[string]map[string]bool{}
		}
		g.firstCache[X] = result
	}
	return result
}

// firstOfSeq computes FIRST(Y1 Y2 ... Yn) by folding firstOf left to right:
// add FIRST(Y1) \ {ε}; if ε ∈ FIRST(Y1), continue with Y2, and so on; if
// every Yi admits ε (including an empty sequence), add ε. ε is kept as an
// explicit member of the result until a caller projects it away, per the
// open question in §9.
func (g *Grammar) firstOfSeq(seq []string, visiting map[string]bool) map[string]bool {
	result := map[string]bool{}

	if len(seq) == 0 {
		result[Epsilon] = true
		return result
	}

	allAdmitEpsilon := true
	for _, sym := range seq {
		var symFirst map[string]bool
		if g.IsTerminal(sym) || sym == EndMarker {
			symFirst = map[string]bool{sym: true}
		} else {
			symFirst = g.firstOf(sym, visiting)
		}

		for s := range symFirst {
			if s != Epsilon {
				result[s] = true
			}
		}

		if !symFirst[Epsilon] {
			allAdmitEpsilon = false
			break
		}
	}

	if allAdmitEpsilon {
		result[Epsilon] = true
	}

	return result
}

// FIRSTSeq computes FIRST(α) for an arbitrary symbol sequence (§4.2). The
// empty sequence yields {ε}.
func (g *Grammar) FIRSTSeq(seq []string) map[string]bool {
	return g.firstOfSeq(seq, map[string]bool{})
}
