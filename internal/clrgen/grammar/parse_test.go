package grammar

import (
	"testing"

	"github.com/dekarrin/clrgen/internal/clrgen/clrerr"
	"github.com/stretchr/testify/assert"
)

func Test_Parse_augments_and_classifies(t *testing.T) {
	g, err := Parse("S -> C C\nC -> c C | d\n")
	assert.NoError(t, err)

	assert.Equal(t, "S", g.OriginalStart())
	assert.Equal(t, "S'", g.AugmentedStart())

	assert.Equal(t, Production{Index: 0, NonTerminal: "S'", Rule: Rhs{"S"}}, g.Production(0))

	assert.True(t, g.IsNonTerminal("S"))
	assert.True(t, g.IsNonTerminal("C"))
	assert.True(t, g.IsNonTerminal("S'"))
	assert.True(t, g.IsTerminal("c"))
	assert.True(t, g.IsTerminal("d"))

	assert.Equal(t, []string{"c", "d"}, g.Terminals())
	assert.Equal(t, []string{"C", "S", "S'"}, g.NonTerminals())
}

func Test_Parse_epsilon_forms(t *testing.T) {
	cases := []string{
		"S -> A b\nA -> ε\n",
		"S -> A b\nA -> \n",
		"S -> A b\nA -> ''\n",
		"S -> A b\nA -> \"\"\n",
	}

	for _, text := range cases {
		g, err := Parse(text)
		assert.NoError(t, err)

		aProds := g.ProductionsFor("A")
		if assert.Len(t, aProds, 1) {
			assert.Empty(t, aProds[0].Rule)
		}
	}
}

func Test_Parse_unique_augmented_name_avoids_collision(t *testing.T) {
	g, err := Parse("S -> S' x\nS' -> y\n")
	assert.NoError(t, err)

	assert.Equal(t, "S''", g.AugmentedStart())
}

func Test_Parse_empty_grammar_errors(t *testing.T) {
	_, err := Parse("\n\n   \n")
	assert.Error(t, err)
	assert.IsType(t, &clrerr.EmptyGrammarError{}, err)
}

func Test_Parse_malformed_rule_missing_arrow(t *testing.T) {
	_, err := Parse("S : a\n")
	assert.Error(t, err)
	assert.IsType(t, &clrerr.MalformedRuleError{}, err)
}

func Test_Parse_malformed_rule_empty_lhs(t *testing.T) {
	_, err := Parse(" -> a\n")
	assert.Error(t, err)
	assert.IsType(t, &clrerr.MalformedRuleError{}, err)
}
