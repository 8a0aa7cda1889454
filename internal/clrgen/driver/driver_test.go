package driver

import (
	"strings"
	"testing"

	"github.com/dekarrin/clrgen/internal/clrgen/automaton"
	"github.com/dekarrin/clrgen/internal/clrgen/clrerr"
	"github.com/dekarrin/clrgen/internal/clrgen/grammar"
	"github.com/dekarrin/clrgen/internal/clrgen/table"
	"github.com/dekarrin/clrgen/internal/clrgen/types"
	"github.com/stretchr/testify/assert"
)

func buildDriver(t *testing.T, grammarText string) *Driver {
	t.Helper()
	g := grammar.MustParse(grammarText)
	coll := automaton.Build(g)
	tbl := table.Build(g, coll)
	return New(tbl)
}

// Scenario 1: Simple.
func Test_Parse_simple_grammar_accepts(t *testing.T) {
	d := buildDriver(t, "S -> C C\nC -> c C | d\n")

	res := d.Parse(types.NewStreamFromWords([]string{"c", "c", "d", "d"}))
	assert.True(t, res.Accepted)

	foundReduceD := false
	for _, step := range res.Steps {
		if step.Action == "reduce by C -> d" {
			foundReduceD = true
			break
		}
	}
	assert.True(t, foundReduceD, "expected a reduce by C -> d in the trace")
}

// Scenario 2: Assignment.
func Test_Parse_assignment_grammar_accepts(t *testing.T) {
	d := buildDriver(t, "S -> L = R | R\nL -> * R | i\nR -> L\n")

	res := d.Parse(types.NewStreamFromWords([]string{"*", "i", "=", "i"}))
	assert.True(t, res.Accepted)

	eqShifts := 0
	lastReduce := ""
	for _, step := range res.Steps {
		if strings.HasSuffix(step.Action, "on =") {
			eqShifts++
		}
		if strings.HasPrefix(step.Action, "reduce by") {
			lastReduce = step.Action
		}
	}
	assert.Equal(t, 1, eqShifts, "expected exactly one shift on '='")
	assert.Equal(t, "reduce by S -> L = R", lastReduce)
}

// Scenario 3: Expression.
func Test_Parse_expression_grammar_tree_shape(t *testing.T) {
	d := buildDriver(t, "E -> E + T | T\nT -> T * F | F\nF -> ( E ) | i\n")

	res := d.Parse(types.NewStreamFromWords([]string{"i", "+", "i", "*", "i"}))
	assert.True(t, res.Accepted)

	root := res.Tree
	assert.Equal(t, "E", root.Value)
	if assert.Len(t, root.Children, 3) {
		assert.Equal(t, "E", root.Children[0].Value)
		assert.Equal(t, "+", root.Children[1].Value)
		assert.Equal(t, "T", root.Children[2].Value)

		rightT := root.Children[2]
		if assert.Len(t, rightT.Children, 3) {
			assert.Equal(t, "T", rightT.Children[0].Value)
			assert.Equal(t, "*", rightT.Children[1].Value)
			assert.Equal(t, "F", rightT.Children[2].Value)
		}
	}

	assert.Equal(t, []string{"i", "+", "i", "*", "i"}, root.Yield())
}

// Scenario 4: Rejection.
func Test_Parse_rejects_incomplete_expression(t *testing.T) {
	d := buildDriver(t, "E -> E + T | T\nT -> T * F | F\nF -> ( E ) | i\n")

	res := d.Parse(types.NewStreamFromWords([]string{"i", "+"}))
	assert.False(t, res.Accepted)

	synErr, ok := res.Err.(*clrerr.SyntaxError)
	if assert.True(t, ok, "expected a *clrerr.SyntaxError") {
		assert.Equal(t, "$", synErr.Token.Class().ID())
	}
}

// Scenario 5: Ambiguous.
func Test_Table_flags_ambiguous_grammar_non_clr1(t *testing.T) {
	g := grammar.MustParse("E -> E + E | i\n")
	coll := automaton.Build(g)
	tbl := table.Build(g, coll)

	assert.False(t, tbl.IsCLR1())
}

// Scenario 6: epsilon production.
func Test_Parse_epsilon_production_leaf(t *testing.T) {
	d := buildDriver(t, "S -> A b\nA -> ε\n")

	res := d.Parse(types.NewStreamFromWords([]string{"b"}))
	assert.True(t, res.Accepted)

	root := res.Tree
	if assert.Len(t, root.Children, 2) {
		aNode := root.Children[0]
		assert.Equal(t, "A", aNode.Value)
		if assert.Len(t, aNode.Children, 1) {
			assert.True(t, aNode.Children[0].Terminal)
			assert.Equal(t, "ε", aNode.Children[0].Value)
		}
	}
}

func Test_Parse_empty_input_accepts_when_start_derives_epsilon(t *testing.T) {
	d := buildDriver(t, "S -> ε\n")

	res := d.Parse(types.NewStreamFromWords(nil))
	assert.True(t, res.Accepted)
}
