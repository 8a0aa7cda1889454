package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_FIRST_terminal_and_endmarker(t *testing.T) {
	g := MustParse("S -> a\n")

	assert.Equal(t, map[string]bool{"a": true}, g.FIRST("a"))
	assert.Equal(t, map[string]bool{"$": true}, g.FIRST("$"))
}

func Test_FIRST_simple_nonterminal(t *testing.T) {
	g := MustParse("E -> E + T | T\nT -> T * F | F\nF -> ( E ) | i\n")

	assert.Equal(t, map[string]bool{"i": true, "(": true}, g.FIRST("F"))
	assert.Equal(t, map[string]bool{"i": true, "(": true}, g.FIRST("T"))
	assert.Equal(t, map[string]bool{"i": true, "(": true}, g.FIRST("E"))
}

func Test_FIRST_left_recursive_terminates(t *testing.T) {
	g := MustParse("A -> A a | b\n")

	first := g.FIRST("A")
	assert.Equal(t, map[string]bool{"b": true}, first)
}

func Test_FIRST_epsilon_propagation(t *testing.T) {
	g := MustParse("S -> A b\nA -> ε\n")

	firstA := g.FIRST("A")
	assert.Equal(t, map[string]bool{Epsilon: true}, firstA)

	firstS := g.FIRST("S")
	assert.Equal(t, map[string]bool{"b": true}, firstS)
}

func Test_FIRSTSeq_empty_sequence_is_epsilon(t *testing.T) {
	g := MustParse("S -> a\n")
	assert.Equal(t, map[string]bool{Epsilon: true}, g.FIRSTSeq(nil))
}

func Test_FIRSTSeq_all_admit_epsilon(t *testing.T) {
	g := MustParse("S -> A B c\nA -> ε\nB -> ε\n")

	first := g.FIRSTSeq([]string{"A", "B"})
	assert.Equal(t, map[string]bool{Epsilon: true}, first)
}

func Test_FIRST_mutual_recursion_does_not_poison_cache(t *testing.T) {
	g := MustParse("S -> A\nA -> B x | w\nB -> A y\n")

	assert.Equal(t, map[string]bool{"w": true}, g.FIRST("A"))
	assert.Equal(t, map[string]bool{"w": true}, g.FIRST("B"))
}

func Test_FIRSTSeq_dollar_via_lookahead(t *testing.T) {
	// FIRST(beta a) may validly contain "$" when a itself is "$" (§9).
	g := MustParse("S -> A\nA -> ε\n")

	first := g.FIRSTSeq([]string{"A", "$"})
	assert.True(t, first["$"])
}
