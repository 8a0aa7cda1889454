// Package clrerr defines the typed errors raised across the generator and
// the driver. Each carries a short Error() suitable for logs and, where
// relevant, a FullMessage() with the extra context a presentation layer
// would want to show a user (offending token, state, expected set).
package clrerr

import (
	"fmt"
	"strings"

	"github.com/dekarrin/clrgen/internal/clrgen/types"
	"github.com/dekarrin/clrgen/internal/util"
)

// EmptyGrammarError is returned when grammar text contains no parseable
// productions.
type EmptyGrammarError struct {
	Source string
}

func (e *EmptyGrammarError) Error() string {
	return "grammar text contains no productions"
}

// NewEmptyGrammarError builds an EmptyGrammarError, keeping the offending
// source text for later diagnostics.
func NewEmptyGrammarError(source string) error {
	return &EmptyGrammarError{Source: source}
}

// MalformedRuleError is returned when a non-empty grammar line cannot be
// parsed as a rule: no "->" token, or an empty lhs.
type MalformedRuleError struct {
	Line   string
	LineNo int
	Reason string
}

func (e *MalformedRuleError) Error() string {
	return fmt.Sprintf("malformed rule on line %d: %s: %q", e.LineNo, e.Reason, e.Line)
}

// NewMalformedRuleError builds a MalformedRuleError.
func NewMalformedRuleError(lineNo int, line, reason string) error {
	return &MalformedRuleError{Line: line, LineNo: lineNo, Reason: reason}
}

// ConflictType distinguishes the two kinds of CLR(1) table conflict.
type ConflictType int

const (
	ShiftReduce ConflictType = iota
	ReduceReduce
)

func (c ConflictType) String() string {
	switch c {
	case ShiftReduce:
		return "shift/reduce"
	case ReduceReduce:
		return "reduce/reduce"
	default:
		return "conflict"
	}
}

// Conflict describes one table cell that would have been written twice with
// different actions during table construction. It is non-fatal: the first
// action written is kept and the table is flagged non-CLR(1).
type Conflict struct {
	Type     ConflictType
	State    string
	Symbol   string
	Kept     string // printable form of the action that was kept
	Rejected string // printable form of the action that lost
}

func (c Conflict) Error() string {
	return fmt.Sprintf("%s conflict in state %s on %q: kept %s, rejected %s", c.Type, c.State, c.Symbol, c.Kept, c.Rejected)
}

// SyntaxError is returned by the driver when it finds no ACTION entry for the
// current state and lookahead. It names the offending token, the state it
// was in, and the terminals that would have been valid there.
type SyntaxError struct {
	Token     types.Token
	State     string
	Expected  []types.TokenClass
	technical string
}

func (e *SyntaxError) Error() string {
	return e.technical
}

// FullMessage renders a human sentence naming what was expected, in the
// style of an English disjunction ("expected an `i`, a `+`, or a `$`").
func (e *SyntaxError) FullMessage() string {
	return fmt.Sprintf("unexpected %s; %s", e.Token.Class().Human(), expectedClause(e.Expected))
}

// NewSyntaxError builds a SyntaxError for the given offending token, state,
// and the terminals that had a defined ACTION entry in that state.
func NewSyntaxError(tok types.Token, state string, expected []types.TokenClass) *SyntaxError {
	return &SyntaxError{
		Token:     tok,
		State:     state,
		Expected:  expected,
		technical: fmt.Sprintf("syntax error at %q in state %s: %s", tok.Lexeme(), state, expectedClause(expected)),
	}
}

// expectedClause renders the expected-terminal set as an English
// disjunction, following the teacher's getExpectedString pattern.
func expectedClause(expected []types.TokenClass) string {
	var sb strings.Builder
	sb.WriteString("expected ")

	finalOr := len(expected) > 1
	commas := len(expected) > 2

	for i, t := range expected {
		if finalOr && i+1 == len(expected) {
			sb.WriteString("or ")
		}
		sb.WriteString(util.ArticleFor(t.Human(), false))
		sb.WriteString(" `")
		sb.WriteString(t.Human())
		sb.WriteRune('`')
		if i+1 < len(expected) {
			if commas {
				sb.WriteRune(',')
			}
			sb.WriteRune(' ')
		}
	}

	return sb.String()
}

// GotoError is returned by the driver when, after a reduction, no GOTO
// entry exists for the non-terminal from the uncovered state. This indicates
// either a table-construction bug or a conflict that silently corrupted the
// table.
type GotoError struct {
	State      string
	NonTerm    string
	CausedBy   types.Token
	technical  string
}

func (e *GotoError) Error() string {
	return e.technical
}

// FullMessage renders the same information as Error, for symmetry with
// SyntaxError's presentation contract.
func (e *GotoError) FullMessage() string {
	return e.technical
}

// NewGotoError builds a GotoError for the given state/non-terminal pair.
func NewGotoError(state, nonTerm string, causedBy types.Token) *GotoError {
	return &GotoError{
		State:    state,
		NonTerm:  nonTerm,
		CausedBy: causedBy,
		technical: fmt.Sprintf(
			"LR parsing error; DFA has no valid transition from state %s on %q", state, nonTerm,
		),
	}
}
