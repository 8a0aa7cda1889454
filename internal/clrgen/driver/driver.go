// Package driver implements the table-driven shift/reduce parser (C7): a
// bounded loop over a token stream and a compiled ACTION/GOTO table that
// emits a step-by-step trace and, on success, a concrete parse tree.
package driver

import (
	"strconv"

	"github.com/dekarrin/clrgen/internal/clrgen/clrerr"
	"github.com/dekarrin/clrgen/internal/clrgen/table"
	"github.com/dekarrin/clrgen/internal/clrgen/types"
	"github.com/dekarrin/clrgen/internal/util"
	"github.com/google/uuid"
)

// Result is the outcome of one Parse call: the full trace produced, whether
// the input was accepted, and either the resulting tree or the error that
// stopped the parse (§7, "Driver errors are returned in the result rather
// than raised").
type Result struct {
	RunID    string
	Steps    []Step
	Accepted bool
	Tree     *types.ParseTree
	Err      error
}

// Driver runs the shift/reduce loop over a single compiled table. A Driver
// is safe to reuse across many Parse calls against the same table; each call
// gets a fresh run ID and its own parse-local stacks (§5).
type Driver struct {
	Table *table.Table
}

// New returns a Driver bound to t.
func New(t *table.Table) *Driver {
	return &Driver{Table: t}
}

// Parse runs Algorithm 4.44 ("LR-parsing algorithm") over stream, emitting
// one trace step per shift, reduce, and accept, and stopping at the first
// SyntaxError or GotoError.
func (d *Driver) Parse(stream types.TokenStream) *Result {
	runID := uuid.New().String()

	stateStack := util.Stack[int]{Of: []int{d.Table.Initial()}}
	var symStack []string
	nodeStack := util.Stack[*types.ParseTree]{}

	res := &Result{RunID: runID}
	step := 0

	a := stream.Next()

	for {
		s := stateStack.Peek()
		act := d.Table.Action(s, a.Class().ID())

		switch act.Type {
		case table.Shift:
			step++
			res.Steps = append(res.Steps, Step{
				Num:       step,
				RunID:     runID,
				Stack:     snapshot(stateStack, symStack),
				Remaining: remaining(a, stream),
				Action:    "shift to state " + strconv.Itoa(act.Target) + " on " + a.Lexeme(),
			})

			symStack = append(symStack, a.Class().ID())
			stateStack.Push(act.Target)
			nodeStack.Push(&types.ParseTree{Terminal: true, Value: a.Class().ID(), Source: a})

			a = stream.Next()

		case table.Reduce:
			k := len(act.ProdRhs)

			step++
			res.Steps = append(res.Steps, Step{
				Num:       step,
				RunID:     runID,
				Stack:     snapshot(stateStack, symStack),
				Remaining: remaining(a, stream),
				Action:    "reduce by " + act.ProdNonTerm + " -> " + act.ProdRhs.String(),
			})

			var children []*types.ParseTree
			if k == 0 {
				children = []*types.ParseTree{types.Epsilon()}
			} else {
				children = make([]*types.ParseTree, k)
				for i := k - 1; i >= 0; i-- {
					children[i] = nodeStack.Pop()
					stateStack.Pop()
					symStack = symStack[:len(symStack)-1]
				}
			}

			node := &types.ParseTree{Value: act.ProdNonTerm, Children: children}

			sNext := stateStack.Peek()
			target, ok := d.Table.Goto(sNext, act.ProdNonTerm)
			if !ok {
				res.Err = clrerr.NewGotoError(strconv.Itoa(sNext), act.ProdNonTerm, a)
				return res
			}

			symStack = append(symStack, act.ProdNonTerm)
			stateStack.Push(target)
			nodeStack.Push(node)

		case table.Accept:
			step++
			res.Steps = append(res.Steps, Step{
				Num:       step,
				RunID:     runID,
				Stack:     snapshot(stateStack, symStack),
				Remaining: remaining(a, stream),
				Action:    "accept",
			})
			res.Accepted = true
			res.Tree = nodeStack.Pop()
			return res

		default:
			res.Err = clrerr.NewSyntaxError(a, strconv.Itoa(s), d.expectedAt(s))
			return res
		}
	}
}

// expectedAt returns the token classes with a defined, non-error ACTION
// entry in state, for the human-readable expected-terminal list in
// SyntaxError.
func (d *Driver) expectedAt(state int) []types.TokenClass {
	var out []types.TokenClass
	for _, term := range d.Table.Grammar.Terminals() {
		if d.Table.Action(state, term).Type != table.Error {
			out = append(out, types.MakeClass(term))
		}
	}
	if d.Table.Action(state, "$").Type != table.Error {
		out = append(out, types.MakeClass("$"))
	}
	return out
}

// snapshot renders the raw parse stack as alternating state and symbol
// tokens, states first (§4.8: "Stack snapshot is the raw stack contents
// stringified in order").
func snapshot(states util.Stack[int], syms []string) []string {
	out := make([]string, 0, len(states.Of)+len(syms))
	out = append(out, strconv.Itoa(states.Of[0]))
	for i, sym := range syms {
		out = append(out, sym, strconv.Itoa(states.Of[i+1]))
	}
	return out
}

// remaining renders the not-yet-consumed input starting with the lookahead
// token currently under consideration.
func remaining(lookahead types.Token, stream types.TokenStream) []string {
	rest := stream.Remaining()
	out := make([]string, 0, len(rest)+1)
	out = append(out, lookahead.Lexeme())
	for _, t := range rest {
		out = append(out, t.Lexeme())
	}
	return out
}
