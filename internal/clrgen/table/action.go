package table

import (
	"fmt"

	"github.com/dekarrin/clrgen/internal/clrgen/grammar"
)

// ActionType distinguishes the four kinds of ACTION table entry (§3).
type ActionType int

const (
	Error ActionType = iota
	Shift
	Reduce
	Accept
)

// Action is one ACTION table cell. Reduce entries carry the production's lhs
// name and rhs directly so the driver never needs to re-consult the
// production list to execute a reduction (§3).
type Action struct {
	Type ActionType

	// Target is the destination state for Shift.
	Target int

	// ProdIndex, ProdNonTerm, and ProdRhs describe the production for
	// Reduce.
	ProdIndex   int
	ProdNonTerm string
	ProdRhs     grammar.Rhs
}

// String renders the action in the stable printable form consumed by
// presentation layers (§6): "sN" for shift, "rA -> α" for reduce, "ACC" for
// accept, "ERROR" otherwise.
func (a Action) String() string {
	switch a.Type {
	case Shift:
		return fmt.Sprintf("s%d", a.Target)
	case Reduce:
		return fmt.Sprintf("r%s -> %s", a.ProdNonTerm, a.ProdRhs.String())
	case Accept:
		return "ACC"
	default:
		return "ERROR"
	}
}

// Equal reports whether two actions are the same for conflict-detection
// purposes: same type and same target/production.
func (a Action) Equal(o Action) bool {
	if a.Type != o.Type {
		return false
	}
	switch a.Type {
	case Shift:
		return a.Target == o.Target
	case Reduce:
		return a.ProdIndex == o.ProdIndex
	default:
		return true
	}
}
