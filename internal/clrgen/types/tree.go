package types

import (
	"fmt"
	"strings"
)

const (
	treeLevelPrefix     = "  |%s: "
	treeLevelPrefixLast = "  \\%s: "
)

// ParseTree is a node in the concrete parse tree the driver builds on a
// successful parse. Leaves are terminals, including the synthetic "ε" leaf
// produced for an empty-rhs reduction; internal nodes are non-terminals whose
// Children preserve production order.
type ParseTree struct {
	Terminal bool
	Value    string
	Source   Token
	Children []*ParseTree
}

// Epsilon builds the synthetic leaf pushed for a reduction over an
// empty-rhs production.
func Epsilon() *ParseTree {
	return &ParseTree{Terminal: true, Value: "ε"}
}

// Yield returns the ordered sequence of terminal leaf values under t,
// skipping the synthetic ε leaf. For an accepted parse this equals the input
// token sequence.
func (t *ParseTree) Yield() []string {
	if t == nil {
		return nil
	}
	if t.Terminal {
		if t.Value == "ε" {
			return nil
		}
		return []string{t.Value}
	}

	var out []string
	for _, c := range t.Children {
		out = append(out, c.Yield()...)
	}
	return out
}

func (t *ParseTree) String() string {
	return t.leveledStr("", "")
}

func (t *ParseTree) leveledStr(firstPrefix, contPrefix string) string {
	var sb strings.Builder

	sb.WriteString(firstPrefix)
	sb.WriteString(t.Value)
	sb.WriteString("\n")

	for i, c := range t.Children {
		last := i == len(t.Children)-1

		var lead string
		if last {
			lead = fmt.Sprintf(treeLevelPrefixLast, "")
		} else {
			lead = fmt.Sprintf(treeLevelPrefix, "")
		}

		childFirst := contPrefix + lead
		var childCont string
		if last {
			childCont = contPrefix + "   "
		} else {
			childCont = contPrefix + "  |"
		}

		sb.WriteString(c.leveledStr(childFirst, childCont))
	}

	return sb.String()
}

// Equal reports whether t and o have the same shape and values.
func (t *ParseTree) Equal(o any) bool {
	other, ok := o.(*ParseTree)
	if !ok {
		otherVal, ok := o.(ParseTree)
		if !ok {
			return false
		}
		other = &otherVal
	}
	if t == nil || other == nil {
		return t == other
	}

	if t.Terminal != other.Terminal || t.Value != other.Value {
		return false
	}
	if len(t.Children) != len(other.Children) {
		return false
	}
	for i := range t.Children {
		if !t.Children[i].Equal(other.Children[i]) {
			return false
		}
	}
	return true
}

// Copy returns a deep copy of t.
func (t *ParseTree) Copy() *ParseTree {
	if t == nil {
		return nil
	}
	cp := &ParseTree{Terminal: t.Terminal, Value: t.Value, Source: t.Source}
	for _, c := range t.Children {
		cp.Children = append(cp.Children, c.Copy())
	}
	return cp
}
