package grammar

import "strings"

// dotChar is the character used in an item's printable form to mark the
// current parse position, per §4.3.
const dotChar = "·"

// LR0Item is a production with a dot marking parse progress: the production
// is split into Left (symbols before the dot) and Right (symbols from the
// dot onward).
type LR0Item struct {
	NonTerminal string
	Left        []string
	Right       []string
}

// Complete reports whether the dot has advanced past every symbol of the
// production.
func (item LR0Item) Complete() bool {
	return len(item.Right) == 0
}

// NextSymbol returns the symbol immediately after the dot and true, or ""
// and false if the item is complete.
func (item LR0Item) NextSymbol() (string, bool) {
	if item.Complete() {
		return "", false
	}
	return item.Right[0], true
}

// Advance returns the item produced by moving the dot one symbol to the
// right. It panics if the item is already complete.
func (item LR0Item) Advance() LR0Item {
	if item.Complete() {
		panic("cannot advance a complete item")
	}
	next := LR0Item{
		NonTerminal: item.NonTerminal,
		Left:        make([]string, len(item.Left)+1),
		Right:       make([]string, len(item.Right)-1),
	}
	copy(next.Left, item.Left)
	next.Left[len(item.Left)] = item.Right[0]
	copy(next.Right, item.Right[1:])
	return next
}

// String renders the item as "A -> α · β".
func (item LR0Item) String() string {
	var sb strings.Builder
	sb.WriteString(item.NonTerminal)
	sb.WriteString(" -> ")
	if len(item.Left) > 0 {
		sb.WriteString(strings.Join(item.Left, " "))
		sb.WriteRune(' ')
	}
	sb.WriteString(dotChar)
	if len(item.Right) > 0 {
		sb.WriteRune(' ')
		sb.WriteString(strings.Join(item.Right, " "))
	}
	return sb.String()
}

// Equal reports whether two LR0Items have the same lhs, left, and right.
func (item LR0Item) Equal(o any) bool {
	other, ok := o.(LR0Item)
	if !ok {
		return false
	}
	if item.NonTerminal != other.NonTerminal {
		return false
	}
	if len(item.Left) != len(other.Left) || len(item.Right) != len(other.Right) {
		return false
	}
	for i := range item.Left {
		if item.Left[i] != other.Left[i] {
			return false
		}
	}
	for i := range item.Right {
		if item.Right[i] != other.Right[i] {
			return false
		}
	}
	return true
}

// LR1Item is an LR0Item tagged with a single lookahead terminal (or the
// end-marker "$"). Two LR1Items are equal iff all three item fields and the
// lookahead match. ε must never appear as Lookahead (§4.4).
type LR1Item struct {
	LR0Item
	Lookahead string
}

// String renders the item as "A -> α · β , a" (§4.3).
func (item LR1Item) String() string {
	return item.LR0Item.String() + " , " + item.Lookahead
}

// Equal reports whether two LR1Items are identical, including lookahead.
func (item LR1Item) Equal(o any) bool {
	other, ok := o.(LR1Item)
	if !ok {
		return false
	}
	return item.LR0Item.Equal(other.LR0Item) && item.Lookahead == other.Lookahead
}

// Advance returns the LR1Item produced by moving the dot one symbol right,
// keeping the same lookahead.
func (item LR1Item) Advance() LR1Item {
	return LR1Item{LR0Item: item.LR0Item.Advance(), Lookahead: item.Lookahead}
}

// AllItems returns every LR0Item obtainable by placing the dot at each
// position of p's rhs, in left-to-right order.
func (p Production) AllItems() []LR0Item {
	items := make([]LR0Item, 0, len(p.Rule)+1)
	for dot := 0; dot <= len(p.Rule); dot++ {
		items = append(items, LR0Item{
			NonTerminal: p.NonTerminal,
			Left:        append([]string{}, p.Rule[:dot]...),
			Right:       append([]string{}, p.Rule[dot:]...),
		})
	}
	return items
}

// InitialItem returns the dot-at-0 LR0Item for p.
func (p Production) InitialItem() LR0Item {
	return LR0Item{
		NonTerminal: p.NonTerminal,
		Left:        nil,
		Right:       append([]string{}, p.Rule...),
	}
}
