package table

import (
	"fmt"
	"strconv"

	"github.com/dekarrin/clrgen/internal/clrgen/grammar"
	"github.com/dekarrin/rosed"
)

// String renders the ACTION/GOTO table as a fixed-width text table, one row
// per state, ACTION columns first then GOTO columns, matching the layout
// the teacher's canonicalLR1Table.String() produces.
func (t *Table) String() string {
	terms := append(append([]string{}, t.Grammar.Terminals()...), grammar.EndMarker)
	nonTerms := t.Grammar.NonTerminals()

	headers := []string{"S", "|"}
	for _, term := range terms {
		headers = append(headers, "A:"+term)
	}
	headers = append(headers, "|")
	for _, nt := range nonTerms {
		headers = append(headers, "G:"+nt)
	}

	data := [][]string{headers}

	for i := 0; i < t.Collection.NumStates(); i++ {
		row := []string{strconv.Itoa(i), "|"}

		for _, term := range terms {
			act := t.Action(i, term)
			cell := ""
			if act.Type != Error {
				cell = act.String()
			}
			row = append(row, cell)
		}

		row = append(row, "|")

		for _, nt := range nonTerms {
			cell := ""
			if j, ok := t.Goto(i, nt); ok {
				cell = fmt.Sprintf("%d", j)
			}
			row = append(row, cell)
		}

		data = append(data, row)
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}
