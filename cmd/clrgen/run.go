package main

import (
	"fmt"

	"github.com/dekarrin/clrgen/internal/clrgen/automaton"
	"github.com/dekarrin/clrgen/internal/clrgen/clrerr"
	"github.com/dekarrin/clrgen/internal/clrgen/driver"
	"github.com/dekarrin/clrgen/internal/clrgen/grammar"
	"github.com/dekarrin/clrgen/internal/clrgen/table"
	"github.com/dekarrin/clrgen/internal/clrgen/types"
)

// buildTable runs the full generator pipeline (C3-C6) over g.
func buildTable(g *grammar.Grammar) *table.Table {
	coll := automaton.Build(g)
	return table.Build(g, coll)
}

// runOnce parses one input line against tbl and prints the trace and
// outcome at the given verbosity ("steps", "stack" or "full"). It returns
// whether the input was accepted.
func runOnce(tbl *table.Table, input, verbosity string) bool {
	drv := driver.New(tbl)
	stream := types.NewStream(input)
	res := drv.Parse(stream)

	fmt.Printf("run %s:\n", res.RunID)
	for _, step := range res.Steps {
		printStep(step, verbosity)
	}

	if res.Accepted {
		fmt.Println("accepted")
		fmt.Println(res.Tree.String())
		return true
	}

	fmt.Println("rejected")
	switch e := res.Err.(type) {
	case *clrerr.SyntaxError:
		fmt.Println(e.FullMessage())
	case *clrerr.GotoError:
		fmt.Println(e.FullMessage())
	default:
		if res.Err != nil {
			fmt.Println(res.Err.Error())
		}
	}
	return false
}

func printStep(step driver.Step, verbosity string) {
	switch verbosity {
	case "steps":
		fmt.Printf("[%d] %s\n", step.Num, step.Action)
	case "full":
		fmt.Println(step.String())
	default: // "stack"
		fmt.Printf("[%d] stack=%v action=%s\n", step.Num, step.Stack, step.Action)
	}
}
