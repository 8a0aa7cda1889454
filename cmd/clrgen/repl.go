package main

import (
	"fmt"
	"io"

	"github.com/dekarrin/clrgen/internal/clrgen/replio"
	"github.com/dekarrin/clrgen/internal/clrgen/table"
)

// runREPL opens an interactive session against an already-built table,
// running the driver once per line the user enters until EOF.
func runREPL(tbl *table.Table) error {
	reader, err := replio.NewLineReader("> ")
	if err != nil {
		return fmt.Errorf("start interactive session: %w", err)
	}
	defer reader.Close()

	fmt.Println("clrgen interactive mode. Enter a whitespace-separated token string, or \\table to print the table.")

	for {
		line, err := reader.ReadLine()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		if line == "\\table" {
			fmt.Println(tbl.String())
			continue
		}
		if line == "\\quit" {
			return nil
		}

		runOnce(tbl, line, "stack")
	}
}
