/*
Clrgen builds a canonical LR(1) parser from a grammar file and runs it
against an input token string, printing the ACTION/GOTO table, the shift/
reduce trace, and the resulting parse tree.

Usage:

	clrgen [flags] GRAMMAR_FILE INPUT

	clrgen [flags] -i GRAMMAR_FILE

The flags are:

	-v, --version
		Give the current version of clrgen and then exit.

	-c, --config FILE
		Load defaults from the given .clrgen.toml file instead of the one in
		the current directory.

	-i, --interactive
		After building the table for GRAMMAR_FILE, open a REPL that accepts
		repeated input strings against it instead of parsing a single INPUT
		argument.

	-t, --table
		Print the ACTION/GOTO table before running the driver.

	--abort-on-conflict
		Refuse to run the driver if the grammar is not CLR(1).
*/
package main

import (
	"fmt"
	"os"

	"github.com/dekarrin/clrgen/internal/clrgen/config"
	"github.com/dekarrin/clrgen/internal/clrgen/grammar"
	"github.com/dekarrin/clrgen/internal/clrgen/version"
	"github.com/spf13/pflag"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitInitError indicates a problem loading the grammar or config.
	ExitInitError

	// ExitTableError indicates the table was not CLR(1) and
	// --abort-on-conflict was set.
	ExitTableError

	// ExitParseError indicates the driver rejected the input.
	ExitParseError
)

var (
	flagVersion     = pflag.BoolP("version", "v", false, "Give the current version of clrgen and then exit.")
	flagConfig      = pflag.StringP("config", "c", ".clrgen.toml", "Load defaults from the given config file.")
	flagInteractive = pflag.BoolP("interactive", "i", false, "Open a REPL against the built table.")
	flagShowTable   = pflag.BoolP("table", "t", false, "Print the ACTION/GOTO table before running the driver.")
	flagAbortOnConf = pflag.Bool("abort-on-conflict", false, "Refuse to run the driver if the grammar is not CLR(1).")
)

func main() {
	returnCode := ExitSuccess
	defer func() { os.Exit(returnCode) }()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("clrgen %s\n", version.Current)
		return
	}

	cfg := config.Default()
	if loaded, err := config.Load(*flagConfig); err == nil {
		cfg = loaded
	}
	if pflag.Lookup("abort-on-conflict").Changed {
		cfg.AbortOnConflict = *flagAbortOnConf
	}

	args := pflag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "ERROR: missing GRAMMAR_FILE argument\nDo -h for help.")
		returnCode = ExitInitError
		return
	}
	grammarPath := args[0]

	src, err := os.ReadFile(grammarPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: could not read grammar file: %s\n", err)
		returnCode = ExitInitError
		return
	}

	g, err := grammar.Parse(string(src))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		returnCode = ExitInitError
		return
	}
	if err := g.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		returnCode = ExitInitError
		return
	}

	tbl := buildTable(g)

	if *flagShowTable {
		fmt.Println(tbl.String())
	}
	if !tbl.IsCLR1() {
		for _, c := range tbl.Conflicts {
			fmt.Fprintf(os.Stderr, "WARN  %s\n", c.Error())
		}
		if cfg.AbortOnConflict {
			returnCode = ExitTableError
			return
		}
	}

	if *flagInteractive {
		if err := runREPL(tbl); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
			returnCode = ExitInitError
		}
		return
	}

	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "ERROR: missing INPUT argument\nDo -h for help.")
		returnCode = ExitInitError
		return
	}

	if !runOnce(tbl, args[1], cfg.TraceVerbosity) {
		returnCode = ExitParseError
	}
}
