// Package config loads the optional .clrgen.toml configuration file that
// seeds default flag values for cmd/clrgen.
package config

import "github.com/BurntSushi/toml"

// Config carries the defaults a .clrgen.toml file can set; any of them may
// be overridden by an equivalent CLI flag.
type Config struct {
	// GrammarFile holds the grammar_file key. cmd/clrgen does not read it:
	// the grammar path always comes from the first command-line argument.
	GrammarFile string `toml:"grammar_file"`

	// AbortOnConflict makes the generator refuse to run the driver against
	// a table that has any shift/reduce or reduce/reduce conflicts.
	AbortOnConflict bool `toml:"abort_on_conflict"`

	// TraceVerbosity controls how much of each trace step single-shot mode
	// prints: "steps" (action only), "stack" (adds the stack snapshot), or
	// "full" (adds remaining input too). Interactive mode always prints at
	// "stack".
	TraceVerbosity string `toml:"trace_verbosity"`
}

// Default returns the configuration used when no .clrgen.toml is found.
func Default() Config {
	return Config{
		TraceVerbosity: "stack",
	}
}

// Load decodes the TOML file at path into a Config seeded with Default's
// values, so an omitted key keeps its default rather than a Go zero value.
func Load(path string) (Config, error) {
	cfg := Default()
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}
