// Package replio reads whitespace-separated token lines for the interactive
// driver session, using a go implementation of GNU Readline so the REPL gets
// line history and in-place editing for free.
package replio

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// LineReader reads one input line at a time from an interactive terminal.
// LineReader should not be used directly; create one with [NewLineReader].
type LineReader struct {
	rl     *readline.Instance
	prompt string
}

// NewLineReader initializes readline with the given prompt. The returned
// LineReader must have Close called on it before disposal to properly tear
// down readline resources.
func NewLineReader(prompt string) (*LineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: prompt,
	})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}

	return &LineReader{rl: rl, prompt: prompt}, nil
}

// Close tears down the underlying readline instance.
func (lr *LineReader) Close() error {
	return lr.rl.Close()
}

// ReadLine blocks until a line containing non-space characters is read.
//
// At end of input, the returned string is empty and the error is io.EOF. Any
// other error is returned as-is with an empty string.
func (lr *LineReader) ReadLine() (string, error) {
	var line string
	var err error

	for line == "" {
		line, err = lr.rl.Readline()
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}
		line = strings.TrimSpace(line)
	}

	return line, nil
}

// SetPrompt updates the prompt shown before the next ReadLine call.
func (lr *LineReader) SetPrompt(p string) {
	lr.prompt = p
	lr.rl.SetPrompt(p)
}
