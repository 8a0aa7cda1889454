package driver

import (
	"fmt"
	"strings"
)

// Step is one entry of the driver's step-by-step trace (§4.8): a step
// number, the run this step belongs to, a snapshot of the raw stack
// contents (states and symbols interleaved, stringified in order), a
// snapshot of the remaining input, and a description of the action taken.
type Step struct {
	Num       int
	RunID     string
	Stack     []string
	Remaining []string
	Action    string
}

// String renders a step the way a REPL trace pane would print one line.
func (s Step) String() string {
	return fmt.Sprintf("[%d] stack=%s input=%s action=%s",
		s.Num, strings.Join(s.Stack, " "), strings.Join(s.Remaining, " "), s.Action)
}
