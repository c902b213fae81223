package tui

import (
	"errors"
	"fmt"
)

// ErrInterrupted is returned when the user interrupted the screensaver
// (ctrl+c or a termination signal) instead of quitting with q.
var ErrInterrupted = errors.New("interrupted")

// ErrNotATerminal is returned when stdout is not attached to a terminal.
var ErrNotATerminal = errors.New("stdout is not a terminal")

// TerminalError reports a failure of the terminal surface itself. The
// session cannot continue after one.
type TerminalError struct {
	Op  string
	Err error
}

func (e *TerminalError) Error() string {
	if e == nil || e.Err == nil {
		return "terminal error"
	}
	if e.Op == "" {
		return fmt.Sprintf("terminal: %v", e.Err)
	}
	return fmt.Sprintf("terminal %s: %v", e.Op, e.Err)
}

func (e *TerminalError) Unwrap() error { return e.Err }

func IsTerminalError(err error) bool {
	var e *TerminalError
	return errors.As(err, &e)
}

func IsInterrupted(err error) bool {
	return errors.Is(err, ErrInterrupted)
}
