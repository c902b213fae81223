package cmd

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fchimpan/snowflake-bounce/internal/config"
	"github.com/fchimpan/snowflake-bounce/internal/tui"
)

func run(deps Deps, opts config.Options) error {
	if deps.RunTUI == nil {
		return fmt.Errorf("deps.RunTUI is nil")
	}
	if deps.IsTerminal == nil {
		return fmt.Errorf("deps.IsTerminal is nil")
	}

	engine, err := opts.Engine()
	if err != nil {
		return err
	}
	if !deps.IsTerminal() {
		return &tui.TerminalError{Op: "open", Err: tui.ErrNotATerminal}
	}

	err = deps.RunTUI(tui.Options{
		Engine: engine,
		FPS:    opts.FPS,
		HUD:    opts.HUD,
	}, opts.LogFile)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, tea.ErrInterrupted), errors.Is(err, tea.ErrProgramKilled):
		return fmt.Errorf("%w: %v", tui.ErrInterrupted, err)
	default:
		return err
	}
}
