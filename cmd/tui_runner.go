package cmd

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/fchimpan/snowflake-bounce/internal/tui"
)

func defaultRunTUI(opts tui.Options, logFile string) error {
	logger := log.New(io.Discard)
	if logFile != "" {
		f, err := tea.LogToFile(logFile, "snowflake")
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logger = log.NewWithOptions(f, log.Options{
			Level:           log.DebugLevel,
			ReportTimestamp: true,
			Prefix:          "snowflake",
		})
	}
	opts.Logger = logger

	if err := runProgram(context.Background(), tui.NewModel(opts), tea.WithAltScreen()); err != nil {
		logger.Error("program exited", "err", err)
		return err
	}
	return nil
}

// runProgram runs model until it quits or ctx is done. SIGINT, SIGTERM and
// SIGQUIT cancel the program so the terminal is restored on the way out and
// Run reports tea.ErrProgramKilled.
func runProgram(ctx context.Context, model tea.Model, opts ...tea.ProgramOption) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	opts = append(opts, tea.WithContext(ctx), tea.WithoutSignalHandler())
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return &tui.TerminalError{Op: "run", Err: err}
	}
	return nil
}
