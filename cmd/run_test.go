package cmd

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fchimpan/snowflake-bounce/internal/bounce"
	"github.com/fchimpan/snowflake-bounce/internal/config"
	"github.com/fchimpan/snowflake-bounce/internal/tui"
)

func TestRun_Success(t *testing.T) {
	t.Parallel()

	var calledTUI bool
	opts := config.Default()
	opts.Color = "red"
	opts.Size = "medium"
	opts.FPS = 30
	opts.HUD = true
	opts.Seed = 7
	opts.LogFile = "/tmp/snow.log"

	deps := Deps{
		IsTerminal: func() bool { return true },
		RunTUI: func(got tui.Options, logFile string) error {
			calledTUI = true
			want := bounce.Options{Color: bounce.Red, Size: bounce.Medium, Seed: 7}
			if got.Engine != want {
				t.Fatalf("engine options mismatch: got %+v", got.Engine)
			}
			if got.FPS != 30 || !got.HUD {
				t.Fatalf("tui options mismatch: got %+v", got)
			}
			if logFile != "/tmp/snow.log" {
				t.Fatalf("log file mismatch: got %q", logFile)
			}
			return nil
		},
	}

	if err := run(deps, opts); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !calledTUI {
		t.Fatalf("RunTUI not called")
	}
}

func TestRun_MissingDeps(t *testing.T) {
	t.Parallel()

	if err := run(Deps{}, config.Default()); err == nil {
		t.Fatalf("expected error for missing deps")
	}
	if err := run(Deps{RunTUI: func(tui.Options, string) error { return nil }}, config.Default()); err == nil {
		t.Fatalf("expected error for missing IsTerminal")
	}
}

func TestRun_InvalidOptions(t *testing.T) {
	t.Parallel()

	deps := Deps{
		IsTerminal: func() bool {
			t.Fatalf("IsTerminal should not be called on invalid options")
			return true
		},
		RunTUI: func(tui.Options, string) error {
			t.Fatalf("RunTUI should not be called on invalid options")
			return nil
		},
	}
	opts := config.Default()
	opts.Color = "plaid"
	if err := run(deps, opts); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestRun_NotATerminal(t *testing.T) {
	t.Parallel()

	deps := Deps{
		IsTerminal: func() bool { return false },
		RunTUI: func(tui.Options, string) error {
			t.Fatalf("RunTUI should not be called without a terminal")
			return nil
		},
	}
	err := run(deps, config.Default())
	if !tui.IsTerminalError(err) {
		t.Fatalf("expected terminal error, got %v", err)
	}
	if !errors.Is(err, tui.ErrNotATerminal) {
		t.Fatalf("expected ErrNotATerminal, got %v", err)
	}
}

func TestRun_Interrupted(t *testing.T) {
	t.Parallel()

	for _, cause := range []error{
		tea.ErrInterrupted,
		&tui.TerminalError{Op: "run", Err: tea.ErrProgramKilled},
	} {
		deps := Deps{
			IsTerminal: func() bool { return true },
			RunTUI:     func(tui.Options, string) error { return cause },
		}
		err := run(deps, config.Default())
		if !tui.IsInterrupted(err) {
			t.Fatalf("expected interrupt for %v, got %v", cause, err)
		}
	}
}

func TestRun_TerminalFailure(t *testing.T) {
	t.Parallel()

	want := &tui.TerminalError{Op: "run", Err: errors.New("write /dev/tty: broken pipe")}
	deps := Deps{
		IsTerminal: func() bool { return true },
		RunTUI:     func(tui.Options, string) error { return want },
	}
	err := run(deps, config.Default())
	if !errors.Is(err, want) {
		t.Fatalf("expected %v, got %v", want, err)
	}
	if tui.IsInterrupted(err) {
		t.Fatalf("terminal failure is not an interrupt")
	}
}
