package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fchimpan/snowflake-bounce/internal/config"
	"github.com/fchimpan/snowflake-bounce/internal/tui"
)

// Version is set at build time with -ldflags "-X .../cmd.Version=...".
var Version = "dev"

type Deps struct {
	RunTUI     func(opts tui.Options, logFile string) error
	IsTerminal func() bool
	LookupEnv  config.LookupFunc
	Now        func() time.Time
	Stdout     io.Writer
	Stderr     io.Writer
}

func DefaultDeps() Deps {
	return Deps{
		RunTUI: defaultRunTUI,
		IsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdout.Fd()))
		},
		LookupEnv: os.LookupEnv,
		Now:       time.Now,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
	}
}

func NewRootCmd(deps Deps) *cobra.Command {
	opts := config.Default()
	var showVersion bool

	c := &cobra.Command{
		Use:          "snowflake-bounce",
		Short:        "Bounce a snowflake around your terminal, DVD-logo style",
		Long:         "Bounce a snowflake around your terminal, DVD-logo style.\n\nKeys: c color, s size, f surprise, +/- speed, p pause, q quit.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				fmt.Fprintf(cmd.OutOrStdout(), "snowflake-bounce %s\n", Version)
				return nil
			}

			if err := opts.ApplyEnv(deps.LookupEnv, cmd.Flags().Changed); err != nil {
				return err
			}
			if opts.Seed == 0 && deps.Now != nil {
				opts.Seed = uint64(deps.Now().UnixNano())
			}
			err := run(deps, opts)
			if tui.IsInterrupted(err) {
				// The user asked to stop; exit status alone reports it.
				cmd.SilenceErrors = true
			}
			return err
		},
	}

	c.Flags().BoolVarP(&showVersion, "version", "V", false, "print version and exit")
	c.Flags().IntVar(&opts.FPS, "fps", opts.FPS, fmt.Sprintf("frames per second (%d-%d)", config.MinFPS, config.MaxFPS))
	c.Flags().StringVarP(&opts.Color, "color", "c", opts.Color, "initial color (white, cyan, blue, magenta, red, yellow, green)")
	c.Flags().StringVarP(&opts.Size, "size", "s", opts.Size, "initial size (small, medium, large)")
	c.Flags().Uint64Var(&opts.Seed, "seed", 0, "random seed for the start position (default: time based)")
	c.Flags().BoolVarP(&opts.Rainbow, "rainbow", "r", false, "change color on every bounce")
	c.Flags().BoolVar(&opts.HUD, "hud", false, "show a status line at the bottom")
	c.Flags().StringVar(&opts.LogFile, "log-file", "", "write debug logs to this file")

	c.SetOut(deps.Stdout)
	c.SetErr(deps.Stderr)
	return c
}
