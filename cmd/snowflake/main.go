package main

import (
	"os"

	"github.com/fchimpan/snowflake-bounce/cmd"
	"github.com/fchimpan/snowflake-bounce/internal/tui"
)

func main() {
	root := cmd.NewRootCmd(cmd.DefaultDeps())
	if err := root.Execute(); err != nil {
		if tui.IsInterrupted(err) {
			os.Exit(130)
		}
		os.Exit(1)
	}
}
