// ABOUTME: TUI command for the interactive live linter.
// ABOUTME: Arguments seed the input box.

package main

import (
	"strings"

	"github.com/fiffu/sd-promptkit/internal/tui"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [tags...]",
	Short: "Lint tags interactively",
	Long:  `Open a terminal editor that re-lints the prompt on every keystroke. Press ctrl+y to copy the cleaned prompt.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(newLinter(), strings.Join(args, ", "))
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
