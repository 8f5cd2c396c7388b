// ABOUTME: Fix command for printing the cleaned prompt.
// ABOUTME: Optionally copies the result to the system clipboard.

package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/fiffu/sd-promptkit/internal/lint"
	"github.com/fiffu/sd-promptkit/internal/ui"
	"github.com/spf13/cobra"
)

var fixCmd = &cobra.Command{
	Use:   "fix [tags...]",
	Short: "Print the cleaned prompt",
	Long:  `Print the canonical form of every kept tag, with duplicates and empty tags removed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		copyFlag, _ := cmd.Flags().GetBool("copy")

		input, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		fixed := lint.Fix(newLinter().ClassifyAll(input))

		fmt.Fprint(cmd.OutOrStdout(), ui.FormatFixed(fixed))

		if copyFlag {
			if err := clipboard.WriteAll(fixed); err != nil {
				return fmt.Errorf("failed to copy to clipboard: %w", err)
			}
			fmt.Fprintln(cmd.ErrOrStderr(), ui.Success("Copied to clipboard"))
		}
		return nil
	},
}

func init() {
	fixCmd.Flags().BoolP("copy", "c", false, "copy the cleaned prompt to the clipboard")
	rootCmd.AddCommand(fixCmd)
}
