// ABOUTME: Normalize command for inspecting a single tag.
// ABOUTME: Shows the parsed name, weight and canonical form.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/fiffu/sd-promptkit/internal/ui"
	"github.com/spf13/cobra"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <tag>",
	Short: "Normalize a single tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonFlag, _ := cmd.Flags().GetBool("json")

		tag := newLinter().Normalize(args[0])

		if jsonFlag {
			data, err := json.MarshalIndent(tag, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode JSON: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}

		fmt.Fprint(cmd.OutOrStdout(), ui.FormatTag(tag))
		return nil
	},
}

func init() {
	normalizeCmd.Flags().Bool("json", false, "print the tag as JSON")
	rootCmd.AddCommand(normalizeCmd)
}
