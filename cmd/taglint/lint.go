// ABOUTME: Lint command for classifying prompt tags.
// ABOUTME: Prints every tag with its action in text, JSON, YAML or markdown.

package main

import (
	"errors"
	"fmt"

	"github.com/fiffu/sd-promptkit/internal/lint"
	"github.com/fiffu/sd-promptkit/internal/models"
	"github.com/fiffu/sd-promptkit/internal/ui"
	"github.com/spf13/cobra"
)

// errNeedsFixing is returned by --check when any tag is linted or removed.
var errNeedsFixing = errors.New("prompt tags need fixing")

var lintCmd = &cobra.Command{
	Use:   "lint [tags...]",
	Short: "Classify prompt tags",
	Long: `Classify every comma-separated tag as ok, linted or removed and show its canonical form.

Reads tags from the arguments, or from stdin when none are given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		check, _ := cmd.Flags().GetBool("check")
		showRemoved := appConfig.ShowRemoved
		if cmd.Flags().Changed("show-removed") {
			showRemoved, _ = cmd.Flags().GetBool("show-removed")
		}
		if format == "" {
			format = appConfig.Format
		}

		input, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		results := newLinter().ClassifyAll(input)

		if err := printResults(cmd, format, results, showRemoved); err != nil {
			return err
		}

		if check && !lint.Summarize(results).Clean() {
			return errNeedsFixing
		}
		return nil
	},
}

func printResults(cmd *cobra.Command, format string, results []models.ClassifiedTag, showRemoved bool) error {
	out := cmd.OutOrStdout()

	switch format {
	case "text":
		fmt.Fprint(out, ui.FormatClassified(results, showRemoved))
		fmt.Fprintln(out)
		fmt.Fprint(out, ui.FormatSummary(lint.Summarize(results)))
	case "json":
		data, err := ui.ExportJSON(ui.NewReport(results, appConfig.Options))
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
	case "yaml":
		data, err := ui.ExportYAML(ui.NewReport(results, appConfig.Options))
		if err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		fmt.Fprint(out, string(data))
	case "md":
		rendered, err := ui.RenderMarkdownReport(results)
		if err != nil {
			return err
		}
		fmt.Fprint(out, rendered)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	return nil
}

func init() {
	lintCmd.Flags().StringP("format", "f", "", "output format: text, json, yaml, md (default from config)")
	lintCmd.Flags().Bool("show-removed", true, "show removed tags in text output")
	lintCmd.Flags().Bool("check", false, "exit non-zero when any tag is linted or removed")
	rootCmd.AddCommand(lintCmd)
}
