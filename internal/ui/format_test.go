// ABOUTME: Tests for terminal UI formatting and report export.
// ABOUTME: Validates classified output, markdown rendering and JSON/YAML reports.

package ui

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/fiffu/sd-promptkit/internal/lint"
	"github.com/fiffu/sd-promptkit/internal/models"
	"gopkg.in/yaml.v3"
)

func init() {
	color.NoColor = true
}

const sampleInput = "masterpiece, (masterpiece: 1.4), SOLO focus, solo_focus"

func TestFormatClassified(t *testing.T) {
	results := lint.ClassifyAll(sampleInput, models.Options{})

	output := FormatClassified(results, true)

	if !strings.Contains(output, "  masterpiece\n") {
		t.Errorf("expected noop line, got %q", output)
	}
	if !strings.Contains(output, "solo focus <- SOLO focus") {
		t.Errorf("expected lint line with original, got %q", output)
	}
	if strings.Count(output, "(removed)") != 2 {
		t.Errorf("expected two removed lines, got %q", output)
	}

	hidden := FormatClassified(results, false)
	if strings.Contains(hidden, "(removed)") {
		t.Error("expected removed tags to be hidden")
	}
}

func TestFormatSummary(t *testing.T) {
	output := FormatSummary(lint.Summary{Total: 4, Noop: 1, Lint: 1, Remove: 2})

	if !strings.Contains(output, "4 tags: 1 ok, 1 linted, 2 removed") {
		t.Errorf("unexpected summary %q", output)
	}
}

func TestFormatTag(t *testing.T) {
	output := FormatTag(lint.Normalize("(Masterpiece : 1.4)", models.Options{}))

	for _, want := range []string{"masterpiece", "1.4", "(masterpiece: 1.4)"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got %q", want, output)
		}
	}
}

func TestFormatFixed(t *testing.T) {
	if got := FormatFixed("solo, smile"); got != "solo, smile\n" {
		t.Errorf("unexpected output %q", got)
	}
	if got := FormatFixed(""); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}

func TestMarkdownReport(t *testing.T) {
	report := MarkdownReport(lint.ClassifyAll(sampleInput, models.Options{}))

	if !strings.Contains(report, "| 3 | `SOLO focus` | `solo focus` | Lint |") {
		t.Errorf("expected lint row, got %q", report)
	}
	if !strings.Contains(report, "masterpiece, solo focus") {
		t.Errorf("expected cleaned prompt, got %q", report)
	}
}

func TestMarkdownReportEscapesPipes(t *testing.T) {
	report := MarkdownReport(lint.ClassifyAll("a|b", models.Options{}))

	if !strings.Contains(report, "a\\|b") {
		t.Errorf("expected escaped pipe, got %q", report)
	}
}

func TestRenderMarkdownReport(t *testing.T) {
	output, err := RenderMarkdownReport(lint.ClassifyAll(sampleInput, models.Options{}))
	if err != nil {
		t.Fatalf("failed to render: %v", err)
	}
	if output == "" {
		t.Error("expected non-empty output")
	}
}

func TestExportJSON(t *testing.T) {
	report := NewReport(lint.ClassifyAll(sampleInput, models.Options{}), models.Options{})

	data, err := ExportJSON(report)
	if err != nil {
		t.Fatalf("failed to export: %v", err)
	}

	var back Report
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("failed to parse export: %v", err)
	}
	if back.Version != ReportVersion {
		t.Errorf("expected version %s, got %s", ReportVersion, back.Version)
	}
	if len(back.Tags) != 4 {
		t.Fatalf("expected 4 tags, got %d", len(back.Tags))
	}
	if back.Tags[1].Action != models.Remove {
		t.Errorf("expected second tag removed, got %s", back.Tags[1].Action)
	}
	if back.Fixed != "masterpiece, solo focus" {
		t.Errorf("unexpected fixed output %q", back.Fixed)
	}
	if !strings.Contains(string(data), `"action": "Lint"`) {
		t.Errorf("expected action names in JSON, got %s", data)
	}
}

func TestExportYAML(t *testing.T) {
	report := NewReport(lint.ClassifyAll("Solo", models.Options{}), models.Options{PreserveCase: false})

	data, err := ExportYAML(report)
	if err != nil {
		t.Fatalf("failed to export: %v", err)
	}

	var back Report
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("failed to parse export: %v", err)
	}
	if back.Summary.Lint != 1 {
		t.Errorf("expected one linted tag, got %+v", back.Summary)
	}
	if !strings.Contains(string(data), "action: Lint") {
		t.Errorf("expected action name in YAML, got %s", data)
	}
}
