// ABOUTME: Machine-readable lint reports in JSON and YAML.
// ABOUTME: Wraps classified tags with options and a summary.

package ui

import (
	"encoding/json"

	"github.com/fiffu/sd-promptkit/internal/lint"
	"github.com/fiffu/sd-promptkit/internal/models"
	"gopkg.in/yaml.v3"
)

const ReportVersion = "1.0"

type ReportTag struct {
	Original  string        `json:"original" yaml:"original"`
	Name      string        `json:"name" yaml:"name"`
	Weight    float64       `json:"weight" yaml:"weight"`
	Canonical string        `json:"canonical" yaml:"canonical"`
	Action    models.Action `json:"action" yaml:"action"`
}

type Report struct {
	Version string         `json:"version" yaml:"version"`
	Options models.Options `json:"options" yaml:"options"`
	Summary lint.Summary   `json:"summary" yaml:"summary"`
	Fixed   string         `json:"fixed" yaml:"fixed"`
	Tags    []ReportTag    `json:"tags" yaml:"tags"`
}

// NewReport flattens classified tags into a Report.
func NewReport(results []models.ClassifiedTag, opts models.Options) Report {
	report := Report{
		Version: ReportVersion,
		Options: opts,
		Summary: lint.Summarize(results),
		Fixed:   lint.Fix(results),
		Tags:    make([]ReportTag, 0, len(results)),
	}
	for _, r := range results {
		report.Tags = append(report.Tags, ReportTag{
			Original:  r.Tag.Original,
			Name:      r.Tag.Name,
			Weight:    r.Tag.Weight,
			Canonical: r.Tag.Canonical,
			Action:    r.Action,
		})
	}
	return report
}

func ExportJSON(report Report) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}

func ExportYAML(report Report) ([]byte, error) {
	return yaml.Marshal(report)
}
