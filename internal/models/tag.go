// ABOUTME: Tag models produced by the normalizer and batch classifier.
// ABOUTME: FormattedTag is the canonical form of one token, keyed by its name.

package models

// Options control how raw tags are folded before comparison.
type Options struct {
	// PreserveCase keeps letter case instead of lowercasing.
	PreserveCase bool `json:"preserve_case" yaml:"preserve_case"`

	// PreserveUnderscore keeps underscores instead of turning them into spaces.
	PreserveUnderscore bool `json:"preserve_underscore" yaml:"preserve_underscore"`

	// PreserveNewlines stops newlines from acting as tag delimiters.
	PreserveNewlines bool `json:"preserve_newlines" yaml:"preserve_newlines"`
}

// FormattedTag is a single raw token after normalization. It is built once
// and never mutated.
type FormattedTag struct {
	Original  string  `json:"original" yaml:"original"`
	Name      string  `json:"name" yaml:"name"`
	Weight    float64 `json:"weight" yaml:"weight"`
	Canonical string  `json:"canonical" yaml:"canonical"`
}

// Key is the deduplication identity of the tag. Wrapping braces and weight
// do not take part in it.
func (t FormattedTag) Key() string {
	return t.Name
}

// ClassifiedTag pairs a normalized tag with what should happen to it.
type ClassifiedTag struct {
	Tag    FormattedTag `json:"tag" yaml:"tag"`
	Action Action       `json:"action" yaml:"action"`
}
