// ABOUTME: Tests for tokenizing and classifying tag batches.
// ABOUTME: Covers delimiters, dedup ordering, fix output and summaries.

package lint

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/fiffu/sd-promptkit/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		desc  string
		input string
		opts  models.Options
		want  []string
	}{
		{"comma is a delimiter", "a,b", models.Options{}, []string{"a", "b"}},
		{"newline is a delimiter by default", "a,b\nc", models.Options{}, []string{"a", "b", "c"}},
		{"newline kept when preserved", "a,b\nc", models.Options{PreserveNewlines: true}, []string{"a", "b\nc"}},
		{"empty tokens filtered", "a,b\n,c", models.Options{}, []string{"a", "b", "c"}},
		{"crlf is a delimiter", "a\r\nb", models.Options{}, []string{"a", "b"}},
		{"tokens stay untrimmed", "a, b ,c", models.Options{}, []string{"a", " b ", "c"}},
		{"blank input", " , ,\n", models.Options{}, []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			assert.Equal(t, tc.want, Tokenize(tc.input, tc.opts))
		})
	}
}

func actionsOf(results []models.ClassifiedTag) []models.Action {
	out := make([]models.Action, len(results))
	for i, r := range results {
		out[i] = r.Action
	}
	return out
}

func keysOf(results []models.ClassifiedTag) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Tag.Key()
	}
	return out
}

func TestClassifyAll(t *testing.T) {
	results := ClassifyAll("masterpiece, (masterpiece: 1.4), SOLO focus, solo_focus", models.Options{})

	assert.Equal(t, []models.Action{models.Noop, models.Remove, models.Lint, models.Remove}, actionsOf(results))
	assert.Equal(t, []string{"masterpiece", "masterpiece", "solo focus", "solo focus"}, keysOf(results))
}

func TestClassifyAllPreserveUnderscore(t *testing.T) {
	input := "solo focus, solo_focus"

	assert.Equal(t, []models.Action{models.Noop, models.Remove},
		actionsOf(ClassifyAll(input, models.Options{})))
	assert.Equal(t, []models.Action{models.Noop, models.Noop},
		actionsOf(ClassifyAll(input, models.Options{PreserveUnderscore: true})))
}

func TestClassifyAllEmptyNameRemoved(t *testing.T) {
	results := ClassifyAll("(), masterpiece, )", models.Options{})

	require.Len(t, results, 3)
	assert.Equal(t, []models.Action{models.Remove, models.Noop, models.Remove}, actionsOf(results))
}

func TestClassifyAllFirstOccurrenceWins(t *testing.T) {
	results := ClassifyAll("(solo:1.2), solo, [[solo]]", models.Options{})

	assert.Equal(t, []models.Action{models.Lint, models.Remove, models.Remove}, actionsOf(results))
	assert.Equal(t, "(solo: 1.2)", results[0].Tag.Canonical)
}

func TestClassifyAllIsStateless(t *testing.T) {
	first := ClassifyAll("masterpiece", models.Options{})
	second := ClassifyAll("masterpiece", models.Options{})

	assert.Equal(t, models.Noop, first[0].Action)
	assert.Equal(t, models.Noop, second[0].Action)
}

func TestFix(t *testing.T) {
	results := ClassifyAll("Masterpiece, (masterpiece:1.4),best_quality,\n(((solo)", models.Options{})

	assert.Equal(t, "masterpiece, best quality, (((solo)))", Fix(results))
	assert.Equal(t, "", Fix(nil))
}

func TestSummarize(t *testing.T) {
	results := ClassifyAll("masterpiece, (masterpiece: 1.4), SOLO focus, solo_focus", models.Options{})
	s := Summarize(results)

	assert.Equal(t, Summary{Total: 4, Noop: 1, Lint: 1, Remove: 2}, s)
	assert.False(t, s.Clean())
	assert.True(t, Summarize(ClassifyAll("a, b", models.Options{})).Clean())
}

func TestLinterLogsRemovals(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	l := New(models.Options{}, WithLogger(logger))

	results := l.ClassifyAll("solo, Solo")

	assert.Equal(t, []models.Action{models.Noop, models.Remove}, actionsOf(results))
	assert.True(t, strings.Contains(buf.String(), "removed tag"), "expected removal to be logged, got %q", buf.String())
}

func TestLinterUsesOptions(t *testing.T) {
	l := New(models.Options{PreserveCase: true}, WithLogger(nil))

	assert.Equal(t, "Solo", l.Normalize("Solo").Name)
	assert.Equal(t, []string{"a", "b"}, l.Tokenize("a\nb"))
	assert.True(t, l.Options().PreserveCase)
}
