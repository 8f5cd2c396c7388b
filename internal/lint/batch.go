// ABOUTME: Batch tokenizer and deduplicating classifier for tag blobs.
// ABOUTME: Splits input on delimiters and assigns Noop/Lint/Remove in input order.

package lint

import (
	"strings"

	"github.com/fiffu/sd-promptkit/internal/models"
)

var newlineDelims = strings.NewReplacer("\r\n", ",", "\n", ",")

// Tokenize splits raw into candidate tags. Commas always delimit; newlines
// delimit unless PreserveNewlines is set. Blank tokens are dropped and the
// rest are returned untrimmed, in input order.
func Tokenize(raw string, opts models.Options) []string {
	if !opts.PreserveNewlines {
		raw = newlineDelims.Replace(raw)
	}

	parts := strings.Split(raw, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		tokens = append(tokens, p)
	}
	return tokens
}

// ClassifyAll normalizes every token in raw and classifies it against the
// tags seen earlier in the same call. Removed tags are kept in the result.
func ClassifyAll(raw string, opts models.Options) []models.ClassifiedTag {
	return classify(Tokenize(raw, opts), opts, nil)
}

func classify(tokens []string, opts models.Options, onRemove func(models.FormattedTag)) []models.ClassifiedTag {
	seen := make(map[string]bool, len(tokens))
	results := make([]models.ClassifiedTag, 0, len(tokens))

	for _, token := range tokens {
		tag := Normalize(token, opts)
		key := tag.Key()

		action := models.Noop
		switch {
		case key == "":
			action = models.Remove
		case seen[key]:
			action = models.Remove
		case strings.TrimSpace(token) != tag.Canonical:
			action = models.Lint
		}

		// Claimed even by removed tags.
		seen[key] = true

		if action == models.Remove && onRemove != nil {
			onRemove(tag)
		}
		results = append(results, models.ClassifiedTag{Tag: tag, Action: action})
	}

	return results
}

// Fix joins the canonical form of every kept tag into a cleaned prompt.
func Fix(results []models.ClassifiedTag) string {
	kept := make([]string, 0, len(results))
	for _, r := range results {
		if r.Action.Kept() {
			kept = append(kept, r.Tag.Canonical)
		}
	}
	return strings.Join(kept, ", ")
}

// Summary counts classified tags by action.
type Summary struct {
	Total  int `json:"total" yaml:"total"`
	Noop   int `json:"noop" yaml:"noop"`
	Lint   int `json:"lint" yaml:"lint"`
	Remove int `json:"remove" yaml:"remove"`
}

// Clean reports whether every tag was already canonical.
func (s Summary) Clean() bool {
	return s.Lint == 0 && s.Remove == 0
}

func Summarize(results []models.ClassifiedTag) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch r.Action {
		case models.Noop:
			s.Noop++
		case models.Lint:
			s.Lint++
		case models.Remove:
			s.Remove++
		}
	}
	return s
}
