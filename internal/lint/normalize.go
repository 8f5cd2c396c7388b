// ABOUTME: Per-tag normalizer: brace balancing, weight extraction, name cleanup.
// ABOUTME: Pure function from a raw token and options to a FormattedTag.

package lint

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fiffu/sd-promptkit/internal/brace"
	"github.com/fiffu/sd-promptkit/internal/models"
)

// bareWeight catches a weight typed without a colon, e.g. "masterpiece 1.4".
// It only matches the 1.x shape; other trailing numbers are part of the name.
var bareWeight = regexp.MustCompile(`1\.\d *$`)

// floatPrefix is the longest leading decimal a weight may start with.
var floatPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

var nameNewlines = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Normalize converts one raw token into its canonical form. It never fails:
// unparseable weights become 0 and unbalanced braces are completed or dropped.
// The result is stable: normalizing a canonical form returns it unchanged.
func Normalize(raw string, opts models.Options) models.FormattedTag {
	tag := parse(raw, opts)

	// A cleaned name can regroup on re-parse: "{11.)1" cleans to "{11.1}",
	// which reads back as "1" weighted 1.1. Parse until the canonical form
	// reads back as itself; the rune count bounds the passes.
	for range utf8.RuneCountInString(tag.Canonical) + 2 {
		next := parse(tag.Canonical, opts)
		stable := next.Canonical == tag.Canonical
		tag = next
		if stable {
			break
		}
	}

	tag.Original = raw
	return tag
}

func parse(raw string, opts models.Options) models.FormattedTag {
	s := strings.TrimSpace(raw)
	if !opts.PreserveCase {
		s = strings.ToLower(s)
	}

	wrap, body := splitWrapping(brace.Default, []rune(s))
	name, weight := splitWeight(body)
	name = cleanName(brace.Default, name, opts)

	return models.FormattedTag{
		Original:  raw,
		Name:      name,
		Weight:    weight,
		Canonical: render(brace.Default, wrap, name, weight),
	}
}

// splitWrapping separates the outer bracket run from the body. Leading
// openers are searched in the first half of rs and trailing closers in the
// last half, so a short body is never swallowed whole. Brackets that pair
// with something inside the body belong to the body. The opener run decides
// the wrap depth; trailing closers beyond it are dropped.
func splitWrapping(t *brace.Table, rs []rune) ([]rune, string) {
	n := len(rs)
	half := n / 2

	opens := 0
	for opens < half && t.IsOpener(rs[opens]) {
		opens++
	}
	closes := 0
	for closes < half && t.IsCloser(rs[n-1-closes]) {
		closes++
	}

	unclosed, unopened := interiorBalance(t, rs[opens:n-closes])
	opens -= min(opens, unopened)
	closes -= min(closes, unclosed)

	return rs[:opens], string(rs[opens : n-closes])
}

// interiorBalance reports how many openers in rs are left open and how many
// closers in rs have no opener before them.
func interiorBalance(t *brace.Table, rs []rune) (unclosed, unopened int) {
	var stack brace.Stack
	for _, r := range rs {
		switch {
		case t.IsOpener(r):
			closer, _ := t.Match(r)
			stack.Push(closer)
		case t.IsCloser(r):
			top, ok := stack.Peek()
			if !ok {
				unopened++
			} else if top == r {
				stack.Pop()
			}
		}
	}
	return stack.Len(), unopened
}

func splitWeight(body string) (string, float64) {
	if i := strings.IndexByte(body, ':'); i >= 0 {
		return body[:i], parseWeight(body[i+1:])
	}
	if loc := bareWeight.FindStringIndex(body); loc != nil {
		return body[:loc[0]], parseWeight(body[loc[0]:])
	}
	return body, 0
}

// parseWeight reads the leading number of s, ignoring anything after it.
func parseWeight(s string) float64 {
	m := floatPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	w, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsInf(w, 0) || math.IsNaN(w) || w == 0 {
		return 0
	}
	return w
}

// cleanName folds underscores and newlines to spaces, then keeps interior
// brackets only when they pair up: stray closers are dropped and dangling
// openers are closed at the end.
func cleanName(t *brace.Table, name string, opts models.Options) string {
	name = nameNewlines.Replace(name)
	if !opts.PreserveUnderscore {
		name = strings.ReplaceAll(name, "_", " ")
	}
	name = strings.TrimSpace(name)

	var (
		sb    strings.Builder
		stack brace.Stack
	)
	for _, r := range name {
		switch {
		case t.IsOpener(r):
			closer, _ := t.Match(r)
			stack.Push(closer)
			sb.WriteRune(r)
		case t.IsCloser(r):
			if top, ok := stack.Peek(); ok && top == r {
				stack.Pop()
				sb.WriteRune(r)
			}
		default:
			sb.WriteRune(r)
		}
	}

	return strings.TrimSpace(sb.String()) + stack.Drain()
}

func render(t *brace.Table, wrap []rune, name string, weight float64) string {
	// A zero weight is spelled out when the name would otherwise re-parse
	// as carrying a bare weight.
	explicit := weight != 0 || bareWeight.MatchString(name)
	if weight != 0 && len(wrap) == 0 {
		wrap = []rune{'('}
	}

	var sb strings.Builder
	sb.WriteString(string(wrap))
	sb.WriteString(name)
	if explicit {
		sb.WriteString(": ")
		sb.WriteString(FormatWeight(weight))
	}
	sb.WriteString(string(t.Mirror(wrap)))
	return sb.String()
}

// FormatWeight renders a weight as the shortest decimal that round-trips.
func FormatWeight(w float64) string {
	if w == 0 {
		return "0"
	}
	return strconv.FormatFloat(w, 'f', -1, 64)
}
