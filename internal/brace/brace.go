// ABOUTME: Bracket pair table used to recognise and balance tag wrapping.
// ABOUTME: Answers opener/closer membership and maps a bracket to its partner.

package brace

import "sort"

// Table maps opening brackets to closing brackets and back.
type Table struct {
	closers map[rune]rune
	openers map[rune]rune
}

// Default holds the bracket pairs understood by prompt tags.
var Default = NewTable(map[rune]rune{
	'(': ')',
	'[': ']',
	'{': '}',
	'<': '>',
})

// NewTable builds a table from opener -> closer pairs.
func NewTable(pairs map[rune]rune) *Table {
	t := &Table{
		closers: make(map[rune]rune, len(pairs)),
		openers: make(map[rune]rune, len(pairs)),
	}
	for o, c := range pairs {
		t.closers[o] = c
		t.openers[c] = o
	}
	return t
}

func (t *Table) IsOpener(r rune) bool {
	_, ok := t.closers[r]
	return ok
}

func (t *Table) IsCloser(r rune) bool {
	_, ok := t.openers[r]
	return ok
}

// Match returns the partner of r: the closer for an opener, the opener for a
// closer. ok is false when r is not a bracket.
func (t *Table) Match(r rune) (rune, bool) {
	if c, ok := t.closers[r]; ok {
		return c, true
	}
	if o, ok := t.openers[r]; ok {
		return o, true
	}
	return 0, false
}

// Mirror returns the closing run for a run of openers, innermost first, so
// "[(" becomes ")]". Runes without a partner are skipped.
func (t *Table) Mirror(run []rune) []rune {
	out := make([]rune, 0, len(run))
	for i := len(run) - 1; i >= 0; i-- {
		if m, ok := t.Match(run[i]); ok {
			out = append(out, m)
		}
	}
	return out
}

// Pairs lists every opener/closer pair as a two-rune string, sorted.
func (t *Table) Pairs() []string {
	pairs := make([]string, 0, len(t.closers))
	for o, c := range t.closers {
		pairs = append(pairs, string([]rune{o, c}))
	}
	sort.Strings(pairs)
	return pairs
}
