// ABOUTME: LIFO of expected closing brackets for interior balancing.
// ABOUTME: Push on opener, pop on matching closer, drain to close leftovers.

package brace

// Stack holds the closers still owed by openers seen so far.
type Stack struct {
	items []rune
}

func (s *Stack) Push(r rune) {
	s.items = append(s.items, r)
}

// Peek returns the top closer without removing it.
func (s *Stack) Peek() (rune, bool) {
	if len(s.items) == 0 {
		return 0, false
	}
	return s.items[len(s.items)-1], true
}

func (s *Stack) Pop() (rune, bool) {
	r, ok := s.Peek()
	if ok {
		s.items = s.items[:len(s.items)-1]
	}
	return r, ok
}

func (s *Stack) Len() int {
	return len(s.items)
}

// Drain empties the stack and returns its closers in the order they would
// close, most recent first.
func (s *Stack) Drain() string {
	out := make([]rune, 0, len(s.items))
	for i := len(s.items) - 1; i >= 0; i-- {
		out = append(out, s.items[i])
	}
	s.items = s.items[:0]
	return string(out)
}
