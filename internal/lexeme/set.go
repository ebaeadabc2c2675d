package lexeme

import "sort"

// Set keeps lexemes ordered by Compare. Two lexemes with the same begin
// and length occupy one slot.
type Set struct {
	items []*Lexeme
}

func NewSet() *Set {
	return &Set{items: make([]*Lexeme, 0, 16)}
}

// Add inserts l in order. When the slot is taken, the more specific type
// wins; the return value reports whether l is now in the set.
func (s *Set) Add(l *Lexeme) bool {
	// fast path, recognizers mostly emit in order
	n := len(s.items)
	if n == 0 || s.items[n-1].Compare(l) < 0 {
		s.items = append(s.items, l)
		return true
	}
	idx := sort.Search(n, func(i int) bool {
		return s.items[i].Compare(l) >= 0
	})
	if idx < n && s.items[idx].Compare(l) == 0 {
		if l.Type.rank() > s.items[idx].Type.rank() {
			s.items[idx] = l
			return true
		}
		return false
	}
	s.items = append(s.items, nil)
	copy(s.items[idx+1:], s.items[idx:])
	s.items[idx] = l
	return true
}

func (s *Set) Len() int {
	return len(s.items)
}

func (s *Set) IsEmpty() bool {
	return len(s.items) == 0
}

func (s *Set) First() *Lexeme {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[0]
}

func (s *Set) Last() *Lexeme {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

func (s *Set) PollFirst() *Lexeme {
	if len(s.items) == 0 {
		return nil
	}
	l := s.items[0]
	s.items[0] = nil
	s.items = s.items[1:]
	return l
}

func (s *Set) PollLast() *Lexeme {
	n := len(s.items)
	if n == 0 {
		return nil
	}
	l := s.items[n-1]
	s.items[n-1] = nil
	s.items = s.items[:n-1]
	return l
}

// Items returns the backing slice; callers must not modify it.
func (s *Set) Items() []*Lexeme {
	return s.items
}

func (s *Set) Clear() {
	for i := range s.items {
		s.items[i] = nil
	}
	s.items = s.items[:0]
}
