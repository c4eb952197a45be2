package wordlist

import (
	"slices"
	"unicode/utf8"
)

// ResultSet accumulates newline-terminated candidate lines without duplicates.
// Iteration order is unspecified; callers that need an order must ask Lines for it.
type ResultSet struct {
	seen  map[string]struct{}
	lines []string
}

func NewResultSet() *ResultSet {
	return &ResultSet{seen: make(map[string]struct{})}
}

// Add inserts line if it is not already present and reports whether it was new
func (s *ResultSet) Add(line string) bool {
	if _, ok := s.seen[line]; ok {
		return false
	}
	s.seen[line] = struct{}{}
	s.lines = append(s.lines, line)
	return true
}

// Contains reports whether line is in the set
func (s *ResultSet) Contains(line string) bool {
	_, ok := s.seen[line]
	return ok
}

// Len returns the number of distinct lines
func (s *ResultSet) Len() int {
	return len(s.lines)
}

// Lines returns the members of the set. When sortByLength is true the lines are
// ordered by ascending length, ties kept in encounter order.
func (s *ResultSet) Lines(sortByLength bool) []string {
	out := slices.Clone(s.lines)
	if sortByLength {
		slices.SortStableFunc(out, func(a, b string) int {
			return utf8.RuneCountInString(a) - utf8.RuneCountInString(b)
		})
	}
	return out
}
