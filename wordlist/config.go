// Package wordlist generates candidate word lists by combining categorized words
// through permutation, case mutation, leet substitution and affix decoration.
package wordlist

import (
	"fmt"
	"strings"
)

// Strategy decides which category orderings are explored for each combination length
type Strategy int

const (
	// Exhaustive explores every ordered selection of L distinct categories
	Exhaustive Strategy = iota
	// Prefix explores only the working order truncated to L categories
	Prefix
)

func (s Strategy) String() string {
	switch s {
	case Prefix:
		return "prefix"
	default:
		return "exhaustive"
	}
}

// ParseStrategy parses "exhaustive" or "prefix"
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "exhaustive":
		return Exhaustive, nil
	case "prefix":
		return Prefix, nil
	}
	return Exhaustive, fmt.Errorf("%w: unknown strategy %q", ErrInvalidRange, s)
}

// Options are the settings shared by both generation variants
type Options struct {
	CaseMutation
	Leet      bool
	Append    string
	Prepend   string
	MinLength int
	MaxLength int
	// Depth is the maximum number of categories (or words) concatenated into one candidate
	Depth int
	// Sort orders the output by ascending length
	Sort bool
	// Output identifies where the finished list is written
	Output string
}

// DefaultOptions mirror the defaults of the original wordlister form
func DefaultOptions() Options {
	return Options{
		MinLength: 1,
		MaxLength: 10,
		Depth:     1,
		Output:    "wordlist.txt",
	}
}

// Validate checks the length window and combination depth
func (o Options) Validate() error {
	if o.MinLength < 1 {
		return fmt.Errorf("%w: minimum length must be a positive integer, got %d", ErrInvalidRange, o.MinLength)
	}
	if o.MaxLength < o.MinLength {
		return fmt.Errorf("%w: maximum length %d is less than minimum length %d", ErrInvalidRange, o.MaxLength, o.MinLength)
	}
	if o.Depth < 1 {
		return fmt.Errorf("%w: combination depth must be a positive integer, got %d", ErrInvalidRange, o.Depth)
	}
	return nil
}

func (o Options) mutator() Mutator {
	return Mutator{
		Append:  o.Append,
		Prepend: o.Prepend,
		Leet:    o.Leet,
		Min:     o.MinLength,
		Max:     o.MaxLength,
	}
}

// Config is the input of one multi-category run
type Config struct {
	Options
	// Input holds the raw, newline separated words of every category
	Input map[Category]string
	// Start is pinned to the first position of the working order
	Start Category
	// Order lists the categories for positions 2..N. Ignored when Randomize is set;
	// when empty the remaining categories keep their canonical order.
	Order     []Category
	Randomize bool
	Strategy  Strategy
	// Seed makes the randomized order reproducible; nil picks a random seed
	Seed *int64
}

// DefaultConfig returns a Config with the defaults of the original wordlister form
func DefaultConfig() Config {
	return Config{
		Options:   DefaultOptions(),
		Input:     make(map[Category]string),
		Start:     Name,
		Order:     []Category{Initials, Years, Tags},
		Randomize: true,
	}
}

// PermuteConfig is the input of one single-category run
type PermuteConfig struct {
	Options
	// Words holds the raw, newline separated words
	Words string
}
