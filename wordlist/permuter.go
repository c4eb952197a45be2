package wordlist

import (
	"context"
	"strings"
)

// Permute runs the single-category engine: candidates are permutations of 1 to cfg.Depth
// distinct words. A permutation is skipped when two of its words are equal ignoring case.
func Permute(ctx context.Context, cfg PermuteConfig) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	ws, err := Normalize(cfg.Words, cfg.CaseMutation)
	if err != nil {
		return Result{}, err
	}
	words := ws.Slice()

	m := cfg.mutator()
	set := NewResultSet()
	depth := min(cfg.Depth, len(words))
	parts := make([]string, 0, depth)
	for l := 1; l <= depth; l++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		for idx := range Permutations(len(words), l) {
			parts = parts[:0]
			for _, j := range idx {
				parts = append(parts, words[j])
			}
			if repeats(parts) {
				continue
			}
			m.Apply(set, parts)
		}
	}
	return Result{Set: set}, nil
}

// repeats reports whether two of parts are equal ignoring case
func repeats(parts []string) bool {
	for i := range parts {
		for j := i + 1; j < len(parts); j++ {
			if strings.EqualFold(parts[i], parts[j]) {
				return true
			}
		}
	}
	return false
}
