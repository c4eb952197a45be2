package wordlist

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

// NewRand returns a PCG backed source seeded with seed, or with a random seed when seed is nil.
// The seed actually used is returned so randomized runs can be reproduced.
func NewRand(seed *int64) (*rand.Rand, int64) {
	var s int64
	if seed != nil {
		s = *seed
	} else {
		s = rand.Int64()
	}
	return rand.New(rand.NewPCG(uint64(s), uint64(s)>>1|1)), s
}

// Planner decides the category orderings explored by a multi-category run
type Planner struct {
	rnd *rand.Rand
}

func NewPlanner(rnd *rand.Rand) *Planner {
	return &Planner{rnd: rnd}
}

// Order returns the working order of all categories: start first, followed either by
// a single random shuffle of the remaining categories or by the explicit order.
func (p *Planner) Order(start Category, explicit []Category, randomize bool) ([]Category, error) {
	if !slices.Contains(Categories, start) {
		return nil, fmt.Errorf("%w: unknown start category %q", ErrOrderConflict, start)
	}
	remaining := make([]Category, 0, len(Categories)-1)
	for _, c := range Categories {
		if c != start {
			remaining = append(remaining, c)
		}
	}

	switch {
	case randomize:
		p.rnd.Shuffle(len(remaining), func(i, j int) {
			remaining[i], remaining[j] = remaining[j], remaining[i]
		})
	case len(explicit) > 0:
		if err := checkOrder(start, explicit); err != nil {
			return nil, err
		}
		remaining = slices.Clone(explicit)
	}
	return append([]Category{start}, remaining...), nil
}

func checkOrder(start Category, explicit []Category) error {
	if len(explicit) != len(Categories)-1 {
		return fmt.Errorf("%w: expected %d categories after %s, got %d", ErrOrderConflict, len(Categories)-1, start, len(explicit))
	}
	seen := map[Category]bool{start: true}
	for _, c := range explicit {
		if !slices.Contains(Categories, c) {
			return fmt.Errorf("%w: unknown category %q", ErrOrderConflict, c)
		}
		if seen[c] {
			return fmt.Errorf("%w: %s is used more than once", ErrOrderConflict, c)
		}
		seen[c] = true
	}
	return nil
}

// Plan returns the category tuples to expand for every length from 1 to depth.
// depth is capped to len(order).
func (p *Planner) Plan(order []Category, depth int, strategy Strategy) [][]Category {
	depth = min(depth, len(order))
	var plan [][]Category
	for l := 1; l <= depth; l++ {
		if strategy == Prefix {
			plan = append(plan, slices.Clone(order[:l]))
			continue
		}
		for idx := range Permutations(len(order), l) {
			tuple := make([]Category, l)
			for i, j := range idx {
				tuple[i] = order[j]
			}
			plan = append(plan, tuple)
		}
	}
	return plan
}
