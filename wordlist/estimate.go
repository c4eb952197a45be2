package wordlist

import (
	"fmt"
	"math/bits"
)

// Estimate returns how many base candidates a multi-category run would enumerate,
// before length filtering and decoration. The count depends on the working order
// only for the Prefix strategy with a randomized order; pass a Seed to pin it.
func Estimate(cfg Config) (uint64, error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	words, err := normalizeAll(cfg)
	if err != nil {
		return 0, err
	}
	rnd, _ := NewRand(cfg.Seed)
	planner := NewPlanner(rnd)
	order, err := planner.Order(cfg.Start, cfg.Order, cfg.Randomize)
	if err != nil {
		return 0, err
	}

	var total uint64
	for _, tuple := range planner.Plan(order, cfg.Depth, cfg.Strategy) {
		count := uint64(1)
		for _, c := range tuple {
			if count, err = mul(count, uint64(len(words[c]))); err != nil {
				return 0, err
			}
		}
		if total, err = add(total, count); err != nil {
			return 0, err
		}
	}
	return total, nil
}

// EstimatePermute returns how many word permutations a single-category run would
// enumerate, including the ones later skipped for repeating a word in another case.
func EstimatePermute(cfg PermuteConfig) (uint64, error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	ws, err := Normalize(cfg.Words, cfg.CaseMutation)
	if err != nil {
		return 0, err
	}
	n := uint64(len(ws))

	var total uint64
	perms := uint64(1)
	for l := uint64(1); l <= min(uint64(cfg.Depth), n); l++ {
		// P(n, l) = P(n, l-1) * (n-l+1)
		if perms, err = mul(perms, n-l+1); err != nil {
			return 0, err
		}
		if total, err = add(total, perms); err != nil {
			return 0, err
		}
	}
	return total, nil
}

func mul(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, fmt.Errorf("%w: estimate overflow", ErrInvalidRange)
	}
	return lo, nil
}

func add(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, fmt.Errorf("%w: estimate overflow", ErrInvalidRange)
	}
	return sum, nil
}
