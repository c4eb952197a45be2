package wordlist

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Result is the outcome of one generation run
type Result struct {
	Set *ResultSet
	// Order is the working category order the run used (multi-category runs only)
	Order []Category
	// Seed is the seed of the planner's random source (multi-category runs only)
	Seed int64
}

// Lines finalizes the run, optionally sorting the lines by length
func (r Result) Lines(sortByLength bool) []string {
	return r.Set.Lines(sortByLength)
}

// Combine runs the multi-category engine: every category is normalized, the planner
// picks the category tuples for each length up to cfg.Depth and every word tuple of
// their cartesian product is filtered and decorated into the result set.
func Combine(ctx context.Context, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	words, err := normalizeAll(cfg)
	if err != nil {
		return Result{}, err
	}

	rnd, seed := NewRand(cfg.Seed)
	planner := NewPlanner(rnd)
	order, err := planner.Order(cfg.Start, cfg.Order, cfg.Randomize)
	if err != nil {
		return Result{}, err
	}
	if cfg.Depth > len(order) {
		log.Debug().Int("depth", cfg.Depth).Int("categories", len(order)).Msg("combination depth capped to category count")
	}

	m := cfg.mutator()
	set := NewResultSet()
	for _, tuple := range planner.Plan(order, cfg.Depth, cfg.Strategy) {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		sets := make([][]string, len(tuple))
		for i, c := range tuple {
			sets[i] = words[c]
		}
		for parts := range Product(sets...) {
			m.Apply(set, parts)
		}
	}
	return Result{Set: set, Order: order, Seed: seed}, nil
}

func normalizeAll(cfg Config) (map[Category][]string, error) {
	words := make(map[Category][]string, len(Categories))
	for _, c := range Categories {
		ws, err := Normalize(cfg.Input[c], cfg.CaseMutation)
		if err != nil {
			return nil, fmt.Errorf("%w for %s", err, c)
		}
		words[c] = ws.Slice()
	}
	return words, nil
}
