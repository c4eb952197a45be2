// Package temp keeps archived runs in memory for the lifetime of the process
package temp

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/kodekulture/wordlister/repository"
)

var _ repository.Archive = new(RunRepo)

type RunRepo struct {
	mu   sync.RWMutex
	runs map[uuid.UUID][]string
}

// Dump implements repository.Archive.
func (r *RunRepo) Dump(_ context.Context, id uuid.UUID, lines []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs[id] = slices.Clone(lines)
	return nil
}

// Load implements repository.Archive.
func (r *RunRepo) Load(_ context.Context, id uuid.UUID) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	lines, ok := r.runs[id]
	if !ok {
		return nil, repository.ErrRunNotFound
	}
	return slices.Clone(lines), nil
}

// List implements repository.Archive.
func (r *RunRepo) List(_ context.Context) ([]uuid.UUID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]uuid.UUID, 0, len(r.runs))
	for id := range r.runs {
		ids = append(ids, id)
	}
	return ids, nil
}

// Drop implements repository.Archive.
func (r *RunRepo) Drop(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.runs)
	return nil
}

func New() *RunRepo {
	return &RunRepo{runs: make(map[uuid.UUID][]string)}
}
