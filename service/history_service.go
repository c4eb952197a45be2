package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/kodekulture/wordlister/repository"
)

// history gives access to archived runs. A nil history reports ErrNoArchive.
type history struct {
	archive repository.Archive
}

func newHistory(archive repository.Archive) *history {
	return &history{archive: archive}
}

// Runs returns the ids of every archived run
func (h *history) Runs(ctx context.Context) ([]uuid.UUID, error) {
	if h == nil {
		return nil, ErrNoArchive
	}
	return h.archive.List(ctx)
}

// Lines returns the lines of an archived run
func (h *history) Lines(ctx context.Context, id uuid.UUID) ([]string, error) {
	if h == nil {
		return nil, ErrNoArchive
	}
	return h.archive.Load(ctx, id)
}

// Clear deletes every archived run
func (h *history) Clear(ctx context.Context) error {
	if h == nil {
		return ErrNoArchive
	}
	return h.archive.Drop(ctx)
}
