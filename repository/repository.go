// Package repository is responsible for persisting generated word lists
package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/lordvidex/errs"
)

var (
	// ErrRunNotFound is returned when an archived run does not exist
	ErrRunNotFound = errs.B().Code(errs.NotFound).Msg("run not found").Err()
)

// Sink persists a finished word list as plain text, one line per candidate
type Sink interface {
	// Write stores lines at target. Lines are already newline terminated.
	// Nothing is left at target when Write fails.
	Write(ctx context.Context, target string, lines []string) error
}

// Archive keeps the word lists of previous runs
type Archive interface {
	// Dump stores the lines of a finished run under id
	Dump(ctx context.Context, id uuid.UUID, lines []string) error

	// Load returns the lines stored for id
	Load(ctx context.Context, id uuid.UUID) ([]string, error)

	// List returns the ids of every stored run
	List(ctx context.Context) ([]uuid.UUID, error)

	// Drop deletes every stored run
	Drop(ctx context.Context) error
}
