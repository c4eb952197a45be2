// Package badgr is an adapter for the badgerDB
package badgr

import (
	"context"
	"errors"
	"strings"

	"github.com/dgraph-io/badger"
	"github.com/google/uuid"

	"github.com/kodekulture/wordlister/repository"
)

var _ repository.Archive = new(RunRepo)

// RunRepo stores the plain text of every archived run keyed by its run id
type RunRepo struct {
	db *badger.DB
}

// Dump implements repository.Archive.
func (r *RunRepo) Dump(_ context.Context, id uuid.UUID, lines []string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry([]byte(id.String()), []byte(strings.Join(lines, "")))
		return txn.SetEntry(e)
	})
}

// Load implements repository.Archive.
func (r *RunRepo) Load(_ context.Context, id uuid.UUID) ([]string, error) {
	var lines []string
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(id.String()))
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			lines = splitLines(string(v))
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, repository.ErrRunNotFound
	}
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// List implements repository.Archive.
func (r *RunRepo) List(_ context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.View(func(txn *badger.Txn) error {
		// keys only
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			id, err := uuid.Parse(string(it.Item().Key()))
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// Drop implements repository.Archive.
func (r *RunRepo) Drop(_ context.Context) error {
	return r.db.DropAll()
}

// splitLines splits text after every newline, keeping the terminators
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func New(db *badger.DB) *RunRepo {
	return &RunRepo{db: db}
}
