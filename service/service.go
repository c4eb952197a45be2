package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lordvidex/errs"
	"github.com/rs/zerolog/log"

	"github.com/kodekulture/wordlister/repository"
	"github.com/kodekulture/wordlister/wordlist"
)

var (
	ErrNoArchive = errs.B().Code(errs.InvalidArgument).Msg("run archive is not configured").Err()
)

// Run describes a finished generation run
type Run struct {
	ID    uuid.UUID
	Lines int
	// Order and Seed are only set for multi-category runs
	Order []wordlist.Category
	Seed  int64
	// Archived is true when the run was stored in the archive
	Archived bool
	Took     time.Duration
}

type Service struct {
	*history
	sink repository.Sink
}

// Generate runs the multi-category engine and writes the list to cfg.Output
func (s *Service) Generate(ctx context.Context, cfg wordlist.Config) (Run, error) {
	start := time.Now()
	res, err := wordlist.Combine(ctx, cfg)
	if err != nil {
		return Run{}, err
	}
	run, err := s.finish(ctx, res, cfg.Options, start)
	if err != nil {
		return Run{}, err
	}
	run.Order = res.Order
	run.Seed = res.Seed
	log.Info().
		Str("run", run.ID.String()).
		Stringer("start", cfg.Start).
		Str("order", fmt.Sprint(run.Order)).
		Int64("seed", run.Seed).
		Int("lines", run.Lines).
		Dur("took", run.Took).
		Msg("wordlist generated")
	return run, nil
}

// Permute runs the single-category engine and writes the list to cfg.Output
func (s *Service) Permute(ctx context.Context, cfg wordlist.PermuteConfig) (Run, error) {
	start := time.Now()
	res, err := wordlist.Permute(ctx, cfg)
	if err != nil {
		return Run{}, err
	}
	run, err := s.finish(ctx, res, cfg.Options, start)
	if err != nil {
		return Run{}, err
	}
	log.Info().
		Str("run", run.ID.String()).
		Int("lines", run.Lines).
		Dur("took", run.Took).
		Msg("permutations generated")
	return run, nil
}

// finish hands the finalized lines to the sink and archives them when an archive is configured
func (s *Service) finish(ctx context.Context, res wordlist.Result, opts wordlist.Options, start time.Time) (Run, error) {
	lines := res.Lines(opts.Sort)
	if err := s.sink.Write(ctx, opts.Output, lines); err != nil {
		return Run{}, fmt.Errorf("write wordlist to %s: %w", opts.Output, err)
	}
	run := Run{ID: uuid.New(), Lines: len(lines)}
	if s.history != nil {
		if err := s.archive.Dump(ctx, run.ID, lines); err != nil {
			log.Err(err).Caller().Str("run", run.ID.String()).Msg("failed to archive run")
			return Run{}, fmt.Errorf("archive run %s: %w", run.ID, err)
		}
		run.Archived = true
	}
	run.Took = time.Since(start)
	return run, nil
}

// Estimate returns the number of base candidates a multi-category run would enumerate
func (s *Service) Estimate(cfg wordlist.Config) (uint64, error) {
	return wordlist.Estimate(cfg)
}

// EstimatePermute returns the number of permutations a single-category run would enumerate
func (s *Service) EstimatePermute(cfg wordlist.PermuteConfig) (uint64, error) {
	return wordlist.EstimatePermute(cfg)
}

// New returns a Service writing lists to sink. archive may be nil, in which case runs are not archived.
func New(sink repository.Sink, archive repository.Archive) *Service {
	s := &Service{sink: sink}
	if archive != nil {
		s.history = newHistory(archive)
	}
	return s
}
