// Package seeder imports a word list into the saved-word store.
package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/lexicology-backend/internal/domain"
)

// WordRepo is the subset of the word repository the pipeline writes through.
type WordRepo interface {
	ExistingKeys(ctx context.Context, headwords []string) (map[string]struct{}, error)
	Create(ctx context.Context, w *domain.WordRecord) (*domain.WordRecord, error)
}

// Result summarizes one pipeline run.
type Result struct {
	Read       int
	Duplicates int
	Existing   int
	Inserted   int
	Errors     int
	Duration   time.Duration
}

// Pipeline deduplicates a word list and inserts the words the store lacks.
type Pipeline struct {
	log    *slog.Logger
	repo   WordRepo
	dryRun bool
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, repo WordRepo, dryRun bool) *Pipeline {
	return &Pipeline{
		log:    log.With("component", "seeder"),
		repo:   repo,
		dryRun: dryRun,
	}
}

// Run imports records. Duplicates inside records collapse to their first
// occurrence; words already stored (compared case-insensitively) are skipped.
// Imported words start unlearned. A failed insert is logged and counted, and
// the run continues.
func (p *Pipeline) Run(ctx context.Context, records []domain.WordRecord) (Result, error) {
	start := time.Now()
	res := Result{Read: len(records)}

	unique := domain.DedupeWords(records)
	res.Duplicates = len(records) - len(unique)

	headwords := make([]string, len(unique))
	for i, w := range unique {
		headwords[i] = w.Headword
	}

	existing, err := p.repo.ExistingKeys(ctx, headwords)
	if err != nil {
		return res, fmt.Errorf("existing keys: %w", err)
	}

	for i := range unique {
		w := unique[i]
		if _, ok := existing[domain.DedupKey(w.Headword)]; ok {
			res.Existing++
			continue
		}

		if p.dryRun {
			p.log.Debug("would insert", slog.String("headword", w.Headword))
			res.Inserted++
			continue
		}

		w.IsLearned = false
		if _, err := p.repo.Create(ctx, &w); err != nil {
			if ctx.Err() != nil {
				return res, ctx.Err()
			}
			if errors.Is(err, domain.ErrAlreadyExists) {
				res.Existing++
				continue
			}
			p.log.Error("insert word",
				slog.String("headword", w.Headword),
				slog.String("error", err.Error()),
			)
			res.Errors++
			continue
		}
		res.Inserted++
	}

	res.Duration = time.Since(start)
	p.log.Info("seeding finished",
		slog.Int("read", res.Read),
		slog.Int("duplicates", res.Duplicates),
		slog.Int("existing", res.Existing),
		slog.Int("inserted", res.Inserted),
		slog.Int("errors", res.Errors),
		slog.Bool("dry_run", p.dryRun),
		slog.Duration("duration", res.Duration),
	)
	return res, nil
}
