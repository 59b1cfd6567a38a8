// Package progress tracks learned words and the daily learning streak.
package progress

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexicology-backend/internal/domain"
)

type progressRepo interface {
	Get(ctx context.Context) (*domain.LearningProgress, error)
	GetForUpdate(ctx context.Context) (*domain.LearningProgress, error)
	Save(ctx context.Context, p *domain.LearningProgress) error
	AddLearned(ctx context.Context, wordID uuid.UUID, at time.Time) (bool, error)
}

type wordRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WordRecord, error)
	SetLearned(ctx context.Context, id uuid.UUID, learned bool) error
}

type wordList interface {
	Words(ctx context.Context) ([]domain.WordRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type progressMetrics interface {
	WordLearned()
}

// Service records learned words and reports streaks.
type Service struct {
	tx       txManager
	progress progressRepo
	words    wordRepo
	list     wordList
	metrics  progressMetrics
	loc      *time.Location
	log      *slog.Logger
}

// NewService creates a new Progress service. Calendar days are counted in
// loc; nil means UTC. metrics may be nil.
func NewService(
	log *slog.Logger,
	tx txManager,
	progress progressRepo,
	words wordRepo,
	list wordList,
	metrics progressMetrics,
	loc *time.Location,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		tx:       tx,
		progress: progress,
		words:    words,
		list:     list,
		metrics:  metrics,
		loc:      loc,
		log:      log.With("service", "progress"),
	}
}

// Get returns the current progress as of now. A streak whose last learned
// day is neither today nor yesterday reads as zero.
func (s *Service) Get(ctx context.Context, now time.Time) (*domain.LearningProgress, error) {
	p, err := s.progress.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}
	p.ApplyMaintenance(now, s.loc)
	return p, nil
}

// MarkLearned counts wordID as learned at now. Marking the same word twice
// leaves progress unchanged. The word must be saved or on the word list.
func (s *Service) MarkLearned(ctx context.Context, wordID uuid.UUID, now time.Time) (*domain.LearningProgress, error) {
	if wordID == uuid.Nil {
		return nil, domain.NewValidationError("word_id", "required")
	}

	saved, err := s.locate(ctx, wordID)
	if err != nil {
		return nil, err
	}

	var (
		result  *domain.LearningProgress
		counted bool
	)
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		p, err := s.progress.GetForUpdate(ctx)
		if err != nil {
			return fmt.Errorf("get progress: %w", err)
		}
		result = p

		if !p.RecordLearned(wordID, now, s.loc) {
			return nil
		}

		added, err := s.progress.AddLearned(ctx, wordID, now)
		if err != nil {
			return fmt.Errorf("add learned word: %w", err)
		}
		if !added {
			// recorded concurrently; report the stored state
			result, err = s.progress.Get(ctx)
			return err
		}
		if err := s.progress.Save(ctx, p); err != nil {
			return fmt.Errorf("save progress: %w", err)
		}
		if saved {
			if err := s.words.SetLearned(ctx, wordID, true); err != nil {
				return fmt.Errorf("set word learned: %w", err)
			}
		}
		counted = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if counted {
		if s.metrics != nil {
			s.metrics.WordLearned()
		}
		s.log.InfoContext(ctx, "word learned",
			slog.String("word_id", wordID.String()),
			slog.Int("words_learned", result.WordsLearned),
			slog.Int("current_streak", result.CurrentStreak),
		)
	}

	result.ApplyMaintenance(now, s.loc)
	return result, nil
}

// locate reports whether wordID is a saved word. Words only present on the
// word list report false; unknown IDs yield domain.ErrNotFound.
func (s *Service) locate(ctx context.Context, wordID uuid.UUID) (bool, error) {
	_, err := s.words.GetByID(ctx, wordID)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return false, fmt.Errorf("get word: %w", err)
	}

	listed, err := s.list.Words(ctx)
	if err != nil {
		return false, fmt.Errorf("load word list: %w", err)
	}
	for _, w := range listed {
		if w.ID == wordID {
			return false, nil
		}
	}
	return false, fmt.Errorf("word %s: %w", wordID, domain.ErrNotFound)
}
