package words

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexicology-backend/internal/domain"
)

// Create saves a new word. Source defaults to domain.UserWordSource.
func (s *Service) Create(ctx context.Context, input CreateWordInput) (*domain.WordRecord, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	source := domain.UserWordSource
	if input.Source != nil {
		source = *input.Source
	}

	now := time.Now().UTC()
	w, err := s.words.Create(ctx, &domain.WordRecord{
		ID:              uuid.New(),
		Headword:        input.Headword,
		Meaning:         input.Meaning,
		ExampleSentence: input.Sentence,
		Source:          &source,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		return nil, fmt.Errorf("create word: %w", err)
	}

	if s.metrics != nil {
		s.metrics.WordCreated()
	}

	s.log.InfoContext(ctx, "word created",
		slog.String("word_id", w.ID.String()),
		slog.String("headword", w.Headword),
	)

	return w, nil
}

// Update replaces the content of a saved word. An omitted source keeps the
// stored one.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateWordInput) (*domain.WordRecord, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.words.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get word: %w", err)
	}

	existing.Headword = input.Headword
	existing.Meaning = input.Meaning
	existing.ExampleSentence = input.Sentence
	if input.Source != nil {
		existing.Source = input.Source
	}
	existing.UpdatedAt = time.Now().UTC()

	w, err := s.words.Update(ctx, existing)
	if err != nil {
		return nil, fmt.Errorf("update word: %w", err)
	}

	s.log.InfoContext(ctx, "word updated", slog.String("word_id", w.ID.String()))
	return w, nil
}

// Delete removes a saved word.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	if err := s.words.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete word: %w", err)
	}

	s.log.InfoContext(ctx, "word deleted", slog.String("word_id", id.String()))
	return nil
}

// Get returns a saved word by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.WordRecord, error) {
	w, err := s.words.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get word: %w", err)
	}
	return w, nil
}

// List returns the user's saved words, newest first.
func (s *Service) List(ctx context.Context) ([]domain.WordRecord, error) {
	words, err := s.words.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	return words, nil
}
