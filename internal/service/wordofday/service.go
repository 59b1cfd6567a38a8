// Package wordofday serves the daily rotating word.
package wordofday

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/lexicology-backend/internal/domain"
)

type wordSource interface {
	Words(ctx context.Context) ([]domain.WordRecord, error)
}

// Result is the word of the day and when it changes.
type Result struct {
	Word         domain.WordRecord
	Date         time.Time
	NextChangeAt time.Time
	Placeholder  bool
}

// Service selects the word of the day from the active word list.
type Service struct {
	words    wordSource
	selector Selector
	log      *slog.Logger
}

// NewService creates a word-of-the-day Service.
func NewService(log *slog.Logger, words wordSource, selector Selector) *Service {
	if selector.Location == nil {
		selector.Location = time.UTC
	}
	return &Service{
		words:    words,
		selector: selector,
		log:      log.With("service", "wordofday"),
	}
}

// Today returns the word for the calendar day containing date. An empty word
// list yields the built-in placeholder instead of an error.
func (s *Service) Today(ctx context.Context, date time.Time) (*Result, error) {
	words, err := s.words.Words(ctx)
	if err != nil {
		return nil, fmt.Errorf("load word list: %w", err)
	}

	local := date.In(s.selector.Location)
	y, m, d := local.Date()
	result := &Result{
		Date:         time.Date(y, m, d, 0, 0, 0, 0, s.selector.Location),
		NextChangeAt: domain.StartOfNextDay(date, s.selector.Location),
	}

	word, err := s.selector.Select(date, words)
	if errors.Is(err, domain.ErrEmptyWordList) {
		s.log.WarnContext(ctx, "word list empty, serving placeholder")
		result.Word = domain.PlaceholderWord()
		result.Placeholder = true
		return result, nil
	}
	if err != nil {
		return nil, err
	}

	result.Word = word
	return result, nil
}

// Location returns the time zone days are counted in.
func (s *Service) Location() *time.Location {
	return s.selector.Location
}
