package words

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexicology-backend/internal/domain"
)

type wordRepo interface {
	Create(ctx context.Context, w *domain.WordRecord) (*domain.WordRecord, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WordRecord, error)
	List(ctx context.Context) ([]domain.WordRecord, error)
	Update(ctx context.Context, w *domain.WordRecord) (*domain.WordRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type wordList interface {
	Words(ctx context.Context) ([]domain.WordRecord, error)
}

type wordMetrics interface {
	WordCreated()
}

// Service manages the user's saved words and the combined catalog.
type Service struct {
	words   wordRepo
	list    wordList
	metrics wordMetrics
	log     *slog.Logger
}

// NewService creates a new Words service. metrics may be nil.
func NewService(
	log *slog.Logger,
	words wordRepo,
	list wordList,
	metrics wordMetrics,
) *Service {
	return &Service{
		words:   words,
		list:    list,
		metrics: metrics,
		log:     log.With("service", "words"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
