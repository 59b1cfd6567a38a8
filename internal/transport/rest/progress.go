package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/lexicology-backend/internal/domain"
)

type progressService interface {
	Get(ctx context.Context, now time.Time) (*domain.LearningProgress, error)
	MarkLearned(ctx context.Context, wordID uuid.UUID, now time.Time) (*domain.LearningProgress, error)
}

// ProgressHandler serves learning progress.
type ProgressHandler struct {
	svc progressService
	now func() time.Time
	log *slog.Logger
}

// NewProgressHandler creates a ProgressHandler.
func NewProgressHandler(svc progressService, logger *slog.Logger) *ProgressHandler {
	return &ProgressHandler{svc: svc, now: time.Now, log: logger.With("handler", "progress")}
}

type progressResponse struct {
	WordsLearned    int        `json:"wordsLearned"`
	CurrentStreak   int        `json:"currentStreak"`
	LastStreakCheck *time.Time `json:"lastStreakCheck"`
}

// Get handles GET /api/v1/progress.
func (h *ProgressHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Get(r.Context(), h.now())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProgressResponse(p))
}

// MarkLearned handles POST /api/v1/words/{id}/learned.
func (h *ProgressHandler) MarkLearned(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	p, err := h.svc.MarkLearned(r.Context(), id, h.now())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProgressResponse(p))
}

func toProgressResponse(p *domain.LearningProgress) progressResponse {
	return progressResponse{
		WordsLearned:    p.WordsLearned,
		CurrentStreak:   p.CurrentStreak,
		LastStreakCheck: p.LastStreakCheck,
	}
}
