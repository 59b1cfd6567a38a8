package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/lexicology-backend/internal/domain"
	"github.com/heartmarshall/lexicology-backend/internal/service/words"
)

type wordsService interface {
	Create(ctx context.Context, input words.CreateWordInput) (*domain.WordRecord, error)
	Update(ctx context.Context, id uuid.UUID, input words.UpdateWordInput) (*domain.WordRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*domain.WordRecord, error)
	List(ctx context.Context) ([]domain.WordRecord, error)
	Catalog(ctx context.Context) ([]domain.WordRecord, error)
}

// WordsHandler serves the saved-word store and the catalog.
type WordsHandler struct {
	svc wordsService
	log *slog.Logger
}

// NewWordsHandler creates a WordsHandler.
func NewWordsHandler(svc wordsService, logger *slog.Logger) *WordsHandler {
	return &WordsHandler{svc: svc, log: logger.With("handler", "words")}
}

type wordRequest struct {
	Headword string  `json:"headword"`
	Meaning  string  `json:"meaning"`
	Sentence string  `json:"sentence"`
	Source   *string `json:"source,omitempty"`
}

type wordResponse struct {
	ID        string    `json:"id"`
	Headword  string    `json:"headword"`
	Meaning   string    `json:"meaning"`
	Sentence  string    `json:"sentence"`
	Source    string    `json:"source"`
	IsLearned bool      `json:"isLearned"`
	CreatedAt time.Time `json:"createdAt"`
}

type sectionResponse struct {
	Letter string         `json:"letter"`
	Words  []wordResponse `json:"words"`
}

// List handles GET /api/v1/words.
func (h *WordsHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toWordResponses(list))
}

// Create handles POST /api/v1/words.
func (h *WordsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req wordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	word, err := h.svc.Create(r.Context(), words.CreateWordInput{
		Headword: req.Headword,
		Meaning:  req.Meaning,
		Sentence: req.Sentence,
		Source:   req.Source,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	w.Header().Set("Location", "/api/v1/words/"+word.ID.String())
	writeJSON(w, http.StatusCreated, toWordResponse(*word))
}

// Get handles GET /api/v1/words/{id}.
func (h *WordsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	word, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toWordResponse(*word))
}

// Update handles PUT /api/v1/words/{id}.
func (h *WordsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var req wordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	word, err := h.svc.Update(r.Context(), id, words.UpdateWordInput{
		Headword: req.Headword,
		Meaning:  req.Meaning,
		Sentence: req.Sentence,
		Source:   req.Source,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toWordResponse(*word))
}

// Delete handles DELETE /api/v1/words/{id}.
func (h *WordsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Catalog handles GET /api/v1/catalog[?grouped=true].
func (h *WordsHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.svc.Catalog(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	if r.URL.Query().Get("grouped") != "true" {
		writeJSON(w, http.StatusOK, toWordResponses(catalog))
		return
	}

	sections := words.GroupByInitial(catalog)
	resp := make([]sectionResponse, 0, len(sections))
	for _, s := range sections {
		resp = append(resp, sectionResponse{Letter: s.Letter, Words: toWordResponses(s.Words)})
	}
	writeJSON(w, http.StatusOK, resp)
}

func toWordResponse(w domain.WordRecord) wordResponse {
	return wordResponse{
		ID:        w.ID.String(),
		Headword:  w.Headword,
		Meaning:   w.Meaning,
		Sentence:  w.ExampleSentence,
		Source:    w.SourceLabel(),
		IsLearned: w.IsLearned,
		CreatedAt: w.CreatedAt,
	}
}

func toWordResponses(list []domain.WordRecord) []wordResponse {
	out := make([]wordResponse, 0, len(list))
	for _, w := range list {
		out = append(out, toWordResponse(w))
	}
	return out
}
