package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/lexicology-backend/internal/provider"
	"github.com/heartmarshall/lexicology-backend/internal/service/lookup"
	"github.com/heartmarshall/lexicology-backend/pkg/ctxutil"
)

type lookupService interface {
	Search(ctx context.Context, sessionID, term string) (provider.LookupOutcome, error)
}

// LookupHandler serves dictionary lookups.
type LookupHandler struct {
	svc lookupService
	log *slog.Logger
}

// NewLookupHandler creates a LookupHandler.
func NewLookupHandler(svc lookupService, logger *slog.Logger) *LookupHandler {
	return &LookupHandler{svc: svc, log: logger.With("handler", "lookup")}
}

type lookupResponse struct {
	Term        string          `json:"term"`
	Status      string          `json:"status"`
	Entries     []entryResponse `json:"entries"`
	Suggestions []string        `json:"suggestions"`
}

type entryResponse struct {
	ID            string               `json:"id"`
	Headword      string               `json:"headword"`
	PartOfSpeech  string               `json:"partOfSpeech,omitempty"`
	Pronunciation string               `json:"pronunciation,omitempty"`
	Preview       string               `json:"preview,omitempty"`
	Definitions   []definitionResponse `json:"definitions"`
	Etymology     string               `json:"etymology,omitempty"`
	RelatedTerms  []string             `json:"relatedTerms"`
}

type definitionResponse struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Lookup handles GET /api/v1/lookup/{term}. The optional X-Search-Session
// header groups type-ahead searches so older in-flight ones are dropped.
func (h *LookupHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	term := chi.URLParam(r, "term")
	session, _ := ctxutil.SearchSessionFromCtx(r.Context())

	outcome, err := h.svc.Search(r.Context(), session, term)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toLookupResponse(term, outcome))
}

func toLookupResponse(term string, outcome provider.LookupOutcome) lookupResponse {
	resp := lookupResponse{
		Term:        term,
		Status:      outcome.Kind.String(),
		Entries:     make([]entryResponse, 0, len(outcome.Entries)),
		Suggestions: make([]string, 0, len(outcome.Suggestions)),
	}
	resp.Suggestions = append(resp.Suggestions, outcome.Suggestions...)

	for _, view := range lookup.Details(outcome.Entries) {
		entry := entryResponse{
			ID:            view.ID,
			Headword:      view.Headword,
			PartOfSpeech:  view.PartOfSpeech,
			Pronunciation: view.Pronunciation,
			Preview:       view.Preview,
			Definitions:   make([]definitionResponse, 0, len(view.Definitions)),
			Etymology:     view.Etymology,
			RelatedTerms:  view.RelatedTerms,
		}
		if entry.RelatedTerms == nil {
			entry.RelatedTerms = []string{}
		}
		for _, d := range view.Definitions {
			entry.Definitions = append(entry.Definitions, definitionResponse{Label: d.Label, Text: d.Text})
		}
		resp.Entries = append(resp.Entries, entry)
	}
	return resp
}
