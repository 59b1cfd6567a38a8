package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/lexicology-backend/internal/service/wordofday"
)

type wordOfDayService interface {
	Today(ctx context.Context, date time.Time) (*wordofday.Result, error)
	Location() *time.Location
}

// WordOfDayHandler serves the daily word.
type WordOfDayHandler struct {
	svc wordOfDayService
	now func() time.Time
	log *slog.Logger
}

// NewWordOfDayHandler creates a WordOfDayHandler.
func NewWordOfDayHandler(svc wordOfDayService, logger *slog.Logger) *WordOfDayHandler {
	return &WordOfDayHandler{svc: svc, now: time.Now, log: logger.With("handler", "wordofday")}
}

type wordOfDayResponse struct {
	Date         string       `json:"date"`
	NextChangeAt time.Time    `json:"nextChangeAt"`
	Placeholder  bool         `json:"placeholder"`
	Word         wordResponse `json:"word"`
}

// Today handles GET /api/v1/word-of-the-day[?date=YYYY-MM-DD]. The date is
// read in the configured rotation time zone.
func (h *WordOfDayHandler) Today(w http.ResponseWriter, r *http.Request) {
	date := h.now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.ParseInLocation(time.DateOnly, raw, h.svc.Location())
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Error:  "validation error",
				Fields: []fieldError{{Field: "date", Message: "must be YYYY-MM-DD"}},
			})
			return
		}
		date = parsed
	}

	res, err := h.svc.Today(r.Context(), date)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, wordOfDayResponse{
		Date:         res.Date.In(h.svc.Location()).Format(time.DateOnly),
		NextChangeAt: res.NextChangeAt,
		Placeholder:  res.Placeholder,
		Word:         toWordResponse(res.Word),
	})
}
