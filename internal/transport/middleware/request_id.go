package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexicology-backend/pkg/ctxutil"
)

const (
	// RequestIDHeader carries the request ID in both directions.
	RequestIDHeader = "X-Request-Id"
	// SearchSessionHeader names the client's search session.
	SearchSessionHeader = "X-Search-Session"

	maxHeaderIDLen = 128
)

// RequestID propagates the caller's X-Request-Id or assigns a new one, and
// stores the X-Search-Session header in the context when present. IDs longer
// than 128 bytes are ignored.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" || len(id) > maxHeaderIDLen {
			id = uuid.New().String()
		}
		ctx := ctxutil.WithRequestID(r.Context(), id)

		if session := r.Header.Get(SearchSessionHeader); len(session) <= maxHeaderIDLen {
			ctx = ctxutil.WithSearchSession(ctx, session)
		}

		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
