//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/lexicology-backend/internal/adapter/postgres"
	progressrepo "github.com/heartmarshall/lexicology-backend/internal/adapter/postgres/progress"
	"github.com/heartmarshall/lexicology-backend/internal/adapter/postgres/testhelper"
	wordrepo "github.com/heartmarshall/lexicology-backend/internal/adapter/postgres/word"
	"github.com/heartmarshall/lexicology-backend/internal/adapter/provider/merriam"
	"github.com/heartmarshall/lexicology-backend/internal/adapter/wordlist"
	"github.com/heartmarshall/lexicology-backend/internal/config"
	"github.com/heartmarshall/lexicology-backend/internal/domain"
	"github.com/heartmarshall/lexicology-backend/internal/metrics"
	"github.com/heartmarshall/lexicology-backend/internal/service/lookup"
	progresssvc "github.com/heartmarshall/lexicology-backend/internal/service/progress"
	"github.com/heartmarshall/lexicology-backend/internal/service/wordofday"
	"github.com/heartmarshall/lexicology-backend/internal/service/words"
	"github.com/heartmarshall/lexicology-backend/internal/transport/middleware"
	"github.com/heartmarshall/lexicology-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// Fake dictionary upstream.
// ---------------------------------------------------------------------------

const serendipityBody = `[{
	"meta": {"id": "serendipity", "stems": ["serendipity", "serendipities"]},
	"hwi": {"hw": "ser*en*dip*i*ty", "prs": [{"mw": "ˌser-ən-ˈdi-pə-tē"}]},
	"fl": "noun",
	"shortdef": ["the faculty or phenomenon of finding valuable or agreeable things not sought for"],
	"et": [["text", "from its possession by the heroes of the Persian fairy tale {it}The Three Princes of Serendip{/it}"]]
}]`

// fakeDictionary serves canned Collegiate responses keyed by the last path
// segment and counts upstream calls.
type fakeDictionary struct {
	srv   *httptest.Server
	calls atomic.Int64
}

func newFakeDictionary(t *testing.T) *fakeDictionary {
	t.Helper()

	fd := &fakeDictionary{}
	fd.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fd.calls.Add(1)
		w.Header().Set("Content-Type", "application/json")

		term := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
		switch term {
		case "serendipity":
			io.WriteString(w, serendipityBody) //nolint:errcheck
		case "serendipty":
			io.WriteString(w, `["serendipity", "serendipitous"]`) //nolint:errcheck
		case "outage":
			w.WriteHeader(http.StatusServiceUnavailable)
		case "garbled":
			io.WriteString(w, `<html>not json</html>`) //nolint:errcheck
		default:
			io.WriteString(w, `[]`) //nolint:errcheck
		}
	}))
	t.Cleanup(fd.srv.Close)
	return fd
}

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL        string
	Client     *http.Client
	Pool       *pgxpool.Pool
	Dictionary *fakeDictionary
	List       []domain.WordRecord
	Location   *time.Location
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// wordOfDayEpoch is the first day of the rotation in the test server.
var wordOfDayEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func listWord(headword, meaning string) domain.WordRecord {
	src := "Word List"
	created := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)
	return domain.WordRecord{
		ID:              uuid.NewSHA1(uuid.NameSpaceURL, []byte("e2e/"+headword)),
		Headword:        headword,
		Meaning:         meaning,
		ExampleSentence: "A sentence about " + headword + ".",
		Source:          &src,
		CreatedAt:       created,
		UpdatedAt:       created,
	}
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper) and a fake dictionary API.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	// 1. Get pool from testcontainers-backed helper.
	pool := testhelper.SetupTestDB(t)

	// 2. Infrastructure.
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)
	dict := newFakeDictionary(t)
	collector := metrics.NewCollector("e2e")

	list := []domain.WordRecord{
		listWord("Ephemeral", "lasting a very short time"),
		listWord("Laconic", "using very few words"),
		listWord("Mellifluous", "sweet or musical"),
	}
	store := wordlist.NewStore(list)

	// 3. Repositories.
	wordRepo := wordrepo.New(pool)
	progressRepo := progressrepo.New(pool)

	// 4. Services.
	client := merriam.NewClient(config.DictionaryConfig{
		BaseURL: dict.srv.URL + "/api/v3/references/collegiate/json",
		APIKey:  "e2e-key",
	}, logger)
	lookupService := lookup.NewService(logger, client, collector, lookup.NewSessions(time.Minute), 5*time.Second)
	wordsService := words.NewService(logger, wordRepo, store, collector)
	progressService := progresssvc.NewService(logger, txm, progressRepo, wordRepo, store, collector, time.UTC)
	wordOfDayService := wordofday.NewService(logger, store, wordofday.Selector{
		Epoch:    wordOfDayEpoch,
		Location: time.UTC,
	})

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	// 5. Router.
	router := rest.NewRouter(rest.RouterDeps{
		Logger: logger,
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders: "Content-Type,X-Search-Session",
			MaxAge:         86400,
		},
		Health:         rest.NewHealthHandler(pool, store, "e2e"),
		Lookup:         rest.NewLookupHandler(lookupService, logger),
		Words:          rest.NewWordsHandler(wordsService, logger),
		Progress:       rest.NewProgressHandler(progressService, logger),
		WordOfDay:      rest.NewWordOfDayHandler(wordOfDayService, logger),
		RateLimiter:    limiter,
		LookupLimit:    1000,
		Requests:       collector,
		MetricsPath:    "/metrics",
		MetricsHandler: collector.Handler(),
	})

	// 6. httptest server.
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:        srv.URL,
		Client:     srv.Client(),
		Pool:       pool,
		Dictionary: dict,
		List:       list,
		Location:   time.UTC,
	}
}

// ---------------------------------------------------------------------------
// HTTP helpers.
// ---------------------------------------------------------------------------

// do sends a request with an optional JSON body and returns status and the
// decoded JSON body (nil for empty bodies).
func (ts *testServer) do(t *testing.T, method, path string, body any, headers ...string) (int, any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) == 0 {
		return resp.StatusCode, nil
	}

	var decoded any
	require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	return resp.StatusCode, decoded
}

// object asserts v is a JSON object and returns it.
func object(t *testing.T, v any) map[string]any {
	t.Helper()
	m, ok := v.(map[string]any)
	require.True(t, ok, "expected JSON object, got %T: %v", v, v)
	return m
}

// array asserts v is a JSON array and returns it.
func array(t *testing.T, v any) []any {
	t.Helper()
	a, ok := v.([]any)
	require.True(t, ok, "expected JSON array, got %T: %v", v, v)
	return a
}

// createWord creates a saved word through the API and returns its JSON.
func (ts *testServer) createWord(t *testing.T, headword string) map[string]any {
	t.Helper()

	status, body := ts.do(t, http.MethodPost, "/api/v1/words", map[string]any{
		"headword": headword,
		"meaning":  "meaning of " + headword,
		"sentence": "A sentence with " + headword + ".",
	})
	require.Equal(t, http.StatusCreated, status, "body: %v", body)
	return object(t, body)
}
