package wordlist

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/lexicology-backend/internal/domain"
)

// maxBodySize caps the remote word list payload.
const maxBodySize = 8 << 20

// Fetcher downloads the word list from a remote endpoint.
type Fetcher struct {
	url        string
	httpClient *http.Client
	log        *slog.Logger
}

// NewFetcher creates a Fetcher for url.
func NewFetcher(url string, timeout time.Duration, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "wordlist"),
	}
}

// Fetch performs one GET and parses the body with the same defaults as a
// local file.
func (f *Fetcher) Fetch(ctx context.Context) ([]domain.WordRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("wordlist: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("wordlist: fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wordlist: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("wordlist: read body: %w", err)
	}

	words, err := Parse(body, time.Now)
	if err != nil {
		return nil, err
	}

	f.log.InfoContext(ctx, "remote word list fetched",
		slog.String("url", f.url),
		slog.Int("count", len(words)),
	)
	return words, nil
}
