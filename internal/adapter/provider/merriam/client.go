// Package merriam is the Merriam-Webster Collegiate dictionary client.
package merriam

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/heartmarshall/lexicology-backend/internal/config"
	"github.com/heartmarshall/lexicology-backend/internal/domain"
	"github.com/heartmarshall/lexicology-backend/internal/provider"
)

// Client looks words up in the Collegiate API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client from the dictionary configuration. The HTTP
// client carries no timeout of its own; the caller's context bounds the call.
func NewClient(cfg config.DictionaryConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{},
		log:        logger.With("adapter", "merriam"),
	}
}

// Lookup issues exactly one GET for term and classifies the response.
//
// Errors: *domain.ValidationError for a blank term (no request is made),
// provider.ErrNetwork for transport failures and non-2xx statuses,
// provider.ErrTransport for bodies that are not JSON.
func (c *Client) Lookup(ctx context.Context, term string) (provider.LookupOutcome, error) {
	normalized := domain.NormalizeTerm(term)
	if normalized == "" {
		return provider.NotFoundOutcome(), domain.NewValidationError("term", "required")
	}

	c.log.DebugContext(ctx, "merriam request", slog.String("term", normalized))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.lookupURL(normalized), nil)
	if err != nil {
		return provider.NotFoundOutcome(), fmt.Errorf("merriam: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "merriam request failed",
			slog.String("term", normalized),
			slog.String("error", redact(err.Error(), c.apiKey)),
		)
		return provider.NotFoundOutcome(), fmt.Errorf("merriam: %w: %w", provider.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.WarnContext(ctx, "merriam unexpected status",
			slog.String("term", normalized),
			slog.Int("status", resp.StatusCode),
		)
		return provider.NotFoundOutcome(), fmt.Errorf("merriam: %w: unexpected status %d", provider.ErrNetwork, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return provider.NotFoundOutcome(), fmt.Errorf("merriam: %w: read body: %w", provider.ErrNetwork, err)
	}

	outcome, err := Classify(body)
	if err != nil {
		return outcome, fmt.Errorf("merriam: %w", err)
	}

	c.log.DebugContext(ctx, "merriam response",
		slog.String("term", normalized),
		slog.String("outcome", outcome.Kind.String()),
		slog.Int("entries", len(outcome.Entries)),
		slog.Int("suggestions", len(outcome.Suggestions)),
	)

	return outcome, nil
}

func (c *Client) lookupURL(term string) string {
	q := url.Values{}
	q.Set("key", c.apiKey)
	return c.baseURL + "/" + url.PathEscape(term) + "?" + q.Encode()
}

// redact keeps the API key out of logged transport errors, which embed the URL.
func redact(msg, secret string) string {
	if secret == "" {
		return msg
	}
	msg = strings.ReplaceAll(msg, url.QueryEscape(secret), "REDACTED")
	return strings.ReplaceAll(msg, secret, "REDACTED")
}
