// Package lookup runs dictionary searches on behalf of the REST layer.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/lexicology-backend/internal/domain"
	"github.com/heartmarshall/lexicology-backend/internal/provider"
)

// Outcome labels recorded for failed lookups; successful ones use
// provider.OutcomeKind.String().
const (
	OutcomeInvalid        = "invalid"
	OutcomeNetworkError   = "network_error"
	OutcomeTransportError = "transport_error"
	OutcomeSuperseded     = "superseded"
	OutcomeCanceled       = "canceled"
)

type dictionaryClient interface {
	Lookup(ctx context.Context, term string) (provider.LookupOutcome, error)
}

type lookupMetrics interface {
	ObserveLookup(outcome string, elapsed time.Duration)
}

// Service classifies dictionary lookups and projects entries for display.
type Service struct {
	client   dictionaryClient
	metrics  lookupMetrics
	sessions *Sessions
	timeout  time.Duration
	log      *slog.Logger
}

// NewService creates a lookup Service. A zero timeout leaves the call bounded
// only by the caller's context.
func NewService(
	log *slog.Logger,
	client dictionaryClient,
	metrics lookupMetrics,
	sessions *Sessions,
	timeout time.Duration,
) *Service {
	return &Service{
		client:   client,
		metrics:  metrics,
		sessions: sessions,
		timeout:  timeout,
		log:      log.With("service", "lookup"),
	}
}

// Lookup performs one dictionary lookup for term.
//
// A malformed upstream body is logged and reported as NotFound. Validation
// and network errors are returned unchanged.
func (s *Service) Lookup(ctx context.Context, term string) (provider.LookupOutcome, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	outcome, err := s.client.Lookup(ctx, term)
	elapsed := time.Since(start)

	switch {
	case err == nil:
		s.observe(outcome.Kind.String(), elapsed)
		return outcome, nil

	case errors.Is(err, domain.ErrValidation):
		s.observe(OutcomeInvalid, elapsed)
		return provider.NotFoundOutcome(), err

	case errors.Is(err, provider.ErrTransport):
		s.observe(OutcomeTransportError, elapsed)
		s.log.WarnContext(ctx, "malformed dictionary response",
			slog.String("term", domain.NormalizeTerm(term)),
			slog.String("error", err.Error()),
		)
		return provider.NotFoundOutcome(), nil

	case errors.Is(err, context.Canceled):
		s.observe(OutcomeCanceled, elapsed)
		s.log.DebugContext(ctx, "dictionary lookup canceled",
			slog.String("term", domain.NormalizeTerm(term)),
		)
		return provider.NotFoundOutcome(), err

	default:
		s.observe(OutcomeNetworkError, elapsed)
		s.log.ErrorContext(ctx, "dictionary lookup failed",
			slog.String("term", domain.NormalizeTerm(term)),
			slog.String("error", err.Error()),
		)
		if !errors.Is(err, provider.ErrNetwork) {
			return provider.NotFoundOutcome(), fmt.Errorf("%w: %w", provider.ErrNetwork, err)
		}
		return provider.NotFoundOutcome(), err
	}
}

// Search runs Lookup within the search session identified by sessionID. A
// newer search in the same session supersedes this one; the superseded call
// returns ErrSuperseded and its result is discarded. An empty sessionID runs
// a plain Lookup.
func (s *Service) Search(ctx context.Context, sessionID, term string) (provider.LookupOutcome, error) {
	if sessionID == "" || s.sessions == nil {
		return s.Lookup(ctx, term)
	}

	outcome, err := s.sessions.Get(sessionID).Do(ctx, term, s.Lookup)
	if errors.Is(err, ErrSuperseded) {
		s.observe(OutcomeSuperseded, 0)
		s.log.DebugContext(ctx, "lookup superseded",
			slog.String("session", sessionID),
			slog.String("term", domain.NormalizeTerm(term)),
		)
	}
	return outcome, err
}

func (s *Service) observe(outcome string, elapsed time.Duration) {
	if s.metrics == nil {
		return
	}
	s.metrics.ObserveLookup(outcome, elapsed)
}
