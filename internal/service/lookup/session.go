package lookup

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/heartmarshall/lexicology-backend/internal/provider"
)

// ErrSuperseded is returned for a search whose session started a newer one
// before it completed.
var ErrSuperseded = errors.New("lookup superseded by a newer search")

// LookupFunc performs a single lookup.
type LookupFunc func(ctx context.Context, term string) (provider.LookupOutcome, error)

// Session tracks the single outstanding search of one client. Each search
// gets a generation number; only the newest generation may deliver a result.
type Session struct {
	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	lastUsed   time.Time
	now        func() time.Time // nil means time.Now
}

// Do runs lookup as the session's newest search, cancelling the previous one.
// If another search starts before lookup returns, the result is dropped and
// ErrSuperseded is returned.
func (s *Session) Do(ctx context.Context, term string, lookup LookupFunc) (provider.LookupOutcome, error) {
	ctx, gen := s.begin(ctx)
	defer s.finish(gen)

	outcome, err := lookup(ctx, term)

	if !s.isCurrent(gen) {
		return provider.NotFoundOutcome(), ErrSuperseded
	}
	return outcome, err
}

// Generation returns the number of searches started in this session.
func (s *Session) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

func (s *Session) begin(ctx context.Context) (context.Context, uint64) {
	ctx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	s.generation++
	s.cancel = cancel
	if s.now != nil {
		s.lastUsed = s.now()
	} else {
		s.lastUsed = time.Now()
	}
	return ctx, s.generation
}

func (s *Session) finish(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation == gen && s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *Session) isCurrent(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation == gen
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUsed
}

// Sessions is a registry of search sessions keyed by client-supplied ID.
// Sessions idle for longer than ttl are dropped on access.
type Sessions struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewSessions creates an empty registry.
func NewSessions(ttl time.Duration) *Sessions {
	return &Sessions{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Get returns the session for id, creating it if needed.
func (r *Sessions) Get(id string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.pruneLocked()

	s, ok := r.sessions[id]
	if !ok {
		s = &Session{lastUsed: r.now(), now: r.now}
		r.sessions[id] = s
	}
	return s
}

// Len returns the number of live sessions.
func (r *Sessions) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *Sessions) pruneLocked() {
	if r.ttl <= 0 {
		return
	}
	cutoff := r.now().Add(-r.ttl)
	for id, s := range r.sessions {
		if s.idleSince().Before(cutoff) {
			delete(r.sessions, id)
		}
	}
}
