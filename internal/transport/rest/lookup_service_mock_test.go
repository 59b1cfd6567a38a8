package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/lexicology-backend/internal/provider"
)

var _ lookupService = &lookupServiceMock{}

type lookupServiceMock struct {
	SearchFunc func(ctx context.Context, sessionID string, term string) (provider.LookupOutcome, error)

	calls struct {
		Search []struct {
			Ctx       context.Context
			SessionID string
			Term      string
		}
	}
	lockSearch sync.RWMutex
}

func (mock *lookupServiceMock) Search(ctx context.Context, sessionID string, term string) (provider.LookupOutcome, error) {
	if mock.SearchFunc == nil {
		panic("lookupServiceMock.SearchFunc: method is nil but lookupService.Search was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SessionID string
		Term      string
	}{Ctx: ctx, SessionID: sessionID, Term: term}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, sessionID, term)
}

func (mock *lookupServiceMock) SearchCalls() []struct {
	Ctx       context.Context
	SessionID string
	Term      string
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}
