package lookup

import (
	"context"
	"sync"

	"github.com/heartmarshall/lexicology-backend/internal/provider"
)

var _ dictionaryClient = &dictionaryClientMock{}

type dictionaryClientMock struct {
	LookupFunc func(ctx context.Context, term string) (provider.LookupOutcome, error)

	calls struct {
		Lookup []struct {
			Ctx  context.Context
			Term string
		}
	}
	lockLookup sync.RWMutex
}

func (mock *dictionaryClientMock) Lookup(ctx context.Context, term string) (provider.LookupOutcome, error) {
	if mock.LookupFunc == nil {
		panic("dictionaryClientMock.LookupFunc: method is nil but dictionaryClient.Lookup was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Term string
	}{Ctx: ctx, Term: term}
	mock.lockLookup.Lock()
	mock.calls.Lookup = append(mock.calls.Lookup, callInfo)
	mock.lockLookup.Unlock()
	return mock.LookupFunc(ctx, term)
}

func (mock *dictionaryClientMock) LookupCalls() []struct {
	Ctx  context.Context
	Term string
} {
	mock.lockLookup.RLock()
	calls := mock.calls.Lookup
	mock.lockLookup.RUnlock()
	return calls
}
