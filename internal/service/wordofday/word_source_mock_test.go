package wordofday

import (
	"context"
	"sync"

	"github.com/heartmarshall/lexicology-backend/internal/domain"
)

var _ wordSource = &wordSourceMock{}

type wordSourceMock struct {
	WordsFunc func(ctx context.Context) ([]domain.WordRecord, error)

	calls struct {
		Words []struct {
			Ctx context.Context
		}
	}
	lockWords sync.RWMutex
}

func (mock *wordSourceMock) Words(ctx context.Context) ([]domain.WordRecord, error) {
	if mock.WordsFunc == nil {
		panic("wordSourceMock.WordsFunc: method is nil but wordSource.Words was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockWords.Lock()
	mock.calls.Words = append(mock.calls.Words, callInfo)
	mock.lockWords.Unlock()
	return mock.WordsFunc(ctx)
}

func (mock *wordSourceMock) WordsCalls() []struct {
	Ctx context.Context
} {
	mock.lockWords.RLock()
	calls := mock.calls.Words
	mock.lockWords.RUnlock()
	return calls
}
