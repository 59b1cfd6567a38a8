package progress

import (
	"context"
	"sync"

	"github.com/heartmarshall/lexicology-backend/internal/domain"
)

var _ wordList = &wordListMock{}

type wordListMock struct {
	WordsFunc func(ctx context.Context) ([]domain.WordRecord, error)

	calls struct {
		Words []struct {
			Ctx context.Context
		}
	}
	lockWords sync.RWMutex
}

func (mock *wordListMock) Words(ctx context.Context) ([]domain.WordRecord, error) {
	if mock.WordsFunc == nil {
		panic("wordListMock.WordsFunc: method is nil but wordList.Words was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockWords.Lock()
	mock.calls.Words = append(mock.calls.Words, callInfo)
	mock.lockWords.Unlock()
	return mock.WordsFunc(ctx)
}

func (mock *wordListMock) WordsCalls() []struct {
	Ctx context.Context
} {
	mock.lockWords.RLock()
	calls := mock.calls.Words
	mock.lockWords.RUnlock()
	return calls
}
