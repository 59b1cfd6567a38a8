package progress

import (
	"sync"
)

var _ progressMetrics = &progressMetricsMock{}

type progressMetricsMock struct {
	WordLearnedFunc func()

	calls struct {
		WordLearned []struct{}
	}
	lockWordLearned sync.RWMutex
}

func (mock *progressMetricsMock) WordLearned() {
	if mock.WordLearnedFunc == nil {
		panic("progressMetricsMock.WordLearnedFunc: method is nil but progressMetrics.WordLearned was just called")
	}
	callInfo := struct{}{}
	mock.lockWordLearned.Lock()
	mock.calls.WordLearned = append(mock.calls.WordLearned, callInfo)
	mock.lockWordLearned.Unlock()
	mock.WordLearnedFunc()
}

func (mock *progressMetricsMock) WordLearnedCalls() []struct{} {
	mock.lockWordLearned.RLock()
	calls := mock.calls.WordLearned
	mock.lockWordLearned.RUnlock()
	return calls
}
