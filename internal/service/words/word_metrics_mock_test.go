package words

import (
	"sync"
)

var _ wordMetrics = &wordMetricsMock{}

type wordMetricsMock struct {
	WordCreatedFunc func()

	calls struct {
		WordCreated []struct{}
	}
	lockWordCreated sync.RWMutex
}

func (mock *wordMetricsMock) WordCreated() {
	if mock.WordCreatedFunc == nil {
		panic("wordMetricsMock.WordCreatedFunc: method is nil but wordMetrics.WordCreated was just called")
	}
	callInfo := struct{}{}
	mock.lockWordCreated.Lock()
	mock.calls.WordCreated = append(mock.calls.WordCreated, callInfo)
	mock.lockWordCreated.Unlock()
	mock.WordCreatedFunc()
}

func (mock *wordMetricsMock) WordCreatedCalls() []struct{} {
	mock.lockWordCreated.RLock()
	calls := mock.calls.WordCreated
	mock.lockWordCreated.RUnlock()
	return calls
}
