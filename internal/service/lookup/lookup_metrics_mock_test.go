package lookup

import (
	"sync"
	"time"
)

var _ lookupMetrics = &lookupMetricsMock{}

type lookupMetricsMock struct {
	ObserveLookupFunc func(outcome string, elapsed time.Duration)

	calls struct {
		ObserveLookup []struct {
			Outcome string
			Elapsed time.Duration
		}
	}
	lockObserveLookup sync.RWMutex
}

func (mock *lookupMetricsMock) ObserveLookup(outcome string, elapsed time.Duration) {
	if mock.ObserveLookupFunc == nil {
		panic("lookupMetricsMock.ObserveLookupFunc: method is nil but lookupMetrics.ObserveLookup was just called")
	}
	callInfo := struct {
		Outcome string
		Elapsed time.Duration
	}{Outcome: outcome, Elapsed: elapsed}
	mock.lockObserveLookup.Lock()
	mock.calls.ObserveLookup = append(mock.calls.ObserveLookup, callInfo)
	mock.lockObserveLookup.Unlock()
	mock.ObserveLookupFunc(outcome, elapsed)
}

func (mock *lookupMetricsMock) ObserveLookupCalls() []struct {
	Outcome string
	Elapsed time.Duration
} {
	mock.lockObserveLookup.RLock()
	calls := mock.calls.ObserveLookup
	mock.lockObserveLookup.RUnlock()
	return calls
}
