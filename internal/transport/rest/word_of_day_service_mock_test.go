package rest

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/lexicology-backend/internal/service/wordofday"
)

var _ wordOfDayService = &wordOfDayServiceMock{}

type wordOfDayServiceMock struct {
	LocationFunc func() *time.Location
	TodayFunc    func(ctx context.Context, date time.Time) (*wordofday.Result, error)

	calls struct {
		Location []struct{}
		Today []struct {
			Ctx  context.Context
			Date time.Time
		}
	}
	lockLocation sync.RWMutex
	lockToday    sync.RWMutex
}

func (mock *wordOfDayServiceMock) Location() *time.Location {
	if mock.LocationFunc == nil {
		panic("wordOfDayServiceMock.LocationFunc: method is nil but wordOfDayService.Location was just called")
	}
	callInfo := struct{}{}
	mock.lockLocation.Lock()
	mock.calls.Location = append(mock.calls.Location, callInfo)
	mock.lockLocation.Unlock()
	return mock.LocationFunc()
}

func (mock *wordOfDayServiceMock) LocationCalls() []struct{} {
	mock.lockLocation.RLock()
	calls := mock.calls.Location
	mock.lockLocation.RUnlock()
	return calls
}

func (mock *wordOfDayServiceMock) Today(ctx context.Context, date time.Time) (*wordofday.Result, error) {
	if mock.TodayFunc == nil {
		panic("wordOfDayServiceMock.TodayFunc: method is nil but wordOfDayService.Today was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Date time.Time
	}{Ctx: ctx, Date: date}
	mock.lockToday.Lock()
	mock.calls.Today = append(mock.calls.Today, callInfo)
	mock.lockToday.Unlock()
	return mock.TodayFunc(ctx, date)
}

func (mock *wordOfDayServiceMock) TodayCalls() []struct {
	Ctx  context.Context
	Date time.Time
} {
	mock.lockToday.RLock()
	calls := mock.calls.Today
	mock.lockToday.RUnlock()
	return calls
}
