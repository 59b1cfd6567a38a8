package rest

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexicology-backend/internal/domain"
)

var _ progressService = &progressServiceMock{}

type progressServiceMock struct {
	GetFunc         func(ctx context.Context, now time.Time) (*domain.LearningProgress, error)
	MarkLearnedFunc func(ctx context.Context, wordID uuid.UUID, now time.Time) (*domain.LearningProgress, error)

	calls struct {
		Get []struct {
			Ctx context.Context
			Now time.Time
		}
		MarkLearned []struct {
			Ctx    context.Context
			WordID uuid.UUID
			Now    time.Time
		}
	}
	lockGet         sync.RWMutex
	lockMarkLearned sync.RWMutex
}

func (mock *progressServiceMock) Get(ctx context.Context, now time.Time) (*domain.LearningProgress, error) {
	if mock.GetFunc == nil {
		panic("progressServiceMock.GetFunc: method is nil but progressService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Now time.Time
	}{Ctx: ctx, Now: now}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, now)
}

func (mock *progressServiceMock) GetCalls() []struct {
	Ctx context.Context
	Now time.Time
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *progressServiceMock) MarkLearned(ctx context.Context, wordID uuid.UUID, now time.Time) (*domain.LearningProgress, error) {
	if mock.MarkLearnedFunc == nil {
		panic("progressServiceMock.MarkLearnedFunc: method is nil but progressService.MarkLearned was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		WordID uuid.UUID
		Now    time.Time
	}{Ctx: ctx, WordID: wordID, Now: now}
	mock.lockMarkLearned.Lock()
	mock.calls.MarkLearned = append(mock.calls.MarkLearned, callInfo)
	mock.lockMarkLearned.Unlock()
	return mock.MarkLearnedFunc(ctx, wordID, now)
}

func (mock *progressServiceMock) MarkLearnedCalls() []struct {
	Ctx    context.Context
	WordID uuid.UUID
	Now    time.Time
} {
	mock.lockMarkLearned.RLock()
	calls := mock.calls.MarkLearned
	mock.lockMarkLearned.RUnlock()
	return calls
}
