package progress

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexicology-backend/internal/domain"
)

var _ wordRepo = &wordRepoMock{}

type wordRepoMock struct {
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.WordRecord, error)
	SetLearnedFunc func(ctx context.Context, id uuid.UUID, learned bool) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		SetLearned []struct {
			Ctx     context.Context
			Id      uuid.UUID
			Learned bool
		}
	}
	lockGetByID    sync.RWMutex
	lockSetLearned sync.RWMutex
}

func (mock *wordRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.WordRecord, error) {
	if mock.GetByIDFunc == nil {
		panic("wordRepoMock.GetByIDFunc: method is nil but wordRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *wordRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *wordRepoMock) SetLearned(ctx context.Context, id uuid.UUID, learned bool) error {
	if mock.SetLearnedFunc == nil {
		panic("wordRepoMock.SetLearnedFunc: method is nil but wordRepo.SetLearned was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Id      uuid.UUID
		Learned bool
	}{Ctx: ctx, Id: id, Learned: learned}
	mock.lockSetLearned.Lock()
	mock.calls.SetLearned = append(mock.calls.SetLearned, callInfo)
	mock.lockSetLearned.Unlock()
	return mock.SetLearnedFunc(ctx, id, learned)
}

func (mock *wordRepoMock) SetLearnedCalls() []struct {
	Ctx     context.Context
	Id      uuid.UUID
	Learned bool
} {
	mock.lockSetLearned.RLock()
	calls := mock.calls.SetLearned
	mock.lockSetLearned.RUnlock()
	return calls
}
