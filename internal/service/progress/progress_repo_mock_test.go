package progress

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexicology-backend/internal/domain"
)

var _ progressRepo = &progressRepoMock{}

type progressRepoMock struct {
	AddLearnedFunc   func(ctx context.Context, wordID uuid.UUID, at time.Time) (bool, error)
	GetFunc          func(ctx context.Context) (*domain.LearningProgress, error)
	GetForUpdateFunc func(ctx context.Context) (*domain.LearningProgress, error)
	SaveFunc         func(ctx context.Context, p *domain.LearningProgress) error

	calls struct {
		AddLearned []struct {
			Ctx    context.Context
			WordID uuid.UUID
			At     time.Time
		}
		Get []struct {
			Ctx context.Context
		}
		GetForUpdate []struct {
			Ctx context.Context
		}
		Save []struct {
			Ctx context.Context
			P   *domain.LearningProgress
		}
	}
	lockAddLearned   sync.RWMutex
	lockGet          sync.RWMutex
	lockGetForUpdate sync.RWMutex
	lockSave         sync.RWMutex
}

func (mock *progressRepoMock) AddLearned(ctx context.Context, wordID uuid.UUID, at time.Time) (bool, error) {
	if mock.AddLearnedFunc == nil {
		panic("progressRepoMock.AddLearnedFunc: method is nil but progressRepo.AddLearned was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		WordID uuid.UUID
		At     time.Time
	}{Ctx: ctx, WordID: wordID, At: at}
	mock.lockAddLearned.Lock()
	mock.calls.AddLearned = append(mock.calls.AddLearned, callInfo)
	mock.lockAddLearned.Unlock()
	return mock.AddLearnedFunc(ctx, wordID, at)
}

func (mock *progressRepoMock) AddLearnedCalls() []struct {
	Ctx    context.Context
	WordID uuid.UUID
	At     time.Time
} {
	mock.lockAddLearned.RLock()
	calls := mock.calls.AddLearned
	mock.lockAddLearned.RUnlock()
	return calls
}

func (mock *progressRepoMock) Get(ctx context.Context) (*domain.LearningProgress, error) {
	if mock.GetFunc == nil {
		panic("progressRepoMock.GetFunc: method is nil but progressRepo.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx)
}

func (mock *progressRepoMock) GetCalls() []struct {
	Ctx context.Context
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *progressRepoMock) GetForUpdate(ctx context.Context) (*domain.LearningProgress, error) {
	if mock.GetForUpdateFunc == nil {
		panic("progressRepoMock.GetForUpdateFunc: method is nil but progressRepo.GetForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetForUpdate.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, callInfo)
	mock.lockGetForUpdate.Unlock()
	return mock.GetForUpdateFunc(ctx)
}

func (mock *progressRepoMock) GetForUpdateCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetForUpdate.RLock()
	calls := mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
	return calls
}

func (mock *progressRepoMock) Save(ctx context.Context, p *domain.LearningProgress) error {
	if mock.SaveFunc == nil {
		panic("progressRepoMock.SaveFunc: method is nil but progressRepo.Save was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.LearningProgress
	}{Ctx: ctx, P: p}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, p)
}

func (mock *progressRepoMock) SaveCalls() []struct {
	Ctx context.Context
	P   *domain.LearningProgress
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}
