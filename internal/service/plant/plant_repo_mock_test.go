package plant

import (
	"context"
	"sync"

	"github.com/heartmarshall/plantcare-backend/internal/domain"
)

var _ domain.PlantRepository = &plantRepoMock{}

type plantRepoMock struct {
	DeleteFunc func(ctx context.Context, id int64) error
	GetFunc    func(ctx context.Context, id int64) (*domain.Plant, error)
	GetAllFunc func(ctx context.Context) ([]*domain.Plant, error)
	SaveFunc   func(ctx context.Context, plant *domain.Plant) (*domain.Plant, error)

	calls struct {
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
		Get []struct {
			Ctx context.Context
			ID  int64
		}
		GetAll []struct {
			Ctx context.Context
		}
		Save []struct {
			Ctx   context.Context
			Plant *domain.Plant
		}
	}
	lockDelete sync.RWMutex
	lockGet    sync.RWMutex
	lockGetAll sync.RWMutex
	lockSave   sync.RWMutex
}

func (mock *plantRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("plantRepoMock.DeleteFunc: method is nil but PlantRepository.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *plantRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *plantRepoMock) Get(ctx context.Context, id int64) (*domain.Plant, error) {
	if mock.GetFunc == nil {
		panic("plantRepoMock.GetFunc: method is nil but PlantRepository.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *plantRepoMock) GetCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *plantRepoMock) GetAll(ctx context.Context) ([]*domain.Plant, error) {
	if mock.GetAllFunc == nil {
		panic("plantRepoMock.GetAllFunc: method is nil but PlantRepository.GetAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetAll.Lock()
	mock.calls.GetAll = append(mock.calls.GetAll, callInfo)
	mock.lockGetAll.Unlock()
	return mock.GetAllFunc(ctx)
}

func (mock *plantRepoMock) GetAllCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetAll.RLock()
	calls := mock.calls.GetAll
	mock.lockGetAll.RUnlock()
	return calls
}

func (mock *plantRepoMock) Save(ctx context.Context, plant *domain.Plant) (*domain.Plant, error) {
	if mock.SaveFunc == nil {
		panic("plantRepoMock.SaveFunc: method is nil but PlantRepository.Save was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Plant *domain.Plant
	}{Ctx: ctx, Plant: plant}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, plant)
}

func (mock *plantRepoMock) SaveCalls() []struct {
	Ctx   context.Context
	Plant *domain.Plant
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}
