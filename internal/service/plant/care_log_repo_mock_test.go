package plant

import (
	"context"
	"sync"

	"github.com/heartmarshall/plantcare-backend/internal/domain"
)

var _ domain.CareLogRepository = &careLogRepoMock{}

type careLogRepoMock struct {
	AddFunc         func(ctx context.Context, plantID int64, log *domain.CareLog) (*domain.CareLog, error)
	ListByPlantFunc func(ctx context.Context, plantID int64) ([]domain.CareLog, error)

	calls struct {
		Add []struct {
			Ctx     context.Context
			PlantID int64
			Log     *domain.CareLog
		}
		ListByPlant []struct {
			Ctx     context.Context
			PlantID int64
		}
	}
	lockAdd         sync.RWMutex
	lockListByPlant sync.RWMutex
}

func (mock *careLogRepoMock) Add(ctx context.Context, plantID int64, log *domain.CareLog) (*domain.CareLog, error) {
	if mock.AddFunc == nil {
		panic("careLogRepoMock.AddFunc: method is nil but CareLogRepository.Add was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		PlantID int64
		Log     *domain.CareLog
	}{Ctx: ctx, PlantID: plantID, Log: log}
	mock.lockAdd.Lock()
	mock.calls.Add = append(mock.calls.Add, callInfo)
	mock.lockAdd.Unlock()
	return mock.AddFunc(ctx, plantID, log)
}

func (mock *careLogRepoMock) AddCalls() []struct {
	Ctx     context.Context
	PlantID int64
	Log     *domain.CareLog
} {
	mock.lockAdd.RLock()
	calls := mock.calls.Add
	mock.lockAdd.RUnlock()
	return calls
}

func (mock *careLogRepoMock) ListByPlant(ctx context.Context, plantID int64) ([]domain.CareLog, error) {
	if mock.ListByPlantFunc == nil {
		panic("careLogRepoMock.ListByPlantFunc: method is nil but CareLogRepository.ListByPlant was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		PlantID int64
	}{Ctx: ctx, PlantID: plantID}
	mock.lockListByPlant.Lock()
	mock.calls.ListByPlant = append(mock.calls.ListByPlant, callInfo)
	mock.lockListByPlant.Unlock()
	return mock.ListByPlantFunc(ctx, plantID)
}

func (mock *careLogRepoMock) ListByPlantCalls() []struct {
	Ctx     context.Context
	PlantID int64
} {
	mock.lockListByPlant.RLock()
	calls := mock.calls.ListByPlant
	mock.lockListByPlant.RUnlock()
	return calls
}
