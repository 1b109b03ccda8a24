package plant

import (
	"context"
	"sync"

	"github.com/heartmarshall/plantcare-backend/internal/domain"
)

var _ UnitOfWork = &UnitOfWorkMock{}

type UnitOfWorkMock struct {
	CareLogsFunc func() domain.CareLogRepository
	PlantsFunc   func() domain.PlantRepository
	RunInTxFunc  func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		CareLogs []struct{}
		Plants   []struct{}
		RunInTx  []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockCareLogs sync.RWMutex
	lockPlants   sync.RWMutex
	lockRunInTx  sync.RWMutex
}

func (mock *UnitOfWorkMock) CareLogs() domain.CareLogRepository {
	if mock.CareLogsFunc == nil {
		panic("UnitOfWorkMock.CareLogsFunc: method is nil but UnitOfWork.CareLogs was just called")
	}
	mock.lockCareLogs.Lock()
	mock.calls.CareLogs = append(mock.calls.CareLogs, struct{}{})
	mock.lockCareLogs.Unlock()
	return mock.CareLogsFunc()
}

func (mock *UnitOfWorkMock) CareLogsCalls() []struct{} {
	mock.lockCareLogs.RLock()
	calls := mock.calls.CareLogs
	mock.lockCareLogs.RUnlock()
	return calls
}

func (mock *UnitOfWorkMock) Plants() domain.PlantRepository {
	if mock.PlantsFunc == nil {
		panic("UnitOfWorkMock.PlantsFunc: method is nil but UnitOfWork.Plants was just called")
	}
	mock.lockPlants.Lock()
	mock.calls.Plants = append(mock.calls.Plants, struct{}{})
	mock.lockPlants.Unlock()
	return mock.PlantsFunc()
}

func (mock *UnitOfWorkMock) PlantsCalls() []struct{} {
	mock.lockPlants.RLock()
	calls := mock.calls.Plants
	mock.lockPlants.RUnlock()
	return calls
}

func (mock *UnitOfWorkMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("UnitOfWorkMock.RunInTxFunc: method is nil but UnitOfWork.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *UnitOfWorkMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
