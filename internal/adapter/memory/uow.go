package memory

import (
	"context"

	"github.com/heartmarshall/plantcare-backend/internal/domain"
)

// UnitOfWork bundles the in-memory repositories of one Store.
type UnitOfWork struct {
	store    *Store
	plants   *PlantRepo
	careLogs *CareLogRepo
}

func (u *UnitOfWork) Plants() domain.PlantRepository { return u.plants }

func (u *UnitOfWork) CareLogs() domain.CareLogRepository { return u.careLogs }

// RunInTx runs fn with exclusive access to the store. If fn returns an error
// or panics, every change it made is discarded.
func (u *UnitOfWork) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return u.store.runInTx(ctx, fn)
}
