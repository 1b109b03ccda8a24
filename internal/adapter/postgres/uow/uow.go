// Package uow provides the relational unit-of-work: a per-request bundle of
// repositories sharing one optional transaction.
package uow

import (
	"context"

	postgres "github.com/heartmarshall/plantcare-backend/internal/adapter/postgres"
	"github.com/heartmarshall/plantcare-backend/internal/adapter/postgres/carelog"
	"github.com/heartmarshall/plantcare-backend/internal/adapter/postgres/plant"
	"github.com/heartmarshall/plantcare-backend/internal/domain"
)

// Factory builds a fresh UnitOfWork per request over a shared pool.
type Factory struct {
	pool postgres.Pool
}

// NewFactory creates a Factory.
func NewFactory(pool postgres.Pool) *Factory {
	return &Factory{pool: pool}
}

// New returns a new UnitOfWork. Instances are not shared across requests.
func (f *Factory) New() *UnitOfWork {
	careLogs := carelog.New(f.pool)
	return &UnitOfWork{
		plants:   plant.New(f.pool, careLogs),
		careLogs: careLogs,
		tx:       postgres.NewTxManager(f.pool),
	}
}

// UnitOfWork exposes the plant and care log repositories. Repository calls made
// with the context handed to RunInTx share its transaction.
type UnitOfWork struct {
	plants   *plant.Repo
	careLogs *carelog.Repo
	tx       *postgres.TxManager
}

func (u *UnitOfWork) Plants() domain.PlantRepository { return u.plants }

func (u *UnitOfWork) CareLogs() domain.CareLogRepository { return u.careLogs }

// RunInTx runs fn inside one database transaction.
func (u *UnitOfWork) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return u.tx.RunInTx(ctx, fn)
}
