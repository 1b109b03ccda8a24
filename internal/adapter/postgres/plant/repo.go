// Package plant implements the Plant repository using PostgreSQL.
// Care logs are loaded eagerly on every read and removed explicitly, in the
// same transaction, when their plant is deleted.
package plant

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/plantcare-backend/internal/adapter/postgres"
	"github.com/heartmarshall/plantcare-backend/internal/adapter/postgres/carelog"
	"github.com/heartmarshall/plantcare-backend/internal/domain"
)

const table = "plants"

var columns = []string{
	"id", "name", "species", "description",
	"watering_frequency", "light_requirement",
	"last_watered", "next_watering",
	"created_at", "updated_at",
}

const returning = "RETURNING id, name, species, description, watering_frequency, light_requirement, " +
	"last_watered, next_watering, created_at, updated_at"

// Repo provides plant persistence backed by PostgreSQL.
type Repo struct {
	pool     postgres.Pool
	tx       *postgres.TxManager
	careLogs *carelog.Repo
}

// New creates a new plant repository. careLogs is used for eager loading and
// for the delete cascade; it must share pool.
func New(pool postgres.Pool, careLogs *carelog.Repo) *Repo {
	return &Repo{
		pool:     pool,
		tx:       postgres.NewTxManager(pool),
		careLogs: careLogs,
	}
}

// plantRow mirrors a plants row.
type plantRow struct {
	ID                int64      `db:"id"`
	Name              string     `db:"name"`
	Species           string     `db:"species"`
	Description       *string    `db:"description"`
	WateringFrequency string     `db:"watering_frequency"`
	LightRequirement  string     `db:"light_requirement"`
	LastWatered       *time.Time `db:"last_watered"`
	NextWatering      *time.Time `db:"next_watering"`
	CreatedAt         time.Time  `db:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at"`
}

// toDomain maps a row to a plant with an empty care log collection.
func (r plantRow) toDomain() *domain.Plant {
	return &domain.Plant{
		ID:                r.ID,
		Name:              r.Name,
		Species:           r.Species,
		Description:       r.Description,
		WateringFrequency: domain.WateringFrequency(r.WateringFrequency),
		LightRequirement:  domain.LightRequirement(r.LightRequirement),
		LastWatered:       r.LastWatered,
		NextWatering:      r.NextWatering,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
		CareLogs:          []domain.CareLog{},
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Get returns a plant with its care logs.
// Returns domain.ErrNotFound if no plant has the given id.
func (r *Repo) Get(ctx context.Context, id int64) (*domain.Plant, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get plant: %w", err)
	}

	var p *domain.Plant
	err = r.tx.RunInTx(ctx, func(ctx context.Context) error {
		var row plantRow
		if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query, args...); err != nil {
			return notFoundOr(err, id)
		}
		p = row.toDomain()

		logs, err := r.careLogs.ListByPlant(ctx, id)
		if err != nil {
			return err
		}
		p.CareLogs = logs
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// GetAll returns every plant ordered by id, care logs included.
// Returns an empty slice (not nil) when there are no plants.
func (r *Repo) GetAll(ctx context.Context) ([]*domain.Plant, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list plants: %w", err)
	}

	plants := []*domain.Plant{}
	err = r.tx.RunInTx(ctx, func(ctx context.Context) error {
		var rows []plantRow
		if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query, args...); err != nil {
			return fmt.Errorf("list plants: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}

		ids := make([]int64, len(rows))
		for i, row := range rows {
			ids[i] = row.ID
			plants = append(plants, row.toDomain())
		}

		logs, err := r.careLogs.ListByPlantIDs(ctx, ids)
		if err != nil {
			return err
		}
		for _, p := range plants {
			if l, ok := logs[p.ID]; ok {
				p.CareLogs = l
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return plants, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Save inserts the plant when its id is zero and updates the existing row
// otherwise. The store sets created_at/updated_at. Updating a missing id
// returns domain.ErrNotFound. The input is not modified.
func (r *Repo) Save(ctx context.Context, p *domain.Plant) (*domain.Plant, error) {
	if p == nil {
		return nil, errors.New("plant is required")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if !p.IsPersisted() {
		return r.insert(ctx, p)
	}
	return r.update(ctx, p)
}

func (r *Repo) insert(ctx context.Context, p *domain.Plant) (*domain.Plant, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("name", "species", "description", "watering_frequency", "light_requirement",
			"last_watered", "next_watering").
		Values(p.Name, p.Species, p.Description, string(p.WateringFrequency), string(p.LightRequirement),
			p.LastWatered, p.NextWatering).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert plant: %w", err)
	}

	var row plantRow
	err = r.tx.RunInTx(ctx, func(ctx context.Context) error {
		return pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query, args...)
	})
	if err != nil {
		return nil, postgres.MapError(err, "plant", 0)
	}

	return row.toDomain(), nil
}

func (r *Repo) update(ctx context.Context, p *domain.Plant) (*domain.Plant, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("name", p.Name).
		Set("species", p.Species).
		Set("description", p.Description).
		Set("watering_frequency", string(p.WateringFrequency)).
		Set("light_requirement", string(p.LightRequirement)).
		Set("last_watered", p.LastWatered).
		Set("next_watering", p.NextWatering).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": p.ID}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update plant: %w", err)
	}

	var out *domain.Plant
	err = r.tx.RunInTx(ctx, func(ctx context.Context) error {
		var row plantRow
		if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query, args...); err != nil {
			return notFoundOr(err, p.ID)
		}
		out = row.toDomain()

		logs, err := r.careLogs.ListByPlant(ctx, p.ID)
		if err != nil {
			return err
		}
		out.CareLogs = logs
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes the plant's care logs and then the plant in one transaction.
// Deleting a missing id is a no-op.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete plant: %w", err)
	}

	return r.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := r.careLogs.DeleteByPlant(ctx, id); err != nil {
			return err
		}
		if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
			return postgres.MapError(err, "plant", id)
		}
		return nil
	})
}

// notFoundOr maps scany's empty result to domain.ErrNotFound and everything
// else through the shared driver error mapping.
func notFoundOr(err error, id int64) error {
	if pgxscan.NotFound(err) {
		return fmt.Errorf("plant %d: %w", id, domain.ErrNotFound)
	}
	return postgres.MapError(err, "plant", id)
}
