// Package carelog implements the CareLog repository using PostgreSQL.
// Logs are append-only; the plant repository removes them through
// DeleteByPlant when their plant is deleted.
package carelog

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/plantcare-backend/internal/adapter/postgres"
	"github.com/heartmarshall/plantcare-backend/internal/domain"
)

const table = "care_logs"

var columns = []string{"id", "plant_id", "action", "notes", "created_at"}

// Repo provides care log persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Pool
	tx   *postgres.TxManager
}

// New creates a new care log repository.
func New(pool postgres.Pool) *Repo {
	return &Repo{pool: pool, tx: postgres.NewTxManager(pool)}
}

// careLogRow mirrors a care_logs row.
type careLogRow struct {
	ID        int64     `db:"id"`
	PlantID   int64     `db:"plant_id"`
	Action    string    `db:"action"`
	Notes     *string   `db:"notes"`
	CreatedAt time.Time `db:"created_at"`
}

func (r careLogRow) toDomain() domain.CareLog {
	return domain.CareLog{
		ID:        r.ID,
		PlantID:   r.PlantID,
		Action:    r.Action,
		Notes:     r.Notes,
		CreatedAt: r.CreatedAt,
	}
}

// Add appends a log to the plant and returns it with ID and CreatedAt set.
// A missing plant surfaces as domain.ErrNotFound via the foreign key.
func (r *Repo) Add(ctx context.Context, plantID int64, log *domain.CareLog) (*domain.CareLog, error) {
	if log == nil {
		return nil, errors.New("care log is required")
	}
	if log.Action == "" {
		return nil, domain.NewValidationError("action", "required")
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns("plant_id", "action", "notes").
		Values(plantID, log.Action, log.Notes).
		Suffix("RETURNING id, plant_id, action, notes, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert care log: %w", err)
	}

	var row careLogRow
	err = r.tx.RunInTx(ctx, func(ctx context.Context) error {
		return pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query, args...)
	})
	if err != nil {
		return nil, postgres.MapError(err, "plant", plantID)
	}

	cl := row.toDomain()
	return &cl, nil
}

// ListByPlant returns the plant's logs ordered by created_at, id.
// An unknown plant yields an empty, non-nil slice.
func (r *Repo) ListByPlant(ctx context.Context, plantID int64) ([]domain.CareLog, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"plant_id": plantID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list care logs: %w", err)
	}

	var rows []careLogRow
	err = r.tx.RunInTx(ctx, func(ctx context.Context) error {
		return pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("list care logs for plant %d: %w", plantID, err)
	}

	logs := make([]domain.CareLog, len(rows))
	for i, row := range rows {
		logs[i] = row.toDomain()
	}
	return logs, nil
}

// ListByPlantIDs loads the logs of several plants in one round trip and groups
// them by plant. Plants without logs are absent from the map.
func (r *Repo) ListByPlantIDs(ctx context.Context, plantIDs []int64) (map[int64][]domain.CareLog, error) {
	if len(plantIDs) == 0 {
		return map[int64][]domain.CareLog{}, nil
	}

	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where("plant_id = ANY(?)", plantIDs).
		OrderBy("plant_id", "created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build batch care logs: %w", err)
	}

	var rows []careLogRow
	err = r.tx.RunInTx(ctx, func(ctx context.Context) error {
		return pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("list care logs by plant ids: %w", err)
	}

	grouped := make(map[int64][]domain.CareLog, len(plantIDs))
	for _, row := range rows {
		grouped[row.PlantID] = append(grouped[row.PlantID], row.toDomain())
	}
	return grouped, nil
}

// DeleteByPlant removes every log of the plant and returns how many were removed.
func (r *Repo) DeleteByPlant(ctx context.Context, plantID int64) (int64, error) {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"plant_id": plantID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete care logs: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete care logs for plant %d: %w", plantID, err)
	}
	return tag.RowsAffected(), nil
}
