package memory

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/plantcare-backend/internal/domain"
)

// CareLogRepo implements domain.CareLogRepository over a Store.
type CareLogRepo struct {
	store *Store
}

func (r *CareLogRepo) Add(ctx context.Context, plantID int64, log *domain.CareLog) (*domain.CareLog, error) {
	if log == nil {
		return nil, errors.New("care log is required")
	}
	if log.Action == "" {
		return nil, domain.NewValidationError("action", "required")
	}

	var out domain.CareLog
	err := r.store.do(ctx, func(st *state) error {
		if _, ok := st.plants[plantID]; !ok {
			return fmt.Errorf("plant %d: %w", plantID, domain.ErrNotFound)
		}
		st.nextLogID++
		row := domain.CareLog{
			ID:        st.nextLogID,
			PlantID:   plantID,
			Action:    log.Action,
			Notes:     clonePtr(log.Notes),
			CreatedAt: r.store.now(),
		}
		st.careLogs[plantID] = append(st.careLogs[plantID], row)
		out = row
		out.Notes = clonePtr(row.Notes)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *CareLogRepo) ListByPlant(ctx context.Context, plantID int64) ([]domain.CareLog, error) {
	var out []domain.CareLog
	err := r.store.do(ctx, func(st *state) error {
		out = cloneLogs(st.careLogs[plantID])
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
