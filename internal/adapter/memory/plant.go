package memory

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/heartmarshall/plantcare-backend/internal/domain"
)

// PlantRepo implements domain.PlantRepository over a Store.
type PlantRepo struct {
	store *Store
}

func (r *PlantRepo) Get(ctx context.Context, id int64) (*domain.Plant, error) {
	var out *domain.Plant
	err := r.store.do(ctx, func(st *state) error {
		p, ok := st.plants[id]
		if !ok {
			return fmt.Errorf("plant %d: %w", id, domain.ErrNotFound)
		}
		out = st.withLogs(p)
		return nil
	})
	return out, err
}

func (r *PlantRepo) GetAll(ctx context.Context) ([]*domain.Plant, error) {
	out := []*domain.Plant{}
	err := r.store.do(ctx, func(st *state) error {
		ids := make([]int64, 0, len(st.plants))
		for id := range st.plants {
			ids = append(ids, id)
		}
		slices.Sort(ids)
		for _, id := range ids {
			out = append(out, st.withLogs(st.plants[id]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PlantRepo) Save(ctx context.Context, p *domain.Plant) (*domain.Plant, error) {
	if p == nil {
		return nil, errors.New("plant is required")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var out *domain.Plant
	err := r.store.do(ctx, func(st *state) error {
		now := r.store.now()
		row := *p
		row.Description = clonePtr(p.Description)
		row.LastWatered = clonePtr(p.LastWatered)
		row.NextWatering = clonePtr(p.NextWatering)
		row.CareLogs = nil

		if !p.IsPersisted() {
			st.nextPlantID++
			row.ID = st.nextPlantID
			row.CreatedAt = now
			row.UpdatedAt = now
		} else {
			existing, ok := st.plants[p.ID]
			if !ok {
				return fmt.Errorf("plant %d: %w", p.ID, domain.ErrNotFound)
			}
			row.CreatedAt = existing.CreatedAt
			row.UpdatedAt = now
			if row.UpdatedAt.Before(row.CreatedAt) {
				row.UpdatedAt = row.CreatedAt
			}
		}

		st.plants[row.ID] = row
		out = st.withLogs(row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PlantRepo) Delete(ctx context.Context, id int64) error {
	return r.store.do(ctx, func(st *state) error {
		delete(st.careLogs, id)
		delete(st.plants, id)
		return nil
	})
}

// withLogs returns a detached copy of p with its care logs attached.
func (st *state) withLogs(p domain.Plant) *domain.Plant {
	p.Description = clonePtr(p.Description)
	p.LastWatered = clonePtr(p.LastWatered)
	p.NextWatering = clonePtr(p.NextWatering)
	p.CareLogs = cloneLogs(st.careLogs[p.ID])
	return &p
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneLogs(logs []domain.CareLog) []domain.CareLog {
	out := make([]domain.CareLog, len(logs))
	for i, l := range logs {
		l.Notes = clonePtr(l.Notes)
		out[i] = l
	}
	return out
}
