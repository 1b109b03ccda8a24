package plant

import (
	"context"
	"fmt"

	"github.com/heartmarshall/plantcare-backend/internal/domain"
)

// GetPlant returns a plant with its care logs.
func (s *Service) GetPlant(ctx context.Context, uow UnitOfWork, id int64) (*domain.Plant, error) {
	if id <= 0 {
		return nil, fmt.Errorf("plant %d: %w", id, domain.ErrNotFound)
	}

	p, err := uow.Plants().Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get plant: %w", err)
	}
	return p, nil
}

// GetPlants returns every plant ordered by id. Never nil.
func (s *Service) GetPlants(ctx context.Context, uow UnitOfWork) ([]*domain.Plant, error) {
	plants, err := uow.Plants().GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list plants: %w", err)
	}
	if plants == nil {
		plants = []*domain.Plant{}
	}
	return plants, nil
}
