package plant

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/plantcare-backend/internal/domain"
)

// CreatePlant validates the input, derives the next watering and persists a
// new plant.
func (s *Service) CreatePlant(ctx context.Context, uow UnitOfWork, input CreatePlantInput) (*domain.Plant, error) {
	p, err := domain.NewPlant(input.params())
	if err != nil {
		return nil, err
	}
	if err := domain.CheckLastWatered(p.LastWatered, s.now()); err != nil {
		return nil, err
	}
	scheduleNextWatering(p)

	created, err := uow.Plants().Save(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("create plant: %w", err)
	}

	s.log.InfoContext(ctx, "plant created",
		slog.Int64("plant_id", created.ID),
		slog.String("name", created.Name),
	)

	return created, nil
}
