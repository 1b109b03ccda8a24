package plant

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/plantcare-backend/internal/domain"
)

// UpdatePlant applies a partial update inside one transaction.
func (s *Service) UpdatePlant(ctx context.Context, uow UnitOfWork, input UpdatePlantInput) (*domain.Plant, error) {
	if input.PlantID <= 0 {
		return nil, fmt.Errorf("plant %d: %w", input.PlantID, domain.ErrNotFound)
	}

	var updated *domain.Plant
	err := uow.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := uow.Plants().Get(txCtx, input.PlantID)
		if err != nil {
			return fmt.Errorf("get plant: %w", err)
		}

		input.apply(p)
		if err := p.Validate(); err != nil {
			return err
		}
		if input.setsLastWatered() {
			if err := domain.CheckLastWatered(p.LastWatered, s.now()); err != nil {
				return err
			}
		}
		scheduleNextWatering(p)

		updated, err = uow.Plants().Save(txCtx, p)
		if err != nil {
			return fmt.Errorf("update plant: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "plant updated", slog.Int64("plant_id", updated.ID))

	return updated, nil
}
