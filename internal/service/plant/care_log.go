package plant

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/plantcare-backend/internal/domain"
)

// AddCareLog records a care action. A watering also moves the plant's
// last_watered to the log's timestamp and reschedules the next watering; both
// writes share one transaction.
func (s *Service) AddCareLog(ctx context.Context, uow UnitOfWork, input AddCareLogInput) (*domain.CareLog, error) {
	if input.PlantID <= 0 {
		return nil, fmt.Errorf("plant %d: %w", input.PlantID, domain.ErrNotFound)
	}

	entry, err := domain.NewCareLog(input.Action, input.Notes)
	if err != nil {
		return nil, err
	}

	var created *domain.CareLog
	err = uow.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := uow.Plants().Get(txCtx, input.PlantID)
		if err != nil {
			return fmt.Errorf("get plant: %w", err)
		}

		created, err = uow.CareLogs().Add(txCtx, p.ID, entry)
		if err != nil {
			return fmt.Errorf("add care log: %w", err)
		}

		if created.Action != domain.CareActionWatering {
			return nil
		}

		wateredAt := created.CreatedAt
		p.LastWatered = &wateredAt
		scheduleNextWatering(p)
		if _, err := uow.Plants().Save(txCtx, p); err != nil {
			return fmt.Errorf("record watering: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "care log added",
		slog.Int64("plant_id", input.PlantID),
		slog.Int64("care_log_id", created.ID),
		slog.String("action", created.Action),
	)

	return created, nil
}

// ListCareLogs returns the plant's care logs ordered by creation time.
func (s *Service) ListCareLogs(ctx context.Context, uow UnitOfWork, plantID int64) ([]domain.CareLog, error) {
	if plantID <= 0 {
		return nil, fmt.Errorf("plant %d: %w", plantID, domain.ErrNotFound)
	}

	var logs []domain.CareLog
	err := uow.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := uow.Plants().Get(txCtx, plantID); err != nil {
			return fmt.Errorf("get plant: %w", err)
		}

		var err error
		logs, err = uow.CareLogs().ListByPlant(txCtx, plantID)
		if err != nil {
			return fmt.Errorf("list care logs: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if logs == nil {
		logs = []domain.CareLog{}
	}
	return logs, nil
}
