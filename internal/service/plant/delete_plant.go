package plant

import (
	"context"
	"fmt"
	"log/slog"
)

// DeletePlant removes a plant and its care logs. Unknown ids are a no-op.
func (s *Service) DeletePlant(ctx context.Context, uow UnitOfWork, id int64) error {
	if id <= 0 {
		return nil
	}

	if err := uow.Plants().Delete(ctx, id); err != nil {
		return fmt.Errorf("delete plant: %w", err)
	}

	s.log.InfoContext(ctx, "plant deleted", slog.Int64("plant_id", id))

	return nil
}
