package domain

import "context"

// PlantRepository is the persistence contract for plants. Implementations must
// honour the following:
//
//   - Get returns the plant with its care logs eagerly loaded, or ErrNotFound.
//   - GetAll returns every plant (care logs loaded) ordered by ID; an empty store
//     yields an empty, non-nil slice.
//   - Save inserts when plant.ID is zero and updates the row with that ID
//     otherwise. Updating a missing ID fails with ErrNotFound. The returned plant
//     carries store-assigned ID and timestamps.
//   - Delete removes the plant and all of its care logs atomically. Deleting a
//     missing ID is a no-op.
type PlantRepository interface {
	Get(ctx context.Context, id int64) (*Plant, error)
	GetAll(ctx context.Context) ([]*Plant, error)
	Save(ctx context.Context, plant *Plant) (*Plant, error)
	Delete(ctx context.Context, id int64) error
}

// CareLogRepository persists care logs. Logs are append-only; they are removed
// only through the cascade in PlantRepository.Delete.
type CareLogRepository interface {
	// Add appends a log to the plant. Returns ErrNotFound if the plant does not exist.
	Add(ctx context.Context, plantID int64, log *CareLog) (*CareLog, error)
	// ListByPlant returns the plant's logs ordered by creation time.
	ListByPlant(ctx context.Context, plantID int64) ([]CareLog, error)
}
