package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/plantcare-backend/internal/domain"
)

// MapError converts pgx/pgconn errors to domain errors.
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass through.
// Errors that match no rule are wrapped unchanged and surface as persistence failures.
func MapError(err error, entity string, id int64) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %d: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return fmt.Errorf("%s %d: %w", entity, id, domain.ErrAlreadyExists)
		case pgerrcode.ForeignKeyViolation:
			return fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
		case pgerrcode.CheckViolation, pgerrcode.InvalidTextRepresentation, pgerrcode.StringDataRightTruncationDataException:
			return fmt.Errorf("%s %d: %w: %s", entity, id, domain.ErrValidation, pgErr.Message)
		}
	}

	return fmt.Errorf("%s %d: %w", entity, id, err)
}
