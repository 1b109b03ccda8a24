// Package plant holds the plant and care log use cases. Every use case takes
// the request's UnitOfWork explicitly; the service itself keeps no state
// besides its logger and clock.
package plant

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/plantcare-backend/internal/domain"
)

// UnitOfWork is the per-request persistence scope. Repository calls made with
// the context passed to fn by RunInTx share one transaction.
type UnitOfWork interface {
	Plants() domain.PlantRepository
	CareLogs() domain.CareLogRepository
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides plant management operations.
type Service struct {
	log *slog.Logger
	now func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the clock used to reject future watering times.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a new plant service.
func NewService(log *slog.Logger, opts ...Option) *Service {
	s := &Service{
		log: log.With("service", "plant"),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// scheduleNextWatering derives NextWatering from LastWatered and the watering
// frequency. Without a last watering, or for as_needed plants, it is cleared.
func scheduleNextWatering(p *domain.Plant) {
	if p.LastWatered == nil {
		p.NextWatering = nil
		return
	}
	p.NextWatering = p.WateringFrequency.NextAfter(*p.LastWatered)
}
