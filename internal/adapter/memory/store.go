// Package memory is an in-process implementation of the plant and care log
// repositories. It backs the service and HTTP tests and mirrors the relational
// adapter's contract: eager care logs, NotFound on updating a missing plant,
// no-op deletes and all-or-nothing transactions.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/heartmarshall/plantcare-backend/internal/domain"
)

// Store holds plants and care logs. All access is serialised by one mutex;
// a transaction holds it for its whole duration.
type Store struct {
	mu  sync.Mutex
	now func() time.Time

	state state
}

type state struct {
	nextPlantID int64
	nextLogID   int64
	plants      map[int64]domain.Plant
	careLogs    map[int64][]domain.CareLog
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the timestamp source used for created_at/updated_at.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore creates an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		now: func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
		state: state{
			plants:   make(map[int64]domain.Plant),
			careLogs: make(map[int64][]domain.CareLog),
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewUnitOfWork returns a fresh unit of work over the store.
func (s *Store) NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{
		store:    s,
		plants:   &PlantRepo{store: s},
		careLogs: &CareLogRepo{store: s},
	}
}

type txKey struct{}

// inTx reports whether ctx belongs to a transaction already holding s.mu.
func (s *Store) inTx(ctx context.Context) bool {
	owner, _ := ctx.Value(txKey{}).(*Store)
	return owner == s
}

// do runs fn with exclusive access to the state, taking the lock unless the
// caller's transaction already holds it.
func (s *Store) do(ctx context.Context, fn func(st *state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !s.inTx(ctx) {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	return fn(&s.state)
}

// runInTx runs fn while holding the lock and restores the state snapshot if fn
// fails or panics.
func (s *Store) runInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.inTx(ctx) {
		return fn(ctx)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state.clone()
	defer func() {
		if r := recover(); r != nil {
			s.state = snapshot
			panic(r)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, s)); err != nil {
		s.state = snapshot
		return err
	}
	return nil
}

func (st *state) clone() state {
	out := state{
		nextPlantID: st.nextPlantID,
		nextLogID:   st.nextLogID,
		plants:      maps.Clone(st.plants),
		careLogs:    make(map[int64][]domain.CareLog, len(st.careLogs)),
	}
	for id, logs := range st.careLogs {
		out.careLogs[id] = slices.Clone(logs)
	}
	return out
}

// Len returns the number of stored plants.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.plants)
}

// CareLogCount returns the number of care logs stored for plantID.
func (s *Store) CareLogCount(plantID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.careLogs[plantID])
}
