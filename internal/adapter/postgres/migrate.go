package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Migrations returns the embedded goose migration files rooted at the
// migrations directory.
func Migrations() fs.FS {
	sub, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		// The directory is embedded at compile time; Sub cannot fail for it.
		panic(fmt.Sprintf("postgres: embedded migrations: %v", err))
	}
	return sub
}

// Migrator applies the embedded schema migrations through goose.
type Migrator struct {
	provider *goose.Provider
	closeDB  func() error
}

// NewMigrator opens a database/sql handle on top of pool and builds a goose
// provider over the embedded migrations. Close releases the handle; the pool
// itself stays open.
func NewMigrator(pool *pgxpool.Pool) (*Migrator, error) {
	db := stdlib.OpenDBFromPool(pool)

	provider, err := goose.NewProvider(goose.DialectPostgres, db, Migrations())
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("goose new provider: %w", err)
	}

	return &Migrator{provider: provider, closeDB: db.Close}, nil
}

// Up applies all pending migrations.
func (m *Migrator) Up(ctx context.Context, log *slog.Logger) error {
	results, err := m.provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	for _, r := range results {
		log.Info("migration applied",
			slog.Int64("version", r.Source.Version),
			slog.String("file", r.Source.Path),
			slog.Duration("duration", r.Duration),
		)
	}
	return nil
}

// Down rolls back the most recently applied migration.
func (m *Migrator) Down(ctx context.Context, log *slog.Logger) error {
	r, err := m.provider.Down(ctx)
	if err != nil {
		return fmt.Errorf("goose down: %w", err)
	}
	if r != nil {
		log.Info("migration rolled back",
			slog.Int64("version", r.Source.Version),
			slog.String("file", r.Source.Path),
		)
	}
	return nil
}

// MigrationStatus is the state of a single migration file.
type MigrationStatus struct {
	Version int64
	File    string
	Applied bool
}

// Status reports every known migration and whether it has been applied.
func (m *Migrator) Status(ctx context.Context) ([]MigrationStatus, error) {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("goose status: %w", err)
	}
	out := make([]MigrationStatus, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, MigrationStatus{
			Version: s.Source.Version,
			File:    s.Source.Path,
			Applied: s.State == goose.StateApplied,
		})
	}
	return out, nil
}

// Version returns the current schema version; 0 when nothing is applied.
func (m *Migrator) Version(ctx context.Context) (int64, error) {
	v, err := m.provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("goose version: %w", err)
	}
	return v, nil
}

// Close releases the database/sql handle.
func (m *Migrator) Close() error {
	return m.closeDB()
}
