package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/plantcare-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedPlant inserts a weekly/medium plant with a unique name and returns it
// as stored (id and timestamps filled, no care logs).
func SeedPlant(t *testing.T, pool *pgxpool.Pool) domain.Plant {
	t.Helper()
	ctx := context.Background()

	p := domain.Plant{
		Name:              "Seeded Plant " + uniqueSuffix(),
		Species:           "Monstera deliciosa",
		WateringFrequency: domain.WateringWeekly,
		LightRequirement:  domain.LightMedium,
		CareLogs:          []domain.CareLog{},
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO plants (name, species, watering_frequency, light_requirement)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		p.Name, p.Species, string(p.WateringFrequency), string(p.LightRequirement),
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedPlant insert: %v", err)
	}

	return p
}

// SeedCareLog inserts a care log for plantID and returns it as stored.
func SeedCareLog(t *testing.T, pool *pgxpool.Pool, plantID int64, action string) domain.CareLog {
	t.Helper()
	ctx := context.Background()

	cl := domain.CareLog{PlantID: plantID, Action: action}

	err := pool.QueryRow(ctx,
		`INSERT INTO care_logs (plant_id, action) VALUES ($1, $2) RETURNING id, created_at`,
		plantID, action,
	).Scan(&cl.ID, &cl.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedCareLog insert: %v", err)
	}

	return cl
}

// CountCareLogs returns the number of care_logs rows referencing plantID.
func CountCareLogs(t *testing.T, pool *pgxpool.Pool, plantID int64) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM care_logs WHERE plant_id = $1`, plantID,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountCareLogs: %v", err)
	}
	return n
}
