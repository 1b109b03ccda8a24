package testhelper

import (
	"context"
	"testing"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	plant := SeedPlant(t, pool)
	SeedCareLog(t, pool, plant.ID, "watering")

	var name string
	err := pool.QueryRow(
		context.Background(),
		`SELECT name FROM plants WHERE id = $1`,
		plant.ID,
	).Scan(&name)
	if err != nil {
		t.Fatalf("expected plant in DB, got error: %v", err)
	}

	if name != plant.Name {
		t.Fatalf("expected name %q, got %q", plant.Name, name)
	}
	if got := CountCareLogs(t, pool, plant.ID); got != 1 {
		t.Fatalf("expected 1 care log, got %d", got)
	}
}
