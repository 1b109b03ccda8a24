package domain

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func ptr(s string) *string { return &s }

func validParams() PlantParams {
	return PlantParams{
		Name:              "Ficus",
		Species:           "Ficus lyrata",
		Description:       ptr("Fiddle leaf fig"),
		WateringFrequency: WateringWeekly,
		LightRequirement:  LightMedium,
	}
}

func TestNewPlant_Valid(t *testing.T) {
	t.Parallel()

	p, err := NewPlant(validParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.IsPersisted() {
		t.Error("new plant should not be persisted")
	}
	if p.Name != "Ficus" || p.Species != "Ficus lyrata" {
		t.Errorf("name/species: got %q/%q", p.Name, p.Species)
	}
	if p.Description == nil || *p.Description != "Fiddle leaf fig" {
		t.Errorf("description: got %v", p.Description)
	}
	if p.CareLogs == nil || len(p.CareLogs) != 0 {
		t.Errorf("care logs: got %v, want empty non-nil slice", p.CareLogs)
	}
}

func TestNewPlant_TrimsAndClearsEmptyDescription(t *testing.T) {
	t.Parallel()

	params := validParams()
	params.Name = "  Monstera  "
	params.Description = ptr("   ")

	p, err := NewPlant(params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Monstera" {
		t.Errorf("name: got %q, want %q", p.Name, "Monstera")
	}
	if p.Description != nil {
		t.Errorf("description: got %q, want nil", *p.Description)
	}
}

func TestNewPlant_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(p *PlantParams)
		fields []string
	}{
		{"empty name", func(p *PlantParams) { p.Name = "" }, []string{"name"}},
		{"blank species", func(p *PlantParams) { p.Species = "   " }, []string{"species"}},
		{"long name", func(p *PlantParams) { p.Name = strings.Repeat("a", 101) }, []string{"name"}},
		{"unknown frequency", func(p *PlantParams) { p.WateringFrequency = "hourly" }, []string{"watering_frequency"}},
		{"unknown light", func(p *PlantParams) { p.LightRequirement = "dark" }, []string{"light_requirement"}},
		{
			"everything wrong",
			func(p *PlantParams) { *p = PlantParams{} },
			[]string{"name", "species", "watering_frequency", "light_requirement"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			params := validParams()
			tt.mutate(&params)

			p, err := NewPlant(params)
			if p != nil {
				t.Errorf("expected nil plant, got %+v", p)
			}
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if len(ve.Errors) != len(tt.fields) {
				t.Fatalf("field errors: got %v, want fields %v", ve.Errors, tt.fields)
			}
			for i, f := range tt.fields {
				if ve.Errors[i].Field != f {
					t.Errorf("field[%d]: got %q, want %q", i, ve.Errors[i].Field, f)
				}
			}
		})
	}
}

func TestPlant_Validate_TimestampOrder(t *testing.T) {
	t.Parallel()

	p, err := NewPlant(validParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now.Add(-time.Second)

	if err := p.Validate(); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for updated_at < created_at, got %v", err)
	}

	p.UpdatedAt = now
	if err := p.Validate(); err != nil {
		t.Fatalf("created_at == updated_at should be valid, got %v", err)
	}
}

func TestNewCareLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		action     string
		notes      *string
		wantAction string
		wantNotes  *string
		wantErr    bool
	}{
		{"watering", "watering", ptr("half a litre"), "watering", ptr("half a litre"), false},
		{"normalised", "  Fertilizing ", nil, "fertilizing", nil, false},
		{"custom action", "rotated", ptr("  "), "rotated", nil, false},
		{"empty", "   ", nil, "", nil, true},
		{"too long", strings.Repeat("x", 51), nil, "", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			log, err := NewCareLog(tt.action, tt.notes)
			if tt.wantErr {
				if !errors.Is(err, ErrValidation) {
					t.Fatalf("expected ErrValidation, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if log.Action != tt.wantAction {
				t.Errorf("action: got %q, want %q", log.Action, tt.wantAction)
			}
			if (log.Notes == nil) != (tt.wantNotes == nil) || (log.Notes != nil && *log.Notes != *tt.wantNotes) {
				t.Errorf("notes: got %v, want %v", log.Notes, tt.wantNotes)
			}
		})
	}
}

func TestTrimOrNil(t *testing.T) {
	t.Parallel()

	if got := TrimOrNil(nil); got != nil {
		t.Errorf("nil: got %q, want nil", *got)
	}
	if got := TrimOrNil(ptr(" \t ")); got != nil {
		t.Errorf("blank: got %q, want nil", *got)
	}

	in := ptr("  Fiddle leaf fig ")
	got := TrimOrNil(in)
	if got == nil || *got != "Fiddle leaf fig" {
		t.Fatalf("got %v, want %q", got, "Fiddle leaf fig")
	}
	if got == in {
		t.Error("result should not alias the input")
	}
}

func TestCheckLastWatered(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 6, 1, 9, 30, 0, 0, time.UTC)
	at := func(d time.Duration) *time.Time { return ptrTime(now.Add(d)) }

	tests := []struct {
		name    string
		in      *time.Time
		wantErr bool
	}{
		{"nil", nil, false},
		{"past", at(-48 * time.Hour), false},
		{"now", at(0), false},
		{"within skew", at(MaxClockSkew), false},
		{"beyond skew", at(MaxClockSkew + time.Second), true},
		{"far future", ptrTime(time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckLastWatered(tt.in, now)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if len(ve.Errors) != 1 || ve.Errors[0].Field != "last_watered" {
				t.Errorf("fields: got %+v, want last_watered", ve.Errors)
			}
		})
	}
}

