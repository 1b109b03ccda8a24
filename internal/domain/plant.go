package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MaxPlantNameLength    = 100
	MaxPlantSpeciesLength = 100
	MaxCareActionLength   = 50
)

// MaxClockSkew is how far ahead of the server clock a client-supplied
// last_watered may be before it counts as in the future.
const MaxClockSkew = 5 * time.Minute

// Plant is a tracked houseplant. A zero ID means the plant has not been persisted yet;
// the store assigns ID, CreatedAt and UpdatedAt.
type Plant struct {
	ID                int64
	Name              string
	Species           string
	Description       *string
	WateringFrequency WateringFrequency
	LightRequirement  LightRequirement
	LastWatered       *time.Time
	NextWatering      *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// CareLogs is owned by the plant and ordered by creation time.
	CareLogs []CareLog
}

// CareLog is a timestamped record of an action taken on a plant.
type CareLog struct {
	ID        int64
	PlantID   int64
	Action    string
	Notes     *string
	CreatedAt time.Time
}

// PlantParams holds the client-controlled attributes of a plant.
type PlantParams struct {
	Name              string
	Species           string
	Description       *string
	WateringFrequency WateringFrequency
	LightRequirement  LightRequirement
	LastWatered       *time.Time
}

// NewPlant builds an unpersisted Plant from params. Name and species are trimmed;
// an empty description becomes nil. Returns a *ValidationError listing every
// offending field.
func NewPlant(p PlantParams) (*Plant, error) {
	plant := &Plant{
		Name:              strings.TrimSpace(p.Name),
		Species:           strings.TrimSpace(p.Species),
		Description:       TrimOrNil(p.Description),
		WateringFrequency: p.WateringFrequency,
		LightRequirement:  p.LightRequirement,
		LastWatered:       p.LastWatered,
		CareLogs:          []CareLog{},
	}
	if err := plant.Validate(); err != nil {
		return nil, err
	}
	return plant, nil
}

// IsPersisted reports whether the store has assigned an identity.
func (p *Plant) IsPersisted() bool {
	return p.ID != 0
}

// Validate checks the shape invariants of a plant and collects all errors.
func (p *Plant) Validate() error {
	var errs []FieldError

	if p.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "required"})
	} else if utf8.RuneCountInString(p.Name) > MaxPlantNameLength {
		errs = append(errs, FieldError{Field: "name", Message: "max 100 characters"})
	}

	if p.Species == "" {
		errs = append(errs, FieldError{Field: "species", Message: "required"})
	} else if utf8.RuneCountInString(p.Species) > MaxPlantSpeciesLength {
		errs = append(errs, FieldError{Field: "species", Message: "max 100 characters"})
	}

	if !p.WateringFrequency.IsValid() {
		errs = append(errs, FieldError{
			Field:   "watering_frequency",
			Message: "must be one of daily, weekly, biweekly, monthly, as_needed",
		})
	}
	if !p.LightRequirement.IsValid() {
		errs = append(errs, FieldError{
			Field:   "light_requirement",
			Message: "must be one of low, medium, high, direct",
		})
	}

	if !p.CreatedAt.IsZero() && !p.UpdatedAt.IsZero() && p.UpdatedAt.Before(p.CreatedAt) {
		errs = append(errs, FieldError{Field: "updated_at", Message: "must not precede created_at"})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// NewCareLog builds an unpersisted CareLog. The action is trimmed and lowercased.
func NewCareLog(action string, notes *string) (*CareLog, error) {
	action = strings.ToLower(strings.TrimSpace(action))

	switch {
	case action == "":
		return nil, NewValidationError("action", "required")
	case utf8.RuneCountInString(action) > MaxCareActionLength:
		return nil, NewValidationError("action", "max 50 characters")
	}

	return &CareLog{
		Action: action,
		Notes:  TrimOrNil(notes),
	}, nil
}

// CheckLastWatered rejects a watering time later than now plus MaxClockSkew.
// A nil time is accepted.
func CheckLastWatered(lastWatered *time.Time, now time.Time) error {
	if lastWatered != nil && lastWatered.After(now.Add(MaxClockSkew)) {
		return NewValidationError("last_watered", "must not be in the future")
	}
	return nil
}

// TrimOrNil trims whitespace. Returns nil if the result is empty.
func TrimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
