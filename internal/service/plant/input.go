package plant

import (
	"strings"
	"time"

	"github.com/heartmarshall/plantcare-backend/internal/domain"
)

// CreatePlantInput holds the parameters for creating a plant.
type CreatePlantInput struct {
	Name              string
	Species           string
	Description       *string
	WateringFrequency domain.WateringFrequency
	LightRequirement  domain.LightRequirement
	LastWatered       *time.Time
}

func (i CreatePlantInput) params() domain.PlantParams {
	return domain.PlantParams{
		Name:              i.Name,
		Species:           i.Species,
		Description:       i.Description,
		WateringFrequency: i.WateringFrequency,
		LightRequirement:  i.LightRequirement,
		LastWatered:       i.LastWatered,
	}
}

// UpdatePlantInput holds a partial update. Nil fields are left unchanged;
// Description set to "" clears it. The Clear flags remove the nullable
// fields and take precedence over a value supplied alongside them.
type UpdatePlantInput struct {
	PlantID           int64
	Name              *string
	Species           *string
	Description       *string
	WateringFrequency *domain.WateringFrequency
	LightRequirement  *domain.LightRequirement
	LastWatered       *time.Time

	ClearDescription bool
	ClearLastWatered bool
}

// setsLastWatered reports whether the update assigns a new watering time.
func (i UpdatePlantInput) setsLastWatered() bool {
	return i.LastWatered != nil && !i.ClearLastWatered
}

// apply copies the provided fields onto p. The caller validates the result.
func (i UpdatePlantInput) apply(p *domain.Plant) {
	if i.Name != nil {
		p.Name = strings.TrimSpace(*i.Name)
	}
	if i.Species != nil {
		p.Species = strings.TrimSpace(*i.Species)
	}
	switch {
	case i.ClearDescription:
		p.Description = nil
	case i.Description != nil:
		p.Description = domain.TrimOrNil(i.Description)
	}
	if i.WateringFrequency != nil {
		p.WateringFrequency = *i.WateringFrequency
	}
	if i.LightRequirement != nil {
		p.LightRequirement = *i.LightRequirement
	}
	switch {
	case i.ClearLastWatered:
		p.LastWatered = nil
	case i.LastWatered != nil:
		lw := *i.LastWatered
		p.LastWatered = &lw
	}
}

// AddCareLogInput holds the parameters for recording a care action.
type AddCareLogInput struct {
	PlantID int64
	Action  string
	Notes   *string
}
