package domain

import "time"

// WateringFrequency is how often a plant should be watered.
type WateringFrequency string

const (
	WateringDaily    WateringFrequency = "daily"
	WateringWeekly   WateringFrequency = "weekly"
	WateringBiweekly WateringFrequency = "biweekly"
	WateringMonthly  WateringFrequency = "monthly"
	WateringAsNeeded WateringFrequency = "as_needed"
)

func (f WateringFrequency) String() string { return string(f) }

func (f WateringFrequency) IsValid() bool {
	switch f {
	case WateringDaily, WateringWeekly, WateringBiweekly, WateringMonthly, WateringAsNeeded:
		return true
	}
	return false
}

// NextAfter returns the moment the plant is due for watering again after t.
// Returns nil for as_needed and for unknown values: there is no schedule.
func (f WateringFrequency) NextAfter(t time.Time) *time.Time {
	var next time.Time
	switch f {
	case WateringDaily:
		next = t.AddDate(0, 0, 1)
	case WateringWeekly:
		next = t.AddDate(0, 0, 7)
	case WateringBiweekly:
		next = t.AddDate(0, 0, 14)
	case WateringMonthly:
		next = t.AddDate(0, 1, 0)
	default:
		return nil
	}
	return &next
}

// LightRequirement is the amount of light a plant needs.
type LightRequirement string

const (
	LightLow    LightRequirement = "low"
	LightMedium LightRequirement = "medium"
	LightHigh   LightRequirement = "high"
	LightDirect LightRequirement = "direct"
)

func (l LightRequirement) String() string { return string(l) }

func (l LightRequirement) IsValid() bool {
	switch l {
	case LightLow, LightMedium, LightHigh, LightDirect:
		return true
	}
	return false
}

// Well-known care actions. Other non-empty actions are accepted as-is.
const (
	CareActionWatering    = "watering"
	CareActionFertilizing = "fertilizing"
	CareActionPruning     = "pruning"
	CareActionRepotting   = "repotting"
	CareActionMisting     = "misting"
)
