package entities

import "time"

// PlantingRecord is an immutable planting event. Several records per
// field and season are allowed; a planting is active while its
// predicted harvest date has not passed.
type PlantingRecord struct {
	PlantingID   uint      `gorm:"primaryKey" json:"planting_id"`
	FarmerID     string    `gorm:"index" json:"farmer_id"`
	FieldID      uint      `gorm:"index" json:"field_id"`
	Crop         string    `json:"crop"`
	Variety      string    `json:"variety"`
	PlantingDate time.Time `json:"planting_date"`
	AreaHa       float64   `json:"area_ha"`
	CreatedAt    time.Time
}

type PlantingStatusKind string

const (
	PlantingEarly    PlantingStatusKind = "early"
	PlantingOptimal  PlantingStatusKind = "optimal"
	PlantingLate     PlantingStatusKind = "late"
	PlantingVeryLate PlantingStatusKind = "very_late"
)

// PlantingWindow is a crop's recommended planting interval for a region.
type PlantingWindow struct {
	Crop       string    `json:"crop"`
	Region     string    `json:"region"`
	Season     string    `json:"season"`
	Start      time.Time `json:"start_date"`
	End        time.Time `json:"end_date"`
	Rationale  string    `json:"rationale"`
	Confidence string    `json:"confidence"` // high|medium|low
}

// PlantingStatus classifies a farmer's timing against the window.
type PlantingStatus struct {
	Status              PlantingStatusKind   `json:"status"`
	DaysDifference      int                  `json:"days_difference"`
	Window              PlantingWindow       `json:"window"`
	Message             string               `json:"message"`
	AlternativeCrops    []string             `json:"alternative_crops,omitempty"`
	DiversificationHint *DiversificationPlan `json:"diversification_advice,omitempty"`
}
