package entities

import "time"

// RainAmount is the qualitative rainfall report a farmer submits.
type RainAmount string

const (
	RainNone     RainAmount = "none"
	RainLight    RainAmount = "light"
	RainModerate RainAmount = "moderate"
	RainHeavy    RainAmount = "heavy"
)

// Intensity maps a rain amount onto [0,1] for aggregation.
func (a RainAmount) Intensity() (float64, bool) {
	switch a {
	case RainNone:
		return 0.0, true
	case RainLight:
		return 0.35, true
	case RainModerate:
		return 0.7, true
	case RainHeavy:
		return 1.0, true
	}
	return 0, false
}

// MoistState is the qualitative soil report. SMI mapping is a fixed
// public contract: dry=25 damp=60 saturated=90.
type MoistState string

const (
	SoilDry       MoistState = "dry"
	SoilDamp      MoistState = "damp"
	SoilSaturated MoistState = "saturated"
)

const NeutralSMI = 50.0

func (m MoistState) SMI() (float64, bool) {
	switch m {
	case SoilDry:
		return 25, true
	case SoilDamp:
		return 60, true
	case SoilSaturated:
		return 90, true
	}
	return 0, false
}

type RainReport struct {
	ReportID  uint       `gorm:"primaryKey" json:"report_id"`
	FarmerID  string     `gorm:"index" json:"farmer_id"`
	Lat       float64    `json:"lat"`
	Lon       float64    `json:"lon"`
	Amount    RainAmount `json:"amount"` // none|light|moderate|heavy
	Timestamp time.Time  `gorm:"index" json:"timestamp"`
	CreatedAt time.Time
}

type SoilMoistureReport struct {
	ReportID   uint       `gorm:"primaryKey" json:"report_id"`
	FarmerID   string     `gorm:"index" json:"farmer_id"`
	FieldID    uint       `gorm:"index" json:"field_id"`
	MoistState MoistState `json:"moisture_level"` // dry|damp|saturated
	SMI        float64    `json:"smi"`
	Timestamp  time.Time  `gorm:"index" json:"timestamp"`
	CreatedAt  time.Time
}
