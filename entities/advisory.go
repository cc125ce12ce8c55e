package entities

import "time"

// CropShare is one slice of a diversification plan.
type CropShare struct {
	Crop       string  `json:"crop"`
	Percentage int     `json:"percentage"`
	AreaHa     float64 `json:"area_ha"`
}

// DiversificationPlan allocates cultivable area across a primary crop
// and 0-2 hedge crops. Stateless: recomputable from a risk level and an
// area, never persisted as authoritative state.
type DiversificationPlan struct {
	FarmerID             string      `json:"farmer_id"`
	FieldID              uint        `json:"field_id"`
	RiskLevel            RiskLevel   `json:"risk_level"`
	Primary              CropShare   `json:"primary_crop"`
	DiversificationCrops []CropShare `json:"diversification_crops"`
	Rationale            string      `json:"rationale"`
}

type AlertLevel string

const (
	AlertInfo     AlertLevel = "info"
	AlertWarning  AlertLevel = "warning"
	AlertCritical AlertLevel = "critical"
)

// WeatherOutlook is the seasonal outlook for a harvest window.
type WeatherOutlook struct {
	Conditions      string  `json:"conditions"` // dry|moderate|wet
	RainProbability float64 `json:"rain_probability"`
	Advice          string  `json:"advice"`
}

// StorageStatus is the evaluated readiness of a storage location.
// Known=false means no sensor data was available; ready must then be
// neither trusted nor alarmed on.
type StorageStatus struct {
	Known           bool     `json:"known"`
	Ready           bool     `json:"ready"`
	Temperature     float64  `json:"temperature,omitempty"`
	Humidity        float64  `json:"humidity,omitempty"`
	Issues          []string `json:"issues,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
}

type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type HarvestPrediction struct {
	FarmerID      string         `json:"farmer_id"`
	FieldID       uint           `json:"field_id"`
	Crop          string         `json:"crop"`
	Variety       string         `json:"variety"`
	PredictedDate time.Time      `json:"predicted_date"`
	HarvestWindow DateRange      `json:"harvest_window"`
	MaturityDays  int            `json:"maturity_days"`
	Weather       WeatherOutlook `json:"weather_forecast"`
	Storage       StorageStatus  `json:"storage_status"`
	AlertMessage  string         `json:"alert_message"`
	AlertLevel    AlertLevel     `json:"alert_level"`
	ActionItems   []string       `json:"action_items"`
	Confidence    string         `json:"confidence"`
	ComputedAt    time.Time      `json:"computed_at"`
}
