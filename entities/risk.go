package entities

import "time"

type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
)

// RiskFactors is the sub-factor breakdown behind a composite score.
// Each factor is in [0,1].
type RiskFactors struct {
	RainAdequacy     float64 `json:"rain_adequacy"`
	SoilMoisture     float64 `json:"soil_moisture"`
	SeasonalForecast float64 `json:"seasonal_forecast"`
	DroughtRisk      float64 `json:"drought_risk"`
	FloodRisk        float64 `json:"flood_risk"`
}

// ClimateRiskScore is the LCRS: a composite 0-100 climate risk estimate
// for one field, cached with a validity window. Risk level derivation
// from the score belongs to pkg/risk only.
type ClimateRiskScore struct {
	FarmerID        string      `json:"farmer_id"`
	FieldID         uint        `json:"field_id"`
	Score           float64     `json:"score"`
	RiskLevel       RiskLevel   `json:"risk_level"`
	Factors         RiskFactors `json:"factors"`
	Recommendations []string    `json:"recommendations"`
	Confidence      string      `json:"confidence"` // high|medium|low
	ComputedAt      time.Time   `json:"computed_at"`
	ValidUntil      time.Time   `json:"valid_until"`
}
