package service

import (
	"context"

	"agroclimate/entities"
)

// RiskService derives the Localized Climate Risk Score for a field.
// Score->risk_level derivation lives here and nowhere else.
type RiskService interface {
	// Calculate fuses recent observations with the seasonal baseline
	// into a composite 0-100 score. Results are cached for the
	// configured validity window; an expired entry is recomputed, never
	// silently served.
	Calculate(ctx context.Context, farmerID string, fieldID uint, loc entities.Location, forecastMonths int) (*entities.ClimateRiskScore, error)
}
