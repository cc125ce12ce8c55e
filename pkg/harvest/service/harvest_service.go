package service

import (
	"context"

	"agroclimate/entities"
)

// HarvestService turns a planting record into a harvest-readiness
// prediction, combining the seasonal outlook for the harvest window
// with the storage collaborator's latest telemetry.
type HarvestService interface {
	// Predict never fails on data-availability gaps: an unreachable
	// storage sensor or seasonal lookup degrades the corresponding
	// field to unknown/neutral. Only validation errors are returned.
	Predict(ctx context.Context, p *entities.PlantingRecord, loc entities.Location, sensorID string) (*entities.HarvestPrediction, error)
	// MaturityDays resolves days-to-maturity for a crop/variety, with
	// per-crop and generic defaults.
	MaturityDays(crop, variety string) int
}
