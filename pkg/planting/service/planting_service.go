package service

import (
	"context"
	"time"

	"agroclimate/entities"
)

// PlantingService advises on when to plant and records planting events.
type PlantingService interface {
	// Window returns the crop's optimal planting interval for the
	// location's region and upcoming/current season. Unknown crops get
	// a low-confidence generic window, never an error.
	Window(crop string, loc entities.Location, asOf time.Time) (entities.PlantingWindow, error)
	// CheckStatus classifies the farmer's timing against the window and
	// suggests alternatives when late; very late timing additionally
	// carries diversification advice driven by the current risk score.
	CheckStatus(ctx context.Context, farmerID string, fieldID uint, crop string, loc entities.Location, asOf time.Time) (*entities.PlantingStatus, error)
	// Record validates and appends an immutable planting record.
	Record(p *entities.PlantingRecord) error
}
