package storage

import (
	"context"

	"agroclimate/entities"
)

// Collaborator is the foreign storage-telemetry subsystem as seen by
// the harvest predictor. Table-backed today, a live sensor gateway
// later; callers must bound every lookup with a timeout and treat a
// miss as "unknown", never as "ready".
type Collaborator interface {
	// LatestReading returns the newest reading for the sensor, or
	// gorm.ErrRecordNotFound when the sensor has never reported.
	LatestReading(ctx context.Context, sensorID string) (*entities.StorageReading, error)
}
