package repository

import (
	"context"

	"agroclimate/entities"
)

// StorageRepository persists sensor registrations and telemetry
// readings. It also satisfies storage.Collaborator.
type StorageRepository interface {
	CreateSensor(s *entities.StorageSensor) error
	AddReading(r *entities.StorageReading) error
	LatestReading(ctx context.Context, sensorID string) (*entities.StorageReading, error)
}
