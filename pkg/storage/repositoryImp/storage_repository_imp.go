package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"agroclimate/entities"
	"agroclimate/pkg/storage/repository"
)

type storageRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.StorageRepository { return &storageRepo{db} }

func (r *storageRepo) CreateSensor(s *entities.StorageSensor) error { return r.db.Create(s).Error }

func (r *storageRepo) AddReading(rd *entities.StorageReading) error { return r.db.Create(rd).Error }

func (r *storageRepo) LatestReading(ctx context.Context, sensorID string) (*entities.StorageReading, error) {
	var rd entities.StorageReading
	if err := r.db.WithContext(ctx).Where("sensor_id = ?", sensorID).
		Order("timestamp DESC").First(&rd).Error; err != nil {
		return nil, err
	}
	return &rd, nil
}
