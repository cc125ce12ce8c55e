package repository

import (
	"time"

	"agroclimate/entities"
)

// ObservationRepository is the append-only store for crowdsourced field
// observations. No mutation or deletion paths.
type ObservationRepository interface {
	RecordRain(r *entities.RainReport) error
	RecordSoil(r *entities.SoilMoistureReport) error
	// RecentRain returns rain reports within radiusKM of loc, no older
	// than maxAge, newest first.
	RecentRain(loc entities.Location, radiusKM float64, maxAge time.Duration) ([]entities.RainReport, error)
	// LatestSoil returns the most recent soil report for the field, or
	// gorm.ErrRecordNotFound.
	LatestSoil(farmerID string, fieldID uint) (*entities.SoilMoistureReport, error)
}
