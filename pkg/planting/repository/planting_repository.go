package repository

import (
	"time"

	"agroclimate/entities"
)

type PlantingRepository interface {
	Create(p *entities.PlantingRecord) error
	LatestByField(farmerID string, fieldID uint) (*entities.PlantingRecord, error)
	ListByField(farmerID string, fieldID uint) ([]entities.PlantingRecord, error)
	// ActiveByField returns plantings whose predicted harvest has not
	// passed yet, judged against a per-crop maturity lookup.
	ActiveByField(farmerID string, fieldID uint, asOf time.Time, maturityDays func(crop, variety string) int) ([]entities.PlantingRecord, error)
}
