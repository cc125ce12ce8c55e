package repositoryImp

import (
	"time"

	"gorm.io/gorm"

	"agroclimate/entities"
	"agroclimate/pkg/planting/repository"
)

type plantingRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PlantingRepository { return &plantingRepo{db} }

func (r *plantingRepo) Create(p *entities.PlantingRecord) error { return r.db.Create(p).Error }

func (r *plantingRepo) LatestByField(farmerID string, fieldID uint) (*entities.PlantingRecord, error) {
	var p entities.PlantingRecord
	if err := r.db.Where("farmer_id = ? AND field_id = ?", farmerID, fieldID).
		Order("planting_date DESC").First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *plantingRepo) ListByField(farmerID string, fieldID uint) ([]entities.PlantingRecord, error) {
	var ps []entities.PlantingRecord
	if err := r.db.Where("farmer_id = ? AND field_id = ?", farmerID, fieldID).
		Order("planting_date ASC").Find(&ps).Error; err != nil {
		return nil, err
	}
	return ps, nil
}

func (r *plantingRepo) ActiveByField(farmerID string, fieldID uint, asOf time.Time, maturityDays func(crop, variety string) int) ([]entities.PlantingRecord, error) {
	all, err := r.ListByField(farmerID, fieldID)
	if err != nil {
		return nil, err
	}
	var out []entities.PlantingRecord
	for _, p := range all {
		if p.PlantingDate.AddDate(0, 0, maturityDays(p.Crop, p.Variety)).After(asOf) {
			out = append(out, p)
		}
	}
	return out, nil
}
