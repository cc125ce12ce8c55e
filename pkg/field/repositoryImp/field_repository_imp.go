package repositoryImp

import (
	"gorm.io/gorm"

	"agroclimate/entities"
	"agroclimate/pkg/field/repository"
)

type fieldRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FieldRepository { return &fieldRepo{db} }

func (r *fieldRepo) Create(f *entities.Field) error { return r.db.Create(f).Error }

func (r *fieldRepo) FindByID(id uint, farmerID string) (*entities.Field, error) {
	var f entities.Field
	if err := r.db.Where("field_id = ? AND farmer_id = ?", id, farmerID).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *fieldRepo) ListByFarmer(farmerID string) ([]entities.Field, error) {
	var fs []entities.Field
	if err := r.db.Where("farmer_id = ?", farmerID).Order("field_id ASC").Find(&fs).Error; err != nil {
		return nil, err
	}
	return fs, nil
}
