package repository

import "agroclimate/entities"

type FieldRepository interface {
	Create(f *entities.Field) error
	FindByID(id uint, farmerID string) (*entities.Field, error)
	ListByFarmer(farmerID string) ([]entities.Field, error)
}
