package repository

import (
	"context"

	"gorm.io/gorm"

	"inmobiliaria/internal/model"
)

// PropertyRepository defines persistence operations for properties.
type PropertyRepository interface {
	Create(ctx context.Context, property *model.Property) error
	List(ctx context.Context, offset, limit int) ([]model.Property, error)
}

type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository builds a GORM-backed repository.
func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

func (r *propertyRepository) Create(ctx context.Context, property *model.Property) error {
	return r.db.WithContext(ctx).Create(property).Error
}

func (r *propertyRepository) List(ctx context.Context, offset, limit int) ([]model.Property, error) {
	var properties []model.Property
	if err := r.db.WithContext(ctx).Offset(offset).Limit(limit).Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}
