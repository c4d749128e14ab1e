package service

import (
	"context"

	"inmobiliaria/internal/model"
	"inmobiliaria/internal/repository"
)

// PropertyService exposes property operations.
type PropertyService interface {
	Create(ctx context.Context, property *model.Property) (*model.Property, error)
	List(ctx context.Context, offset, limit int) ([]model.Property, error)
}

type propertyService struct {
	repo repository.PropertyRepository
}

// NewPropertyService builds a PropertyService over the given repository.
func NewPropertyService(repo repository.PropertyRepository) PropertyService {
	return &propertyService{repo: repo}
}

func (s *propertyService) Create(ctx context.Context, property *model.Property) (*model.Property, error) {
	if err := s.repo.Create(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

func (s *propertyService) List(ctx context.Context, offset, limit int) ([]model.Property, error) {
	return s.repo.List(ctx, offset, limit)
}
