package service

import (
	"context"

	"inmobiliaria/internal/model"
	"inmobiliaria/internal/repository"
)

// ReservationService exposes reservation operations. No availability or
// date-ordering checks are performed; any range is accepted.
type ReservationService interface {
	Create(ctx context.Context, reservation *model.Reservation) (*model.Reservation, error)
	List(ctx context.Context, offset, limit int) ([]model.Reservation, error)
}

type reservationService struct {
	repo repository.ReservationRepository
}

// NewReservationService builds a ReservationService over the given repository.
func NewReservationService(repo repository.ReservationRepository) ReservationService {
	return &reservationService{repo: repo}
}

func (s *reservationService) Create(ctx context.Context, reservation *model.Reservation) (*model.Reservation, error) {
	if err := s.repo.Create(ctx, reservation); err != nil {
		return nil, err
	}
	return reservation, nil
}

func (s *reservationService) List(ctx context.Context, offset, limit int) ([]model.Reservation, error) {
	return s.repo.List(ctx, offset, limit)
}
