package repository

import (
	"context"

	"gorm.io/gorm"

	"inmobiliaria/internal/model"
)

// ReservationRepository defines persistence operations for reservations.
type ReservationRepository interface {
	Create(ctx context.Context, reservation *model.Reservation) error
	List(ctx context.Context, offset, limit int) ([]model.Reservation, error)
}

type reservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository builds a GORM-backed repository.
func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) Create(ctx context.Context, reservation *model.Reservation) error {
	return r.db.WithContext(ctx).Create(reservation).Error
}

func (r *reservationRepository) List(ctx context.Context, offset, limit int) ([]model.Reservation, error) {
	var reservations []model.Reservation
	if err := r.db.WithContext(ctx).Offset(offset).Limit(limit).Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}
