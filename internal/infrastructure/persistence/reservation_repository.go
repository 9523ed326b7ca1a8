package persistence

import (
	"context"
	"errors"

	"github.com/restaurant/backend/internal/domain/reservation"
	"github.com/restaurant/backend/internal/domain/shared"
	"github.com/restaurant/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormReservationRepository implements reservation.Repository using GORM
type GormReservationRepository struct {
	db *gorm.DB
}

// NewGormReservationRepository creates a new GormReservationRepository
func NewGormReservationRepository(db *gorm.DB) *GormReservationRepository {
	return &GormReservationRepository{db: db}
}

// Save persists the reservation and returns the stored aggregate with
// the surrogate ID assigned
func (r *GormReservationRepository) Save(ctx context.Context, res *reservation.Reservation) (*reservation.Reservation, error) {
	model := models.ReservationModelFromDomain(res)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return nil, err
	}
	res.ID = model.ID
	res.CreatedAt = model.CreatedAt
	res.UpdatedAt = model.UpdatedAt
	return res, nil
}

// FindByID finds a reservation by surrogate ID
func (r *GormReservationRepository) FindByID(ctx context.Context, id int64) (*reservation.Reservation, error) {
	var model models.ReservationModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns all reservations in ascending ID order
func (r *GormReservationRepository) FindAll(ctx context.Context) ([]*reservation.Reservation, error) {
	var reservationModels []*models.ReservationModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&reservationModels).Error; err != nil {
		return nil, err
	}

	reservations := make([]*reservation.Reservation, 0, len(reservationModels))
	for _, model := range reservationModels {
		reservations = append(reservations, model.ToDomain())
	}
	return reservations, nil
}

// DeleteByID deletes a reservation by ID. Zero rows affected is not an
// error: delete is idempotent.
func (r *GormReservationRepository) DeleteByID(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.ReservationModel{}, "id = ?", id).Error
}

// Ensure GormReservationRepository implements Repository
var _ reservation.Repository = (*GormReservationRepository)(nil)
