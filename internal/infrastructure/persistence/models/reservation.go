package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/restaurant/backend/internal/domain/reservation"
	"github.com/restaurant/backend/internal/domain/shared"
)

// ReservationModel is the persistence model for reservation.Reservation.
// The user code column deliberately has no foreign key to persons:
// referential integrity across the context boundary is enforced by the
// ACL, not the store.
type ReservationModel struct {
	BaseModel
	UserCode        uuid.UUID `gorm:"type:uuid;index;not null"`
	ReservationDate time.Time `gorm:"not null"`
	PartySize       int       `gorm:"not null"`
	Status          string    `gorm:"size:20;not null"`
}

// TableName specifies the table name for ReservationModel
func (ReservationModel) TableName() string {
	return "reservations"
}

// ToDomain converts ReservationModel to domain Reservation
func (m *ReservationModel) ToDomain() *reservation.Reservation {
	return &reservation.Reservation{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: m.BaseModel.ToDomain(),
		},
		UserCode:        m.UserCode,
		ReservationDate: m.ReservationDate,
		PartySize:       m.PartySize,
		Status:          reservation.Status(m.Status),
	}
}

// ReservationModelFromDomain converts domain Reservation to ReservationModel
func ReservationModelFromDomain(r *reservation.Reservation) *ReservationModel {
	model := &ReservationModel{
		UserCode:        r.UserCode,
		ReservationDate: r.ReservationDate,
		PartySize:       r.PartySize,
		Status:          r.Status.String(),
	}
	model.FromDomainBaseEntity(r.BaseEntity)
	return model
}
