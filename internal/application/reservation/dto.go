package reservation

import (
	"time"

	"github.com/google/uuid"
	"github.com/restaurant/backend/internal/domain/reservation"
)

// ReservationDTO represents reservation data transfer object
type ReservationDTO struct {
	ID              int64     `json:"id"`
	UserCode        uuid.UUID `json:"user_code"`
	ReservationDate time.Time `json:"reservation_date"`
	PartySize       int       `json:"party_size"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func toReservationDTO(r *reservation.Reservation) ReservationDTO {
	return ReservationDTO{
		ID:              r.ID,
		UserCode:        r.UserCode,
		ReservationDate: r.ReservationDate,
		PartySize:       r.PartySize,
		Status:          r.Status.String(),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}
