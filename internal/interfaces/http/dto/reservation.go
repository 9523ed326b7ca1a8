package dto

import (
	"time"

	"github.com/google/uuid"

	reservationapp "github.com/restaurant/backend/internal/application/reservation"
)

// CreateReservationResource represents a request to create a reservation
// @Description Request body for creating a reservation
type CreateReservationResource struct {
	UserCode        string    `json:"userCode" binding:"required,uuid" example:"a2f1f1f2-3b4c-4d5e-8f90-1234567890ab"`
	ReservationDate time.Time `json:"reservationDate" binding:"required" example:"2026-09-01T19:30:00Z"`
	PartySize       int       `json:"partySize" binding:"required,min=1" example:"4"`
	Status          string    `json:"status" binding:"omitempty,oneof=PENDING CONFIRMED COMPLETED CANCELLED" example:"PENDING"`
}

// ParsedUserCode returns the user code as a UUID. Binding has already
// validated the format.
func (r CreateReservationResource) ParsedUserCode() uuid.UUID {
	code, err := uuid.Parse(r.UserCode)
	if err != nil {
		return uuid.Nil
	}
	return code
}

// UpdateReservationResource represents a full replacement of a reservation
// @Description Request body for updating a reservation
type UpdateReservationResource struct {
	UserCode        string    `json:"userCode" binding:"omitempty,uuid"`
	ReservationDate time.Time `json:"reservationDate" binding:"required"`
	PartySize       int       `json:"partySize" binding:"required,min=1"`
	Status          string    `json:"status" binding:"required,oneof=PENDING CONFIRMED COMPLETED CANCELLED"`
}

// ReservationResource represents a reservation on the wire
// @Description Reservation response body
type ReservationResource struct {
	ID              int64     `json:"id"`
	UserCode        string    `json:"userCode"`
	ReservationDate time.Time `json:"reservationDate"`
	PartySize       int       `json:"partySize"`
	Status          string    `json:"status"`
}

// NewReservationResource maps an application DTO to its wire form
func NewReservationResource(d reservationapp.ReservationDTO) ReservationResource {
	return ReservationResource{
		ID:              d.ID,
		UserCode:        d.UserCode.String(),
		ReservationDate: d.ReservationDate,
		PartySize:       d.PartySize,
		Status:          d.Status,
	}
}

// NewReservationResourceList maps a slice of application DTOs
func NewReservationResourceList(dtos []reservationapp.ReservationDTO) []ReservationResource {
	resources := make([]ReservationResource, 0, len(dtos))
	for _, d := range dtos {
		resources = append(resources, NewReservationResource(d))
	}
	return resources
}
