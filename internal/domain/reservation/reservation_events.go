package reservation

import (
	"time"

	"github.com/google/uuid"
	"github.com/restaurant/backend/internal/domain/shared"
)

// Aggregate type constant for Reservation
const AggregateTypeReservation = "Reservation"

// Reservation domain event types
const (
	EventTypeReservationCreated       = "ReservationCreated"
	EventTypeReservationStatusChanged = "ReservationStatusChanged"
	EventTypeReservationDeleted       = "ReservationDeleted"
)

// ReservationCreatedEvent is published when a new reservation is created
type ReservationCreatedEvent struct {
	shared.BaseDomainEvent
	UserCode        uuid.UUID `json:"user_code"`
	ReservationDate time.Time `json:"reservation_date"`
	PartySize       int       `json:"party_size"`
}

// NewReservationCreatedEvent creates a new ReservationCreatedEvent
func NewReservationCreatedEvent(r *Reservation) *ReservationCreatedEvent {
	return &ReservationCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeReservationCreated, AggregateTypeReservation, r.ID),
		UserCode:        r.UserCode,
		ReservationDate: r.ReservationDate,
		PartySize:       r.PartySize,
	}
}

// ReservationStatusChangedEvent is published on every legal status transition
type ReservationStatusChangedEvent struct {
	shared.BaseDomainEvent
	UserCode   uuid.UUID `json:"user_code"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
}

// NewReservationStatusChangedEvent creates a new ReservationStatusChangedEvent
func NewReservationStatusChangedEvent(r *Reservation, from Status) *ReservationStatusChangedEvent {
	return &ReservationStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeReservationStatusChanged, AggregateTypeReservation, r.ID),
		UserCode:        r.UserCode,
		FromStatus:      from.String(),
		ToStatus:        r.Status.String(),
	}
}

// ReservationDeletedEvent is published when a reservation is deleted
type ReservationDeletedEvent struct {
	shared.BaseDomainEvent
}

// NewReservationDeletedEvent creates a new ReservationDeletedEvent
func NewReservationDeletedEvent(id int64) *ReservationDeletedEvent {
	return &ReservationDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeReservationDeleted, AggregateTypeReservation, id),
	}
}
