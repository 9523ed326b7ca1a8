package reservation

import (
	"time"

	"github.com/google/uuid"
	"github.com/restaurant/backend/internal/domain/shared"
)

// Status represents the lifecycle status of a reservation
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// IsValid checks if the status is a known value
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// String returns the string representation
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further transition is allowed
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo checks if the status can transition to the target status.
// A status may always "transition" to itself so that full-replacement
// updates which do not change the status remain legal.
func (s Status) CanTransitionTo(target Status) bool {
	if s == target {
		return true
	}
	switch s {
	case StatusPending:
		return target == StatusConfirmed || target == StatusCancelled
	case StatusConfirmed:
		return target == StatusCompleted || target == StatusCancelled
	case StatusCompleted, StatusCancelled:
		return false
	}
	return false
}

// Reservation represents a table reservation.
// It is the aggregate root of the Reservation context. The owning person
// is held by user code only; the Person aggregate never crosses into
// this context.
type Reservation struct {
	shared.BaseAggregateRoot
	UserCode        uuid.UUID
	ReservationDate time.Time
	PartySize       int
	Status          Status
}

// NewReservation creates a new reservation in PENDING state
func NewReservation(userCode uuid.UUID, reservationDate time.Time, partySize int) (*Reservation, error) {
	if userCode == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER_CODE", "User code is required")
	}
	if reservationDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_RESERVATION_DATE", "Reservation date is required")
	}
	if err := validatePartySize(partySize); err != nil {
		return nil, err
	}

	r := &Reservation{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserCode:          userCode,
		ReservationDate:   reservationDate,
		PartySize:         partySize,
		Status:            StatusPending,
	}

	r.AddDomainEvent(NewReservationCreatedEvent(r))

	return r, nil
}

// Reschedule changes the reservation date
func (r *Reservation) Reschedule(reservationDate time.Time) error {
	if reservationDate.IsZero() {
		return shared.NewDomainError("INVALID_RESERVATION_DATE", "Reservation date is required")
	}
	if r.Status.IsTerminal() {
		return shared.ErrInvalidState
	}

	r.ReservationDate = reservationDate
	r.UpdatedAt = time.Now()

	return nil
}

// ChangePartySize changes the number of guests
func (r *Reservation) ChangePartySize(partySize int) error {
	if err := validatePartySize(partySize); err != nil {
		return err
	}
	if r.Status.IsTerminal() {
		return shared.ErrInvalidState
	}

	r.PartySize = partySize
	r.UpdatedAt = time.Now()

	return nil
}

// TransitionTo moves the reservation to the target status, enforcing the
// state machine. Transitioning to the current status is a no-op.
func (r *Reservation) TransitionTo(target Status) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown reservation status")
	}
	if !r.Status.CanTransitionTo(target) {
		return shared.ErrInvalidState
	}
	if r.Status == target {
		return nil
	}

	from := r.Status
	r.Status = target
	r.UpdatedAt = time.Now()

	r.AddDomainEvent(NewReservationStatusChangedEvent(r, from))

	return nil
}

// Confirm transitions the reservation from PENDING to CONFIRMED
func (r *Reservation) Confirm() error {
	return r.TransitionTo(StatusConfirmed)
}

// Complete transitions the reservation from CONFIRMED to COMPLETED
func (r *Reservation) Complete() error {
	return r.TransitionTo(StatusCompleted)
}

// Cancel transitions the reservation to CANCELLED
func (r *Reservation) Cancel() error {
	return r.TransitionTo(StatusCancelled)
}

func validatePartySize(partySize int) error {
	if partySize < 1 {
		return shared.NewDomainError("INVALID_PARTY_SIZE", "Party size must be at least 1")
	}
	return nil
}
