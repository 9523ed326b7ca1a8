package reservation

import (
	"time"

	"github.com/google/uuid"
)

// CreateReservationCommand requests creation of a new reservation.
// The caller is expected to have validated the user code through the
// ACL; the command service re-checks the domain invariants regardless.
type CreateReservationCommand struct {
	UserCode        uuid.UUID
	ReservationDate time.Time
	PartySize       int
}

// UpdateReservationCommand carries a full replacement of a reservation
type UpdateReservationCommand struct {
	ID              int64
	ReservationDate time.Time
	PartySize       int
	Status          string
}

// DeleteReservationCommand requests deletion by ID
type DeleteReservationCommand struct {
	ID int64
}

// GetReservationByIDQuery requests a single reservation
type GetReservationByIDQuery struct {
	ID int64
}

// GetAllReservationsQuery requests the full reservation list
type GetAllReservationsQuery struct{}

// CreateResult is the outcome of a create command: either the assigned
// surrogate ID or a failure reason. The zero value is a failure, so a
// forgotten result can never masquerade as a created reservation.
type CreateResult struct {
	id     int64
	reason string
}

// Created builds a successful result carrying the assigned ID
func Created(id int64) CreateResult {
	return CreateResult{id: id}
}

// Failed builds a failed result with a reason
func Failed(reason string) CreateResult {
	return CreateResult{reason: reason}
}

// IsCreated reports whether a reservation was persisted
func (r CreateResult) IsCreated() bool {
	return r.id > 0
}

// ID returns the assigned surrogate ID, or 0 when the create failed
func (r CreateResult) ID() int64 {
	return r.id
}

// Reason returns the failure reason, empty on success
func (r CreateResult) Reason() string {
	return r.reason
}
