package reservation

import (
	"context"
)

// Repository defines the interface for reservation persistence operations
type Repository interface {
	// Save persists the reservation, assigning the surrogate ID on first
	// save, and returns the stored aggregate
	Save(ctx context.Context, r *Reservation) (*Reservation, error)

	// FindByID finds a reservation by surrogate ID
	FindByID(ctx context.Context, id int64) (*Reservation, error)

	// FindAll returns all reservations in ascending ID order
	FindAll(ctx context.Context) ([]*Reservation, error)

	// DeleteByID deletes a reservation by ID. Deleting an ID that does
	// not exist is not an error.
	DeleteByID(ctx context.Context, id int64) error
}
