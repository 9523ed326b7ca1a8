// Package acl is the anti-corruption layer between the Reservation and
// Person bounded contexts. It is the only permitted dependency from
// Reservation to Person: no Person aggregate crosses the boundary, only
// the validation verdict and the minimal UserReference value object.
package acl

import (
	"context"

	"github.com/google/uuid"
)

// UserReference is the minimal projection of a person used inside the
// Reservation context
type UserReference struct {
	UserCode uuid.UUID
	Username string
}

// IsEmpty returns true if the reference carries no user
func (r UserReference) IsEmpty() bool {
	return r.UserCode == uuid.Nil
}

// UserQueryService defines the interface for validating user codes
// against the Person context. Implementations should consult the local
// UserReferenceCache first and fall back to the Person repository.
//
// This interface is defined in the Reservation domain but implemented in
// the infrastructure layer, following the Dependency Inversion Principle.
type UserQueryService interface {
	// IsValidUserCode returns true iff the user code resolves to exactly
	// one person at the moment of the call
	IsValidUserCode(ctx context.Context, userCode uuid.UUID) (bool, error)

	// GetUserReference retrieves the minimal user projection for the
	// given user code
	GetUserReference(ctx context.Context, userCode uuid.UUID) (UserReference, error)
}

// UserReferenceCache defines the interface for caching user references
// within the Reservation context. A cache failure must degrade to a
// direct Person lookup, never to a false verdict.
type UserReferenceCache interface {
	// Get retrieves a user reference from cache.
	// Returns (UserReference, true) if found, (empty, false) if not cached.
	Get(ctx context.Context, userCode uuid.UUID) (UserReference, bool)

	// Set stores a user reference in cache
	Set(ctx context.Context, ref UserReference) error

	// Invalidate removes a user reference from cache
	Invalidate(ctx context.Context, userCode uuid.UUID) error
}
