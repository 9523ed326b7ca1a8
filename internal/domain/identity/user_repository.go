package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user persistence operations.
// The Person context owns all writes; other contexts may only read, and
// only through the ACL facade.
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *User) error

	// FindByID finds a user by surrogate ID
	FindByID(ctx context.Context, id int64) (*User, error)

	// FindByUserCode finds a user by the opaque user code
	FindByUserCode(ctx context.Context, userCode uuid.UUID) (*User, error)

	// FindAllByUserCode finds all users with the given user code.
	// The user code is unique, so more than one result means the
	// uniqueness invariant has been violated in storage.
	FindAllByUserCode(ctx context.Context, userCode uuid.UUID) ([]*User, error)

	// ExistsByUsername checks if a user with the given username exists
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
