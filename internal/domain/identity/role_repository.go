package identity

import (
	"context"
)

// RoleRepository defines the interface for role persistence operations
type RoleRepository interface {
	// Create creates a new role
	Create(ctx context.Context, role *Role) error

	// FindByID finds a role by ID
	FindByID(ctx context.Context, id int64) (*Role, error)

	// FindByName finds a role by catalog name
	FindByName(ctx context.Context, name RoleName) (*Role, error)

	// FindAll finds all roles
	FindAll(ctx context.Context) ([]*Role, error)

	// ExistsByName checks if a role with the given name exists
	ExistsByName(ctx context.Context, name RoleName) (bool, error)
}
