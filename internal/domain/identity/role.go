package identity

import (
	"strings"

	"github.com/restaurant/backend/internal/domain/shared"
)

// RoleName identifies a role from the closed catalog
type RoleName string

// The role catalog. Storage never holds a name outside this set, and at
// most one row per value.
const (
	RoleGuest RoleName = "ROLE_GUEST"
	RoleAdmin RoleName = "ROLE_ADMIN"
)

// AllRoleNames returns the full role catalog in seeding order
func AllRoleNames() []RoleName {
	return []RoleName{RoleGuest, RoleAdmin}
}

// IsValid reports whether the name belongs to the catalog
func (n RoleName) IsValid() bool {
	switch n {
	case RoleGuest, RoleAdmin:
		return true
	}
	return false
}

// Role represents an identity role.
// Roles form a read-only reference catalog after seeding.
type Role struct {
	shared.BaseAggregateRoot
	Name RoleName
}

// NewRole creates a new role with a catalog name
func NewRole(name RoleName) (*Role, error) {
	if err := validateRoleName(name); err != nil {
		return nil, err
	}

	role := &Role{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
	}

	role.AddDomainEvent(NewRoleCreatedEvent(role))

	return role, nil
}

func validateRoleName(name RoleName) error {
	if strings.TrimSpace(string(name)) == "" {
		return shared.NewDomainError("INVALID_ROLE_NAME", "Role name cannot be empty")
	}
	if !name.IsValid() {
		return shared.NewDomainError("INVALID_ROLE_NAME", "Role name is not part of the catalog")
	}
	return nil
}
