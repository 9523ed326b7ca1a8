package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/restaurant/backend/internal/domain/identity"
)

// RoleDTO represents role data transfer object
type RoleDTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserDTO represents user data transfer object
type UserDTO struct {
	ID        int64     `json:"id"`
	UserCode  uuid.UUID `json:"user_code"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toRoleDTO(role *identity.Role) RoleDTO {
	return RoleDTO{
		ID:        role.ID,
		Name:      string(role.Name),
		CreatedAt: role.CreatedAt,
		UpdatedAt: role.UpdatedAt,
	}
}

func toUserDTO(user *identity.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		UserCode:  user.UserCode,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
