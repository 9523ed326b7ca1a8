package dto

import (
	identityapp "github.com/restaurant/backend/internal/application/identity"
)

// UserResource represents a user on the wire. Only the read surface is
// exposed; user writes go through a separate administrative channel.
type UserResource struct {
	ID       int64  `json:"id"`
	UserCode string `json:"userCode"`
	Username string `json:"username"`
}

// NewUserResource maps an application DTO to its wire form
func NewUserResource(d identityapp.UserDTO) UserResource {
	return UserResource{
		ID:       d.ID,
		UserCode: d.UserCode.String(),
		Username: d.Username,
	}
}

// NewUserResourceList maps a slice of application DTOs
func NewUserResourceList(dtos []identityapp.UserDTO) []UserResource {
	resources := make([]UserResource, 0, len(dtos))
	for _, d := range dtos {
		resources = append(resources, NewUserResource(d))
	}
	return resources
}
