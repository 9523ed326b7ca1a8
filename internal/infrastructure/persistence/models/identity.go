package models

import (
	"github.com/google/uuid"
	"github.com/restaurant/backend/internal/domain/identity"
	"github.com/restaurant/backend/internal/domain/shared"
)

// UserModel is the persistence model for identity.User
type UserModel struct {
	BaseModel
	UserCode  uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Username  string    `gorm:"size:50;uniqueIndex;not null"`
	FirstName string    `gorm:"size:100"`
	LastName  string    `gorm:"size:100"`
	Email     string    `gorm:"size:254"`
}

// TableName specifies the table name for UserModel
func (UserModel) TableName() string {
	return "persons"
}

// ToDomain converts UserModel to domain User
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: m.BaseModel.ToDomain(),
		},
		UserCode:  m.UserCode,
		Username:  m.Username,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
	}
}

// UserModelFromDomain converts domain User to UserModel
func UserModelFromDomain(user *identity.User) *UserModel {
	model := &UserModel{
		UserCode:  user.UserCode,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}
	model.FromDomainBaseEntity(user.BaseEntity)
	return model
}

// RoleModel is the persistence model for identity.Role
type RoleModel struct {
	BaseModel
	Name string `gorm:"size:50;uniqueIndex;not null"`
}

// TableName specifies the table name for RoleModel
func (RoleModel) TableName() string {
	return "roles"
}

// ToDomain converts RoleModel to domain Role
func (m *RoleModel) ToDomain() *identity.Role {
	return &identity.Role{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: m.BaseModel.ToDomain(),
		},
		Name: identity.RoleName(m.Name),
	}
}

// RoleModelFromDomain converts domain Role to RoleModel
func RoleModelFromDomain(role *identity.Role) *RoleModel {
	model := &RoleModel{
		Name: string(role.Name),
	}
	model.FromDomainBaseEntity(role.BaseEntity)
	return model
}
