package persistence

import (
	"context"
	"errors"

	"github.com/restaurant/backend/internal/domain/identity"
	"github.com/restaurant/backend/internal/domain/shared"
	"github.com/restaurant/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormRoleRepository implements identity.RoleRepository using GORM
type GormRoleRepository struct {
	db *gorm.DB
}

// NewGormRoleRepository creates a new GormRoleRepository
func NewGormRoleRepository(db *gorm.DB) *GormRoleRepository {
	return &GormRoleRepository{db: db}
}

// Create creates a new role
func (r *GormRoleRepository) Create(ctx context.Context, role *identity.Role) error {
	model := models.RoleModelFromDomain(role)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	role.ID = model.ID
	return nil
}

// FindByID finds a role by ID
func (r *GormRoleRepository) FindByID(ctx context.Context, id int64) (*identity.Role, error) {
	var model models.RoleModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByName finds a role by catalog name
func (r *GormRoleRepository) FindByName(ctx context.Context, name identity.RoleName) (*identity.Role, error) {
	var model models.RoleModel
	if err := r.db.WithContext(ctx).First(&model, "name = ?", string(name)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all roles
func (r *GormRoleRepository) FindAll(ctx context.Context) ([]*identity.Role, error) {
	var roleModels []*models.RoleModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&roleModels).Error; err != nil {
		return nil, err
	}

	roles := make([]*identity.Role, 0, len(roleModels))
	for _, model := range roleModels {
		roles = append(roles, model.ToDomain())
	}
	return roles, nil
}

// ExistsByName checks if a role with the given name exists
func (r *GormRoleRepository) ExistsByName(ctx context.Context, name identity.RoleName) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.RoleModel{}).
		Where("name = ?", string(name)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure GormRoleRepository implements RoleRepository
var _ identity.RoleRepository = (*GormRoleRepository)(nil)
