package identity

import (
	"context"

	"github.com/restaurant/backend/internal/domain/identity"
	"github.com/restaurant/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// RoleService handles role catalog operations
type RoleService struct {
	roleRepo identity.RoleRepository
	logger   *zap.Logger
}

// NewRoleService creates a new role service
func NewRoleService(roleRepo identity.RoleRepository, logger *zap.Logger) *RoleService {
	return &RoleService{
		roleRepo: roleRepo,
		logger:   logger,
	}
}

// SeedRoles inserts every catalog role that is not yet in storage.
// It is idempotent: running it N times yields the same state as running
// it once. It must complete before the HTTP listener accepts traffic.
func (s *RoleService) SeedRoles(ctx context.Context) error {
	for _, name := range identity.AllRoleNames() {
		exists, err := s.roleRepo.ExistsByName(ctx, name)
		if err != nil {
			s.logger.Error("Failed to check role existence",
				zap.String("name", string(name)),
				zap.Error(err))
			return shared.NewDomainError("INTERNAL_ERROR", "Failed to check role existence")
		}
		if exists {
			continue
		}

		role, err := identity.NewRole(name)
		if err != nil {
			return err
		}
		if err := s.roleRepo.Create(ctx, role); err != nil {
			s.logger.Error("Failed to seed role",
				zap.String("name", string(name)),
				zap.Error(err))
			return shared.NewDomainError("INTERNAL_ERROR", "Failed to seed role")
		}

		s.logger.Info("Seeded role", zap.String("name", string(name)))
	}

	return nil
}

// GetAll returns all roles in storage
func (s *RoleService) GetAll(ctx context.Context) ([]RoleDTO, error) {
	roles, err := s.roleRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list roles", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list roles")
	}

	dtos := make([]RoleDTO, 0, len(roles))
	for _, role := range roles {
		dtos = append(dtos, toRoleDTO(role))
	}
	return dtos, nil
}
