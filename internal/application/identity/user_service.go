package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/restaurant/backend/internal/domain/identity"
	"github.com/restaurant/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// UserQueryService handles read operations on the Person context
type UserQueryService struct {
	userRepo identity.UserRepository
	logger   *zap.Logger
}

// NewUserQueryService creates a new user query service
func NewUserQueryService(userRepo identity.UserRepository, logger *zap.Logger) *UserQueryService {
	return &UserQueryService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetByID finds a user by surrogate ID
func (s *UserQueryService) GetByID(ctx context.Context, id int64) (*UserDTO, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("USER_NOT_FOUND", "User not found")
		}
		s.logger.Error("Failed to find user", zap.Int64("id", id), zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to find user")
	}

	dto := toUserDTO(user)
	return &dto, nil
}

// GetAllByUserCode returns every user carrying the given user code.
// The list form is a defensive read: the code is unique, so more than
// one entry means the storage invariant has been violated.
func (s *UserQueryService) GetAllByUserCode(ctx context.Context, userCode uuid.UUID) ([]UserDTO, error) {
	users, err := s.userRepo.FindAllByUserCode(ctx, userCode)
	if err != nil {
		s.logger.Error("Failed to find users by user code",
			zap.String("user_code", userCode.String()),
			zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to find users")
	}

	dtos := make([]UserDTO, 0, len(users))
	for _, user := range users {
		dtos = append(dtos, toUserDTO(user))
	}
	return dtos, nil
}

// ExistsByUsername checks if a username is taken
func (s *UserQueryService) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	exists, err := s.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		s.logger.Error("Failed to check username", zap.String("username", username), zap.Error(err))
		return false, shared.NewDomainError("INTERNAL_ERROR", "Failed to check username")
	}
	return exists, nil
}
