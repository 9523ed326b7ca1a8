// Package acl implements the Reservation-side anti-corruption layer
// against the Person context. The facade reads through a local cache and
// falls back to the authoritative Person repository; a cache failure can
// never produce a wrong verdict, only a slower one.
package acl

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/restaurant/backend/internal/domain/identity"
	"github.com/restaurant/backend/internal/domain/reservation/acl"
	"github.com/restaurant/backend/internal/domain/shared"
)

// UserACL implements the reservation context's UserQueryService over the
// Person repository
type UserACL struct {
	userRepo identity.UserRepository
	cache    acl.UserReferenceCache
	logger   *zap.Logger
}

// NewUserACL creates a new user ACL facade. The cache is optional; a nil
// cache means every verdict hits the repository.
func NewUserACL(userRepo identity.UserRepository, cache acl.UserReferenceCache, logger *zap.Logger) *UserACL {
	return &UserACL{
		userRepo: userRepo,
		cache:    cache,
		logger:   logger,
	}
}

// IsValidUserCode returns true iff the user code resolves to exactly one
// person. A cached reference answers without consulting the repository,
// so a positive verdict may lag a person's deletion by up to the cache
// TTL.
func (a *UserACL) IsValidUserCode(ctx context.Context, userCode uuid.UUID) (bool, error) {
	if userCode == uuid.Nil {
		return false, nil
	}

	if a.cache != nil {
		if _, found := a.cache.Get(ctx, userCode); found {
			return true, nil
		}
	}

	users, err := a.userRepo.FindAllByUserCode(ctx, userCode)
	if err != nil {
		return false, fmt.Errorf("failed to resolve user code: %w", err)
	}

	if len(users) != 1 {
		if len(users) > 1 {
			// Storage violated user code uniqueness; refuse the code
			// rather than guess which person it means
			a.logger.Error("user code resolves to multiple persons",
				zap.String("user_code", userCode.String()),
				zap.Int("count", len(users)),
			)
		}
		return false, nil
	}

	a.cacheReference(ctx, users[0])
	return true, nil
}

// GetUserReference retrieves the minimal user projection for the given
// user code
func (a *UserACL) GetUserReference(ctx context.Context, userCode uuid.UUID) (acl.UserReference, error) {
	if userCode == uuid.Nil {
		return acl.UserReference{}, shared.ErrNotFound
	}

	if a.cache != nil {
		if ref, found := a.cache.Get(ctx, userCode); found {
			return ref, nil
		}
	}

	user, err := a.userRepo.FindByUserCode(ctx, userCode)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return acl.UserReference{}, shared.ErrNotFound
		}
		return acl.UserReference{}, fmt.Errorf("failed to resolve user code: %w", err)
	}

	ref := a.cacheReference(ctx, user)
	return ref, nil
}

// cacheReference stores the projection best effort; a failing cache is
// logged and ignored
func (a *UserACL) cacheReference(ctx context.Context, user *identity.User) acl.UserReference {
	ref := acl.UserReference{
		UserCode: user.UserCode,
		Username: user.Username,
	}

	if a.cache != nil {
		if err := a.cache.Set(ctx, ref); err != nil {
			a.logger.Warn("failed to cache user reference",
				zap.String("user_code", ref.UserCode.String()),
				zap.Error(err),
			)
		}
	}

	return ref
}

// Ensure UserACL implements UserQueryService
var _ acl.UserQueryService = (*UserACL)(nil)
