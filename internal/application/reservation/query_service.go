package reservation

import (
	"context"
	"errors"

	"github.com/restaurant/backend/internal/domain/reservation"
	"github.com/restaurant/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// QueryService handles the read half of the reservation pipeline
type QueryService struct {
	repo   reservation.Repository
	logger *zap.Logger
}

// NewQueryService creates a new reservation query service
func NewQueryService(repo reservation.Repository, logger *zap.Logger) *QueryService {
	return &QueryService{
		repo:   repo,
		logger: logger,
	}
}

// GetByID finds a reservation by surrogate ID
func (s *QueryService) GetByID(ctx context.Context, query GetReservationByIDQuery) (*ReservationDTO, error) {
	r, err := s.repo.FindByID(ctx, query.ID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNotFound
		}
		s.logger.Error("Failed to load reservation", zap.Int64("id", query.ID), zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load reservation")
	}

	dto := toReservationDTO(r)
	return &dto, nil
}

// GetAll returns every reservation in ascending surrogate ID order.
// The result may be empty.
func (s *QueryService) GetAll(ctx context.Context, _ GetAllReservationsQuery) ([]ReservationDTO, error) {
	reservations, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list reservations", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list reservations")
	}

	dtos := make([]ReservationDTO, 0, len(reservations))
	for _, r := range reservations {
		dtos = append(dtos, toReservationDTO(r))
	}
	return dtos, nil
}
