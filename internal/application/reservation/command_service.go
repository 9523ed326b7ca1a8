package reservation

import (
	"context"
	"errors"

	"github.com/restaurant/backend/internal/domain/reservation"
	"github.com/restaurant/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// CommandService handles the mutating half of the reservation pipeline.
// Domain failures surface as Failed results or sentinel errors, never as
// panics; the HTTP layer is the only translator to status codes.
type CommandService struct {
	repo      reservation.Repository
	publisher shared.EventPublisher
	logger    *zap.Logger
}

// NewCommandService creates a new reservation command service
func NewCommandService(repo reservation.Repository, publisher shared.EventPublisher, logger *zap.Logger) *CommandService {
	return &CommandService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// Create constructs a new reservation in PENDING state and persists it
func (s *CommandService) Create(ctx context.Context, cmd CreateReservationCommand) CreateResult {
	r, err := reservation.NewReservation(cmd.UserCode, cmd.ReservationDate, cmd.PartySize)
	if err != nil {
		s.logger.Warn("Rejected reservation create",
			zap.String("user_code", cmd.UserCode.String()),
			zap.Error(err))
		return Failed(err.Error())
	}

	saved, err := s.repo.Save(ctx, r)
	if err != nil {
		s.logger.Error("Failed to persist reservation", zap.Error(err))
		return Failed("Failed to persist reservation")
	}

	// The store assigns the surrogate ID on insert, so the event recorded
	// at construction time carries a zero aggregate ID. Rebuild it from
	// the persisted state before publishing.
	saved.ClearDomainEvents()
	saved.AddDomainEvent(reservation.NewReservationCreatedEvent(saved))
	s.publishEvents(ctx, saved)

	s.logger.Info("Reservation created",
		zap.Int64("id", saved.ID),
		zap.String("user_code", saved.UserCode.String()))

	return Created(saved.ID)
}

// Update applies a full replacement to an existing reservation,
// enforcing the status state machine. A missing reservation yields
// shared.ErrNotFound, an illegal transition shared.ErrInvalidState.
func (s *CommandService) Update(ctx context.Context, cmd UpdateReservationCommand) (*ReservationDTO, error) {
	r, err := s.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNotFound
		}
		s.logger.Error("Failed to load reservation", zap.Int64("id", cmd.ID), zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load reservation")
	}

	// Replacement fields first, then the status transition, so that a
	// move into a terminal state still carries the submitted fields.
	if err := r.Reschedule(cmd.ReservationDate); err != nil {
		return nil, err
	}
	if err := r.ChangePartySize(cmd.PartySize); err != nil {
		return nil, err
	}
	if err := r.TransitionTo(reservation.Status(cmd.Status)); err != nil {
		s.logger.Warn("Rejected reservation status transition",
			zap.Int64("id", cmd.ID),
			zap.String("from", r.Status.String()),
			zap.String("to", cmd.Status))
		return nil, err
	}

	saved, err := s.repo.Save(ctx, r)
	if err != nil {
		s.logger.Error("Failed to persist reservation update", zap.Int64("id", cmd.ID), zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to persist reservation")
	}

	s.publishEvents(ctx, saved)

	dto := toReservationDTO(saved)
	return &dto, nil
}

// Delete removes a reservation unconditionally. Deleting an ID that does
// not exist is not an error.
func (s *CommandService) Delete(ctx context.Context, cmd DeleteReservationCommand) error {
	if err := s.repo.DeleteByID(ctx, cmd.ID); err != nil {
		s.logger.Error("Failed to delete reservation", zap.Int64("id", cmd.ID), zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete reservation")
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, reservation.NewReservationDeletedEvent(cmd.ID)); err != nil {
			s.logger.Warn("Failed to publish reservation deleted event", zap.Int64("id", cmd.ID), zap.Error(err))
		}
	}

	return nil
}

// publishEvents dispatches and clears the aggregate's pending events.
// Event delivery is best effort; the write already stands.
func (s *CommandService) publishEvents(ctx context.Context, r *reservation.Reservation) {
	if s.publisher == nil {
		return
	}
	events := r.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	if err := s.publisher.Publish(ctx, events...); err != nil {
		s.logger.Warn("Failed to publish reservation events", zap.Int64("id", r.ID), zap.Error(err))
	}
	r.ClearDomainEvents()
}
