package event

import (
	"context"

	"github.com/restaurant/backend/internal/domain/reservation"
	"github.com/restaurant/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ReservationAuditHandler writes an audit log line for every
// reservation lifecycle event
type ReservationAuditHandler struct {
	logger *zap.Logger
}

// NewReservationAuditHandler creates a new audit handler
func NewReservationAuditHandler(logger *zap.Logger) *ReservationAuditHandler {
	return &ReservationAuditHandler{logger: logger}
}

// Handle processes a reservation domain event
func (h *ReservationAuditHandler) Handle(_ context.Context, e shared.DomainEvent) error {
	fields := []zap.Field{
		zap.String("event_id", e.EventID().String()),
		zap.Int64("reservation_id", e.AggregateID()),
		zap.Time("occurred_at", e.OccurredAt()),
	}

	switch ev := e.(type) {
	case *reservation.ReservationCreatedEvent:
		fields = append(fields,
			zap.String("user_code", ev.UserCode.String()),
			zap.Int("party_size", ev.PartySize),
			zap.Time("reservation_date", ev.ReservationDate))
	case *reservation.ReservationStatusChangedEvent:
		fields = append(fields,
			zap.String("from", ev.FromStatus),
			zap.String("to", ev.ToStatus))
	}

	h.logger.Info(e.EventType(), fields...)
	return nil
}

// EventTypes returns the reservation event types this handler audits
func (h *ReservationAuditHandler) EventTypes() []string {
	return []string{
		reservation.EventTypeReservationCreated,
		reservation.EventTypeReservationStatusChanged,
		reservation.EventTypeReservationDeleted,
	}
}

// Ensure ReservationAuditHandler implements EventHandler
var _ shared.EventHandler = (*ReservationAuditHandler)(nil)
