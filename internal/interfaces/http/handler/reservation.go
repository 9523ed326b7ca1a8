package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	reservationapp "github.com/restaurant/backend/internal/application/reservation"
	"github.com/restaurant/backend/internal/domain/reservation/acl"
	"github.com/restaurant/backend/internal/domain/shared"
	"github.com/restaurant/backend/internal/interfaces/http/dto"
)

// Failure message bodies of the reservation API. These are part of the
// wire contract consumed by the frontend and must not be reworded.
const (
	msgInvalidUserCode   = "Invalid userCodeUser: User does not exist"
	msgCreateFailed      = "Failed to create reservation."
	msgCreatedNotFetched = "Reservation was created but could not be retrieved."
)

// ReservationCommands is the mutating half of the reservation pipeline
// as seen by the HTTP layer
type ReservationCommands interface {
	Create(ctx context.Context, cmd reservationapp.CreateReservationCommand) reservationapp.CreateResult
	Update(ctx context.Context, cmd reservationapp.UpdateReservationCommand) (*reservationapp.ReservationDTO, error)
	Delete(ctx context.Context, cmd reservationapp.DeleteReservationCommand) error
}

// ReservationQueries is the read half of the reservation pipeline
type ReservationQueries interface {
	GetByID(ctx context.Context, query reservationapp.GetReservationByIDQuery) (*reservationapp.ReservationDTO, error)
	GetAll(ctx context.Context, query reservationapp.GetAllReservationsQuery) ([]reservationapp.ReservationDTO, error)
}

// ReservationHandler handles reservation-related API endpoints
type ReservationHandler struct {
	BaseHandler
	commands ReservationCommands
	queries  ReservationQueries
	users    acl.UserQueryService
	logger   *zap.Logger
}

// NewReservationHandler creates a new ReservationHandler
func NewReservationHandler(commands ReservationCommands, queries ReservationQueries, users acl.UserQueryService, logger *zap.Logger) *ReservationHandler {
	return &ReservationHandler{
		commands: commands,
		queries:  queries,
		users:    users,
		logger:   logger,
	}
}

// RegisterRoutes registers reservation routes
func (h *ReservationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reservations := rg.Group("/reservations")
	{
		reservations.GET("", h.GetAll)
		reservations.POST("", h.Create)
		reservations.PUT("/:id", h.Update)
		reservations.DELETE("/:id", h.Delete)
	}
}

// Create handles POST /reservations.
// The user code is validated against the Person context before any
// write; an unknown code is a semantic failure, not a malformed request.
func (h *ReservationHandler) Create(c *gin.Context) {
	var req dto.CreateReservationResource
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Message(c, http.StatusBadRequest, msgCreateFailed)
		return
	}

	valid, err := h.users.IsValidUserCode(c.Request.Context(), req.ParsedUserCode())
	if err != nil {
		h.logger.Error("Failed to validate user code", zap.Error(err))
		h.Message(c, http.StatusBadRequest, msgCreateFailed)
		return
	}
	if !valid {
		h.Message(c, http.StatusUnprocessableEntity, msgInvalidUserCode)
		return
	}

	result := h.commands.Create(c.Request.Context(), reservationapp.CreateReservationCommand{
		UserCode:        req.ParsedUserCode(),
		ReservationDate: req.ReservationDate,
		PartySize:       req.PartySize,
	})
	if !result.IsCreated() {
		h.Message(c, http.StatusBadRequest, msgCreateFailed)
		return
	}

	// Read the persisted state back so the response reflects storage,
	// not the request
	created, err := h.queries.GetByID(c.Request.Context(), reservationapp.GetReservationByIDQuery{ID: result.ID()})
	if err != nil {
		h.logger.Error("Created reservation could not be read back",
			zap.Int64("id", result.ID()),
			zap.Error(err))
		h.Message(c, http.StatusInternalServerError, msgCreatedNotFetched)
		return
	}

	c.JSON(http.StatusCreated, dto.NewReservationResource(*created))
}

// GetAll handles GET /reservations. An empty list is 204, not an empty
// JSON array.
func (h *ReservationHandler) GetAll(c *gin.Context) {
	dtos, err := h.queries.GetAll(c.Request.Context(), reservationapp.GetAllReservationsQuery{})
	if err != nil {
		h.logger.Error("Failed to list reservations", zap.Error(err))
		c.Status(http.StatusInternalServerError)
		return
	}

	if len(dtos) == 0 {
		h.NoContent(c)
		return
	}

	c.JSON(http.StatusOK, dto.NewReservationResourceList(dtos))
}

// Update handles PUT /reservations/:id as a full replacement.
// A missing reservation and an illegal status transition are both
// answered with a bare 400; the body carries no diagnostic. A storage
// fault is answered with 500.
func (h *ReservationHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.UpdateReservationResource
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	updated, err := h.commands.Update(c.Request.Context(), reservationapp.UpdateReservationCommand{
		ID:              id,
		ReservationDate: req.ReservationDate,
		PartySize:       req.PartySize,
		Status:          req.Status,
	})
	if err != nil {
		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) && domainErr.Code == "INTERNAL_ERROR" {
			h.logger.Error("Failed to update reservation", zap.Int64("id", id), zap.Error(err))
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusBadRequest)
		return
	}

	c.JSON(http.StatusOK, dto.NewReservationResource(*updated))
}

// Delete handles DELETE /reservations/:id. Deletion is idempotent and
// answers 204 whether or not the reservation existed; an unparseable ID
// is a malformed request.
func (h *ReservationHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.commands.Delete(c.Request.Context(), reservationapp.DeleteReservationCommand{ID: id}); err != nil {
		h.logger.Error("Failed to delete reservation", zap.Int64("id", id), zap.Error(err))
		c.Status(http.StatusInternalServerError)
		return
	}

	h.NoContent(c)
}
