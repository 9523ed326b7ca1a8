package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	identityapp "github.com/restaurant/backend/internal/application/identity"
	"github.com/restaurant/backend/internal/interfaces/http/dto"
)

// UserQueries is the read surface of the Person context as seen by the
// HTTP layer
type UserQueries interface {
	GetByID(ctx context.Context, id int64) (*identityapp.UserDTO, error)
	GetAllByUserCode(ctx context.Context, userCode uuid.UUID) ([]identityapp.UserDTO, error)
}

// UserHandler handles user-related API endpoints. The surface is
// read-only; user administration happens out of band.
type UserHandler struct {
	BaseHandler
	queries UserQueries
	logger  *zap.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(queries UserQueries, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		queries: queries,
		logger:  logger,
	}
}

// RegisterRoutes registers user routes
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.GET("/:id", h.GetByID)
		users.GET("/by-code/:userCode", h.GetAllByUserCode)
	}
}

// GetByID handles GET /users/:id
func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	user, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResource(*user))
}

// GetAllByUserCode handles GET /users/by-code/:userCode. The list form
// is deliberate; the code is unique, so a multi-element answer signals a
// storage anomaly to the caller.
func (h *UserHandler) GetAllByUserCode(c *gin.Context) {
	userCode, err := uuid.Parse(c.Param("userCode"))
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	users, err := h.queries.GetAllByUserCode(c.Request.Context(), userCode)
	if err != nil {
		h.logger.Error("Failed to find users by user code",
			zap.String("user_code", userCode.String()),
			zap.Error(err))
		c.Status(http.StatusInternalServerError)
		return
	}

	if len(users) == 0 {
		h.NoContent(c)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResourceList(users))
}
