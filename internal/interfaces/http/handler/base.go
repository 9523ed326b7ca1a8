package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Message sends a plain-text message body with the given status.
// Failure messages on this API are plain strings, not JSON envelopes.
func (h *BaseHandler) Message(c *gin.Context, status int, message string) {
	c.String(status, message)
}

// parseIDParam extracts a positive numeric ID from the named path
// parameter. Returns 0 and false when the parameter is not a valid ID.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
