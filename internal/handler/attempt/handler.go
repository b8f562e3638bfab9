package attempt

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/passvet/passvet/internal/handler"
	"github.com/passvet/passvet/internal/service/audit"
)

type Handler struct {
	svc *audit.Service
}

func NewHandler(svc *audit.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	attempts := r.Group("/attempts")
	{
		attempts.GET("", h.List)
	}
}

// List returns recorded password attempts, optionally filtered by username
// or outcome.
func (h *Handler) List(c *gin.Context) {
	filters := make(map[string]interface{})
	if v := c.Query("username"); v != "" {
		filters["username"] = v
	}
	if v := c.Query("outcome"); v != "" {
		filters["outcome"] = v
	}

	attempts, err := h.svc.List(c.Request.Context(), filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(attempts))
}
