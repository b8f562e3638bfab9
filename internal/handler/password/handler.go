package password

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/passvet/passvet/internal/handler"
	"github.com/passvet/passvet/internal/model"
	"github.com/passvet/passvet/internal/service/evaluator"
	pkgerrors "github.com/passvet/passvet/pkg/errors"
)

type Handler struct {
	svc *evaluator.Service
}

func NewHandler(svc *evaluator.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	passwords := r.Group("/passwords")
	{
		passwords.POST("/check", h.Check)
	}
}

// Check evaluates a candidate password. A rejected password is still a 200:
// the evaluation itself succeeded and the verdict carries the reason. Only a
// failed evaluation (unreadable dictionary and the like) maps to an error
// status, and it never accepts the password.
func (h *Handler) Check(c *gin.Context) {
	var req model.CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	verdict, err := h.svc.Evaluate(c.Request.Context(), evaluator.Request{
		Password:  req.Password,
		Account:   req.Account,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		var appErr *pkgerrors.AppError
		if errors.As(err, &appErr) && appErr.Code == pkgerrors.ErrUnavailable {
			c.JSON(http.StatusServiceUnavailable, handler.NewErrorResponse(appErr.Message))
			return
		}
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("evaluation failed"))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(model.CheckResponse{
		Accepted: verdict.Accepted,
		Reason:   verdict.Reason,
	}))
}
