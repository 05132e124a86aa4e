package sessions

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-insight/internal/catalog"
	"resume-insight/internal/shared/server/bind"
	"resume-insight/internal/shared/server/middleware"
	"resume-insight/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches session routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/session", h.current)
	rg.PUT("/session/job", h.selectJob)
	rg.DELETE("/session", h.clear)
}

func (h *Handler) current(c *gin.Context) {
	sess, err := h.Svc.Current(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		WriteError(c, err)
		return
	}
	c.Set("sessionId", sess.ID)
	respond.OK(c, toResponse(sess))
}

func (h *Handler) selectJob(c *gin.Context) {
	var req selectJobRequest
	if !bind.JSON(c, &req) {
		return
	}
	sess, err := h.Svc.SelectJob(c.Request.Context(), middleware.UserIDFromContext(c), req.JobID)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.Set("sessionId", sess.ID)
	c.Set("jobId", sess.JobID)
	respond.OK(c, toResponse(sess))
}

func (h *Handler) clear(c *gin.Context) {
	if err := h.Svc.Clear(c.Request.Context(), middleware.UserIDFromContext(c)); err != nil {
		WriteError(c, err)
		return
	}
	respond.NoContent(c)
}

// WriteError maps session and catalog errors to the standard error envelope.
func WriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "no_session", "upload a resume first", nil)
	case errors.Is(err, ErrSessionReplaced):
		respond.Error(c, http.StatusConflict, "session_replaced", "a newer upload replaced this session", nil)
	case errors.Is(err, catalog.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "job profile not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load session", nil)
	}
}
