package matcher

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"resume-insight/internal/catalog"
	"resume-insight/internal/resume"
	"resume-insight/internal/sessions"
	"resume-insight/internal/shared/latency"
	"resume-insight/internal/shared/metrics"
	"resume-insight/internal/shared/server/bind"
	"resume-insight/internal/shared/server/middleware"
	"resume-insight/internal/shared/server/respond"
)

type matchRequest struct {
	Resume   *resume.ParsedResume `json:"resume"`
	Keywords []string             `json:"keywords" validate:"omitempty,max=200,dive,max=200"`
	JobID    string               `json:"jobId" validate:"omitempty,max=100"`
}

// Handler serves keyword match requests.
type Handler struct {
	Sessions *sessions.Service
	Delay    time.Duration
}

// NewHandler constructs a Handler.
func NewHandler(sessionsSvc *sessions.Service, delay time.Duration) *Handler {
	return &Handler{Sessions: sessionsSvc, Delay: delay}
}

// RegisterRoutes attaches match routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/match", h.match)
}

func (h *Handler) match(c *gin.Context) {
	var req matchRequest
	if !bind.JSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	var sess *sessions.Session
	if req.Resume == nil || (req.Keywords == nil && req.JobID == "") {
		current, err := h.Sessions.Current(ctx, middleware.UserIDFromContext(c))
		switch {
		case err == nil:
			sess = &current
			c.Set("sessionId", current.ID)
		case errors.Is(err, sessions.ErrNotFound) && req.Resume != nil:
		default:
			sessions.WriteError(c, err)
			return
		}
	}

	var r resume.ParsedResume
	if req.Resume != nil {
		r = *req.Resume
	} else {
		r = sess.Resume
	}
	if req.JobID != "" {
		c.Set("jobId", req.JobID)
	}

	keywords, err := h.keywords(req, sess)
	if err != nil {
		respond.Error(c, http.StatusNotFound, "not_found", "job profile not found", gin.H{"jobId": req.JobID})
		return
	}

	if err := latency.Wait(ctx, h.Delay); err != nil {
		respond.Error(c, http.StatusServiceUnavailable, "canceled", "request canceled", nil)
		return
	}

	report := Match(r, keywords)
	metrics.ObserveMatchScore(report.MatchScore)
	respond.OK(c, report)
}

// keywords picks explicit keywords first, then the requested job, then the session's job,
// then the default list.
func (h *Handler) keywords(req matchRequest, sess *sessions.Session) ([]string, error) {
	switch {
	case req.Keywords != nil:
		return req.Keywords, nil
	case req.JobID != "":
		p, err := catalog.Get(req.JobID)
		if err != nil {
			return nil, err
		}
		return p.Keywords, nil
	case sess != nil:
		return catalog.KeywordsFor(sess.JobID), nil
	default:
		return catalog.KeywordsFor(""), nil
	}
}
