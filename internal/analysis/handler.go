package analysis

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"resume-insight/internal/events"
	"resume-insight/internal/sessions"
	"resume-insight/internal/shared/latency"
	"resume-insight/internal/shared/metrics"
	"resume-insight/internal/shared/server/bind"
	"resume-insight/internal/shared/server/middleware"
	"resume-insight/internal/shared/server/respond"
	"resume-insight/internal/shared/telemetry"
)

type analyzeRequest struct {
	JobID string `json:"jobId" validate:"omitempty,max=100"`
}

// Handler serves analysis requests against the caller's session.
type Handler struct {
	Aggregator *Aggregator
	Sessions   *sessions.Service
	Events     events.Publisher
	Delay      time.Duration
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analysis", h.analyze)
}

func (h *Handler) analyze(c *gin.Context) {
	var req analyzeRequest
	if !bind.OptionalJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	userID := middleware.UserIDFromContext(c)
	sess, err := h.Sessions.Current(ctx, userID)
	if err != nil {
		sessions.WriteError(c, err)
		return
	}
	c.Set("sessionId", sess.ID)
	c.Set("documentId", sess.DocumentID)

	jobID := req.JobID
	if jobID == "" {
		jobID = sess.JobID
	}
	c.Set("jobId", jobID)

	if err := latency.Wait(ctx, h.Delay); err != nil {
		respond.Error(c, http.StatusServiceUnavailable, "canceled", "request canceled", nil)
		return
	}

	report, err := h.Aggregator.Analyze(sess.Resume, jobID)
	if err != nil {
		telemetry.Error("analysis.failed", map[string]any{"session_id": sess.ID, "error": err})
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to analyze resume", nil)
		return
	}

	if _, err := h.Sessions.SaveAnalysis(ctx, userID, sess.ID, report); err != nil {
		if errors.Is(err, sessions.ErrSessionReplaced) {
			telemetry.Warn("analysis.session_replaced", map[string]any{"session_id": sess.ID})
		}
		sessions.WriteError(c, err)
		return
	}

	label := report.JobID
	if label == "" {
		label = "default"
	}
	metrics.IncAnalysis(label)
	events.Emit(ctx, h.Events, events.Event{
		Type:      events.AnalysisCompleted,
		SessionID: sess.ID,
		UserID:    userID,
		RequestID: middleware.RequestIDFromContext(c),
		Payload: map[string]any{
			"jobId":        report.JobID,
			"score":        report.Score,
			"keywordScore": report.KeywordMatch.Score,
		},
	})

	respond.OK(c, report)
}
