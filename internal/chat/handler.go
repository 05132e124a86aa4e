package chat

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"resume-insight/internal/catalog"
	"resume-insight/internal/events"
	"resume-insight/internal/sessions"
	"resume-insight/internal/shared/latency"
	"resume-insight/internal/shared/metrics"
	"resume-insight/internal/shared/server/bind"
	"resume-insight/internal/shared/server/middleware"
	"resume-insight/internal/shared/server/respond"
	"resume-insight/internal/shared/telemetry"
)

const failedMessage = "Failed to process request"

type chatRequest struct {
	Message string  `json:"message" validate:"required,max=4000"`
	Context *string `json:"context" validate:"omitempty,max=20000"`
}

type chatResponse struct {
	Response string `json:"response"`
}

// errorResponse is the flat error shape chat clients expect.
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Handler serves the chat endpoints.
type Handler struct {
	Responder Responder
	Sessions  *sessions.Service
	Events    events.Publisher
	Delay     time.Duration
}

// RegisterRoutes attaches chat routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/chat", h.chat)
	rg.GET("/chat/history", h.history)
}

func (h *Handler) chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: "Invalid request", Details: "request body must be JSON"})
		return
	}
	if err := bind.Struct(&req); err != nil {
		details := "invalid request"
		if fields := bind.FieldErrors(err); len(fields) > 0 {
			details = fields[0].Field + " failed " + fields[0].Rule
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: "Invalid request", Details: details})
		return
	}

	ctx := c.Request.Context()
	userID := middleware.UserIDFromContext(c)

	var sess *sessions.Session
	current, err := h.Sessions.Current(ctx, userID)
	switch {
	case err == nil:
		sess = &current
		c.Set("sessionId", current.ID)
	case errors.Is(err, sessions.ErrNotFound), errors.Is(err, sessions.ErrInvalidInput):
	default:
		h.fail(c, err)
		return
	}

	resumeContext := ""
	switch {
	case req.Context != nil:
		resumeContext = *req.Context
	case sess != nil:
		var job *catalog.JobProfile
		if p, err := catalog.Get(sess.JobID); err == nil {
			job = &p
		}
		resumeContext = BuildContext(&sess.Resume, job)
	}

	if err := latency.Wait(ctx, h.Delay); err != nil {
		h.fail(c, err)
		return
	}

	reply, err := h.Responder.Respond(ctx, req.Message, resumeContext)
	if err != nil {
		if errors.Is(err, ErrEmptyMessage) {
			c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: "Invalid request", Details: err.Error()})
			return
		}
		h.fail(c, err)
		return
	}
	metrics.IncChatResponse(string(reply.Category))

	if sess != nil {
		now := time.Now().UTC()
		_, err := h.Sessions.AppendMessages(ctx, userID, sess.ID,
			sessions.ChatMessage{Role: sessions.RoleUser, Content: req.Message, CreatedAt: now},
			sessions.ChatMessage{Role: sessions.RoleAssistant, Content: reply.Text, CreatedAt: now},
		)
		switch {
		case errors.Is(err, sessions.ErrSessionReplaced):
			telemetry.Warn("chat.session_replaced", map[string]any{"session_id": sess.ID})
		case err != nil:
			telemetry.Warn("chat.history_append_failed", map[string]any{"session_id": sess.ID, "error": err})
		default:
			events.Emit(ctx, h.Events, events.Event{
				Type:      events.ChatResponded,
				SessionID: sess.ID,
				UserID:    userID,
				RequestID: middleware.RequestIDFromContext(c),
				Payload:   map[string]any{"category": string(reply.Category)},
			})
		}
	}

	respond.OK(c, chatResponse{Response: reply.Text})
}

func (h *Handler) history(c *gin.Context) {
	sess, err := h.Sessions.Current(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		sessions.WriteError(c, err)
		return
	}
	c.Set("sessionId", sess.ID)
	messages := sess.Messages
	if messages == nil {
		messages = []sessions.ChatMessage{}
	}
	respond.OK(c, gin.H{"sessionId": sess.ID, "messages": messages})
}

// fail logs err and answers with the generic chat failure payload.
func (h *Handler) fail(c *gin.Context, err error) {
	telemetry.Error("chat.failed", map[string]any{
		"request_id": middleware.RequestIDFromContext(c),
		"error":      err,
	})
	c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{
		Error:   failedMessage,
		Details: "the assistant could not generate a reply",
	})
}
