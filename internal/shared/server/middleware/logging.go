package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"resume-insight/internal/shared/metrics"
	"resume-insight/internal/shared/telemetry"
)

// Logging emits a structured log per request and records request latency.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()
		reqID := RequestIDFromContext(c)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveHTTPRequest(c.Request.Method, route, status, latency)

		userID, _ := c.Get(userIDKey)
		isGuest, _ := c.Get("isGuest")
		sessionID, _ := c.Get("sessionId")
		documentID, _ := c.Get("documentId")
		jobID, _ := c.Get("jobId")

		telemetry.Info("request.complete", map[string]any{
			"request_id":  reqID,
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"route":       route,
			"status":      status,
			"duration_ms": float64(latency.Microseconds()) / 1000.0,
			"user_id":     userID,
			"session_id":  sessionID,
			"document_id": documentID,
			"job_id":      jobID,
			"is_guest":    isGuest,
			"client_ip":   c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		})
	}
}
