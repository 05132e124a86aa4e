package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"resume-insight/internal/shared/server/respond"
	"resume-insight/internal/shared/telemetry"
)

// Recovery turns a handler panic into a 500 "internal" envelope. When the handler
// already wrote a response only the log line is emitted.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			fields := map[string]any{
				"request_id": RequestIDFromContext(c),
				"error":      rec,
				"stack":      telemetry.Truncate(string(debug.Stack()), 8000),
				"path":       c.Request.URL.Path,
				"route":      c.FullPath(),
				"method":     c.Request.Method,
			}
			if userID := UserIDFromContext(c); userID != "" {
				fields["user_id"] = userID
			}
			if sessionID := c.GetString("sessionId"); sessionID != "" {
				fields["session_id"] = sessionID
			}
			telemetry.Error("panic", fields)

			if c.Writer.Written() {
				c.Abort()
				return
			}
			respond.Error(c, http.StatusInternalServerError, "internal", "Unexpected server error", nil)
		}()
		c.Next()
	}
}
