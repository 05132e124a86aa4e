package respond

import (
	"github.com/gin-gonic/gin"

	"resume-insight/internal/shared/telemetry"
)

// ErrorBody defines the standardized error object.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorResponse wraps the error body.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// Error aborts with the {error:{code,message,details}} envelope. 5xx responses are
// logged at error level, everything else at warn.
func Error(c *gin.Context, status int, code, message string, details any) {
	fields := map[string]any{
		"status":     status,
		"code":       code,
		"message":    message,
		"route":      c.FullPath(),
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	for _, key := range []string{"userId", "sessionId", "documentId", "jobId"} {
		if v := c.GetString(key); v != "" {
			fields[telemetryKey(key)] = v
		}
	}

	if status >= 500 {
		telemetry.Error("http.error", fields)
	} else {
		telemetry.Warn("http.error", fields)
	}

	c.AbortWithStatusJSON(status, ErrorResponse{
		Error: ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

func telemetryKey(contextKey string) string {
	switch contextKey {
	case "userId":
		return "user_id"
	case "sessionId":
		return "session_id"
	case "documentId":
		return "document_id"
	default:
		return "job_id"
	}
}
