package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-insight/internal/shared/server/middleware"
	"resume-insight/internal/shared/server/respond"
)

type meResponse struct {
	UserID     string `json:"userId"`
	Guest      bool   `json:"guest"`
	AuthMethod string `json:"authMethod"`
	Email      string `json:"email,omitempty"`
	Name       string `json:"name,omitempty"`
}

// registerMeRoutes attaches the /me endpoint, which echoes the resolved identity.
// Sessions, documents and rate limits are all keyed by this userId.
func registerMeRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", me)
}

func me(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
		return
	}

	out := meResponse{
		UserID:     userID,
		Guest:      middleware.IsGuest(c),
		AuthMethod: "bearer",
		Email:      middleware.UserEmailFromContext(c),
		Name:       middleware.UserNameFromContext(c),
	}
	if out.Guest {
		out.AuthMethod = "guest"
	}
	respond.OK(c, out)
}
