package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-insight/internal/shared/server/respond"
)

// Handler exposes the catalog over HTTP.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches catalog routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/jobs", h.list)
	rg.GET("/jobs/:id", h.get)
}

func (h *Handler) list(c *gin.Context) {
	respond.OK(c, gin.H{"jobs": List(), "defaultJobId": DefaultJobID})
}

func (h *Handler) get(c *gin.Context) {
	profile, err := Get(c.Param("id"))
	if err != nil {
		respond.Error(c, http.StatusNotFound, "not_found", "job profile not found", gin.H{"jobId": c.Param("id")})
		return
	}
	respond.OK(c, profile)
}
