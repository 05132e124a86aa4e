package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-insight/internal/analysis"
	"resume-insight/internal/catalog"
	"resume-insight/internal/chat"
	"resume-insight/internal/documents"
	"resume-insight/internal/matcher"
	"resume-insight/internal/services/health"
	"resume-insight/internal/sessions"
	"resume-insight/internal/shared/config"
	"resume-insight/internal/shared/metrics"
	"resume-insight/internal/shared/server/middleware"
	"resume-insight/internal/shared/server/respond"
)

const apiPrefix = "/api/v1"

// RouterDeps carries the handlers mounted by NewRouter.
type RouterDeps struct {
	Config          config.Config
	Tokens          middleware.TokenVerifier
	Health          *health.Service
	CatalogHandler  *catalog.Handler
	DocumentHandler *documents.Handler
	SessionHandler  *sessions.Handler
	MatchHandler    *matcher.Handler
	AnalysisHandler *analysis.Handler
	ChatHandler     *chat.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(deps.Tokens, apiPrefix+"/health", apiPrefix+"/metrics"),
		middleware.RateLimit(rateLimitConfig(deps.Config.RateLimit)),
	)

	api := r.Group(apiPrefix)
	api.GET("/health", func(c *gin.Context) {
		if deps.Health == nil {
			respond.JSON(c, http.StatusOK, gin.H{"ok": true})
			return
		}
		status, ok := deps.Health.Status(c.Request.Context())
		code := http.StatusOK
		if !ok {
			code = http.StatusServiceUnavailable
		}
		respond.JSON(c, code, status)
	})
	api.GET("/metrics", metrics.Handler())
	registerMeRoutes(api)

	if deps.CatalogHandler != nil {
		deps.CatalogHandler.RegisterRoutes(api)
	}
	if deps.DocumentHandler != nil {
		deps.DocumentHandler.RegisterRoutes(api)
	}
	if deps.SessionHandler != nil {
		deps.SessionHandler.RegisterRoutes(api)
	}
	if deps.MatchHandler != nil {
		deps.MatchHandler.RegisterRoutes(api)
	}
	if deps.AnalysisHandler != nil {
		deps.AnalysisHandler.RegisterRoutes(api)
	}
	if deps.ChatHandler != nil {
		deps.ChatHandler.RegisterRoutes(api)
	}

	return r
}

func rateLimitConfig(cfg config.RateLimit) middleware.RateLimitConfig {
	rules := map[string]middleware.RateLimitRule{}
	if cfg.DefaultRate > 0 {
		rules["DEFAULT"] = middleware.RateLimitRule{Rate: cfg.DefaultRate, Burst: cfg.DefaultBurst}
	}
	if cfg.ChatRate > 0 {
		rules["CHAT"] = middleware.RateLimitRule{Rate: cfg.ChatRate, Burst: cfg.ChatBurst}
	}
	if cfg.UploadRate > 0 {
		rules["UPLOAD"] = middleware.RateLimitRule{Rate: cfg.UploadRate, Burst: cfg.UploadBurst}
	}
	return middleware.RateLimitConfig{
		Rules:        rules,
		DefaultGroup: "DEFAULT",
		GroupFor:     rateLimitGroup,
	}
}

// rateLimitGroup maps a request to its limiter bucket. Health and metrics are never limited.
func rateLimitGroup(c *gin.Context) string {
	path := c.Request.URL.Path
	switch {
	case path == apiPrefix+"/health" || path == apiPrefix+"/metrics":
		return "NONE"
	case c.Request.Method == http.MethodPost && path == apiPrefix+"/chat":
		return "CHAT"
	case c.Request.Method == http.MethodPost && strings.HasPrefix(path, apiPrefix+"/resumes"):
		return "UPLOAD"
	default:
		return "DEFAULT"
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
