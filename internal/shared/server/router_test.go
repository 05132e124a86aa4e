package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-insight/internal/catalog"
	"resume-insight/internal/services/health"
	"resume-insight/internal/shared/config"
)

func newTestRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(RouterDeps{
		Config:         cfg,
		Health:         health.NewService(nil, "stub"),
		CatalogHandler: catalog.NewHandler(),
	})
}

func TestHealthAndMetricsArePublic(t *testing.T) {
	router := newTestRouter(config.Config{})

	for _, path := range []string{"/api/v1/health", "/api/v1/metrics"} {
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, path, nil))
		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, resp.Code)
		}
	}
}

func TestRoutesRequireIdentity(t *testing.T) {
	router := newTestRouter(config.Config{})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/jobs", nil))
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestMeReportsGuestIdentity(t *testing.T) {
	router := newTestRouter(config.Config{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	req.Header.Set("X-Guest-Id", "abc")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body struct {
		UserID string `json:"userId"`
		Guest  bool   `json:"guest"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.UserID != "guest:abc" || !body.Guest {
		t.Fatalf("unexpected identity %+v", body)
	}
}

func TestUploadGroupIsRateLimited(t *testing.T) {
	router := newTestRouter(config.Config{RateLimit: config.RateLimit{UploadRate: 0.01, UploadBurst: 1}})

	send := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes", nil)
		req.Header.Set("X-Guest-Id", "abc")
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		return resp.Code
	}
	// No documents handler is mounted, so the first request falls through to 404.
	if code := send(); code != http.StatusNotFound {
		t.Fatalf("expected first request to pass the limiter, got %d", code)
	}
	if code := send(); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs", nil)
	req.Header.Set("X-Guest-Id", "abc")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected other groups unaffected, got %d", resp.Code)
	}
}

func TestRateLimitGroup(t *testing.T) {
	cases := []struct {
		method, path, want string
	}{
		{http.MethodPost, "/api/v1/chat", "CHAT"},
		{http.MethodGet, "/api/v1/chat/history", "DEFAULT"},
		{http.MethodPost, "/api/v1/resumes", "UPLOAD"},
		{http.MethodGet, "/api/v1/health", "NONE"},
		{http.MethodPost, "/api/v1/match", "DEFAULT"},
	}
	for _, tc := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(tc.method, tc.path, nil)
		if got := rateLimitGroup(c); got != tc.want {
			t.Fatalf("%s %s: expected %s, got %s", tc.method, tc.path, tc.want, got)
		}
	}
}

func TestAddr(t *testing.T) {
	if Addr("") != ":8080" || Addr("9000") != ":9000" || Addr(":7000") != ":7000" {
		t.Fatalf("unexpected Addr normalisation")
	}
}
