package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCountersIncrement(t *testing.T) {
	before := testutil.ToFloat64(chatResponsesTotal.WithLabelValues("skills"))
	IncChatResponse("skills")
	after := testutil.ToFloat64(chatResponsesTotal.WithLabelValues("skills"))
	if after-before != 1 {
		t.Fatalf("expected counter to grow by 1, got %v -> %v", before, after)
	}
}

func TestHandlerRendersPrometheusText(t *testing.T) {
	gin.SetMode(gin.TestMode)
	IncUpload("ok")
	ObserveMatchScore(50)
	ObserveHTTPRequest(http.MethodGet, "/api/v1/jobs", http.StatusOK, 12*time.Millisecond)

	r := gin.New()
	r.GET("/metrics", Handler())

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	body := resp.Body.String()
	for _, name := range []string{"resume_uploads_total", "keyword_match_score_bucket", "http_requests_total"} {
		if !strings.Contains(body, name) {
			t.Fatalf("expected %s in metrics output", name)
		}
	}
}
