package bind

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

type sampleRequest struct {
	JobID    string   `json:"jobId" validate:"required"`
	Keywords []string `json:"keywords" validate:"max=3,dive,max=10"`
}

func TestJSONRejectsInvalidPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/x", func(c *gin.Context) {
		var req sampleRequest
		if !JSON(c, &req) {
			return
		}
		c.JSON(http.StatusOK, req)
	})

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantInBody string
	}{
		{name: "malformed", body: `{`, wantStatus: http.StatusBadRequest, wantInBody: "invalid request body"},
		{name: "missing field", body: `{}`, wantStatus: http.StatusBadRequest, wantInBody: `"field":"jobId"`},
		{name: "nested rule", body: `{"jobId":"a","keywords":["way too long keyword"]}`, wantStatus: http.StatusBadRequest, wantInBody: `"field":"keywords[0]"`},
		{name: "ok", body: `{"jobId":"a","keywords":["go"]}`, wantStatus: http.StatusOK, wantInBody: `"jobId":"a"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if !strings.Contains(w.Body.String(), tt.wantInBody) {
				t.Fatalf("body %s does not contain %s", w.Body.String(), tt.wantInBody)
			}
		})
	}
}

type optionalRequest struct {
	JobID string `json:"jobId" validate:"omitempty,max=5"`
}

func TestOptionalJSONAcceptsEmptyBodies(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/x", func(c *gin.Context) {
		var req optionalRequest
		if !OptionalJSON(c, &req) {
			return
		}
		c.JSON(http.StatusOK, req)
	})

	tests := []struct {
		name       string
		req        func() *http.Request
		wantStatus int
	}{
		{name: "no body", req: func() *http.Request {
			return httptest.NewRequest(http.MethodPost, "/x", nil)
		}, wantStatus: http.StatusOK},
		{name: "chunked empty", req: func() *http.Request {
			req := httptest.NewRequest(http.MethodPost, "/x", nil)
			req.Body = io.NopCloser(strings.NewReader(""))
			req.ContentLength = -1
			return req
		}, wantStatus: http.StatusOK},
		{name: "valid", req: func() *http.Request {
			return httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{"jobId":"a"}`))
		}, wantStatus: http.StatusOK},
		{name: "malformed", req: func() *http.Request {
			return httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{`))
		}, wantStatus: http.StatusBadRequest},
		{name: "invalid", req: func() *http.Request {
			return httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{"jobId":"too-long"}`))
		}, wantStatus: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, tt.req())
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}
