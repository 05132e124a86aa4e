package documents_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-insight/internal/bootstrap"
	"resume-insight/internal/shared/config"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		LocalStoreDir:   t.TempDir(),
		Env:             "dev",
		ObjectStoreType: "local",
		ParserMode:      "stub",
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	t.Cleanup(func() { _ = app.Close() })
	return app.Router
}

func uploadRequest(t *testing.T, fileName string, content []byte, jobID string) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	fileWriter, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fileWriter.Write(content); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if jobID != "" {
		if err := writer.WriteField("jobId", jobID); err != nil {
			t.Fatalf("write jobId: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	addGuestHeader(req)
	return req
}

type uploadResult struct {
	SessionID  string `json:"sessionId"`
	DocumentID string `json:"documentId"`
	ParserMode string `json:"parserMode"`
	JobID      string `json:"jobId"`
	Resume     struct {
		Name   string   `json:"name"`
		Skills []string `json:"skills"`
	} `json:"resume"`
}

func upload(t *testing.T, router *gin.Engine, fileName, jobID string) uploadResult {
	t.Helper()
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, uploadRequest(t, fileName, []byte("%PDF-1.4 sample"), jobID))
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var out uploadResult
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode upload response: %v", err)
	}
	return out
}

func TestUploadStubResumeAndCurrent(t *testing.T) {
	router := newRouter(t)

	created := upload(t, router, "cv.pdf", "")
	if created.DocumentID == "" || created.SessionID == "" {
		t.Fatalf("expected ids, got %+v", created)
	}
	if created.ParserMode != "stub" {
		t.Fatalf("expected parserMode stub, got %q", created.ParserMode)
	}
	if created.Resume.Name != "John Doe" || len(created.Resume.Skills) == 0 {
		t.Fatalf("expected sample resume, got %+v", created.Resume)
	}
	if created.JobID != "software-developer" {
		t.Fatalf("expected default job, got %q", created.JobID)
	}

	reqGet := httptest.NewRequest(http.MethodGet, "/api/v1/documents/current", nil)
	addGuestHeader(reqGet)
	respGet := httptest.NewRecorder()
	router.ServeHTTP(respGet, reqGet)
	if respGet.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respGet.Code)
	}

	var current struct {
		DocumentID string `json:"documentId"`
		FileName   string `json:"fileName"`
		ParserMode string `json:"parserMode"`
	}
	if err := json.NewDecoder(respGet.Body).Decode(&current); err != nil {
		t.Fatalf("decode current response: %v", err)
	}
	if current.DocumentID != created.DocumentID || current.FileName != "cv.pdf" {
		t.Fatalf("unexpected current document %+v", current)
	}
}

func TestUploadRejectsTextFile(t *testing.T) {
	router := newRouter(t)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, uploadRequest(t, "notes.txt", []byte("hello world"), ""))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	assertErrorCode(t, resp, "validation_error")
}

func TestUploadRejectsUnknownJob(t *testing.T) {
	router := newRouter(t)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, uploadRequest(t, "cv.pdf", []byte("%PDF-1.4"), "astronaut"))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestUploadRequiresFile(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes", strings.NewReader(""))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestCurrentWithoutUploadIsNotFound(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/documents/current", nil)
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestSecondUploadResetsChatHistory(t *testing.T) {
	router := newRouter(t)
	first := upload(t, router, "cv.pdf", "")

	chatReq := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{"message":"hello"}`))
	chatReq.Header.Set("Content-Type", "application/json")
	addGuestHeader(chatReq)
	chatResp := httptest.NewRecorder()
	router.ServeHTTP(chatResp, chatReq)
	if chatResp.Code != http.StatusOK {
		t.Fatalf("expected chat 200, got %d: %s", chatResp.Code, chatResp.Body.String())
	}
	var reply struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(chatResp.Body).Decode(&reply); err != nil {
		t.Fatalf("decode chat response: %v", err)
	}
	if !strings.HasPrefix(reply.Response, "Hi John Doe, ") {
		t.Fatalf("expected greeting by name, got %q", reply.Response)
	}

	if n := historyLen(t, router); n != 2 {
		t.Fatalf("expected 2 messages before re-upload, got %d", n)
	}

	second := upload(t, router, "cv2.pdf", "data-scientist")
	if second.SessionID == first.SessionID {
		t.Fatalf("expected a new session on re-upload")
	}
	if second.JobID != "data-scientist" {
		t.Fatalf("expected selected job, got %q", second.JobID)
	}
	if n := historyLen(t, router); n != 0 {
		t.Fatalf("expected empty history after re-upload, got %d", n)
	}
}

func historyLen(t *testing.T, router *gin.Engine) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/chat/history", nil)
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected history 200, got %d", resp.Code)
	}
	var out struct {
		Messages []json.RawMessage `json:"messages"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	return len(out.Messages)
}

func assertErrorCode(t *testing.T, resp *httptest.ResponseRecorder, code string) {
	t.Helper()
	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	if envelope.Error.Code != code {
		t.Fatalf("expected error code %q, got %q", code, envelope.Error.Code)
	}
}

func addGuestHeader(req *http.Request) {
	req.Header.Set("X-Guest-Id", "guest-123")
}
