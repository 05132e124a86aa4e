package documents

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-insight/internal/catalog"
	"resume-insight/internal/events"
	"resume-insight/internal/extract"
	"resume-insight/internal/resume"
	"resume-insight/internal/sessions"
	"resume-insight/internal/shared/latency"
	"resume-insight/internal/shared/metrics"
	"resume-insight/internal/shared/storage/object"
	"resume-insight/internal/shared/telemetry"
)

// MaxUploadSize caps the accepted résumé size.
const MaxUploadSize = 10 << 20 // 10MB

const rollbackTimeout = 5 * time.Second

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
}

// Service contains business logic for résumé uploads.
type Service struct {
	Store    object.ObjectStore
	Repo     Repo
	Parser   resume.Parser
	Sessions *sessions.Service
	Events   events.Publisher
	Delay    time.Duration
}

// UploadResult is everything produced by one accepted upload.
type UploadResult struct {
	Document Document
	Session  sessions.Session
}

// Upload parses the file, stores it, records the document and starts a new session
// for the user, replacing the previous one.
func (s *Service) Upload(ctx context.Context, userId, fileName string, r io.Reader, jobID string) (UploadResult, error) {
	fileName = strings.TrimSpace(fileName)
	if fileName == "" || userId == "" {
		return UploadResult{}, ErrInvalidInput
	}
	if !allowedExtensions[strings.ToLower(filepath.Ext(fileName))] {
		metrics.IncUpload("rejected")
		return UploadResult{}, fmt.Errorf("%w: only .pdf and .docx files are accepted", ErrInvalidInput)
	}
	if jobID = strings.TrimSpace(jobID); jobID != "" {
		if _, err := catalog.Get(jobID); err != nil {
			metrics.IncUpload("rejected")
			return UploadResult{}, err
		}
	}

	data, err := io.ReadAll(io.LimitReader(r, MaxUploadSize+1))
	if err != nil {
		return UploadResult{}, fmt.Errorf("read upload: %w", err)
	}
	if len(data) == 0 {
		metrics.IncUpload("rejected")
		return UploadResult{}, fmt.Errorf("%w: file is empty", ErrInvalidInput)
	}
	if len(data) > MaxUploadSize {
		metrics.IncUpload("rejected")
		return UploadResult{}, fmt.Errorf("%w: file exceeds 10MB", ErrInvalidInput)
	}

	if err := latency.Wait(ctx, s.Delay); err != nil {
		return UploadResult{}, err
	}

	mimeType := extract.NormalizeMimeType(http.DetectContentType(data), fileName, data)
	parsed, err := s.Parser.Parse(ctx, resume.Document{FileName: fileName, MimeType: mimeType, Data: data})
	if err != nil {
		var perr *resume.ParseError
		if errors.As(err, &perr) {
			metrics.IncParse(string(s.Parser.Mode()), string(perr.Kind))
			metrics.IncUpload("parse_error")
		}
		return UploadResult{}, err
	}
	metrics.IncParse(string(s.Parser.Mode()), "ok")

	obj, err := s.Store.Put(ctx, userId, fileName, bytes.NewReader(data))
	if err != nil {
		return UploadResult{}, fmt.Errorf("store upload: %w", err)
	}

	doc := Document{
		ID:         uuid.NewString(),
		UserID:     userId,
		FileName:   fileName,
		MimeType:   mimeType,
		SizeBytes:  obj.SizeBytes,
		StorageKey: obj.Key,
		ParserMode: string(s.Parser.Mode()),
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, doc); err != nil {
		_ = s.Store.Delete(context.WithoutCancel(ctx), obj.Key)
		return UploadResult{}, fmt.Errorf("record document: %w", err)
	}

	sess, err := s.Sessions.Start(ctx, userId, doc.ID, parsed, jobID)
	if err != nil {
		s.rollback(doc)
		return UploadResult{}, err
	}
	metrics.IncUpload("ok")

	events.Emit(ctx, s.Events, events.Event{
		Type:      events.SessionCreated,
		SessionID: sess.ID,
		UserID:    userId,
		Payload: map[string]any{
			"documentId": doc.ID,
			"jobId":      sess.JobID,
			"parserMode": doc.ParserMode,
		},
	})

	return UploadResult{Document: doc, Session: sess}, nil
}

// rollback removes the stored object and document row of an upload whose session could
// not be started, so the previous session keeps pointing at the previous document.
func (s *Service) rollback(doc Document) {
	ctx, cancel := context.WithTimeout(context.Background(), rollbackTimeout)
	defer cancel()
	if err := s.Repo.Delete(ctx, doc.ID); err != nil {
		telemetry.Warn("documents.rollback_failed", map[string]any{"document_id": doc.ID, "step": "repo", "error": err})
	}
	if err := s.Store.Delete(ctx, doc.StorageKey); err != nil {
		telemetry.Warn("documents.rollback_failed", map[string]any{"document_id": doc.ID, "step": "store", "error": err})
	}
}

// Current returns the current document for a user.
func (s *Service) Current(ctx context.Context, userId string) (Document, error) {
	if userId == "" {
		return Document{}, ErrInvalidInput
	}
	return s.Repo.GetCurrentByUser(ctx, userId)
}
