package sessions

import (
	"encoding/json"
	"time"

	"resume-insight/internal/catalog"
	"resume-insight/internal/resume"
)

// SessionResponse is the outward-facing representation of a session.
type SessionResponse struct {
	SessionID  string              `json:"sessionId"`
	DocumentID string              `json:"documentId"`
	JobID      string              `json:"jobId"`
	JobTitle   string              `json:"jobTitle"`
	Resume     resume.ParsedResume `json:"resume"`
	Analysis   json.RawMessage     `json:"analysis,omitempty"`
	Messages   []ChatMessage       `json:"messages"`
	CreatedAt  time.Time           `json:"createdAt"`
	UpdatedAt  time.Time           `json:"updatedAt"`
}

type selectJobRequest struct {
	JobID string `json:"jobId" validate:"required"`
}

func toResponse(s Session) SessionResponse {
	title := ""
	if p, err := catalog.Get(s.JobID); err == nil {
		title = p.Title
	}
	messages := s.Messages
	if messages == nil {
		messages = []ChatMessage{}
	}
	return SessionResponse{
		SessionID:  s.ID,
		DocumentID: s.DocumentID,
		JobID:      s.JobID,
		JobTitle:   title,
		Resume:     s.Resume.Normalize(),
		Analysis:   s.Analysis,
		Messages:   messages,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}
