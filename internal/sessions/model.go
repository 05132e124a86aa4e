package sessions

import (
	"encoding/json"
	"time"

	"resume-insight/internal/resume"
)

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is one entry of the append-only chat history.
type ChatMessage struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// Session is the caller's working state between an upload and the next one.
type Session struct {
	ID         string
	UserID     string
	DocumentID string
	Resume     resume.ParsedResume
	JobID      string
	Analysis   json.RawMessage
	Messages   []ChatMessage
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (s Session) clone() Session {
	out := s
	out.Resume = s.Resume.Clone()
	if s.Analysis != nil {
		out.Analysis = append(json.RawMessage(nil), s.Analysis...)
	}
	out.Messages = append([]ChatMessage(nil), s.Messages...)
	return out
}
