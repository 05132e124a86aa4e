package sessions

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-insight/internal/catalog"
	"resume-insight/internal/resume"
)

// Service manages the per-user session lifecycle: created on upload, replaced by
// the next upload, cleared on request.
type Service struct {
	Repo  Repo
	Now   func() time.Time
	NewID func() string
}

// NewService constructs a Service backed by repo.
func NewService(repo Repo) *Service {
	return &Service{
		Repo:  repo,
		Now:   func() time.Time { return time.Now().UTC() },
		NewID: uuid.NewString,
	}
}

// Start creates a new session for the user, replacing any existing one.
// An empty job id selects catalog.DefaultJobID.
func (s *Service) Start(ctx context.Context, userID, documentID string, r resume.ParsedResume, jobID string) (Session, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(documentID) == "" {
		return Session{}, ErrInvalidInput
	}
	jobID, err := resolveJob(jobID)
	if err != nil {
		return Session{}, err
	}

	now := s.Now()
	sess := Session{
		ID:         s.NewID(),
		UserID:     userID,
		DocumentID: documentID,
		Resume:     r.Clone(),
		JobID:      jobID,
		Messages:   []ChatMessage{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Repo.Put(ctx, sess); err != nil {
		return Session{}, fmt.Errorf("store session: %w", err)
	}
	return sess, nil
}

// Current returns the user's session or ErrNotFound.
func (s *Service) Current(ctx context.Context, userID string) (Session, error) {
	if strings.TrimSpace(userID) == "" {
		return Session{}, ErrInvalidInput
	}
	return s.Repo.Get(ctx, userID)
}

// SelectJob changes the target job. The previous analysis no longer applies and is dropped.
func (s *Service) SelectJob(ctx context.Context, userID, jobID string) (Session, error) {
	if _, err := catalog.Get(jobID); err != nil {
		return Session{}, err
	}
	return s.Repo.Update(ctx, userID, func(sess *Session) error {
		if sess.JobID != jobID {
			sess.Analysis = nil
		}
		sess.JobID = jobID
		sess.UpdatedAt = s.Now()
		return nil
	})
}

// SaveAnalysis stores report as the latest analysis of session sessionID.
// It returns ErrSessionReplaced when the user's current session is another one.
func (s *Service) SaveAnalysis(ctx context.Context, userID, sessionID string, report any) (Session, error) {
	raw, err := json.Marshal(report)
	if err != nil {
		return Session{}, fmt.Errorf("encode analysis: %w", err)
	}
	return s.Repo.Update(ctx, userID, func(sess *Session) error {
		if sess.ID != sessionID {
			return ErrSessionReplaced
		}
		sess.Analysis = raw
		sess.UpdatedAt = s.Now()
		return nil
	})
}

// AppendMessages adds messages to the end of the chat history of session sessionID.
// It returns ErrSessionReplaced when the user's current session is another one.
func (s *Service) AppendMessages(ctx context.Context, userID, sessionID string, msgs ...ChatMessage) (Session, error) {
	for _, m := range msgs {
		if m.Role != RoleUser && m.Role != RoleAssistant {
			return Session{}, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, m.Role)
		}
	}
	return s.Repo.Update(ctx, userID, func(sess *Session) error {
		if sess.ID != sessionID {
			return ErrSessionReplaced
		}
		now := s.Now()
		for _, m := range msgs {
			if m.CreatedAt.IsZero() {
				m.CreatedAt = now
			}
			sess.Messages = append(sess.Messages, m)
		}
		sess.UpdatedAt = now
		return nil
	})
}

// Clear removes the user's session. Clearing a missing session is not an error.
func (s *Service) Clear(ctx context.Context, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return ErrInvalidInput
	}
	return s.Repo.Delete(ctx, userID)
}

func resolveJob(jobID string) (string, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return catalog.DefaultJobID, nil
	}
	if _, err := catalog.Get(jobID); err != nil {
		return "", err
	}
	return jobID, nil
}
