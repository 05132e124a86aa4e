package sessions

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const selectSession = `
SELECT id, owner_id, document_id, resume, job_id, analysis, messages, created_at, updated_at
FROM resume_sessions
WHERE owner_id = $1`

// Put upserts the user's session row.
func (r *PGRepo) Put(ctx context.Context, s Session) error {
	const query = `
INSERT INTO resume_sessions (
    owner_id,
    id,
    document_id,
    resume,
    job_id,
    analysis,
    messages,
    created_at,
    updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (owner_id) DO UPDATE SET
    id = EXCLUDED.id,
    document_id = EXCLUDED.document_id,
    resume = EXCLUDED.resume,
    job_id = EXCLUDED.job_id,
    analysis = EXCLUDED.analysis,
    messages = EXCLUDED.messages,
    created_at = EXCLUDED.created_at,
    updated_at = EXCLUDED.updated_at`

	resumeJSON, messagesJSON, err := encodeSession(s)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(
		ctx,
		query,
		s.UserID,
		s.ID,
		s.DocumentID,
		resumeJSON,
		s.JobID,
		nullableJSON(s.Analysis),
		messagesJSON,
		s.CreatedAt,
		s.UpdatedAt,
	)
	return err
}

func (r *PGRepo) Get(ctx context.Context, userID string) (Session, error) {
	return scanSession(r.DB.QueryRowContext(ctx, selectSession, userID))
}

// Update locks the row for the duration of fn.
func (r *PGRepo) Update(ctx context.Context, userID string, fn func(*Session) error) (Session, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return Session{}, err
	}
	defer func() { _ = tx.Rollback() }()

	s, err := scanSession(tx.QueryRowContext(ctx, selectSession+"\nFOR UPDATE", userID))
	if err != nil {
		return Session{}, err
	}
	if err := fn(&s); err != nil {
		return Session{}, err
	}

	const query = `
UPDATE resume_sessions
SET job_id = $2, analysis = $3, messages = $4, updated_at = $5
WHERE owner_id = $1`
	_, messagesJSON, err := encodeSession(s)
	if err != nil {
		return Session{}, err
	}
	if _, err := tx.ExecContext(ctx, query, userID, s.JobID, nullableJSON(s.Analysis), messagesJSON, s.UpdatedAt); err != nil {
		return Session{}, err
	}
	if err := tx.Commit(); err != nil {
		return Session{}, err
	}
	return s, nil
}

func (r *PGRepo) Delete(ctx context.Context, userID string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM resume_sessions WHERE owner_id = $1`, userID)
	return err
}

func scanSession(row *sql.Row) (Session, error) {
	var s Session
	var resumeJSON []byte
	var analysisJSON []byte
	var messagesJSON []byte
	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.DocumentID,
		&resumeJSON,
		&s.JobID,
		&analysisJSON,
		&messagesJSON,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Session{}, ErrNotFound
		}
		return Session{}, err
	}
	if err := json.Unmarshal(resumeJSON, &s.Resume); err != nil {
		return Session{}, fmt.Errorf("decode session resume: %w", err)
	}
	s.Resume = s.Resume.Normalize()
	if len(messagesJSON) > 0 {
		if err := json.Unmarshal(messagesJSON, &s.Messages); err != nil {
			return Session{}, fmt.Errorf("decode session messages: %w", err)
		}
	}
	if len(analysisJSON) > 0 {
		s.Analysis = json.RawMessage(analysisJSON)
	}
	return s, nil
}

func encodeSession(s Session) ([]byte, []byte, error) {
	resumeJSON, err := json.Marshal(s.Resume.Normalize())
	if err != nil {
		return nil, nil, fmt.Errorf("encode session resume: %w", err)
	}
	messages := s.Messages
	if messages == nil {
		messages = []ChatMessage{}
	}
	messagesJSON, err := json.Marshal(messages)
	if err != nil {
		return nil, nil, fmt.Errorf("encode session messages: %w", err)
	}
	return resumeJSON, messagesJSON, nil
}

func nullableJSON(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return []byte(raw)
}
