package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"resume-insight/internal/resume"
)

var sessionColumns = []string{"id", "owner_id", "document_id", "resume", "job_id", "analysis", "messages", "created_at", "updated_at"}

func TestPGRepoPutUpsertsByOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	sess := Session{
		ID:         "11111111-1111-1111-1111-111111111111",
		UserID:     "guest:abc",
		DocumentID: "22222222-2222-2222-2222-222222222222",
		Resume:     resume.Sample(),
		JobID:      "software-developer",
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	mock.ExpectExec("INSERT INTO resume_sessions").
		WithArgs(
			sess.UserID,
			sess.ID,
			sess.DocumentID,
			sqlmock.AnyArg(), // resume
			sess.JobID,
			nil, // analysis
			[]byte("[]"),
			now,
			now,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Put(context.Background(), sess); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetDecodesJSONColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	resumeJSON, _ := json.Marshal(resume.Sample())
	now := time.Now().UTC()
	mock.ExpectQuery("SELECT id, owner_id, document_id, resume").
		WithArgs("guest:abc").
		WillReturnRows(sqlmock.NewRows(sessionColumns).AddRow(
			"s-1", "guest:abc", "d-1", resumeJSON, "ux-designer", []byte(`{"score":70}`),
			[]byte(`[{"role":"user","content":"hi","createdAt":"2024-05-01T12:00:00Z"}]`), now, now,
		))

	repo := &PGRepo{DB: db}
	sess, err := repo.Get(context.Background(), "guest:abc")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if sess.Resume.Name != "John Doe" || sess.JobID != "ux-designer" {
		t.Fatalf("unexpected session %+v", sess)
	}
	if string(sess.Analysis) != `{"score":70}` {
		t.Fatalf("unexpected analysis %s", sess.Analysis)
	}
	if len(sess.Messages) != 1 || sess.Messages[0].Role != RoleUser {
		t.Fatalf("unexpected messages %+v", sess.Messages)
	}
}

func TestPGRepoGetNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("SELECT id, owner_id").
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows(sessionColumns))

	repo := &PGRepo{DB: db}
	if _, err := repo.Get(context.Background(), "nobody"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoUpdateLocksRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	resumeJSON, _ := json.Marshal(resume.Sample())
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(sessionColumns).AddRow(
			"s-1", "u1", "d-1", resumeJSON, "software-developer", nil, []byte(`[]`), now, now,
		))
	mock.ExpectExec("UPDATE resume_sessions").
		WithArgs("u1", "data-scientist", nil, []byte(`[]`), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := &PGRepo{DB: db}
	sess, err := repo.Update(context.Background(), "u1", func(s *Session) error {
		s.JobID = "data-scientist"
		s.UpdatedAt = now.Add(time.Minute)
		return nil
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if sess.JobID != "data-scientist" {
		t.Fatalf("unexpected job %q", sess.JobID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoUpdateRollsBackOnCallbackError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	resumeJSON, _ := json.Marshal(resume.Sample())
	now := time.Now().UTC()
	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(sessionColumns).AddRow(
			"s-1", "u1", "d-1", resumeJSON, "software-developer", nil, []byte(`[]`), now, now,
		))
	mock.ExpectRollback()

	boom := errors.New("boom")
	repo := &PGRepo{DB: db}
	if _, err := repo.Update(context.Background(), "u1", func(*Session) error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("expected callback error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
