package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ivolkov/accountdesk/models"
)

func newTestSessionRepo(t *testing.T) (*sessionRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	wrapped, mock, db := newTestDB(t)
	repo := &sessionRepository{
		db:     wrapped,
		logger: wrapped.logger,
	}
	return repo, mock, db
}

func testSession() models.Session {
	now := time.Now().UTC()
	return models.Session{
		Token:     "tok-1",
		UserID:    "u-1",
		CreatedAt: now,
		ExpiresAt: now.Add(24 * time.Hour),
	}
}

func TestCreateSession_Success(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	s := testSession()

	mock.ExpectExec("INSERT INTO sessions").
		WithArgs(s.Token, s.UserID, s.CreatedAt, s.ExpiresAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.CreateSession(context.Background(), s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateSession_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO sessions").
		WillReturnError(errors.New("connection reset"))

	err := repo.CreateSession(context.Background(), testSession())
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindSessionByToken_Success(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	s := testSession()
	rows := sqlmock.
		NewRows([]string{"token", "user_id", "created_at", "expires_at"}).
		AddRow(s.Token, s.UserID, s.CreatedAt, s.ExpiresAt)

	mock.ExpectQuery("SELECT token, user_id, created_at, expires_at FROM sessions").
		WithArgs(s.Token).
		WillReturnRows(rows)

	found, err := repo.FindSessionByToken(context.Background(), s.Token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.UserID != s.UserID {
		t.Errorf("expected user id %s, got %s", s.UserID, found.UserID)
	}
}

func TestFindSessionByToken_NotFound(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT token, user_id, created_at, expires_at FROM sessions").
		WithArgs("tok-missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindSessionByToken(context.Background(), "tok-missing")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestFindSessionByToken_Timeout(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT token, user_id, created_at, expires_at FROM sessions").
		WillReturnError(context.DeadlineExceeded)

	_, err := repo.FindSessionByToken(context.Background(), "tok-1")
	if !errors.Is(err, ErrQueryTimeout) {
		t.Fatalf("expected ErrQueryTimeout, got %v", err)
	}
}

func TestDeleteSessionByToken_Success(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM sessions").
		WithArgs("tok-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteSessionByToken(context.Background(), "tok-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteSessionByToken_AbsentTokenIsNotAnError(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM sessions").
		WithArgs("tok-gone").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.DeleteSessionByToken(context.Background(), "tok-gone"); err != nil {
		t.Fatalf("logout must be idempotent, got %v", err)
	}
}

func TestDeleteExpiredSessions(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	now := time.Now().UTC()

	mock.ExpectExec("DELETE FROM sessions").
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 3))

	deleted, err := repo.DeleteExpiredSessions(context.Background(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 3 {
		t.Errorf("expected 3 deleted sessions, got %d", deleted)
	}
}
