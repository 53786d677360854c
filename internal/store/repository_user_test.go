package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/ivolkov/accountdesk/internal/logger"
	"github.com/ivolkov/accountdesk/internal/utils"
	"github.com/ivolkov/accountdesk/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	wrapped := &DB{
		DB:         db,
		engine:     EnginePostgres,
		builder:    sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		classifier: PostgresConstraintClassifier{},
		logger:     l,
	}
	return wrapped, mock, db
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	wrapped, mock, db := newTestDB(t)
	repo := &userRepository{
		db:     wrapped,
		logger: wrapped.logger,
		ids:    utils.NewUUIDGenerator(),
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		Name:         "Ann",
		Email:        "a@x.com",
		PasswordHash: "$2a$10$stub",
	}

	mock.ExpectExec("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), user.Name, user.Email, user.PasswordHash, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" {
		t.Error("expected a generated ID, got empty string")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be populated")
	}
	if created.Email != user.Email {
		t.Errorf("expected email %s, got %s", user.Email, created.Email)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Name: "Ann", Email: "a@x.com", PasswordHash: "hash"}

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(ctx, user)
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestCreateUser_Timeout(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(context.DeadlineExceeded)

	_, err := repo.CreateUser(context.Background(), models.User{Email: "a@x.com"})
	if !errors.Is(err, ErrQueryTimeout) {
		t.Fatalf("expected ErrQueryTimeout, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "a@x.com"})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"id", "name", "email", "password_hash", "created_at"}).
		AddRow("u-1", "Ann", "a@x.com", "$2a$10$stub", now)

	mock.ExpectQuery("SELECT id, name, email, password_hash, created_at FROM users").
		WithArgs("a@x.com").
		WillReturnRows(rows)

	found, err := repo.FindUserByEmail(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != "u-1" {
		t.Errorf("expected id u-1, got %s", found.ID)
	}
	if found.PasswordHash != "$2a$10$stub" {
		t.Errorf("expected stored hash to be scanned, got %q", found.PasswordHash)
	}
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, name, email, password_hash, created_at FROM users").
		WithArgs("missing@x.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByEmail(context.Background(), "missing@x.com")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFindUserByID_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, name, email, password_hash, created_at FROM users").
		WithArgs("u-missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByID(context.Background(), "u-missing")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdateUserFields_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	name := "Ann Smith"
	email := "ann@x.com"

	mock.ExpectExec("UPDATE users SET name = (.+), email = (.+) WHERE id = (.+)").
		WithArgs(name, email, "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateUserFields(context.Background(), "u-1", models.UserUpdate{Name: &name, Email: &email})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateUserFields_PartialNameOnly(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	name := "Ann Smith"

	mock.ExpectExec("UPDATE users SET name = (.+) WHERE id = (.+)").
		WithArgs(name, "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateUserFields(context.Background(), "u-1", models.UserUpdate{Name: &name})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateUserFields_NoRowsAffected(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	name := "Ann"

	mock.ExpectExec("UPDATE users").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateUserFields(context.Background(), "u-missing", models.UserUpdate{Name: &name})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound on zero affected rows, got %v", err)
	}
}

func TestUpdateUserFields_DuplicateEmail(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	email := "taken@x.com"

	mock.ExpectExec("UPDATE users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	err := repo.UpdateUserFields(context.Background(), "u-1", models.UserUpdate{Email: &email})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUpdateUserFields_EmptyUpdateIsNoOp(t *testing.T) {
	repo, _, db := newTestUserRepo(t)
	defer db.Close()

	// no expectations registered: any query would fail the test
	if err := repo.UpdateUserFields(context.Background(), "u-1", models.UserUpdate{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
