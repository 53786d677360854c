package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/ivolkov/accountdesk/internal/logger"
	"github.com/ivolkov/accountdesk/internal/utils"
	"github.com/ivolkov/accountdesk/models"
)

// userColumns is the canonical column list scanned into a [models.User].
var userColumns = []string{"id", "name", "email", "password_hash", "created_at"}

// userRepository is the SQL-backed implementation of [UserRepository].
// Queries are built with the engine-aware squirrel builder held by the DB
// wrapper, so the same code serves both PostgreSQL and SQLite.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
	ids    *utils.UUIDGenerator
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
	}
}

// CreateUser assigns the server-side fields (ID, CreatedAt) and inserts the
// record. IDs are generated in the application so the same INSERT works on
// every engine without RETURNING.
//
// Error handling:
//   - unique constraint on email → [ErrEmailTaken].
//   - request deadline expired → [ErrQueryTimeout].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.ID = r.ids.Generate()
	user.CreatedAt = time.Now().UTC()

	query, args, err := r.db.Builder().
		Insert(user.TableName()).
		Columns(userColumns...).
		Values(user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building insert query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("email", user.Email).Msg("user insert failed")

		switch mapped := r.db.mapError(err); {
		case errors.Is(mapped, ErrEmailTaken), errors.Is(mapped, ErrQueryTimeout):
			return models.User{}, mapped
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return user, nil
}

// FindUserByEmail retrieves the user record whose email exactly matches the
// argument.
//
// Error handling:
//   - empty result set → [ErrUserNotFound].
//   - request deadline expired → [ErrQueryTimeout].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUserBy(ctx, "email", email)
}

// FindUserByID retrieves the user record with the given opaque identifier.
// Error mapping matches [FindUserByEmail].
func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return r.findUserBy(ctx, "id", id)
}

func (r *userRepository) findUserBy(ctx context.Context, column, value string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{column: value}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUserBy").Msg("error building select query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&found.ID, &found.Name, &found.Email, &found.PasswordHash, &found.CreatedAt); err != nil {
		switch mapped := r.db.mapError(err); {
		case errors.Is(err, sql.ErrNoRows):
			return models.User{}, ErrUserNotFound
		case errors.Is(mapped, ErrQueryTimeout):
			log.Err(err).Str("func", "*userRepository.findUserBy").Msg("user lookup timed out")
			return models.User{}, mapped
		default:
			log.Err(err).Str("func", "*userRepository.findUserBy").Str("column", column).Msg("user lookup failed")
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return found, nil
}

// UpdateUserFields applies a partial update of the mutable profile fields.
// Only columns present in update are included in the SET clause; the
// password hash is structurally impossible to touch here.
//
// Error handling:
//   - zero rows affected → [ErrUserNotFound] (a silent no-op would hide a
//     stale or forged id from the caller).
//   - unique constraint on email → [ErrEmailTaken].
//   - request deadline expired → [ErrQueryTimeout].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) UpdateUserFields(ctx context.Context, id string, update models.UserUpdate) error {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		return nil
	}

	builder := r.db.Builder().Update(models.User{}.TableName())
	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}

	query, args, err := builder.Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUserFields").Msg("error building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUserFields").Str("id", id).Msg("user update failed")

		switch mapped := r.db.mapError(err); {
		case errors.Is(mapped, ErrEmailTaken), errors.Is(mapped, ErrQueryTimeout):
			return mapped
		default:
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUserFields").Msg("error reading affected rows")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}
