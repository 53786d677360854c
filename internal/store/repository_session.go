// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ilya Volkov

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/ivolkov/accountdesk/internal/logger"
	"github.com/ivolkov/accountdesk/models"
)

// sessionColumns is the canonical column list scanned into a [models.Session].
var sessionColumns = []string{"token", "user_id", "created_at", "expires_at"}

// sessionRepository is the SQL-backed implementation of [SessionRepository].
// The sessions table is the server-side session store: the client only ever
// holds the opaque token.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSession inserts a new session row. The token must already be set by
// the caller (the authenticator generates it).
func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Insert(session.TableName()).
		Columns(sessionColumns...).
		Values(session.Token, session.UserID, session.CreatedAt, session.ExpiresAt).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error building insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Str("user_id", session.UserID).Msg("session insert failed")

		if mapped := r.db.mapError(err); errors.Is(mapped, ErrQueryTimeout) {
			return mapped
		}
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// FindSessionByToken retrieves the session identified by token.
//
// Error handling:
//   - empty result set → [ErrSessionNotFound].
//   - request deadline expired → [ErrQueryTimeout].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *sessionRepository) FindSessionByToken(ctx context.Context, token string) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Select(sessionColumns...).
		From(models.Session{}.TableName()).
		Where(sq.Eq{"token": token}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.FindSessionByToken").Msg("error building select query")
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Session
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&found.Token, &found.UserID, &found.CreatedAt, &found.ExpiresAt); err != nil {
		switch mapped := r.db.mapError(err); {
		case errors.Is(err, sql.ErrNoRows):
			return models.Session{}, ErrSessionNotFound
		case errors.Is(mapped, ErrQueryTimeout):
			log.Err(err).Str("func", "*sessionRepository.FindSessionByToken").Msg("session lookup timed out")
			return models.Session{}, mapped
		default:
			log.Err(err).Str("func", "*sessionRepository.FindSessionByToken").Msg("session lookup failed")
			return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return found, nil
}

// DeleteSessionByToken destroys the session identified by token. A token
// that matches nothing is not an error: logout must be idempotent.
func (r *sessionRepository) DeleteSessionByToken(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Delete(models.Session{}.TableName()).
		Where(sq.Eq{"token": token}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteSessionByToken").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteSessionByToken").Msg("session delete failed")

		if mapped := r.db.mapError(err); errors.Is(mapped, ErrQueryTimeout) {
			return mapped
		}
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// DeleteExpiredSessions removes every session that expired before now and
// reports how many rows went away. Invoked opportunistically; losing the
// count on a driver that cannot report affected rows is acceptable.
func (r *sessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Delete(models.Session{}.TableName()).
		Where(sq.Lt{"expires_at": now}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteExpiredSessions").Msg("error building delete query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteExpiredSessions").Msg("expired session sweep failed")

		if mapped := r.db.mapError(err); errors.Is(mapped, ErrQueryTimeout) {
			return 0, mapped
		}
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, nil
	}

	return affected, nil
}
