package store

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/ivolkov/accountdesk/internal/logger"
	"github.com/ivolkov/accountdesk/migrations"
)

// Engine identifies the SQL backend a DB connection was opened against.
type Engine string

const (
	// EnginePostgres is the production backend (pgx stdlib driver).
	EnginePostgres Engine = "postgres"

	// EngineSQLite is the local-development backend (mattn/go-sqlite3).
	EngineSQLite Engine = "sqlite"
)

// gooseDialect returns the goose dialect name matching the engine's driver.
func (e Engine) gooseDialect() string {
	if e == EngineSQLite {
		return "sqlite3"
	}
	return "pgx"
}

// DB wraps the raw database handle with the pieces repositories need:
// a squirrel statement builder configured with the engine's placeholder
// format and a classifier that recognises driver-specific constraint
// violations.
type DB struct {
	*sql.DB
	engine     Engine
	builder    sq.StatementBuilderType
	classifier ConstraintClassifier
	logger     *logger.Logger
}

// ConstraintClassifier recognises driver-specific integrity errors so that
// repositories can map them to store sentinels without importing driver
// packages themselves.
type ConstraintClassifier interface {
	// IsUniqueViolation reports whether err was caused by a unique
	// constraint violation (duplicate email).
	IsUniqueViolation(err error) bool
}

// Builder exposes the engine-aware squirrel statement builder.
func (db *DB) Builder() sq.StatementBuilderType {
	return db.builder
}

// Migrate applies all embedded goose migrations using the dialect matching
// the connection's engine.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.engine.gooseDialect())
}

// mapError translates low-level failures shared by all engines into store
// sentinels: a request-deadline expiry becomes [ErrQueryTimeout] and a
// unique violation becomes [ErrEmailTaken]. Any other error is returned
// unchanged for the caller to wrap.
func (db *DB) mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.DeadlineExceeded):
		return ErrQueryTimeout
	case db.classifier != nil && db.classifier.IsUniqueViolation(err):
		return ErrEmailTaken
	default:
		return err
	}
}
