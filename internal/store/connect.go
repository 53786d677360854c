package store

import (
	"context"
	"fmt"

	"github.com/ivolkov/accountdesk/internal/config"
	"github.com/ivolkov/accountdesk/internal/logger"
)

// NewConnect opens a database connection for the configured engine. The
// config layer has already validated the engine name, so an unknown value
// here means the two packages disagree.
func NewConnect(ctx context.Context, cfg config.Storage, log *logger.Logger) (*DB, error) {
	switch Engine(cfg.DB.Engine) {
	case EnginePostgres:
		return NewConnectPostgres(ctx, cfg.DB, log)
	case EngineSQLite:
		return NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("unsupported storage engine %q", cfg.DB.Engine)
	}
}
