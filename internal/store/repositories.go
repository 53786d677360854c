package store

import "github.com/ivolkov/accountdesk/internal/logger"

// Repositories bundles all data-access implementations behind their
// interfaces for injection into the service layer.
type Repositories struct {
	UserRepository    UserRepository
	SessionRepository SessionRepository
}

// NewRepositories constructs every repository over the shared DB handle.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(db, logger),
		SessionRepository: NewSessionRepository(db, logger),
	}
}
