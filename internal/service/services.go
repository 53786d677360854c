package service

import (
	"github.com/ivolkov/accountdesk/internal/config"
	"github.com/ivolkov/accountdesk/internal/logger"
	"github.com/ivolkov/accountdesk/internal/store"
)

type Services struct {
	AuthService    AuthService
	ProfileService ProfileService
}

func NewServices(repositories *store.Repositories, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(repositories.UserRepository, repositories.SessionRepository, cfg, logger),
		ProfileService: NewProfileService(repositories.UserRepository, logger),
	}
}
