package http

import (
	"html/template"

	"github.com/ivolkov/accountdesk/internal/config"
	"github.com/ivolkov/accountdesk/internal/logger"
	"github.com/ivolkov/accountdesk/internal/service"
)

type Handler struct {
	services *service.Services

	cfg config.Server

	templates map[string]*template.Template

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		cfg:       cfg,
		templates: parseTemplates(),
		logger:    logger,
	}
}
