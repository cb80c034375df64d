package middleware

import (
	"github.com/vidtube/vidtube-backend/internal/auth"
	"github.com/vidtube/vidtube-backend/internal/config"
	"github.com/vidtube/vidtube-backend/internal/session"
	"github.com/vidtube/vidtube-backend/pkg/logger"
)

type MiddlewareManager struct {
	authUC  auth.UseCase
	sessUC  session.UCSession
	cfg     *config.Config
	origins []string
	logger  logger.Logger
}

// Middleware manager constructor
func NewMiddlewareManager(authUC auth.UseCase, cfg *config.Config, origins []string, sessUC session.UCSession, logger logger.Logger) *MiddlewareManager {
	return &MiddlewareManager{authUC: authUC, cfg: cfg, origins: origins, sessUC: sessUC, logger: logger}
}
