package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authHttp "github.com/vidtube/vidtube-backend/internal/auth/delivery/http"
	authRepository "github.com/vidtube/vidtube-backend/internal/auth/repository"
	authUsecase "github.com/vidtube/vidtube-backend/internal/auth/usecase"
	"github.com/vidtube/vidtube-backend/internal/middleware"
	sessRepository "github.com/vidtube/vidtube-backend/internal/session/repository"
	sessUsecase "github.com/vidtube/vidtube-backend/internal/session/usecase"
	videoHttp "github.com/vidtube/vidtube-backend/internal/videos/delivery/http"
	"github.com/vidtube/vidtube-backend/internal/videos/prober"
	videoRepository "github.com/vidtube/vidtube-backend/internal/videos/repository"
	videoUsecase "github.com/vidtube/vidtube-backend/internal/videos/usecase"
	"github.com/vidtube/vidtube-backend/pkg/utils"
)

func (s *Server) MapHandlers(e *echo.Echo) error {
	aRepo := authRepository.NewAuthRepo(s.db)
	vRepo := videoRepository.NewVideoRepo(s.db)
	vAWSRepo := videoRepository.NewAwsRepository(s.s3Client, s.cfg)
	vRedisRepo := videoRepository.NewVideoRedisRepo(s.redisClient)
	vStagingRepo := videoRepository.NewStagingRepository(s.cfg)
	sRepo := sessRepository.NewSessionRepository(s.redisClient, s.cfg)
	durationProber := prober.NewFFprobeProber(s.cfg)

	authUC := authUsecase.NewAuthUseCase(s.cfg, aRepo, s.logger)
	sessUC := sessUsecase.NewSessionUseCase(sRepo, s.cfg)
	videoUC := videoUsecase.NewVideoUseCase(s.cfg, vRepo, vAWSRepo, vRedisRepo, vStagingRepo, durationProber, s.logger)

	authHandlers := authHttp.NewAuthHandler(s.cfg, authUC, sessUC, s.logger)
	videoHandlers := videoHttp.NewVideoHandler(s.cfg, videoUC, s.logger)

	mw := middleware.NewMiddlewareManager(authUC, s.cfg, []string{"*"}, sessUC, s.logger)

	v1 := e.Group("/api/v1")
	health := v1.Group("/health")
	authGroup := v1.Group("/auth")
	videoGroup := v1.Group("/video")

	authHttp.MapAuthRoutes(authGroup, authHandlers, mw)
	videoHttp.MapVideoRoutes(videoGroup, videoHandlers, mw)
	health.GET("", func(c echo.Context) error {
		s.logger.Infof("Health check RequestID: %s", utils.GetRequestID(c))
		return c.JSON(http.StatusOK, map[string]string{"status": "OK"})
	})
	return nil
}
