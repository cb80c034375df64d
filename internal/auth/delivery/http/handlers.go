package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/vidtube/vidtube-backend/internal/auth"
	"github.com/vidtube/vidtube-backend/internal/config"
	"github.com/vidtube/vidtube-backend/internal/models"
	"github.com/vidtube/vidtube-backend/internal/session"
	"github.com/vidtube/vidtube-backend/pkg/logger"
	"github.com/vidtube/vidtube-backend/pkg/utils"
)

type authHandler struct {
	cfg    *config.Config
	authUC auth.UseCase
	sessUC session.UCSession
	logger logger.Logger
}

func NewAuthHandler(cfg *config.Config, authUC auth.UseCase, sessUC session.UCSession, logger logger.Logger) auth.Handler {
	return &authHandler{
		cfg:    cfg,
		authUC: authUC,
		sessUC: sessUC,
		logger: logger,
	}
}

func (h *authHandler) Register() echo.HandlerFunc {
	return func(c echo.Context) error {
		user := &models.User{}
		if err := c.Bind(user); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		}

		createdUser, err := h.authUC.Register(c.Request().Context(), user)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		sessionID, err := h.sessUC.CreateSession(c.Request().Context(), &models.Session{
			UserID: createdUser.User.UserID,
		}, h.cfg.Session.Expire)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		c.SetCookie(utils.CreateSessionCookie(h.cfg, sessionID))

		return c.JSON(http.StatusCreated, createdUser)
	}
}

func (h *authHandler) Login() echo.HandlerFunc {
	return func(c echo.Context) error {
		user := &models.User{}
		if err := c.Bind(user); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		}

		loginUser, err := h.authUC.Login(c.Request().Context(), user)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		sessionID, err := h.sessUC.CreateSession(c.Request().Context(), &models.Session{
			UserID: loginUser.User.UserID,
		}, h.cfg.Session.Expire)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		c.SetCookie(utils.CreateSessionCookie(h.cfg, sessionID))

		return c.JSON(http.StatusOK, loginUser)
	}
}

func (h *authHandler) Logout() echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(h.cfg.Session.Name)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		}
		if err = h.sessUC.DeleteByID(c.Request().Context(), cookie.Value); err != nil {
			h.logger.Errorf("Logout - DeleteByID error: %v", err)
		}
		c.SetCookie(utils.DeleteSessionCookie(h.cfg))
		return c.JSON(http.StatusOK, map[string]string{"message": "Logged out"})
	}
}

func (h *authHandler) GetMe() echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := c.Get("user").(*models.User)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized access"})
		}
		return c.JSON(http.StatusOK, user)
	}
}

func (h *authHandler) GetUserByID() echo.HandlerFunc {
	return func(c echo.Context) error {
		uID, err := uuid.Parse(c.Param("user_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid user id"})
		}

		user, err := h.authUC.GetByID(c.Request().Context(), uID)
		if err != nil {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, user)
	}
}
