package http

import (
	"github.com/labstack/echo/v4"
	"github.com/vidtube/vidtube-backend/internal/auth"
	"github.com/vidtube/vidtube-backend/internal/middleware"
)

func MapAuthRoutes(authGroup *echo.Group, h auth.Handler, mw *middleware.MiddlewareManager) {
	authGroup.POST("/register", h.Register())
	authGroup.POST("/login", h.Login())
	authGroup.POST("/logout", h.Logout())
	authGroup.Use(mw.AuthSessionMiddleware)
	authGroup.GET("/me", h.GetMe())
	authGroup.GET("/:user_id", h.GetUserByID())
}
