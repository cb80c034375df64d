package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/vidtube/vidtube-backend/pkg/utils"
)

// AuthSessionMiddleware resolves the session cookie into a user and stores it
// on both the echo context and the request context.
func (mw *MiddlewareManager) AuthSessionMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(mw.cfg.Session.Name)
		if err != nil {
			mw.logger.Errorf("AuthSessionMiddleware RequestID: %s, Error: %s", utils.GetRequestID(c), err.Error())
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		}

		sess, err := mw.sessUC.GetSessionByID(c.Request().Context(), cookie.Value)
		if err != nil {
			mw.logger.Errorf("GetSessionByID RequestID: %s, Error: %s", utils.GetRequestID(c), err.Error())
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		}

		user, err := mw.authUC.GetByID(c.Request().Context(), sess.UserID)
		if err != nil {
			mw.logger.Errorf("GetByID RequestID: %s, Error: %s", utils.GetRequestID(c), err.Error())
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		}

		c.Set("sid", cookie.Value)
		c.Set("user", user)

		ctx := context.WithValue(c.Request().Context(), utils.UserCtxKey{}, user)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// AuthJWTMiddleware validates a bearer token and stores the resolved user on
// the request context. Used for clients that cannot carry cookies.
func (mw *MiddlewareManager) AuthJWTMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			bearerHeader := c.Request().Header.Get("Authorization")
			if bearerHeader == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
			}

			headerParts := strings.Split(bearerHeader, " ")
			if len(headerParts) != 2 {
				mw.logger.Errorf("AuthJWTMiddleware RequestID: %s, Error: invalid bearer header", utils.GetRequestID(c))
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
			}

			claims, err := utils.ValidateToken(headerParts[1], mw.cfg.Server.JwtSecretKey)
			if err != nil {
				mw.logger.Errorf("ValidateToken RequestID: %s, Error: %s", utils.GetRequestID(c), err.Error())
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
			}

			userUUID, err := uuid.Parse(claims.UserID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
			}

			user, err := mw.authUC.GetByID(c.Request().Context(), userUUID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
			}

			c.Set("user", user)
			ctx := context.WithValue(c.Request().Context(), utils.UserCtxKey{}, user)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
