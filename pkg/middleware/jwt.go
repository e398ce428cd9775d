package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"CampusHire/internal/apperr"
	"CampusHire/internal/auth"
)

// Setup installs the baseline echo middleware stack.
func Setup(e *echo.Echo) {
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
}

// JWT validates the Bearer token and stores the typed claims in the echo
// context under "user". Missing, malformed, badly signed and expired tokens
// are all rejected 401 without interpreting the payload.
func JWT(key []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, apperr.JSON(apperr.ErrUnauthorized))
			}
			tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

			claims, err := auth.ValidateJWT(tokenString, key)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, apperr.JSON(apperr.ErrUnauthorized))
			}
			c.Set("user", claims)
			return next(c)
		}
	}
}

// RequireRole is the single authorize(session, requiredRole) gate. It assumes
// JWT ran first; a valid session with the wrong role gets 403, which keeps
// "not logged in" (401) and "wrong role" (403) distinguishable for clients.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get("user").(*auth.JWTClaims)
			if !ok || claims == nil {
				return c.JSON(http.StatusUnauthorized, apperr.JSON(apperr.ErrUnauthorized))
			}
			if claims.Role != role {
				return c.JSON(http.StatusForbidden, apperr.JSON(apperr.ErrForbidden))
			}
			return next(c)
		}
	}
}
