package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// BearerToken extracts an optional "Authorization: Bearer <token>" header
// into the context under KeyToken. A malformed header is rejected; a missing
// one is not, since a fresh client has no session to restore.
func BearerToken() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return next(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			c.Set(KeyToken, strings.TrimSpace(parts[1]))
			return next(c)
		}
	}
}
