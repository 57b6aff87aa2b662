package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clubebrotos/consultant-portal/internal/core/domain"
)

// RequireTab gates a route on the tab named by the path parameter param.
// It must run after Client, which sets the caller's role.
func RequireTab(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tab := domain.Tab(c.Param(param))
			if _, ok := domain.LookupTab(tab); !ok {
				return c.JSON(http.StatusNotFound, map[string]string{"error": "unknown tab"})
			}

			role, _ := c.Get(KeyRole).(domain.Role)
			if role == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "not signed in"})
			}
			if !tab.CanView(role) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
