package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clubebrotos/consultant-portal/internal/core/ports"
)

// ClientHeader carries the id returned by POST /v1/portal/start.
const ClientHeader = "X-Portal-Client"

// Context keys set by this package.
const (
	KeyController = "controller"
	KeyClientID   = "client_id"
	KeyRole       = "role"
	KeyToken      = "auth_token"
)

// Client resolves the caller's session controller from ClientHeader and
// injects it, with the current role, into the context.
func Client(registry ports.ControllerRegistry) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			clientID := c.Request().Header.Get(ClientHeader)
			if clientID == "" {
				return echo.NewHTTPError(http.StatusBadRequest, "missing "+ClientHeader+" header")
			}

			ctrl, err := registry.Get(clientID)
			if err != nil {
				return err
			}

			c.Set(KeyClientID, clientID)
			c.Set(KeyController, ctrl)
			if user := ctrl.CurrentUser(); user != nil {
				c.Set(KeyRole, user.Role)
			}
			c.Response().Header().Set(ClientHeader, clientID)

			return next(c)
		}
	}
}
