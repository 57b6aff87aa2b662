package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clubebrotos/consultant-portal/internal/api/middleware"
	"github.com/clubebrotos/consultant-portal/internal/core/ports"
)

// ctxController returns the session controller injected by the Client
// middleware. Its absence means the route was mounted without it.
func ctxController(c echo.Context) (ports.SessionController, error) {
	ctrl, ok := c.Get(middleware.KeyController).(ports.SessionController)
	if !ok || ctrl == nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "session controller not resolved")
	}
	return ctrl, nil
}

// ctxToken returns the optional bearer token set by the BearerToken middleware.
func ctxToken(c echo.Context) string {
	token, _ := c.Get(middleware.KeyToken).(string)
	return token
}
