package api

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/clubebrotos/consultant-portal/docs"
	"github.com/clubebrotos/consultant-portal/internal/api/handler"
	"github.com/clubebrotos/consultant-portal/internal/api/middleware"
	"github.com/clubebrotos/consultant-portal/internal/core/ports"
	infrahttp "github.com/clubebrotos/consultant-portal/internal/infrastructure/http"
	"github.com/clubebrotos/consultant-portal/internal/infrastructure/http/handlers"
)

// Dependencies is everything the router needs from the composition root.
type Dependencies struct {
	Registry   ports.ControllerRegistry
	Log        zerolog.Logger
	Registerer prometheus.Registerer
	Checks     []handlers.DependencyCheck
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	if deps.Registerer == nil {
		deps.Registerer = prometheus.DefaultRegisterer
	}

	e := infrahttp.NewEngine(deps.Log, deps.Registerer, deps.Checks...)
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	portal := handler.NewPortalHandler(deps.Registry)

	v1 := e.Group("/v1/portal")
	v1.POST("/start", portal.Start, middleware.BearerToken())
	v1.GET("/earnings", portal.Earnings)

	// --- Routes bound to a started client ---
	client := v1.Group("", middleware.Client(deps.Registry))
	client.DELETE("", portal.End)
	client.GET("/view", portal.View)
	client.POST("/login", portal.Login)
	client.POST("/register/open", portal.OpenRegistration)
	client.POST("/register/back", portal.CloseRegistration)
	client.POST("/register", portal.Register)
	client.POST("/logout", portal.Logout)
	client.POST("/tabs/:tab/select", portal.SelectTab)
	client.GET("/tabs/:tab", portal.Tab, middleware.RequireTab("tab"))
	client.POST("/theme/toggle", portal.ToggleTheme)

	return e
}
