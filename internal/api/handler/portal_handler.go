package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clubebrotos/consultant-portal/internal/api/middleware"
	"github.com/clubebrotos/consultant-portal/internal/core/domain"
	"github.com/clubebrotos/consultant-portal/internal/core/ports"
)

// PortalHandler exposes one client's session controller over HTTP.
type PortalHandler struct {
	registry ports.ControllerRegistry
}

func NewPortalHandler(registry ports.ControllerRegistry) *PortalHandler {
	return &PortalHandler{registry: registry}
}

// Start handles POST /v1/portal/start.
//
// @Summary      Start a portal client
// @Description  Creates a session controller and restores the identity session named by the bearer token, if any.
// @Tags         session
// @Produce      json
// @Param        Authorization  header    string  false  "Bearer token from a previous login"
// @Success      201            {object}  viewResponse
// @Failure      401            {object}  map[string]string
// @Router       /v1/portal/start [post]
func (h *PortalHandler) Start(c echo.Context) error {
	clientID, ctrl := h.registry.Create()
	view := ctrl.Start(c.Request().Context(), ctxToken(c))

	c.Response().Header().Set(middleware.ClientHeader, clientID)
	return c.JSON(http.StatusCreated, viewResponse{ClientID: clientID, View: view})
}

// View handles GET /v1/portal/view.
//
// @Summary      Current view
// @Tags         session
// @Produce      json
// @Param        X-Portal-Client  header    string  true  "Client id returned by start"
// @Success      200              {object}  viewResponse
// @Failure      404              {object}  map[string]string
// @Router       /v1/portal/view [get]
func (h *PortalHandler) View(c echo.Context) error {
	ctrl, err := ctxController(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, viewResponse{View: ctrl.View()})
}

// Login handles POST /v1/portal/login.
//
// @Summary      Sign in with consultant id and password
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        X-Portal-Client  header    string        true  "Client id returned by start"
// @Param        body             body      loginRequest  true  "Credentials"
// @Success      200              {object}  viewResponse
// @Failure      400              {object}  viewResponse
// @Failure      401              {object}  viewResponse
// @Failure      409              {object}  map[string]string
// @Failure      422              {object}  map[string]string
// @Router       /v1/portal/login [post]
func (h *PortalHandler) Login(c echo.Context) error {
	ctrl, err := ctxController(c)
	if err != nil {
		return err
	}

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	token, err := ctrl.Login(c.Request().Context(), req.ConsultantID, req.Password)
	if err != nil {
		if !isFlowError(err) {
			return err
		}
		return c.JSON(StatusFor(err), viewResponse{View: ctrl.View()})
	}

	return c.JSON(http.StatusOK, viewResponse{Token: token, View: ctrl.View()})
}

// OpenRegistration handles POST /v1/portal/register/open.
//
// @Summary      Show the registration form
// @Tags         registration
// @Produce      json
// @Param        X-Portal-Client  header    string  true  "Client id returned by start"
// @Success      200              {object}  viewResponse
// @Failure      409              {object}  map[string]string
// @Failure      422              {object}  map[string]string
// @Router       /v1/portal/register/open [post]
func (h *PortalHandler) OpenRegistration(c echo.Context) error {
	ctrl, err := ctxController(c)
	if err != nil {
		return err
	}
	if err := ctrl.OpenRegistration(); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, viewResponse{View: ctrl.View()})
}

// CloseRegistration handles POST /v1/portal/register/back.
//
// @Summary      Back to the login form
// @Tags         registration
// @Produce      json
// @Param        X-Portal-Client  header    string  true  "Client id returned by start"
// @Success      200              {object}  viewResponse
// @Failure      409              {object}  map[string]string
// @Failure      422              {object}  map[string]string
// @Router       /v1/portal/register/back [post]
func (h *PortalHandler) CloseRegistration(c echo.Context) error {
	ctrl, err := ctxController(c)
	if err != nil {
		return err
	}
	if err := ctrl.CloseRegistration(); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, viewResponse{View: ctrl.View()})
}

// Register handles POST /v1/portal/register.
//
// @Summary      Register a new consultant
// @Description  On success the client returns to the login form with the new consultant id in the notice.
// @Tags         registration
// @Accept       json
// @Produce      json
// @Param        X-Portal-Client  header    string           true  "Client id returned by start"
// @Param        body             body      registerRequest  true  "Registration form"
// @Success      201              {object}  registerResponse
// @Failure      400              {object}  viewResponse
// @Failure      409              {object}  viewResponse
// @Failure      422              {object}  viewResponse
// @Failure      502              {object}  viewResponse
// @Router       /v1/portal/register [post]
func (h *PortalHandler) Register(c echo.Context) error {
	ctrl, err := ctxController(c)
	if err != nil {
		return err
	}

	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	res, err := ctrl.Register(c.Request().Context(), req.toDraft())
	if err != nil {
		if !isFlowError(err) {
			return err
		}
		return c.JSON(StatusFor(err), viewResponse{View: ctrl.View()})
	}

	return c.JSON(http.StatusCreated, registerResponse{ConsultantID: res.ConsultantID, View: ctrl.View()})
}

// Logout handles POST /v1/portal/logout.
//
// @Summary      Sign out
// @Tags         session
// @Produce      json
// @Param        X-Portal-Client  header    string  true  "Client id returned by start"
// @Success      200              {object}  viewResponse
// @Failure      409              {object}  map[string]string
// @Failure      422              {object}  map[string]string
// @Router       /v1/portal/logout [post]
func (h *PortalHandler) Logout(c echo.Context) error {
	ctrl, err := ctxController(c)
	if err != nil {
		return err
	}
	if err := ctrl.Logout(c.Request().Context()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, viewResponse{View: ctrl.View()})
}

// SelectTab handles POST /v1/portal/tabs/:tab/select. Tabs the role cannot
// see are ignored and reported as not accepted.
//
// @Summary      Select a dashboard tab
// @Tags         navigation
// @Produce      json
// @Param        X-Portal-Client  header    string  true  "Client id returned by start"
// @Param        tab              path      string  true  "Tab id (e.g. overview, financial)"
// @Success      200              {object}  selectTabResponse
// @Router       /v1/portal/tabs/{tab}/select [post]
func (h *PortalHandler) SelectTab(c echo.Context) error {
	ctrl, err := ctxController(c)
	if err != nil {
		return err
	}

	accepted := ctrl.SelectTab(domain.Tab(c.Param("tab")))
	resp := selectTabResponse{Accepted: accepted}
	if dash := ctrl.View().Dashboard; dash != nil {
		resp.ActiveTab = dash.ActiveTab
	}
	return c.JSON(http.StatusOK, resp)
}

// Tab handles GET /v1/portal/tabs/:tab. Access is enforced by RequireTab.
//
// @Summary      Tab descriptor
// @Tags         navigation
// @Produce      json
// @Param        X-Portal-Client  header    string  true  "Client id returned by start"
// @Param        tab              path      string  true  "Tab id"
// @Success      200              {object}  tabResponse
// @Failure      401              {object}  map[string]string
// @Failure      403              {object}  map[string]string
// @Failure      404              {object}  map[string]string
// @Router       /v1/portal/tabs/{tab} [get]
func (h *PortalHandler) Tab(c echo.Context) error {
	ctrl, err := ctxController(c)
	if err != nil {
		return err
	}

	tab := domain.Tab(c.Param("tab"))
	item, ok := domain.LookupTab(tab)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "unknown tab"})
	}

	active := false
	if dash := ctrl.View().Dashboard; dash != nil {
		active = dash.ActiveTab == tab
	}
	return c.JSON(http.StatusOK, tabResponse{Tab: item, Active: active})
}

// ToggleTheme handles POST /v1/portal/theme/toggle.
//
// @Summary      Toggle dark mode
// @Tags         preferences
// @Produce      json
// @Param        X-Portal-Client  header    string  true  "Client id returned by start"
// @Success      200              {object}  themeResponse
// @Router       /v1/portal/theme/toggle [post]
func (h *PortalHandler) ToggleTheme(c echo.Context) error {
	ctrl, err := ctxController(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, themeResponse{DarkMode: ctrl.ToggleTheme()})
}

// Earnings handles GET /v1/portal/earnings.
//
// @Summary      Monthly earnings simulator
// @Tags         earnings
// @Produce      json
// @Param        daily_units  query     int  false  "Units sold per day (1-20, default 4)"
// @Success      200          {object}  earningsResponse
// @Failure      400          {object}  map[string]string
// @Router       /v1/portal/earnings [get]
func (h *PortalHandler) Earnings(c echo.Context) error {
	units := domain.DefaultDailyGoal
	if err := echo.QueryParamsBinder(c).Int("daily_units", &units).BindError(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "daily_units must be an integer"})
	}

	projection, err := domain.SimulateEarnings(units)
	if err != nil {
		return c.JSON(StatusFor(err), map[string]string{"error": err.Error()})
	}

	refs := make([]domain.Earnings, 0, len(domain.ReferenceGoals))
	for _, goal := range domain.ReferenceGoals {
		ref, err := domain.SimulateEarnings(goal)
		if err != nil {
			return err
		}
		refs = append(refs, ref)
	}

	return c.JSON(http.StatusOK, earningsResponse{
		Earnings:      projection,
		ProfitPerUnit: domain.FormatBRL(domain.ProfitPerUnitCents),
		References:    refs,
	})
}

// End handles DELETE /v1/portal. It forgets the client's controller; the
// identity session, if any, is left for a later start to restore.
//
// @Summary      Forget a portal client
// @Tags         session
// @Param        X-Portal-Client  header  string  true  "Client id returned by start"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /v1/portal [delete]
func (h *PortalHandler) End(c echo.Context) error {
	clientID, _ := c.Get(middleware.KeyClientID).(string)
	h.registry.Remove(clientID)
	return c.NoContent(http.StatusNoContent)
}
