package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/clubebrotos/consultant-portal/internal/core/domain"
	"github.com/clubebrotos/consultant-portal/internal/core/ports"
	"github.com/clubebrotos/consultant-portal/internal/pkg/metrics"
)

// SessionController is the single owner of one client's session: the current
// consultant, the screen shown and the active dashboard tab. Every mutation
// goes through it.
//
// Calls to the identity service happen outside the lock. The loading flag
// set before such a call keeps a second submission out until the first one
// has finished, whatever way it finished.
type SessionController struct {
	gateway      ports.IdentityGateway
	login        *LoginFlow
	registration *RegistrationFlow
	events       ports.EventPublisher
	log          zerolog.Logger
	now          func() time.Time

	mu      sync.Mutex
	started bool
	state   domain.SessionState
	nav     domain.Navigation
	token   string
	loading bool
	errMsg  string
	notice  string
	draft   *domain.RegistrationDraft
	theme   *domain.Theme
}

// ControllerOptions tunes a SessionController. Zero values fall back to the
// defaults.
type ControllerOptions struct {
	MaxIDAttempts int
	NewID         IDGenerator
	Now           func() time.Time
}

func NewSessionController(gateway ports.IdentityGateway, events ports.EventPublisher, log zerolog.Logger, opts ControllerOptions) *SessionController {
	if events == nil {
		events = nopPublisher{}
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &SessionController{
		gateway:      gateway,
		login:        NewLoginFlow(gateway),
		registration: NewRegistrationFlow(gateway, opts.NewID, opts.MaxIDAttempts, log),
		events:       events,
		log:          log,
		now:          now,
		state:        domain.Unauthenticated(false),
		nav:          domain.NewNavigation(),
		theme:        domain.NewTheme(),
	}
}

// Start restores an existing identity-service session, if token names one.
// Only the first call does any work; later calls return the current view.
func (c *SessionController) Start(ctx context.Context, token string) ports.SessionView {
	c.mu.Lock()
	if c.started || c.loading {
		v := c.viewLocked()
		c.mu.Unlock()
		return v
	}
	c.started = true
	c.loading = true
	c.mu.Unlock()

	c.restore(ctx, token)
	return c.View()
}

func (c *SessionController) restore(ctx context.Context, token string) {
	var (
		user *domain.Consultant
		err  error
	)
	defer func() {
		if r := recover(); r != nil {
			c.log.Error().Interface("panic", r).Msg("session restore panicked")
			user = nil
		}
		c.mu.Lock()
		c.loading = false
		if user != nil {
			c.setUserLocked(user, token)
		}
		c.mu.Unlock()
	}()

	ref, err := c.gateway.RestoreSession(ctx, token)
	if err != nil {
		if !errors.Is(err, domain.ErrNoSession) {
			c.log.Warn().Err(err).Msg("session restore failed")
		}
		return
	}

	user, err = c.gateway.FindConsultantByAuthID(ctx, ref.AuthID)
	if err != nil {
		c.log.Warn().Err(err).Str("auth_id", ref.AuthID).Msg("restored session has no consultant record")
		user = nil
		return
	}

	c.publish(domain.EventRestore, user.ID, ref.AuthID, nil)
	c.log.Info().Str("consultant_id", user.ID).Msg("session restored")
}

// Login runs the login flow and, on success, makes the consultant current.
// The returned token is the identity service's session handle.
func (c *SessionController) Login(ctx context.Context, id, password string) (token string, err error) {
	c.mu.Lock()
	switch {
	case c.loading:
		c.mu.Unlock()
		return "", domain.ErrBusy
	case c.state.Phase != domain.PhaseUnauthenticated || c.state.ShowingRegister:
		c.mu.Unlock()
		return "", domain.ErrInvalidTransition
	}
	c.loading = true
	c.errMsg = ""
	c.notice = ""
	c.state = domain.SessionState{Phase: domain.PhaseAuthenticating}
	c.mu.Unlock()

	var (
		user    *domain.Consultant
		session *domain.AuthSession
	)
	defer func() {
		if r := recover(); r != nil {
			c.log.Error().Interface("panic", r).Msg("login panicked")
			err = fmt.Errorf("login: unexpected failure: %v", r)
		}
		c.finishLogin(id, user, session, err)
		if err == nil {
			token = session.Token
		}
	}()

	user, session, err = c.login.Run(ctx, id, password)
	return "", err
}

func (c *SessionController) finishLogin(id string, user *domain.Consultant, session *domain.AuthSession, err error) {
	c.mu.Lock()
	c.loading = false
	if err == nil {
		c.setUserLocked(user, session.Token)
	} else {
		c.state = domain.Unauthenticated(false)
		c.errMsg = LoginMessage(err)
	}
	c.mu.Unlock()

	metrics.LoginAttemptsTotal.WithLabelValues(loginOutcome(err)).Inc()
	if err != nil {
		c.log.Info().Err(err).Str("consultant_id", id).Msg("login failed")
		c.publish(domain.EventLogin, id, "", err)
		return
	}
	c.log.Info().Str("consultant_id", user.ID).Msg("login succeeded")
	c.publish(domain.EventLogin, user.ID, session.AuthID, nil)
}

// OpenRegistration switches the signed-out client to the sign-up form.
func (c *SessionController) OpenRegistration() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loading {
		return domain.ErrBusy
	}
	if c.state.Phase != domain.PhaseUnauthenticated || c.state.ShowingRegister {
		return domain.ErrInvalidTransition
	}
	c.state.ShowingRegister = true
	c.errMsg = ""
	c.notice = ""
	return nil
}

// CloseRegistration goes back to the login form and drops the draft.
func (c *SessionController) CloseRegistration() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loading {
		return domain.ErrBusy
	}
	if c.state.Phase != domain.PhaseUnauthenticated || !c.state.ShowingRegister {
		return domain.ErrInvalidTransition
	}
	c.state.ShowingRegister = false
	c.draft = nil
	c.errMsg = ""
	return nil
}

// Register runs the registration flow. On success the client returns to the
// login form with the new id in the notice; it is not signed in.
func (c *SessionController) Register(ctx context.Context, d domain.RegistrationDraft) (res *ports.RegistrationResult, err error) {
	c.mu.Lock()
	switch {
	case c.loading:
		c.mu.Unlock()
		return nil, domain.ErrBusy
	case c.state.Phase != domain.PhaseUnauthenticated || !c.state.ShowingRegister:
		c.mu.Unlock()
		return nil, domain.ErrInvalidTransition
	}
	c.loading = true
	c.errMsg = ""
	c.notice = ""
	redacted := d.Redacted()
	c.draft = &redacted
	c.mu.Unlock()

	var consultant *domain.Consultant
	defer func() {
		if r := recover(); r != nil {
			c.log.Error().Interface("panic", r).Msg("registration panicked")
			err = fmt.Errorf("registration: unexpected failure: %v", r)
			res = nil
		}
		c.finishRegistration(consultant, err)
	}()

	consultant, err = c.registration.Run(ctx, d)
	if err != nil {
		return nil, err
	}
	return &ports.RegistrationResult{ConsultantID: consultant.ID}, nil
}

func (c *SessionController) finishRegistration(consultant *domain.Consultant, err error) {
	c.mu.Lock()
	c.loading = false
	if err == nil {
		c.state = domain.Unauthenticated(false)
		c.draft = nil
		c.notice = RegisteredNotice(consultant.ID)
	} else {
		c.errMsg = RegistrationMessage(err)
	}
	c.mu.Unlock()

	metrics.RegistrationsTotal.WithLabelValues(registrationOutcome(err)).Inc()
	if err != nil {
		c.log.Info().Err(err).Msg("registration failed")
		c.publish(domain.EventRegistration, "", "", err)
		return
	}
	c.publish(domain.EventRegistration, consultant.ID, consultant.AuthID, nil)
}

// Logout ends the identity-service session and clears the current user. The
// local session is cleared even when the remote sign-out fails.
func (c *SessionController) Logout(ctx context.Context) error {
	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return domain.ErrBusy
	}
	if c.state.Phase != domain.PhaseAuthenticated {
		c.mu.Unlock()
		return domain.ErrInvalidTransition
	}
	c.loading = true
	token := c.token
	user := c.state.User
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.loading = false
		c.state = domain.Unauthenticated(false)
		c.token = ""
		c.nav.Reset()
		c.errMsg = ""
		c.notice = ""
		c.mu.Unlock()
	}()

	if err := c.gateway.SignOut(ctx, token); err != nil {
		c.log.Warn().Err(err).Str("consultant_id", user.ID).Msg("remote sign-out failed")
	}
	c.log.Info().Str("consultant_id", user.ID).Msg("logged out")
	c.publish(domain.EventLogout, user.ID, user.AuthID, nil)
	return nil
}

// SelectTab moves the dashboard to tab when the current role may see it.
// It reports whether the selection was accepted; hidden tabs are ignored.
func (c *SessionController) SelectTab(tab domain.Tab) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	ok := c.state.Phase == domain.PhaseAuthenticated && c.nav.Select(c.state.User.Role, tab)
	if ok {
		metrics.TabSelectionsTotal.WithLabelValues("accepted").Inc()
	} else {
		metrics.TabSelectionsTotal.WithLabelValues("ignored").Inc()
	}
	return ok
}

// ToggleTheme flips dark mode and returns the new value.
func (c *SessionController) ToggleTheme() bool {
	return c.theme.Toggle()
}

// Theme exposes the session's theme for subscription.
func (c *SessionController) Theme() *domain.Theme {
	return c.theme
}

// CurrentUser returns a copy of the signed-in consultant, or nil.
func (c *SessionController) CurrentUser() *domain.Consultant {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.User == nil {
		return nil
	}
	u := *c.state.User
	return &u
}

// View returns a snapshot for rendering.
func (c *SessionController) View() ports.SessionView {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

func (c *SessionController) viewLocked() ports.SessionView {
	v := ports.SessionView{
		Screen:   c.state.Screen(),
		Phase:    c.state.Phase,
		Loading:  c.loading,
		Error:    c.errMsg,
		Notice:   c.notice,
		DarkMode: c.theme.Dark(),
	}
	if c.draft != nil {
		d := *c.draft
		v.Draft = &d
	}
	if u := c.state.User; c.state.Phase == domain.PhaseAuthenticated && u != nil {
		consultant := *u
		v.Dashboard = &ports.DashboardView{
			Consultant: &consultant,
			LevelLabel: u.Role.LevelLabel(),
			Greeting:   "Olá, " + u.FirstName() + "!",
			Menu:       domain.MenuFor(u.Role),
			ActiveTab:  c.nav.ActiveTab,
		}
	}
	return v
}

// setUserLocked makes user current. Any change of user lands on the default
// tab.
func (c *SessionController) setUserLocked(user *domain.Consultant, token string) {
	c.state = domain.Authenticated(user)
	c.token = token
	c.nav.Reset()
	c.errMsg = ""
	c.notice = ""
	c.draft = nil
}

func (c *SessionController) publish(kind domain.SessionEventKind, consultantID, authID string, err error) {
	ev := domain.SessionEvent{
		Kind:         kind,
		ConsultantID: consultantID,
		AuthID:       authID,
		Outcome:      domain.OutcomeSuccess,
		OccurredAt:   c.now().UTC(),
	}
	if err != nil {
		ev.Outcome = domain.OutcomeFailure
		ev.Reason = err.Error()
	}
	c.events.Publish(ev)
}

func loginOutcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrUnknownIdentifier):
		return "unknown_id"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, domain.ErrMissingFields):
		return "missing_fields"
	default:
		return "error"
	}
}

func registrationOutcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrMissingFields):
		return "missing_fields"
	case errors.Is(err, domain.ErrPasswordMismatch):
		return "password_mismatch"
	case errors.Is(err, domain.ErrIdentityCreationFailed):
		return "identity_failed"
	case errors.Is(err, domain.ErrRecordInsertionFailed):
		return "insert_failed"
	default:
		return "error"
	}
}

type nopPublisher struct{}

func (nopPublisher) Publish(domain.SessionEvent) {}
