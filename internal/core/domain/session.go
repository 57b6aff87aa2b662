package domain

// Phase is the top-level state of a portal session.
type Phase string

const (
	PhaseUnauthenticated Phase = "unauthenticated"
	PhaseAuthenticating  Phase = "authenticating"
	PhaseAuthenticated   Phase = "authenticated"
)

// Screen is the top-level page the client should render.
type Screen string

const (
	ScreenLogin     Screen = "login"
	ScreenRegister  Screen = "register"
	ScreenDashboard Screen = "dashboard"
)

// SessionState is the controller-owned record of who is logged in.
// User is non-nil exactly when Phase is PhaseAuthenticated.
type SessionState struct {
	Phase           Phase
	ShowingRegister bool
	User            *Consultant
}

// Screen derives the page to render from the state. While a login is in
// flight the login page stays up.
func (s SessionState) Screen() Screen {
	switch {
	case s.Phase == PhaseAuthenticated:
		return ScreenDashboard
	case s.ShowingRegister:
		return ScreenRegister
	default:
		return ScreenLogin
	}
}

// Unauthenticated returns the signed-out state.
func Unauthenticated(showingRegister bool) SessionState {
	return SessionState{Phase: PhaseUnauthenticated, ShowingRegister: showingRegister}
}

// Authenticated returns the signed-in state for user.
func Authenticated(user *Consultant) SessionState {
	return SessionState{Phase: PhaseAuthenticated, User: user}
}
