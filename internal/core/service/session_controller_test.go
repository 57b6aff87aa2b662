package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/clubebrotos/consultant-portal/internal/core/domain"
)

func newController(gw *stubGateway) (*SessionController, *recordingPublisher) {
	pub := &recordingPublisher{}
	return NewSessionController(gw, pub, zerolog.Nop(), ControllerOptions{MaxIDAttempts: 3}), pub
}

func loggedIn(t *testing.T, role domain.Role) (*SessionController, *stubGateway) {
	t.Helper()
	gw := newStubGateway()
	gw.seed("123456", "Pedro Alves", "pedro@example.com", "pw", role)
	ctrl, _ := newController(gw)
	ctrl.Start(context.Background(), "")
	if _, err := ctrl.Login(context.Background(), "123456", "pw"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	return ctrl, gw
}

// Scenario A: no active session at startup.
func TestSessionController_StartWithoutSession(t *testing.T) {
	ctrl, _ := newController(newStubGateway())

	v := ctrl.Start(context.Background(), "")
	if v.Screen != domain.ScreenLogin {
		t.Fatalf("expected login screen, got %s", v.Screen)
	}
	if v.Loading {
		t.Fatalf("loading must be cleared after start")
	}
	if ctrl.CurrentUser() != nil {
		t.Fatalf("expected no current user")
	}
}

// Scenario B: restored leader session lands on the dashboard overview.
func TestSessionController_StartRestoresLeader(t *testing.T) {
	gw := newStubGateway()
	leader := gw.seed("654321", "Pedro Alves", "pedro@example.com", "pw", domain.RoleLeader)
	gw.sessions["live-token"] = leader.AuthID

	ctrl, pub := newController(gw)
	v := ctrl.Start(context.Background(), "live-token")

	if v.Screen != domain.ScreenDashboard {
		t.Fatalf("expected dashboard, got %s", v.Screen)
	}
	if v.Dashboard == nil || v.Dashboard.ActiveTab != domain.TabOverview {
		t.Fatalf("expected overview tab, got %+v", v.Dashboard)
	}
	found := false
	for _, item := range v.Dashboard.Menu {
		if item.ID == domain.TabFinancial {
			found = true
		}
	}
	if !found {
		t.Fatalf("leader menu must include financial: %+v", v.Dashboard.Menu)
	}
	if v.Dashboard.LevelLabel != "LÍDER/DISTRIBUIDOR" || v.Dashboard.Greeting != "Olá, Pedro!" {
		t.Fatalf("unexpected dashboard labels: %+v", v.Dashboard)
	}
	if len(pub.events) != 1 || pub.events[0].Kind != domain.EventRestore {
		t.Fatalf("expected a restore event, got %+v", pub.events)
	}
}

func TestSessionController_StartOnlyOnce(t *testing.T) {
	gw := newStubGateway()
	leader := gw.seed("654321", "Pedro Alves", "pedro@example.com", "pw", domain.RoleLeader)
	ctrl, _ := newController(gw)

	ctrl.Start(context.Background(), "")
	gw.sessions["late-token"] = leader.AuthID
	if v := ctrl.Start(context.Background(), "late-token"); v.Screen != domain.ScreenLogin {
		t.Fatalf("second start must not restore, got %s", v.Screen)
	}
}

func TestSessionController_StartWithDanglingSession(t *testing.T) {
	gw := newStubGateway()
	gw.sessions["orphan"] = "auth-missing"
	ctrl, _ := newController(gw)

	if v := ctrl.Start(context.Background(), "orphan"); v.Screen != domain.ScreenLogin {
		t.Fatalf("expected login screen, got %s", v.Screen)
	}
}

// Scenario C: unknown id.
func TestSessionController_LoginUnknownID(t *testing.T) {
	gw := newStubGateway()
	ctrl, pub := newController(gw)
	ctrl.Start(context.Background(), "")

	_, err := ctrl.Login(context.Background(), "000000", "pw")
	if !errors.Is(err, domain.ErrUnknownIdentifier) {
		t.Fatalf("expected ErrUnknownIdentifier, got %v", err)
	}
	v := ctrl.View()
	if v.Error != "ID de consultor não encontrado." {
		t.Fatalf("unexpected error message %q", v.Error)
	}
	if v.Loading {
		t.Fatalf("loading flag must return to false")
	}
	if v.Phase != domain.PhaseUnauthenticated || v.Screen != domain.ScreenLogin {
		t.Fatalf("expected unauthenticated login screen, got %s/%s", v.Phase, v.Screen)
	}
	if gw.verifyCalls != 0 {
		t.Fatalf("verification must not run")
	}
	if len(pub.events) != 1 || pub.events[0].Outcome != domain.OutcomeFailure {
		t.Fatalf("expected a failed login event, got %+v", pub.events)
	}
}

func TestSessionController_LoginWrongPassword(t *testing.T) {
	gw := newStubGateway()
	gw.seed("123456", "Maria Silva", "maria@example.com", "s3cret", domain.RoleConsultant)
	ctrl, _ := newController(gw)
	ctrl.Start(context.Background(), "")

	if _, err := ctrl.Login(context.Background(), "123456", "bad"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if ctrl.CurrentUser() != nil {
		t.Fatalf("current user must stay unset")
	}
	if v := ctrl.View(); v.Error != MsgBadPassword || v.Loading {
		t.Fatalf("unexpected view: %+v", v)
	}
}

func TestSessionController_LoginSuccessResetsTab(t *testing.T) {
	ctrl, _ := loggedIn(t, domain.RoleLeader)

	if !ctrl.SelectTab(domain.TabFinancial) {
		t.Fatalf("leader should be able to open financial")
	}
	if err := ctrl.Logout(context.Background()); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if v := ctrl.View(); v.Screen != domain.ScreenLogin || v.Dashboard != nil {
		t.Fatalf("expected login screen after logout, got %+v", v)
	}

	if _, err := ctrl.Login(context.Background(), "123456", "pw"); err != nil {
		t.Fatalf("login again: %v", err)
	}
	if v := ctrl.View(); v.Dashboard.ActiveTab != domain.TabOverview {
		t.Fatalf("expected overview after a new login, got %s", v.Dashboard.ActiveTab)
	}
}

func TestSessionController_LoginReturnsToken(t *testing.T) {
	gw := newStubGateway()
	c := gw.seed("123456", "Maria Silva", "maria@example.com", "s3cret", domain.RoleConsultant)
	ctrl, _ := newController(gw)

	token, err := ctrl.Login(context.Background(), "123456", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token != "token-"+c.AuthID {
		t.Fatalf("unexpected token %q", token)
	}
	if err := ctrl.Logout(context.Background()); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if len(gw.signedOut) != 1 || gw.signedOut[0] != token {
		t.Fatalf("expected sign-out with %q, got %v", token, gw.signedOut)
	}
}

func TestSessionController_LoginPanicClearsLoading(t *testing.T) {
	gw := newStubGateway()
	gw.panicOnFind = true
	ctrl, _ := newController(gw)

	_, err := ctrl.Login(context.Background(), "123456", "pw")
	if err == nil {
		t.Fatalf("expected an error from a panicking gateway")
	}
	v := ctrl.View()
	if v.Loading || v.Error != MsgLoginFailed || v.Phase != domain.PhaseUnauthenticated {
		t.Fatalf("unexpected view after panic: %+v", v)
	}
}

func TestSessionController_LoginRejectsOverlap(t *testing.T) {
	gw := newStubGateway()
	gw.seed("123456", "Maria Silva", "maria@example.com", "pw", domain.RoleConsultant)
	gw.blockVerify = make(chan struct{})
	gw.verifyEntered = make(chan struct{})
	ctrl, _ := newController(gw)

	done := make(chan error, 1)
	go func() {
		_, err := ctrl.Login(context.Background(), "123456", "pw")
		done <- err
	}()
	<-gw.verifyEntered

	if v := ctrl.View(); !v.Loading || v.Phase != domain.PhaseAuthenticating {
		t.Fatalf("expected authenticating with loading set, got %+v", v)
	}
	if _, err := ctrl.Login(context.Background(), "123456", "pw"); !errors.Is(err, domain.ErrBusy) {
		t.Fatalf("expected ErrBusy, got %v", err)
	}

	close(gw.blockVerify)
	if err := <-done; err != nil {
		t.Fatalf("first login failed: %v", err)
	}
	if v := ctrl.View(); v.Loading || v.Screen != domain.ScreenDashboard {
		t.Fatalf("unexpected view: %+v", v)
	}
}

// Scenario D: consultant cannot open business.
func TestSessionController_SelectHiddenTabIsNoop(t *testing.T) {
	ctrl, _ := loggedIn(t, domain.RoleConsultant)

	if !ctrl.SelectTab(domain.TabMaterials) {
		t.Fatalf("materials should be selectable")
	}
	if ctrl.SelectTab(domain.TabBusiness) {
		t.Fatalf("business must be ignored for consultants")
	}
	if got := ctrl.View().Dashboard.ActiveTab; got != domain.TabMaterials {
		t.Fatalf("active tab changed to %s", got)
	}
	if ctrl.SelectTab("unknown") {
		t.Fatalf("unknown tabs must be ignored")
	}
}

func TestSessionController_SelectTabWhileSignedOut(t *testing.T) {
	ctrl, _ := newController(newStubGateway())
	if ctrl.SelectTab(domain.TabOverview) {
		t.Fatalf("no tab may be selected without a user")
	}
}

func TestSessionController_RegistrationRoundTrip(t *testing.T) {
	gw := newStubGateway()
	ctrl, pub := newController(gw)
	ctrl.Start(context.Background(), "")

	if err := ctrl.OpenRegistration(); err != nil {
		t.Fatalf("open registration: %v", err)
	}
	if v := ctrl.View(); v.Screen != domain.ScreenRegister {
		t.Fatalf("expected register screen, got %s", v.Screen)
	}
	if _, err := ctrl.Login(context.Background(), "1", "2"); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("login from the register screen must be rejected, got %v", err)
	}

	res, err := ctrl.Register(context.Background(), validDraft())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	v := ctrl.View()
	if v.Screen != domain.ScreenLogin || v.Phase != domain.PhaseUnauthenticated {
		t.Fatalf("expected login screen without auto-login, got %s/%s", v.Screen, v.Phase)
	}
	if ctrl.CurrentUser() != nil {
		t.Fatalf("registration must not sign in")
	}
	if !strings.HasSuffix(v.Notice, res.ConsultantID) {
		t.Fatalf("notice %q should carry id %s", v.Notice, res.ConsultantID)
	}
	if v.Draft != nil || v.Loading {
		t.Fatalf("draft must be destroyed and loading cleared: %+v", v)
	}
	if len(pub.events) != 1 || pub.events[0].Kind != domain.EventRegistration || pub.events[0].ConsultantID != res.ConsultantID {
		t.Fatalf("unexpected events %+v", pub.events)
	}
}

func TestSessionController_RegistrationMismatchKeepsDraft(t *testing.T) {
	gw := newStubGateway()
	ctrl, _ := newController(gw)
	_ = ctrl.OpenRegistration()

	d := validDraft()
	d.Confirmation = "other"
	if _, err := ctrl.Register(context.Background(), d); !errors.Is(err, domain.ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}
	if gw.calls() != 0 {
		t.Fatalf("expected zero gateway calls, got %d", gw.calls())
	}

	v := ctrl.View()
	if v.Screen != domain.ScreenRegister || v.Error != MsgPasswordMismatch || v.Loading {
		t.Fatalf("unexpected view: %+v", v)
	}
	if v.Draft == nil || v.Draft.Name != d.Name || v.Draft.Password != "" || v.Draft.Confirmation != "" {
		t.Fatalf("expected a redacted draft, got %+v", v.Draft)
	}

	if err := ctrl.CloseRegistration(); err != nil {
		t.Fatalf("close registration: %v", err)
	}
	if v := ctrl.View(); v.Draft != nil || v.Screen != domain.ScreenLogin || v.Error != "" {
		t.Fatalf("going back must drop the draft: %+v", v)
	}
}

func TestSessionController_InvalidTransitions(t *testing.T) {
	ctrl, _ := newController(newStubGateway())

	if _, err := ctrl.Register(context.Background(), validDraft()); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("register from login must be rejected, got %v", err)
	}
	if err := ctrl.CloseRegistration(); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("close from login must be rejected, got %v", err)
	}
	if err := ctrl.Logout(context.Background()); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("logout while signed out must be rejected, got %v", err)
	}

	authed, _ := loggedIn(t, domain.RoleAdmin)
	if err := authed.OpenRegistration(); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("open registration while signed in must be rejected, got %v", err)
	}
}

func TestSessionController_LogoutSurvivesSignOutFailure(t *testing.T) {
	ctrl, gw := loggedIn(t, domain.RoleConsultant)
	gw.signOutErr = errors.New("service unavailable")

	if err := ctrl.Logout(context.Background()); err != nil {
		t.Fatalf("logout must not fail: %v", err)
	}
	if ctrl.CurrentUser() != nil || ctrl.View().Screen != domain.ScreenLogin {
		t.Fatalf("local session must be cleared")
	}
}

func TestSessionController_ThemeToggle(t *testing.T) {
	ctrl, _ := newController(newStubGateway())

	var seen []bool
	unsubscribe := ctrl.Theme().Subscribe(func(dark bool) { seen = append(seen, dark) })

	if !ctrl.ToggleTheme() || !ctrl.View().DarkMode {
		t.Fatalf("expected dark mode on")
	}
	unsubscribe()
	ctrl.ToggleTheme()

	if len(seen) != 1 || !seen[0] {
		t.Fatalf("expected exactly one notification, got %v", seen)
	}
}
