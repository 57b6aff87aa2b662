package ports

import (
	"context"

	"github.com/clubebrotos/consultant-portal/internal/core/domain"
)

// DashboardView is what the dashboard content needs: the consultant, the
// menu their role allows and the selected tab.
type DashboardView struct {
	Consultant *domain.Consultant `json:"consultant"`
	LevelLabel string             `json:"level_label"`
	Greeting   string             `json:"greeting"`
	Menu       []domain.TabItem   `json:"menu"`
	ActiveTab  domain.Tab         `json:"active_tab"`
}

// SessionView is a snapshot of a session controller for rendering.
type SessionView struct {
	Screen    domain.Screen             `json:"screen"`
	Phase     domain.Phase              `json:"phase"`
	Loading   bool                      `json:"loading"`
	Error     string                    `json:"error,omitempty"`
	Notice    string                    `json:"notice,omitempty"`
	DarkMode  bool                      `json:"dark_mode"`
	Draft     *domain.RegistrationDraft `json:"draft,omitempty"`
	Dashboard *DashboardView            `json:"dashboard,omitempty"`
}

// RegistrationResult is returned after a successful sign-up.
type RegistrationResult struct {
	ConsultantID string
}

// SessionController drives one client's login state and navigation.
type SessionController interface {
	Start(ctx context.Context, token string) SessionView
	Login(ctx context.Context, id, password string) (string, error)
	OpenRegistration() error
	CloseRegistration() error
	Register(ctx context.Context, draft domain.RegistrationDraft) (*RegistrationResult, error)
	Logout(ctx context.Context) error
	SelectTab(tab domain.Tab) bool
	ToggleTheme() bool
	CurrentUser() *domain.Consultant
	View() SessionView
}

// ControllerRegistry hands out one SessionController per client.
type ControllerRegistry interface {
	Create() (clientID string, ctrl SessionController)
	Get(clientID string) (SessionController, error)
	Remove(clientID string)
}
