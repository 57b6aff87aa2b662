package handler

import (
	"github.com/clubebrotos/consultant-portal/internal/core/domain"
	"github.com/clubebrotos/consultant-portal/internal/core/ports"
)

// Required fields are checked by the flows so the view carries the message;
// the validator only bounds formats and sizes.

type loginRequest struct {
	ConsultantID string `json:"consultant_id" validate:"max=16"`
	Password     string `json:"password"      validate:"max=72"`
}

type registerRequest struct {
	Name                 string `json:"name"                  validate:"max=120"`
	Email                string `json:"email"                 validate:"omitempty,email,max=254"`
	WhatsApp             string `json:"whatsapp"              validate:"max=32"`
	DocumentID           string `json:"document_id"           validate:"max=32"`
	PostalCode           string `json:"postal_code"           validate:"max=16"`
	Address              string `json:"address"               validate:"max=255"`
	Password             string `json:"password"              validate:"max=72"`
	PasswordConfirmation string `json:"password_confirmation" validate:"max=72"`
}

func (r registerRequest) toDraft() domain.RegistrationDraft {
	return domain.RegistrationDraft{
		Name:         r.Name,
		Email:        r.Email,
		WhatsApp:     r.WhatsApp,
		DocumentID:   r.DocumentID,
		PostalCode:   r.PostalCode,
		Address:      r.Address,
		Password:     r.Password,
		Confirmation: r.PasswordConfirmation,
	}
}

// viewResponse wraps the controller's view. Token is only set by a login.
type viewResponse struct {
	ClientID string            `json:"client_id,omitempty"`
	Token    string            `json:"token,omitempty"`
	View     ports.SessionView `json:"view"`
}

type registerResponse struct {
	ConsultantID string            `json:"consultant_id"`
	View         ports.SessionView `json:"view"`
}

type selectTabResponse struct {
	Accepted  bool       `json:"accepted"`
	ActiveTab domain.Tab `json:"active_tab,omitempty"`
}

type tabResponse struct {
	Tab    domain.TabItem `json:"tab"`
	Active bool           `json:"active"`
}

type themeResponse struct {
	DarkMode bool `json:"dark_mode"`
}

type earningsResponse struct {
	domain.Earnings
	ProfitPerUnit string            `json:"profit_per_unit"`
	References    []domain.Earnings `json:"references"`
}
