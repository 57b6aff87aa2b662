package domain

import "strings"

// RegistrationDraft holds the sign-up form as submitted.
type RegistrationDraft struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	WhatsApp     string `json:"whatsapp"`
	DocumentID   string `json:"document_id"`
	PostalCode   string `json:"postal_code"`
	Address      string `json:"address"`
	Password     string `json:"-"`
	Confirmation string `json:"-"`
}

// Complete reports whether every field has a non-blank value.
func (d RegistrationDraft) Complete() bool {
	for _, v := range []string{d.Name, d.Email, d.WhatsApp, d.DocumentID, d.PostalCode, d.Address, d.Password, d.Confirmation} {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

// PasswordsMatch reports whether the confirmation repeats the password.
func (d RegistrationDraft) PasswordsMatch() bool {
	return d.Password == d.Confirmation
}

// FullAddress is the address string stored on the consultant record.
func (d RegistrationDraft) FullAddress() string {
	return d.Address + " - CEP: " + d.PostalCode
}

// Redacted returns a copy without the password fields.
func (d RegistrationDraft) Redacted() RegistrationDraft {
	d.Password = ""
	d.Confirmation = ""
	return d
}

// NewConsultant builds the record inserted after the identity exists.
// Self-registered consultants always start at RoleConsultant.
func (d RegistrationDraft) NewConsultant(id, authID string) *Consultant {
	return &Consultant{
		ID:         id,
		AuthID:     authID,
		Name:       d.Name,
		Email:      d.Email,
		WhatsApp:   d.WhatsApp,
		DocumentID: d.DocumentID,
		Address:    d.FullAddress(),
		Role:       RoleConsultant,
	}
}
