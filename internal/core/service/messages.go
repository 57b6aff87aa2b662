package service

import (
	"errors"

	"github.com/clubebrotos/consultant-portal/internal/core/domain"
)

// User-facing messages. The portal speaks pt-BR.
const (
	MsgUnknownID          = "ID de consultor não encontrado."
	MsgBadPassword        = "Senha incorreta."
	MsgLoginFailed        = "Erro ao acessar o sistema."
	MsgPasswordMismatch   = "As senhas não coincidem."
	MsgRegistrationFailed = "Erro ao realizar cadastro."
	MsgMissingFields      = "Preencha todos os campos obrigatórios."
	MsgIDUnavailable      = "Não foi possível gerar seu ID de consultor. Tente novamente."
	msgRegistered         = "Cadastro realizado com sucesso! Seu ID de acesso é: "
)

// LoginMessage converts a login failure to the single line shown under the
// form.
func LoginMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrMissingFields):
		return MsgMissingFields
	case errors.Is(err, domain.ErrUnknownIdentifier):
		return MsgUnknownID
	case errors.Is(err, domain.ErrInvalidCredentials):
		return MsgBadPassword
	default:
		return MsgLoginFailed
	}
}

// RegistrationMessage converts a registration failure to the line shown
// under the form. Reasons reported by the identity service pass through
// verbatim.
func RegistrationMessage(err error) string {
	var fe *domain.FailureError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrMissingFields):
		return MsgMissingFields
	case errors.Is(err, domain.ErrPasswordMismatch):
		return MsgPasswordMismatch
	case errors.Is(err, domain.ErrIDCollision):
		return MsgIDUnavailable
	case errors.As(err, &fe) && fe.Reason != "":
		return fe.Reason
	default:
		return MsgRegistrationFailed
	}
}

// RegisteredNotice is shown on the login screen after a successful sign-up.
func RegisteredNotice(consultantID string) string {
	return msgRegistered + consultantID
}
