package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/clubebrotos/consultant-portal/internal/core/domain"
	"github.com/clubebrotos/consultant-portal/internal/core/ports"
)

// LoginFlow authenticates a consultant by their numeric handle.
type LoginFlow struct {
	gateway ports.IdentityGateway
}

func NewLoginFlow(gateway ports.IdentityGateway) *LoginFlow {
	return &LoginFlow{gateway: gateway}
}

// Run resolves id to a consultant, then verifies password against the email
// stored on that record. The identity service authenticates by email, so the
// handle has to be resolved first.
func (f *LoginFlow) Run(ctx context.Context, id, password string) (*domain.Consultant, *domain.AuthSession, error) {
	id = strings.TrimSpace(id)
	if id == "" || password == "" {
		return nil, nil, domain.ErrMissingFields
	}

	consultant, err := f.gateway.FindConsultantByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrConsultantNotFound) {
			return nil, nil, domain.ErrUnknownIdentifier
		}
		return nil, nil, fmt.Errorf("login: find consultant: %w", err)
	}

	session, err := f.gateway.VerifyCredentials(ctx, consultant.Email, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return nil, nil, domain.ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("login: verify credentials: %w", err)
	}

	return consultant, session, nil
}
