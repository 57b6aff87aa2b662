package ports

import (
	"context"

	"github.com/clubebrotos/consultant-portal/internal/core/domain"
)

// IdentityGateway is everything the portal needs from the hosted identity
// and data service.
type IdentityGateway interface {
	// FindConsultantByID looks up by exact id. Returns domain.ErrConsultantNotFound.
	FindConsultantByID(ctx context.Context, id string) (*domain.Consultant, error)
	// FindConsultantByAuthID is only used when restoring a session.
	FindConsultantByAuthID(ctx context.Context, authID string) (*domain.Consultant, error)
	// VerifyCredentials returns domain.ErrInvalidCredentials on mismatch.
	VerifyCredentials(ctx context.Context, email, password string) (*domain.AuthSession, error)
	CreateIdentity(ctx context.Context, email, password string) (*domain.IdentityRef, error)
	DeleteIdentity(ctx context.Context, authID string) error
	// InsertConsultant returns domain.ErrIDCollision when the id is taken.
	InsertConsultant(ctx context.Context, c *domain.Consultant) error
	// RestoreSession returns domain.ErrNoSession when token is empty, expired
	// or revoked.
	RestoreSession(ctx context.Context, token string) (*domain.IdentityRef, error)
	SignOut(ctx context.Context, token string) error
}
