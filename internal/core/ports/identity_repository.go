package ports

import (
	"context"
	"time"
)

// Identity is a stored login credential.
type Identity struct {
	AuthID       string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// IdentityRepository persists login credentials keyed by email.
type IdentityRepository interface {
	FindByEmail(ctx context.Context, email string) (*Identity, error)
	Create(ctx context.Context, identity *Identity) error
	Delete(ctx context.Context, authID string) error
}

// SessionStore tracks live gateway sessions so tokens can be revoked.
type SessionStore interface {
	Save(ctx context.Context, sessionID, authID string, ttl time.Duration) error
	Lookup(ctx context.Context, sessionID string) (authID string, err error)
	Revoke(ctx context.Context, sessionID string) error
}
