// Package identity adapts the portal's identity and data service onto
// MongoDB-backed repositories and a revocable Redis session store.
//
// Session tokens are HS256 JWTs carrying the auth id (sub) and a session id
// (sid). A token is only valid while its sid is present in the store.
package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/clubebrotos/consultant-portal/internal/core/domain"
	"github.com/clubebrotos/consultant-portal/internal/core/ports"
)

const defaultSessionTTL = 24 * time.Hour

// MsgEmailTaken is the reason reported when an email already has an identity.
const MsgEmailTaken = domain.MsgEmailTaken

// Gateway implements ports.IdentityGateway.
type Gateway struct {
	consultants ports.ConsultantRepository
	identities  ports.IdentityRepository
	sessions    ports.SessionStore
	jwtSecret   []byte
	sessionTTL  time.Duration
	now         func() time.Time
}

func NewGateway(
	consultants ports.ConsultantRepository,
	identities ports.IdentityRepository,
	sessions ports.SessionStore,
	jwtSecret string,
	sessionTTL time.Duration,
) *Gateway {
	if sessionTTL <= 0 {
		sessionTTL = defaultSessionTTL
	}
	return &Gateway{
		consultants: consultants,
		identities:  identities,
		sessions:    sessions,
		jwtSecret:   []byte(jwtSecret),
		sessionTTL:  sessionTTL,
		now:         time.Now,
	}
}

func (g *Gateway) FindConsultantByID(ctx context.Context, id string) (*domain.Consultant, error) {
	return g.consultants.FindByID(ctx, id)
}

func (g *Gateway) FindConsultantByAuthID(ctx context.Context, authID string) (*domain.Consultant, error) {
	return g.consultants.FindByAuthID(ctx, authID)
}

func (g *Gateway) InsertConsultant(ctx context.Context, c *domain.Consultant) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = g.now().UTC()
	}
	return g.consultants.Insert(ctx, c)
}

// VerifyCredentials checks the password and opens a new session.
func (g *Gateway) VerifyCredentials(ctx context.Context, email, password string) (*domain.AuthSession, error) {
	ident, err := g.identities.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(ident.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return g.openSession(ctx, ident.AuthID)
}

// CreateIdentity registers a new credential. Failures carry a reason that can
// be shown to the user.
func (g *Gateway) CreateIdentity(ctx context.Context, email, password string) (*domain.IdentityRef, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.Fail(domain.ErrMissingFields, nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, domain.Fail(domain.ErrIdentityCreationFailed, errors.New(domain.MsgPasswordTooLong))
	}
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	ident := &ports.Identity{
		AuthID:       uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    g.now().UTC(),
	}
	if err := g.identities.Create(ctx, ident); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, domain.Fail(domain.ErrEmailTaken, errors.New(MsgEmailTaken))
		}
		return nil, err
	}

	return &domain.IdentityRef{AuthID: ident.AuthID, Email: ident.Email}, nil
}

func (g *Gateway) DeleteIdentity(ctx context.Context, authID string) error {
	return g.identities.Delete(ctx, authID)
}

// RestoreSession resolves a previously issued token.
func (g *Gateway) RestoreSession(ctx context.Context, token string) (*domain.IdentityRef, error) {
	if token == "" {
		return nil, domain.ErrNoSession
	}

	claims, err := g.parse(token)
	if err != nil {
		return nil, domain.ErrNoSession
	}

	authID, err := g.sessions.Lookup(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if authID != claims.Subject {
		return nil, domain.ErrNoSession
	}
	return &domain.IdentityRef{AuthID: authID}, nil
}

// SignOut revokes the token's session. Tokens that do not parse are already
// unusable and are ignored.
func (g *Gateway) SignOut(ctx context.Context, token string) error {
	claims, err := g.parse(token)
	if err != nil {
		return nil
	}
	return g.sessions.Revoke(ctx, claims.ID)
}

func (g *Gateway) openSession(ctx context.Context, authID string) (*domain.AuthSession, error) {
	sid := uuid.NewString()
	expiresAt := g.now().Add(g.sessionTTL)

	claims := jwt.RegisteredClaims{
		Subject:   authID,
		ID:        sid,
		IssuedAt:  jwt.NewNumericDate(g.now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	if err := g.sessions.Save(ctx, sid, authID, g.sessionTTL); err != nil {
		return nil, err
	}

	return &domain.AuthSession{Token: token, AuthID: authID, ExpiresAt: expiresAt}, nil
}

func (g *Gateway) parse(token string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return g.jwtSecret, nil
	}, jwt.WithTimeFunc(g.now))
	if err != nil {
		return nil, err
	}
	if claims.Subject == "" || claims.ID == "" {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
