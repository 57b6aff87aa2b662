package service

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/clubebrotos/consultant-portal/internal/core/domain"
	"github.com/clubebrotos/consultant-portal/internal/core/ports"
	"github.com/clubebrotos/consultant-portal/internal/pkg/metrics"
)

const (
	DefaultMaxIDAttempts = 5

	minConsultantID = 100000
	idSpan          = 900000
)

// IDGenerator yields candidate consultant ids.
type IDGenerator func() (string, error)

// RegistrationFlow signs up a new consultant: identity first, then the
// consultant record under a freshly drawn numeric id.
type RegistrationFlow struct {
	gateway     ports.IdentityGateway
	newID       IDGenerator
	maxAttempts int
	log         zerolog.Logger
}

func NewRegistrationFlow(gateway ports.IdentityGateway, newID IDGenerator, maxAttempts int, log zerolog.Logger) *RegistrationFlow {
	if newID == nil {
		newID = GenerateConsultantID
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxIDAttempts
	}
	return &RegistrationFlow{gateway: gateway, newID: newID, maxAttempts: maxAttempts, log: log}
}

// Run validates the draft and creates the account. No identity service call
// is made unless every field is present and the passwords match.
func (f *RegistrationFlow) Run(ctx context.Context, d domain.RegistrationDraft) (*domain.Consultant, error) {
	if !d.Complete() {
		return nil, domain.ErrMissingFields
	}
	if !d.PasswordsMatch() {
		return nil, domain.ErrPasswordMismatch
	}

	ref, err := f.gateway.CreateIdentity(ctx, d.Email, d.Password)
	if err != nil {
		return nil, domain.Fail(domain.ErrIdentityCreationFailed, err)
	}

	for attempt := 1; ; attempt++ {
		id, err := f.newID()
		if err != nil {
			f.compensate(ctx, ref.AuthID)
			return nil, domain.Fail(domain.ErrRecordInsertionFailed, err)
		}

		consultant := d.NewConsultant(id, ref.AuthID)
		err = f.gateway.InsertConsultant(ctx, consultant)
		if err == nil {
			f.log.Info().Str("consultant_id", id).Str("auth_id", ref.AuthID).Msg("consultant registered")
			return consultant, nil
		}

		if errors.Is(err, domain.ErrIDCollision) {
			metrics.ConsultantIDCollisionsTotal.Inc()
			if attempt < f.maxAttempts {
				f.log.Debug().Str("consultant_id", id).Int("attempt", attempt).Msg("consultant id taken, drawing another")
				continue
			}
		}

		f.compensate(ctx, ref.AuthID)
		return nil, domain.Fail(domain.ErrRecordInsertionFailed, err)
	}
}

// compensate removes the identity created for a registration whose
// consultant record could not be written.
func (f *RegistrationFlow) compensate(ctx context.Context, authID string) {
	if err := f.gateway.DeleteIdentity(ctx, authID); err != nil {
		metrics.OrphanedIdentitiesTotal.Inc()
		f.log.Error().Err(err).Str("auth_id", authID).Msg("failed to remove identity after consultant insert failure")
	}
}

// GenerateConsultantID returns a uniformly random id in [100000, 999999].
func GenerateConsultantID() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(idSpan))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+minConsultantID, 10), nil
}
