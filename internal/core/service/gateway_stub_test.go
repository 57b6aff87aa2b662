package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clubebrotos/consultant-portal/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub gateway
// ---------------------------------------------------------------------------

type stubGateway struct {
	consultants map[string]*domain.Consultant // by id
	passwords   map[string]string             // email -> password
	sessions    map[string]string             // token -> auth id

	createErr  error
	insertErrs []error // consumed one per InsertConsultant call
	deleteErr  error
	signOutErr error
	findErr    error

	findCalls     int
	verifyCalls   int
	createCalls   int
	insertCalls   int
	deleted       []string
	signedOut     []string
	inserted      []*domain.Consultant
	nextAuthID    int
	panicOnFind   bool
	blockVerify   chan struct{}
	verifyEntered chan struct{}
}

func newStubGateway() *stubGateway {
	return &stubGateway{
		consultants: make(map[string]*domain.Consultant),
		passwords:   make(map[string]string),
		sessions:    make(map[string]string),
	}
}

func (g *stubGateway) calls() int {
	return g.findCalls + g.verifyCalls + g.createCalls + g.insertCalls + len(g.deleted) + len(g.signedOut)
}

// seed stores a consultant with a password and returns it.
func (g *stubGateway) seed(id, name, email, password string, role domain.Role) *domain.Consultant {
	c := &domain.Consultant{ID: id, AuthID: "auth-" + id, Name: name, Email: email, Role: role}
	g.consultants[id] = c
	g.passwords[email] = password
	return c
}

func (g *stubGateway) FindConsultantByID(_ context.Context, id string) (*domain.Consultant, error) {
	g.findCalls++
	if g.panicOnFind {
		panic("boom")
	}
	if g.findErr != nil {
		return nil, g.findErr
	}
	c, ok := g.consultants[id]
	if !ok {
		return nil, domain.ErrConsultantNotFound
	}
	clone := *c
	return &clone, nil
}

func (g *stubGateway) FindConsultantByAuthID(_ context.Context, authID string) (*domain.Consultant, error) {
	for _, c := range g.consultants {
		if c.AuthID == authID {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrConsultantNotFound
}

func (g *stubGateway) VerifyCredentials(_ context.Context, email, password string) (*domain.AuthSession, error) {
	g.verifyCalls++
	if g.verifyEntered != nil {
		close(g.verifyEntered)
	}
	if g.blockVerify != nil {
		<-g.blockVerify
	}
	if pw, ok := g.passwords[email]; !ok || pw != password {
		return nil, domain.ErrInvalidCredentials
	}
	var authID string
	for _, c := range g.consultants {
		if c.Email == email {
			authID = c.AuthID
		}
	}
	token := "token-" + authID
	g.sessions[token] = authID
	return &domain.AuthSession{Token: token, AuthID: authID, ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func (g *stubGateway) CreateIdentity(_ context.Context, email, password string) (*domain.IdentityRef, error) {
	g.createCalls++
	if g.createErr != nil {
		return nil, g.createErr
	}
	if _, exists := g.passwords[email]; exists {
		return nil, domain.Fail(domain.ErrEmailTaken, errors.New("Este e-mail já está cadastrado."))
	}
	g.nextAuthID++
	g.passwords[email] = password
	return &domain.IdentityRef{AuthID: fmt.Sprintf("auth-new-%d", g.nextAuthID), Email: email}, nil
}

func (g *stubGateway) DeleteIdentity(_ context.Context, authID string) error {
	g.deleted = append(g.deleted, authID)
	return g.deleteErr
}

func (g *stubGateway) InsertConsultant(_ context.Context, c *domain.Consultant) error {
	g.insertCalls++
	if len(g.insertErrs) > 0 {
		err := g.insertErrs[0]
		g.insertErrs = g.insertErrs[1:]
		if err != nil {
			return err
		}
	}
	if _, exists := g.consultants[c.ID]; exists {
		return domain.ErrIDCollision
	}
	clone := *c
	g.consultants[c.ID] = &clone
	g.inserted = append(g.inserted, &clone)
	return nil
}

func (g *stubGateway) RestoreSession(_ context.Context, token string) (*domain.IdentityRef, error) {
	authID, ok := g.sessions[token]
	if token == "" || !ok {
		return nil, domain.ErrNoSession
	}
	return &domain.IdentityRef{AuthID: authID}, nil
}

func (g *stubGateway) SignOut(_ context.Context, token string) error {
	g.signedOut = append(g.signedOut, token)
	delete(g.sessions, token)
	return g.signOutErr
}

type recordingPublisher struct {
	events []domain.SessionEvent
}

func (p *recordingPublisher) Publish(e domain.SessionEvent) {
	p.events = append(p.events, e)
}

// sequenceIDs returns an IDGenerator yielding ids in order, then repeating
// the last one.
func sequenceIDs(ids ...string) IDGenerator {
	i := 0
	return func() (string, error) {
		id := ids[i]
		if i < len(ids)-1 {
			i++
		}
		return id, nil
	}
}

func validDraft() domain.RegistrationDraft {
	return domain.RegistrationDraft{
		Name:         "Maria Silva",
		Email:        "maria@example.com",
		WhatsApp:     "5511999999999",
		DocumentID:   "12345678900",
		PostalCode:   "01001-000",
		Address:      "Praça da Sé, 1",
		Password:     "s3cret",
		Confirmation: "s3cret",
	}
}
