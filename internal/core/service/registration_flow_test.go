package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/clubebrotos/consultant-portal/internal/core/domain"
)

func newRegistrationFlow(gw *stubGateway, gen IDGenerator) *RegistrationFlow {
	return NewRegistrationFlow(gw, gen, 3, zerolog.Nop())
}

func TestRegistrationFlow_Success(t *testing.T) {
	gw := newStubGateway()
	flow := newRegistrationFlow(gw, nil)

	c, err := flow.Run(context.Background(), validDraft())
	if err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	n, convErr := strconv.Atoi(c.ID)
	if convErr != nil || len(c.ID) != 6 || n < 100000 || n > 999999 {
		t.Fatalf("expected a 6-digit id in [100000, 999999], got %q", c.ID)
	}
	if gw.insertCalls != 1 || len(gw.inserted) != 1 {
		t.Fatalf("expected exactly one insert, got %d", gw.insertCalls)
	}
	rec := gw.inserted[0]
	if rec.Role != domain.RoleConsultant {
		t.Fatalf("expected role consultant, got %s", rec.Role)
	}
	if rec.Address != "Praça da Sé, 1 - CEP: 01001-000" {
		t.Fatalf("unexpected address: %q", rec.Address)
	}
	if rec.AuthID == "" || rec.Email != "maria@example.com" || rec.DocumentID != "12345678900" {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestRegistrationFlow_PasswordMismatchMakesNoCalls(t *testing.T) {
	gw := newStubGateway()
	d := validDraft()
	d.Confirmation = "different"

	_, err := newRegistrationFlow(gw, nil).Run(context.Background(), d)
	if !errors.Is(err, domain.ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}
	if gw.calls() != 0 {
		t.Fatalf("expected zero gateway calls, got %d", gw.calls())
	}
}

func TestRegistrationFlow_MissingField(t *testing.T) {
	gw := newStubGateway()
	d := validDraft()
	d.PostalCode = " "

	if _, err := newRegistrationFlow(gw, nil).Run(context.Background(), d); !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
	if gw.calls() != 0 {
		t.Fatalf("expected zero gateway calls, got %d", gw.calls())
	}
}

func TestRegistrationFlow_IdentityFailureSurfacesReason(t *testing.T) {
	gw := newStubGateway()
	gw.passwords["maria@example.com"] = "taken"

	_, err := newRegistrationFlow(gw, nil).Run(context.Background(), validDraft())
	if !errors.Is(err, domain.ErrIdentityCreationFailed) || !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected identity creation failure wrapping ErrEmailTaken, got %v", err)
	}
	if got := RegistrationMessage(err); got != "Este e-mail já está cadastrado." {
		t.Fatalf("expected verbatim reason, got %q", got)
	}
	if gw.insertCalls != 0 {
		t.Fatalf("insert must not run after identity failure")
	}
}

func TestRegistrationFlow_RetriesOnCollision(t *testing.T) {
	gw := newStubGateway()
	gw.seed("111111", "Existing", "old@example.com", "pw", domain.RoleConsultant)

	c, err := newRegistrationFlow(gw, sequenceIDs("111111", "222222")).Run(context.Background(), validDraft())
	if err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if c.ID != "222222" {
		t.Fatalf("expected second candidate, got %s", c.ID)
	}
	if gw.insertCalls != 2 {
		t.Fatalf("expected 2 insert attempts, got %d", gw.insertCalls)
	}
	if len(gw.deleted) != 0 {
		t.Fatalf("identity must be kept on success, deleted %v", gw.deleted)
	}
}

func TestRegistrationFlow_CollisionExhaustedCompensates(t *testing.T) {
	gw := newStubGateway()
	gw.seed("111111", "Existing", "old@example.com", "pw", domain.RoleConsultant)

	_, err := newRegistrationFlow(gw, sequenceIDs("111111")).Run(context.Background(), validDraft())
	if !errors.Is(err, domain.ErrIDCollision) || !errors.Is(err, domain.ErrRecordInsertionFailed) {
		t.Fatalf("expected collision insertion failure, got %v", err)
	}
	if gw.insertCalls != 3 {
		t.Fatalf("expected 3 attempts, got %d", gw.insertCalls)
	}
	if len(gw.deleted) != 1 {
		t.Fatalf("expected the orphaned identity to be deleted, got %v", gw.deleted)
	}
	if RegistrationMessage(err) != MsgIDUnavailable {
		t.Fatalf("unexpected message %q", RegistrationMessage(err))
	}
}

func TestRegistrationFlow_InsertFailureCompensates(t *testing.T) {
	gw := newStubGateway()
	gw.insertErrs = []error{errors.New("write concern timeout")}

	_, err := newRegistrationFlow(gw, nil).Run(context.Background(), validDraft())
	if !errors.Is(err, domain.ErrRecordInsertionFailed) {
		t.Fatalf("expected ErrRecordInsertionFailed, got %v", err)
	}
	if gw.insertCalls != 1 {
		t.Fatalf("non-collision failures must not retry, got %d attempts", gw.insertCalls)
	}
	if len(gw.deleted) != 1 || gw.deleted[0] != "auth-new-1" {
		t.Fatalf("expected compensation for auth-new-1, got %v", gw.deleted)
	}
	if got := RegistrationMessage(err); got != "write concern timeout" {
		t.Fatalf("expected verbatim reason, got %q", got)
	}
}

func TestGenerateConsultantID_Range(t *testing.T) {
	for i := 0; i < 1000; i++ {
		id, err := GenerateConsultantID()
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		n, err := strconv.Atoi(id)
		if err != nil || len(id) != 6 || n < 100000 || n > 999999 {
			t.Fatalf("id out of range: %q", id)
		}
	}
}
