package domain

import "time"

// SessionEventKind names what happened in a portal session.
type SessionEventKind string

const (
	EventLogin        SessionEventKind = "login"
	EventRegistration SessionEventKind = "registration"
	EventLogout       SessionEventKind = "logout"
	EventRestore      SessionEventKind = "restore"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// SessionEvent is an entry of the session audit trail.
type SessionEvent struct {
	Kind         SessionEventKind
	ConsultantID string
	AuthID       string
	Outcome      string
	Reason       string
	OccurredAt   time.Time
}
