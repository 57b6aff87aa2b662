package domain

import "errors"

var (
	ErrUnknownIdentifier      = errors.New("unknown consultant identifier")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrPasswordMismatch       = errors.New("password confirmation does not match")
	ErrIdentityCreationFailed = errors.New("identity creation failed")
	ErrRecordInsertionFailed  = errors.New("consultant record insertion failed")
	ErrNoSession              = errors.New("no active session")
	ErrIDCollision            = errors.New("consultant id already taken")
	ErrMissingFields          = errors.New("required fields missing")
	ErrInvalidTransition      = errors.New("operation not allowed in current session state")
	ErrBusy                   = errors.New("another submission is in progress")
	ErrUnknownClient          = errors.New("unknown portal client")
	ErrEmailTaken             = errors.New("email already registered")
	ErrConsultantNotFound     = errors.New("consultant not found")
	ErrInvalidDailyGoal       = errors.New("daily goal out of range")
)

// FailureError attaches a human-readable reason to one of the error kinds
// above. errors.Is matches the kind; Error returns the reason so it can be
// shown to the user verbatim.
type FailureError struct {
	Kind   error
	Reason string
	Err    error
}

// Fail builds a FailureError of the given kind from the underlying cause.
func Fail(kind, cause error) *FailureError {
	reason := kind.Error()
	if cause != nil {
		reason = cause.Error()
	}
	return &FailureError{Kind: kind, Reason: reason, Err: cause}
}

func (e *FailureError) Error() string {
	return e.Reason
}

func (e *FailureError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Reasons reported by the identity service adapters. They reach the user
// verbatim through FailureError.
const (
	MsgEmailTaken      = "Este e-mail já está cadastrado."
	MsgPasswordTooLong = "A senha deve ter no máximo 72 caracteres."
)
