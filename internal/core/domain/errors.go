package domain

import "errors"

// Error kinds. Every error the core returns to a transport unwraps to one of
// these, so adapters map on the kind and never on the message.
var (
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("conflict")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
)

// kindError is a specific, user-facing error that belongs to one kind.
type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

func newKindError(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

var (
	ErrClientNotFound       = newKindError(ErrNotFound, "client not found")
	ErrClientFieldsRequired = newKindError(ErrValidation, "name and email are required")
	ErrEmailInUse           = newKindError(ErrConflict, "this email is already in use")
	ErrIdempotencyKeyReused = newKindError(ErrConflict, "idempotency key already used for a different client")

	ErrUserNotFound       = newKindError(ErrNotFound, "user not found")
	ErrUserFieldsRequired = newKindError(ErrValidation, "username and password are required")
	ErrUsernameTaken      = newKindError(ErrConflict, "username already exists")
	ErrInvalidCredentials = newKindError(ErrUnauthorized, "invalid credentials")
	ErrInvalidToken       = newKindError(ErrUnauthorized, "invalid token")
)
