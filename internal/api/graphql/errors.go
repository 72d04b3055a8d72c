package graphql

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/legalapp/case-management/internal/core/domain"
)

// Extension codes reported under errors[].extensions.code.
const (
	CodeValidation   = "VALIDATION"
	CodeConflict     = "CONFLICT"
	CodeNotFound     = "NOT_FOUND"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeInternal     = "INTERNAL"
)

// resolverError satisfies gqlerrors.ExtendedError so the executor copies the
// code into the response.
type resolverError struct {
	msg  string
	code string
}

func (e *resolverError) Error() string { return e.msg }

func (e *resolverError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.code}
}

var errAuthRequired = &resolverError{msg: "authentication required", code: CodeUnauthorized}

// toResolverError classifies err by kind. Unknown errors are logged and masked.
func toResolverError(err error, log zerolog.Logger) error {
	var re *resolverError
	if errors.As(err, &re) {
		return re
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		return &resolverError{msg: err.Error(), code: CodeValidation}
	case errors.Is(err, domain.ErrConflict):
		return &resolverError{msg: err.Error(), code: CodeConflict}
	case errors.Is(err, domain.ErrNotFound):
		return &resolverError{msg: err.Error(), code: CodeNotFound}
	case errors.Is(err, domain.ErrUnauthorized):
		return &resolverError{msg: err.Error(), code: CodeUnauthorized}
	}

	log.Error().Err(err).Msg("unhandled resolver error")
	return &resolverError{msg: "internal server error", code: CodeInternal}
}
