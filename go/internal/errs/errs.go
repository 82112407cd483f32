// Package errs defines the error taxonomy shared by the league engine and its
// transport layer.
package errs

import (
	"errors"
	"fmt"

	"connectrpc.com/connect"
)

var (
	// ErrValidation matches every *ValidationError via errors.Is.
	ErrValidation = errors.New("validation error")

	// ErrNotFound is returned when a referenced entity id does not resolve.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a unique constraint is violated.
	ErrConflict = errors.New("conflict")

	// ErrPermissionDenied is returned when the caller is not the league admin.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrCodeExhausted is returned when no unused league code was found within
	// the retry budget.
	ErrCodeExhausted = errors.New("league code space exhausted, try again later")
)

// ValidationError reports malformed caller input.
type ValidationError struct {
	Field   string
	Message string
}

// Validation builds a *ValidationError for the given field.
func Validation(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is lets errors.Is(err, ErrValidation) match any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFound wraps ErrNotFound with the entity kind and id.
func NotFound(kind string, id any) error {
	return fmt.Errorf("%s %v: %w", kind, id, ErrNotFound)
}

// ConnectCode maps an engine error to the RPC status code surfaced to callers.
func ConnectCode(err error) connect.Code {
	switch {
	case errors.Is(err, ErrValidation):
		return connect.CodeInvalidArgument
	case errors.Is(err, ErrNotFound):
		return connect.CodeNotFound
	case errors.Is(err, ErrConflict):
		return connect.CodeAlreadyExists
	case errors.Is(err, ErrPermissionDenied):
		return connect.CodePermissionDenied
	case errors.Is(err, ErrCodeExhausted):
		return connect.CodeResourceExhausted
	default:
		return connect.CodeInternal
	}
}

// ToConnect converts err into a *connect.Error carrying the mapped code.
// Errors that already are connect errors pass through unchanged.
func ToConnect(err error) error {
	if err == nil {
		return nil
	}
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr
	}
	return connect.NewError(ConnectCode(err), err)
}
