// Package apperror carries the typed failure kinds surfaced by the
// repositories and the catalog service. Not-found and unauthorized are
// distinct kinds so the response layer can map them to 404 and 403.
package apperror

import (
	"context"
	"errors"
	"evently-catalog-backend/logger"
	"fmt"
)

type Kind int

const (
	Internal Kind = iota
	NotFound
	Unauthorized
	Invalid
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "NOT_FOUND"
	case Unauthorized:
		return "UNAUTHORIZED"
	case Invalid:
		return "INVALID"
	default:
		return "INTERNAL"
	}
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func E(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, err error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// Normalize logs the stringified failure and returns it as an *Error.
// Unknown failures come back as Internal.
func Normalize(ctx context.Context, err error) *Error {
	if err == nil {
		return nil
	}

	logger.Errorf(ctx, "normalize: %+v", err)

	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}

	return &Error{Kind: Internal, Message: err.Error(), Err: err}
}

func IsNotFound(err error) bool {
	return is(err, NotFound)
}

func IsUnauthorized(err error) bool {
	return is(err, Unauthorized)
}

func IsInvalid(err error) bool {
	return is(err, Invalid)
}

func is(err error, kind Kind) bool {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind == kind
	}
	return false
}
