// file: internals/helpers/errs/errs.go
package errs

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Kind categorizes an application error so the HTTP boundary can pick a
// status code without string-matching messages.
type Kind string

const (
	KindValidation Kind = "validation"
	KindConflict   Kind = "conflict"
	KindAuth       Kind = "auth"
	KindForbidden  Kind = "forbidden"
	KindNotFound   Kind = "not_found"
	KindInternal   Kind = "internal"
)

type AppError struct {
	Kind    Kind   `json:"kind"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Cause }

// HTTPStatus maps the error kind to the status code the boundary should send.
func (e *AppError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return fiber.StatusBadRequest
	case KindConflict:
		return fiber.StatusConflict
	case KindAuth:
		return fiber.StatusUnauthorized
	case KindForbidden:
		return fiber.StatusForbidden
	case KindNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

func Validation(code, message string) *AppError {
	return &AppError{Kind: KindValidation, Code: code, Message: message}
}

func Conflict(code, message string) *AppError {
	return &AppError{Kind: KindConflict, Code: code, Message: message}
}

func Auth(code, message string) *AppError {
	return &AppError{Kind: KindAuth, Code: code, Message: message}
}

func Forbidden(code, message string) *AppError {
	return &AppError{Kind: KindForbidden, Code: code, Message: message}
}

func NotFound(code, message string) *AppError {
	return &AppError{Kind: KindNotFound, Code: code, Message: message}
}

func Internal(message string, cause error) *AppError {
	return &AppError{Kind: KindInternal, Code: "INTERNAL", Message: message, Cause: cause}
}

// As unwraps err into an *AppError if it is one (directly or wrapped).
func As(err error) (*AppError, bool) {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	if ae, ok := As(err); ok {
		return ae.Kind == kind
	}
	return false
}
