// Package apperror provides the coded errors returned by usecases and
// translated to HTTP responses at the handler boundary.
package apperror

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Code represents standardized internal error codes.
type Code string

const (
	CodeAuthenticationRequired Code = "AUTHENTICATION_REQUIRED"
	CodeAuthorizationDenied    Code = "AUTHORIZATION_DENIED"
	CodeNotFound               Code = "NOT_FOUND"
	CodeValidation             Code = "VALIDATION_ERROR"
	CodeRemoteUnavailable      Code = "REMOTE_UNAVAILABLE"
)

// Error is a structured application error. Fields holds per-field messages
// for validation failures, Meta carries redirect hints for auth failures.
type Error struct {
	Code    Code              `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
	Meta    map[string]string `json:"meta,omitempty"`
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// HTTPStatus maps the error code to the status the handler layer responds with.
func (e *Error) HTTPStatus() int {
	switch e.Code {
	case CodeAuthenticationRequired:
		return fiber.StatusUnauthorized
	case CodeAuthorizationDenied:
		return fiber.StatusForbidden
	case CodeNotFound:
		return fiber.StatusNotFound
	case CodeValidation:
		return fiber.StatusUnprocessableEntity
	case CodeRemoteUnavailable:
		return fiber.StatusServiceUnavailable
	}
	return fiber.StatusInternalServerError
}

// AuthenticationRequired signals a missing or invalid session. from is the
// originally requested path, preserved so the caller can return post-login.
func AuthenticationRequired(from string) *Error {
	return &Error{
		Code:    CodeAuthenticationRequired,
		Message: "authentication required",
		Meta:    map[string]string{"login_url": "/login", "from": from},
	}
}

// AuthorizationDenied signals an authenticated actor lacking a required role.
func AuthorizationDenied(role string) *Error {
	return &Error{
		Code:    CodeAuthorizationDenied,
		Message: fmt.Sprintf("role %q is not permitted to access this resource", role),
		Meta:    map[string]string{"redirect_to": "/unauthorized"},
	}
}

// NotFound signals that a referenced entity id did not resolve.
func NotFound(entity, id string) *Error {
	return &Error{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s %s not found", entity, id),
	}
}

// Validation signals a rejected request before any write happened.
func Validation(message string, fields map[string]string) *Error {
	return &Error{
		Code:    CodeValidation,
		Message: message,
		Fields:  fields,
	}
}

// RemoteUnavailable wraps a transport or availability failure of the backing
// store. Not retried automatically; the caller must re-invoke the request.
func RemoteUnavailable(op string, err error) *Error {
	return &Error{
		Code:    CodeRemoteUnavailable,
		Message: fmt.Sprintf("%s is temporarily unavailable", op),
		cause:   err,
	}
}

// As extracts an *Error from an error chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsCode reports whether err is an *Error carrying the given code.
func IsCode(err error, code Code) bool {
	e, ok := As(err)
	return ok && e.Code == code
}
