// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the error taxonomy shared by every Ecclesia handler.

Every failure that reaches the transport layer is an [AppError]: a client-safe
message, a machine-readable code, the HTTP status, and an optional server-side
cause that is logged but never serialized.

Taxonomy:

  - 400 VALIDATION_ERROR: missing fields, short passwords, duplicate email.
  - 401 UNAUTHORIZED: no usable token (missing, expired, and forged look the same).
  - 403 FORBIDDEN: valid identity, role outside the allowed set.
  - 404 NOT_FOUND: missing rows and rows hidden by the visibility policy.
  - 500 INTERNAL_ERROR: store or hashing failures.
*/
package apperr

import (
	"errors"
	"net/http"
)

// Canonical client messages for the authentication gate.
const (
	MsgAuthenticationRequired = "Authentication required"
	MsgInsufficientPermission = "Insufficient permissions"
	msgInternal               = "An unexpected error occurred"
)

// AppError is the canonical error type returned to the transport layer.
//
// # Security
//
// Cause is for server-side logging only and is never sent to clients.
type AppError struct {
	// Code is a machine-readable identifier (e.g. "NOT_FOUND").
	Code string `json:"code"`
	// Message is safe to return to the client.
	Message string `json:"error"`
	// HTTPStatus is the response status code.
	HTTPStatus int `json:"-"`
	// Cause is the underlying error, logged only.
	Cause error `json:"-"`
	// Details holds per-field validation failures.
	Details []FieldError `json:"details,omitempty"`
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface with the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap exposes the cause to [errors.Is] and [errors.As].
func (e *AppError) Unwrap() error { return e.Cause }

// # Client Errors (4xx)

// NotFound creates a 404 for a named resource, e.g. NotFound("Blog").
func NotFound(resource string) *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    resource + " not found",
		HTTPStatus: http.StatusNotFound,
	}
}

// Unauthorized creates a 401.
func Unauthorized(msg string) *AppError {
	return &AppError{
		Code:       "UNAUTHORIZED",
		Message:    msg,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// Forbidden creates a 403.
func Forbidden(msg string) *AppError {
	return &AppError{
		Code:       "FORBIDDEN",
		Message:    msg,
		HTTPStatus: http.StatusForbidden,
	}
}

// ValidationError creates a 400 with optional per-field details.
func ValidationError(msg string, details ...FieldError) *AppError {
	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
		Details:    details,
	}
}

// BadRequest creates a 400 for malformed input that is not a field rule (e.g. a bad id).
func BadRequest(msg string) *AppError {
	return &AppError{
		Code:       "BAD_REQUEST",
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
	}
}

// TooManyRequests creates a 429.
func TooManyRequests(msg string) *AppError {
	return &AppError{
		Code:       "RATE_LIMITED",
		Message:    msg,
		HTTPStatus: http.StatusTooManyRequests,
	}
}

// # Server Errors (5xx)

// Internal wraps an unexpected failure. The cause is logged, never returned.
func Internal(cause error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    msgInternal,
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// # Helpers

// As extracts the [*AppError] from err's chain, or nil.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// IsStatus reports whether err carries an [*AppError] with the given HTTP status.
func IsStatus(err error, status int) bool {
	ae := As(err)
	return ae != nil && ae.HTTPStatus == status
}
