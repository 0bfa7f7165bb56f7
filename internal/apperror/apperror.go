// Package apperror defines the application error taxonomy and its mapping to
// HTTP status codes, so handlers can translate any failure into a consistent
// JSON response.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Type categorizes an application error.
type Type int

const (
	Internal Type = iota
	Validation
	Duplicate
	InvalidCredentials
	InvalidToken
	ExpiredToken
	NotFound
	InvalidFile
)

// AppError carries a user-facing message, an optional list of per-field
// details (validation failures), and an optional underlying cause.
type AppError struct {
	Type    Type
	Message string
	Details []string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode maps the error type to an HTTP status. Duplicates surface as
// 400 rather than 409 to preserve the API's historical contract.
func (e *AppError) StatusCode() int {
	switch e.Type {
	case Validation, Duplicate, InvalidFile:
		return http.StatusBadRequest
	case InvalidCredentials, InvalidToken, ExpiredToken:
		return http.StatusUnauthorized
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func New(t Type, message string) *AppError {
	return &AppError{Type: t, Message: message}
}

func Wrap(t Type, message string, err error) *AppError {
	return &AppError{Type: t, Message: message, Err: err}
}

// NewValidation builds a 400 error carrying every violated rule.
func NewValidation(details []string) *AppError {
	return &AppError{Type: Validation, Message: "Validation failed", Details: details}
}

// From extracts an *AppError from err, if there is one in the chain.
func From(err error) (*AppError, bool) {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}
