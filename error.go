package urlmd

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL = "internal"
	EINVALID  = "invalid"
	ENOTFOUND = "not_found"
	EUPSTREAM = "upstream"
	EAUTH     = "unauthorized"
	EFETCH    = "fetch"
)

// Error represents an application-specific error.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// FetchError is returned when an upstream server answers with a non-success
// HTTP status.
type FetchError struct {
	URL        string
	StatusCode int
	Status     string // reason phrase, e.g. "Too Many Requests"
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %d %s", e.URL, e.StatusCode, e.Status)
}

// AuthError is returned when the forum token endpoint rejects a credential
// exchange.
type AuthError struct {
	StatusCode int
	Status     string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("forum authentication failed: %d %s", e.StatusCode, e.Status)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}

	var e *Error
	var fetchErr *FetchError
	var authErr *AuthError
	switch {
	case errors.As(err, &e):
		return e.Code
	case errors.As(err, &fetchErr):
		return EFETCH
	case errors.As(err, &authErr):
		return EAUTH
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var e *Error
	var fetchErr *FetchError
	var authErr *AuthError
	switch {
	case errors.As(err, &e):
		return e.Message
	case errors.As(err, &fetchErr):
		return fetchErr.Error()
	case errors.As(err, &authErr):
		return authErr.Error()
	}
	return "Internal error."
}
