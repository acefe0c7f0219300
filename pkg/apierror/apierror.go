package apierror

import (
	"fmt"
	"net/http"
	"strings"
)

type APIError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
	HTTPStatus int    `json:"-"`
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}

	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}

	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code string, message string, details string, status int) *APIError {
	return &APIError{Code: code, Message: message, Details: details, HTTPStatus: status}
}

// Validation reports malformed input. Details carries the offending
// field names so clients can highlight them.
func Validation(message string, fields ...string) *APIError {
	return New("VALIDATION_ERROR", message, strings.Join(fields, ", "), http.StatusBadRequest)
}

// Duplicate reports a uniqueness violation on the named field.
func Duplicate(message string, field string) *APIError {
	return New("ALREADY_EXISTS", message, field, http.StatusConflict)
}

// NotFound covers both an absent resource and one owned by a different
// account. The two cases must stay indistinguishable to the caller.
func NotFound(message string) *APIError {
	return New("NOT_FOUND", message, "", http.StatusNotFound)
}

func Unauthorized(message string) *APIError {
	return New("UNAUTHORIZED", message, "", http.StatusUnauthorized)
}
