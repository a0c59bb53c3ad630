package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/scoreboard/internal/model"
	"github.com/mcoot/scoreboard/internal/services/auth"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest       = "INVALID_REQUEST"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodeUsernameNotFound     = "USERNAME_NOT_FOUND"
	CodeNoAssociatedEmail    = "NO_ASSOCIATED_EMAIL"
	CodeInvalidCredentials   = "INVALID_CREDENTIALS"
	CodeBackendNotConfigured = "BACKEND_NOT_CONFIGURED"
	CodeInternalError        = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}
	var ce *model.ConfigError
	if errors.As(err, &ce) {
		return &httpError{http.StatusServiceUnavailable, APIError{CodeBackendNotConfigured, ce.Error()}}
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrInvalidIdentifier):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "Identifier must be a non-empty string"}}
	case errors.Is(err, model.ErrInvalidPeriod):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "Period must be weekly, monthly or alltime"}}
	case errors.Is(err, model.ErrUsernameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeUsernameNotFound, err.Error()}}
	case errors.Is(err, model.ErrNoAssociatedEmail):
		return &httpError{http.StatusNotFound, APIError{CodeNoAssociatedEmail, err.Error()}}
	case errors.Is(err, model.ErrBackendUnavailable):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeBackendNotConfigured, "Backend is not ready"}}

	// Map auth errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid username, email or password"}}
	case errors.Is(err, auth.ErrInvalidSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired session"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
