package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hooplog/hooplog/internal/model"
	"github.com/hooplog/hooplog/internal/services/auth"
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
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodePlayerNotFound     = "PLAYER_NOT_FOUND"
	CodeNameTaken          = "NAME_TAKEN"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeEmptyCredentials   = "EMPTY_CREDENTIALS"
	CodeInvalidPosition    = "INVALID_POSITION"
	CodeHeightOutOfRange   = "HEIGHT_OUT_OF_RANGE"
	CodeWeightOutOfRange   = "WEIGHT_OUT_OF_RANGE"
	CodeInvalidDate        = "INVALID_DATE"
	CodeNegativeStat       = "NEGATIVE_STAT"
	CodeUnknownOwner       = "UNKNOWN_OWNER"
	CodeAvatarNotFound     = "AVATAR_NOT_FOUND"
	CodeUnsupportedAvatar  = "UNSUPPORTED_AVATAR"
	CodeInternalError      = "INTERNAL_ERROR"
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

	// Map model errors
	switch {
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrInvalidPosition):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPosition, "Position must be PG, SG, SF, PF or C"}}
	case errors.Is(err, model.ErrHeightOutOfRange):
		return &httpError{http.StatusBadRequest, APIError{CodeHeightOutOfRange, "Height must be between 140 and 230 cm"}}
	case errors.Is(err, model.ErrWeightOutOfRange):
		return &httpError{http.StatusBadRequest, APIError{CodeWeightOutOfRange, "Weight must be between 40 and 150 kg"}}
	case errors.Is(err, model.ErrInvalidDate):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidDate, "Date must be YYYY-MM-DD"}}
	case errors.Is(err, model.ErrNegativeStat):
		return &httpError{http.StatusBadRequest, APIError{CodeNegativeStat, "Stat values must not be negative"}}
	case errors.Is(err, model.ErrUnknownOwner):
		return &httpError{http.StatusNotFound, APIError{CodeUnknownOwner, "No such player on the roster"}}
	case errors.Is(err, model.ErrAvatarNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeAvatarNotFound, "Player has no avatar"}}
	case errors.Is(err, model.ErrUnsupportedAvatar):
		return &httpError{http.StatusBadRequest, APIError{CodeUnsupportedAvatar, "Avatar must be a png or jpeg image"}}

	// Map auth errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid name or password"}}
	case errors.Is(err, auth.ErrInvalidSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired session"}}
	case errors.Is(err, auth.ErrNameTaken):
		return &httpError{http.StatusConflict, APIError{CodeNameTaken, "Name already registered"}}
	case errors.Is(err, auth.ErrEmptyCredentials):
		return &httpError{http.StatusBadRequest, APIError{CodeEmptyCredentials, "Name and password are required"}}

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

// NewForbiddenError creates a forbidden error
func NewForbiddenError(message string) error {
	return &httpError{http.StatusForbidden, APIError{CodeForbidden, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
