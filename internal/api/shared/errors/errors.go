package errors

import (
	"encoding/json"
	"strings"

	"github.com/hoopsledger/pickboard/internal/domain"
)

// ErrorCode is the machine-readable code carried by every error body
type ErrorCode string

const (
	ErrCodeBadRequest       ErrorCode = "bad_request"
	ErrCodeNotFound         ErrorCode = "not_found"
	ErrCodeValidationFailed ErrorCode = "validation_failed"
	ErrCodeUnauthorized     ErrorCode = "unauthorized"

	ErrCodeInternalError ErrorCode = "internal_error"
	ErrCodeDatabaseError ErrorCode = "database_error"
)

// APIError is the error body returned by the REST API and printed by pickctl
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

func newAPIError(code ErrorCode, message string, details []string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

// NewInvalidPickKeyError reports a pick key that does not parse as TEAM-YEAR-ROUND
func NewInvalidPickKeyError(err error) *APIError {
	return newAPIError(ErrCodeBadRequest, "Invalid pick key", []string{err.Error()})
}

// NewPickNotFoundError reports a well-formed pick key with no asset rows
func NewPickNotFoundError(key domain.PickKey) *APIError {
	return newAPIError(ErrCodeNotFound, "Pick not found", []string{key.String()})
}

func NewValidationError(details ...string) *APIError {
	return newAPIError(ErrCodeValidationFailed, "Validation failed", details)
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return newAPIError(ErrCodeUnauthorized, message, details)
}

func NewInternalError(message string, details ...string) *APIError {
	return newAPIError(ErrCodeInternalError, message, details)
}

// NewDatabaseError wraps a failed warehouse read
func NewDatabaseError(message string, details ...string) *APIError {
	return newAPIError(ErrCodeDatabaseError, message, details)
}
