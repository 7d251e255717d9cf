package dto

import "net/http"

// Common error codes used at the HTTP boundary
const (
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeValidation   = "VALIDATION_ERROR"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// errorCodeHTTPStatus maps domain error codes to HTTP status codes. Codes not
// listed here fall back to 500 so a missing mapping is noticed fast.
var errorCodeHTTPStatus = map[string]int{
	ErrCodeInternal: http.StatusInternalServerError,

	// Malformed or invalid input -> 400 Bad Request
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeValidation:   http.StatusBadRequest,
	"INVALID_INPUT":     http.StatusBadRequest,
	"INVALID_QUANTITY":  http.StatusBadRequest,
	"INVALID_PASSWORD":  http.StatusBadRequest,
	"INVALID_EMAIL":     http.StatusBadRequest,
	"INVALID_NAME":      http.StatusBadRequest,
	"INVALID_TYPE":      http.StatusBadRequest,
	"DUPLICATE_EMAIL":   http.StatusBadRequest,
	"UNKNOWN_LISTING":   http.StatusBadRequest,
	"CONTACT_LIMIT":     http.StatusBadRequest,
	"MALFORMED_FEED":    http.StatusBadRequest,

	// Auth errors
	ErrCodeUnauthorized:   http.StatusUnauthorized,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	ErrCodeForbidden:      http.StatusForbidden,

	// Resource errors
	ErrCodeNotFound:  http.StatusNotFound,
	"ALREADY_EXISTS": http.StatusConflict,
	"DUPLICATE_ITEM": http.StatusConflict,

	// Business rule errors -> 422 Unprocessable Entity
	"INVALID_STATE": http.StatusUnprocessableEntity,
}

// GetHTTPStatus returns the HTTP status code for an error code
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
