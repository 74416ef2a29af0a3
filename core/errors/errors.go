package errors

import "fmt"

// ErrorCode identifies an application error category across module
// boundaries. Controllers map codes to HTTP statuses.
type ErrorCode string

const (
	// Generic codes
	ErrInternalServer     ErrorCode = "INTERNAL_SERVER_ERROR"
	ErrInvalidInput       ErrorCode = "INVALID_INPUT"
	ErrInvalidRequestData ErrorCode = "INVALID_REQUEST_DATA"
	ErrNotFound           ErrorCode = "NOT_FOUND"
	ErrAlreadyExists      ErrorCode = "ALREADY_EXISTS"
	ErrUnauthorized       ErrorCode = "UNAUTHORIZED"
	ErrForbidden          ErrorCode = "FORBIDDEN"

	// Token codes
	ErrTokenExpired               ErrorCode = "TOKEN_EXPIRED"
	ErrInvalidTokenFormat         ErrorCode = "INVALID_TOKEN_FORMAT"
	ErrMissingAuthorizationHeader ErrorCode = "MISSING_AUTHORIZATION_HEADER"

	// Reservation engine codes
	ErrInvalidInterval   ErrorCode = "INVALID_INTERVAL"
	ErrRoomNotFound      ErrorCode = "ROOM_NOT_FOUND"
	ErrBookingNotFound   ErrorCode = "BOOKING_NOT_FOUND"
	ErrRoomUnavailable   ErrorCode = "ROOM_UNAVAILABLE"
	ErrInvalidTransition ErrorCode = "INVALID_TRANSITION"
)

// AppError is the error value services return to controllers.
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details any       `json:"details,omitempty"`
}

func NewAppError(code ErrorCode, message string, details any) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

func (e *AppError) Error() string {
	if e.Details != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is reports whether the error carries the given code.
func (e *AppError) Is(code ErrorCode) bool {
	return e != nil && e.Code == code
}
