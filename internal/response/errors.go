package response

import "fmt"

// Error codes returned to clients
const (
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeValidation        = "VALIDATION_ERROR"
	ErrCodeUnprocessable     = "UNPROCESSABLE_ENTITY"
	ErrCodeUnauthorized      = "UNAUTHORIZED"
	ErrCodeForbidden         = "FORBIDDEN"
	ErrCodeEditWindowExpired = "EDIT_WINDOW_EXPIRED"
	ErrCodeAlreadyExists     = "ALREADY_EXISTS"
	ErrCodeAlreadyReported   = "ALREADY_REPORTED"
	ErrCodeTooManyRequests   = "TOO_MANY_REQUESTS"
	ErrCodeInternal          = "INTERNAL_ERROR"
)

// AppError is a service error that carries a client-facing code
type AppError struct {
	Code    string
	Message string
	Details string
	Err     error
}

func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message, details string) *AppError {
	return &AppError{Code: code, Message: message, Details: details}
}

func NewNotFoundError(message, details string) *AppError {
	return NewAppError(ErrCodeNotFound, message, details)
}

func NewValidationError(message, details string) *AppError {
	return NewAppError(ErrCodeValidation, message, details)
}

func NewForbiddenError(message, details string) *AppError {
	return NewAppError(ErrCodeForbidden, message, details)
}

// NewInternalError wraps a storage or infrastructure failure
func NewInternalError(message string, err error) *AppError {
	details := ""
	if err != nil {
		details = err.Error()
	}
	return &AppError{Code: ErrCodeInternal, Message: message, Details: details, Err: err}
}
