package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes reported in the error envelope
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeDataSource = "DATA_SOURCE_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeInternal   = "INTERNAL_ERROR"
)

// Messages shared between the data source layer and the HTTP layer
const (
	MsgValidationFailed   = "Validation failed"
	MsgSomethingWentWrong = "Something went wrong"
	MsgNetworkError       = "Network error - no response from external service"
	MsgRequestConfigError = "Request configuration error"
	MsgExternalAPIError   = "External API error"
)

// FieldError describes a single invalid input value
type FieldError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// AppError is the typed failure returned by every layer of the service
type AppError struct {
	Code       string
	Message    string
	StatusCode int // Same rule as HTTP status codes
	Err        error

	// ValidationErrors is only set for CodeValidation
	ValidationErrors []FieldError

	// Operational errors are expected failures whose message is safe to show to callers
	Operational bool
}

// Error returns a string representation of the error
func (e AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is implements the errors.Is interface
func (e AppError) Is(target error) bool {
	if target, ok := target.(AppError); ok {
		return target.Code == e.Code
	}
	return false
}

// Unwrap returns the underlying error
func (e AppError) Unwrap() error {
	return e.Err
}

// WithFieldError appends a field-level validation failure
func (e AppError) WithFieldError(field, message string, value interface{}) AppError {
	fields := make([]FieldError, 0, len(e.ValidationErrors)+1)
	fields = append(fields, e.ValidationErrors...)
	e.ValidationErrors = append(fields, FieldError{Field: field, Message: message, Value: value})
	return e
}

// NewValidationError creates a new validation error
func NewValidationError(message string, fields []FieldError) AppError {
	return AppError{
		Code:             CodeValidation,
		Message:          message,
		StatusCode:       http.StatusBadRequest,
		ValidationErrors: fields,
		Operational:      true,
	}
}

// NewDataSourceError creates an error for a failed local read or remote fetch.
// A statusCode of 0 means no upstream status is known and maps to 500.
func NewDataSourceError(message string, statusCode int, err error) AppError {
	if statusCode == 0 {
		statusCode = http.StatusInternalServerError
	}
	return AppError{
		Code:        CodeDataSource,
		Message:     message,
		StatusCode:  statusCode,
		Err:         err,
		Operational: true,
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string) AppError {
	return AppError{
		Code:        CodeNotFound,
		Message:     fmt.Sprintf("%s not found", resource),
		StatusCode:  http.StatusNotFound,
		Operational: true,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) AppError {
	return AppError{
		Code:       CodeInternal,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}

// As converts any error to an AppError. Unknown errors become non-operational internal errors.
func As(err error) AppError {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	var appErrPtr *AppError
	if errors.As(err, &appErrPtr) && appErrPtr != nil {
		return *appErrPtr
	}
	return NewInternalError(err.Error(), err)
}

// IsDataSource reports whether err is a data source failure
func IsDataSource(err error) bool {
	return errors.Is(err, AppError{Code: CodeDataSource})
}

// IsValidation reports whether err is a validation failure
func IsValidation(err error) bool {
	return errors.Is(err, AppError{Code: CodeValidation})
}
