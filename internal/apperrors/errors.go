package apperrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode is the machine-readable error classification.
type ErrorCode string

// AppError is the application error carried from services to the HTTP boundary.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// Wrap attaches an underlying cause. The cause is never serialized to clients.
func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

// MarshalJSON shapes the wire body. The top-level key is "error" so clients
// of the original service keep working unchanged.
func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Error   string      `json:"error"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Error:   e.Message,
		Details: e.Details,
	})
}

// Is wraps the standard errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As wraps the standard errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Predefined errors.
var (
	// Uploads
	ErrMissingFile     = New(CodeMissingFile, "No file", http.StatusBadRequest)
	ErrInvalidGeometry = New(CodeInvalidGeometry, "Invalid STEP file", http.StatusInternalServerError)

	// Validation
	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)
)

// ValidationError builds a 400 with the per-field failure map attached.
func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

// UnknownSelection reports an invalid pricing table key, naming the field.
func UnknownSelection(field, key string) *AppError {
	return New(CodeUnknownSelection, fmt.Sprintf("unknown %s: %q", field, key), http.StatusBadRequest)
}

// InvalidQuantity reports a quantity outside the accepted range.
func InvalidQuantity(quantity int) *AppError {
	return New(CodeInvalidQuantity, fmt.Sprintf("quantity must be a positive integer, got %d", quantity), http.StatusBadRequest)
}

// FileTooLarge reports an upload over the configured size limit.
func FileTooLarge(limit int64) *AppError {
	return New(CodeFileTooLarge, fmt.Sprintf("file exceeds the %d byte upload limit", limit), http.StatusBadRequest)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

func NewInternalError(message string) *AppError {
	return New(CodeInternalError, message, http.StatusInternalServerError)
}
