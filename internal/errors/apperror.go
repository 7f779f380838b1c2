package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the typed failure services return across the pipeline boundary.
// It carries the taxonomy code so handlers can map it to an ErrorResponse
// without string matching.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

// Error returns a string representation of the error
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches two AppErrors by code
func (e *AppError) Is(target error) bool {
	var t *AppError
	if stderrors.As(target, &t) {
		return t.Code == e.Code
	}
	return false
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError with the default message for its code
func New(code ErrorCode) *AppError {
	return &AppError{Code: code, Message: GetErrorMessage(code)}
}

// Wrap creates an AppError around an underlying cause
func Wrap(code ErrorCode, err error) *AppError {
	return &AppError{Code: code, Message: GetErrorMessage(code), Err: err}
}

// Wrapf creates an AppError with a formatted message around a cause
func Wrapf(code ErrorCode, err error, format string, args ...any) *AppError {
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...), Err: err}
}

// CodeOf extracts the taxonomy code from any error in the chain.
// Unrecognized errors map to SystemInternalError.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return SystemInternalError
}
