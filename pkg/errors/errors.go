package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies an error category with a stable string for tests
// and user-facing diagnostics.
type ErrorCode string

const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad        ErrorCode = "CONFIG_LOAD"
	ErrConfigParse       ErrorCode = "CONFIG_PARSE"
	ErrRepoNotConfigured ErrorCode = "REPO_NOT_CONFIGURED"

	// Resolution errors
	ErrUnknownVariable ErrorCode = "UNKNOWN_VARIABLE"
	ErrUnknownHook     ErrorCode = "UNKNOWN_HOOK"
	ErrNoMapping       ErrorCode = "NO_MAPPING"
	ErrUnresolvedRef   ErrorCode = "UNRESOLVED_REFERENCE"

	// Execution errors
	ErrHookFailure     ErrorCode = "HOOK_FAILURE"
	ErrTransferFailure ErrorCode = "TRANSFER_FAILURE"
	ErrStatFailure     ErrorCode = "STAT_FAILURE"

	// Collaborator errors
	ErrGit        ErrorCode = "GIT"
	ErrFileAccess ErrorCode = "FILE_ACCESS"
)

// HoistError is a structured error carrying a code and optional details.
type HoistError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface.
func (e *HoistError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface.
func (e *HoistError) Unwrap() error {
	return e.Wrapped
}

// Is matches two HoistErrors by code.
func (e *HoistError) Is(target error) bool {
	var targetErr *HoistError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new HoistError with the given code and message.
func New(code ErrorCode, message string) *HoistError {
	return &HoistError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new HoistError with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) *HoistError {
	return &HoistError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a HoistError. Returns nil if err is nil.
func Wrap(err error, code ErrorCode, message string) *HoistError {
	if err == nil {
		return nil
	}
	return &HoistError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *HoistError {
	if err == nil {
		return nil
	}
	return &HoistError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error.
func (e *HoistError) WithDetail(key string, value interface{}) *HoistError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code.
func IsErrorCode(err error, code ErrorCode) bool {
	return errors.Is(err, &HoistError{Code: code})
}

// GetErrorCode returns the error code from an error, or ErrUnknown if it is
// not a HoistError.
func GetErrorCode(err error) ErrorCode {
	var hoistErr *HoistError
	if errors.As(err, &hoistErr) {
		return hoistErr.Code
	}
	return ErrUnknown
}
