package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Precondition errors
	ErrRunAsRoot ErrorCode = "RUN_AS_ROOT"

	// Step errors
	ErrStepFailed ErrorCode = "STEP_FAILED"

	// Network errors
	ErrNoConnectivity ErrorCode = "NO_CONNECTIVITY"
	ErrPromptFailed   ErrorCode = "PROMPT_FAILED"

	// Command errors
	ErrCommandRun     ErrorCode = "COMMAND_RUN"
	ErrCommandMissing ErrorCode = "COMMAND_MISSING"

	// Package errors
	ErrSystemUpdate   ErrorCode = "SYSTEM_UPDATE"
	ErrPackageInstall ErrorCode = "PACKAGE_INSTALL"
	ErrHelperBuild    ErrorCode = "HELPER_BUILD"

	// Dotfiles errors
	ErrRepoClone   ErrorCode = "REPO_CLONE"
	ErrLinkCreate  ErrorCode = "LINK_CREATE"
	ErrFileAccess  ErrorCode = "FILE_ACCESS"
	ErrFileCopy    ErrorCode = "FILE_COPY"
	ErrDirCreate   ErrorCode = "DIR_CREATE"
	ErrShellChange ErrorCode = "SHELL_CHANGE"
)

// ArchupError represents a structured error with code and details
type ArchupError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ArchupError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ArchupError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ArchupError) Is(target error) bool {
	var targetErr *ArchupError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ArchupError with the given code and message
func New(code ErrorCode, message string) *ArchupError {
	return &ArchupError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ArchupError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ArchupError {
	return &ArchupError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an ArchupError
func Wrap(err error, code ErrorCode, message string) *ArchupError {
	if err == nil {
		return nil
	}
	return &ArchupError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ArchupError {
	if err == nil {
		return nil
	}
	return &ArchupError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ArchupError) WithDetail(key string, value interface{}) *ArchupError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *ArchupError) WithDetails(details map[string]interface{}) *ArchupError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var archupErr *ArchupError
	if errors.As(err, &archupErr) {
		return archupErr.Code == code
	}
	return false
}

// HasErrorCode checks if any error in the chain carries the given code.
// Unlike IsErrorCode, which only inspects the outermost ArchupError, this
// walks the whole chain so wrapped step errors stay observable.
func HasErrorCode(err error, code ErrorCode) bool {
	for err != nil {
		var archupErr *ArchupError
		if errors.As(err, &archupErr) {
			if archupErr.Code == code {
				return true
			}
			err = archupErr.Wrapped
			continue
		}
		err = errors.Unwrap(err)
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an ArchupError
func GetErrorCode(err error) ErrorCode {
	var archupErr *ArchupError
	if errors.As(err, &archupErr) {
		return archupErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an ArchupError
func GetErrorDetails(err error) map[string]interface{} {
	var archupErr *ArchupError
	if errors.As(err, &archupErr) {
		return archupErr.Details
	}
	return nil
}
