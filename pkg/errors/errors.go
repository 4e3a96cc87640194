package errors

import (
	"errors"
	"fmt"
)

const (
	CodeNotFound     = "NOT_FOUND"
	CodeValidation   = "VALIDATION_ERROR"
	CodeConflict     = "CONFLICT"
	CodeInternal     = "INTERNAL_ERROR"
	CodeInvalidInput = "INVALID_INPUT"
)

// Process exit codes used by the command line front end.
const (
	ExitInternal = 1
	ExitInput    = 2
	ExitNotFound = 3
	ExitConflict = 4
)

type AppError struct {
	Code     string
	Message  string
	ExitCode int
	Details  map[string]any
	Err      error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code, message string, exitCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		ExitCode: exitCode,
	}
}

func Wrap(err error, code, message string, exitCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		ExitCode: exitCode,
		Err:      err,
	}
}

func (e *AppError) WithDetails(details map[string]any) *AppError {
	e.Details = details
	return e
}

func NotFound(resource string) *AppError {
	return &AppError{
		Code:     CodeNotFound,
		Message:  fmt.Sprintf("%s not found", resource),
		ExitCode: ExitNotFound,
	}
}

func NotFoundWithID(resource string, id int) *AppError {
	return &AppError{
		Code:     CodeNotFound,
		Message:  fmt.Sprintf("%s %d not found", resource, id),
		ExitCode: ExitNotFound,
		Details: map[string]any{
			"resource": resource,
			"id":       id,
		},
	}
}

func Validation(message string, details map[string]any) *AppError {
	return &AppError{
		Code:     CodeValidation,
		Message:  message,
		ExitCode: ExitInput,
		Details:  details,
	}
}

func InvalidInput(message string, err error) *AppError {
	return &AppError{
		Code:     CodeInvalidInput,
		Message:  message,
		ExitCode: ExitInput,
		Err:      err,
	}
}

func Conflict(message string) *AppError {
	return &AppError{
		Code:     CodeConflict,
		Message:  message,
		ExitCode: ExitConflict,
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Code:     CodeInternal,
		Message:  message,
		ExitCode: ExitInternal,
		Err:      err,
	}
}

func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("An unexpected error occurred", err)
}

// HasCode reports whether err is an AppError carrying the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}
