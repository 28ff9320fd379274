package errors

import (
	stderrors "errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryRuntime   Category = "runtime"
	CategoryHydration Category = "hydration"
	CategoryProtocol  Category = "protocol"
	CategoryConfig    Category = "config"
	CategoryCLI       Category = "cli"
)

// UniqidError is a structured error with a code, hints and documentation.
type UniqidError struct {
	// Code is a unique error identifier (e.g., "E201").
	Code string

	// Category is the error type (config, runtime, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *UniqidError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *UniqidError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a UniqidError with the same code.
// Errors without a code only match themselves.
func (e *UniqidError) Is(target error) bool {
	t, ok := target.(*UniqidError)
	if !ok {
		return false
	}
	if e.Code == "" || t.Code == "" {
		return e == t
	}
	return e.Code == t.Code
}

// WithSuggestion adds a fix suggestion to the error.
func (e *UniqidError) WithSuggestion(s string) *UniqidError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *UniqidError) WithDetail(d string) *UniqidError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *UniqidError) Wrap(err error) *UniqidError {
	e.Wrapped = err
	return e
}

// New creates a UniqidError from a registered error code.
func New(code string) *UniqidError {
	template, ok := registry[code]
	if !ok {
		return &UniqidError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &UniqidError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new UniqidError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *UniqidError {
	return &UniqidError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a UniqidError.
func FromError(err error, code string) *UniqidError {
	if err == nil {
		return nil
	}
	var ue *UniqidError
	if stderrors.As(err, &ue) {
		return ue
	}
	return New(code).Wrap(err)
}

// HasCode reports whether err, or any error it wraps, carries code.
func HasCode(err error, code string) bool {
	var ue *UniqidError
	for err != nil {
		if !stderrors.As(err, &ue) {
			return false
		}
		if ue.Code == code {
			return true
		}
		err = ue.Wrapped
	}
	return false
}
