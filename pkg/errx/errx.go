package errx

import (
	"errors"
	"fmt"
)

// Type categorizes an error for handling decisions.
type Type string

const (
	TypeValidation Type = "VALIDATION"
	TypeNotFound   Type = "NOT_FOUND"
	TypeExternal   Type = "EXTERNAL"
	TypeInternal   Type = "INTERNAL"
)

// Error is a coded error with optional context details and a wrapped cause.
type Error struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Type    Type           `json:"type"`
	Details map[string]any `json:"details,omitempty"`
	Err     error          `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// WithDetail adds a detail and returns the error for chaining.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// Is matches two errx errors by code, so sentinel comparisons work through
// errors.Is even when instances carry different causes and details.
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return e.Code == other.Code
	}
	return false
}

// HasCode reports whether err carries the given registered code.
func HasCode(err error, code *ErrorCode) bool {
	if err == nil || code == nil {
		return false
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code.Code
	}
	return false
}
