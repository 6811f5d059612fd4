package errx

import (
	"fmt"
	"sync"
)

// ErrorCode is a registered, prefixed error code.
type ErrorCode struct {
	Code    string
	Type    Type
	Message string
}

// Registry manages the error codes of one module.
type Registry struct {
	prefix string
	codes  map[string]*ErrorCode
	mu     sync.RWMutex
}

// NewRegistry creates a registry whose codes are prefixed with the given module prefix.
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix: prefix,
		codes:  make(map[string]*ErrorCode),
	}
}

// Register adds an error code to the registry.
func (r *Registry) Register(code string, errType Type, message string) *ErrorCode {
	r.mu.Lock()
	defer r.mu.Unlock()

	ec := &ErrorCode{
		Code:    fmt.Sprintf("%s_%s", r.prefix, code),
		Type:    errType,
		Message: message,
	}
	r.codes[code] = ec
	return ec
}

// New creates an error from a registered code.
func (r *Registry) New(code *ErrorCode) *Error {
	return &Error{
		Code:    code.Code,
		Message: code.Message,
		Type:    code.Type,
	}
}

// NewWithCause creates an error from a registered code wrapping an underlying cause.
func (r *Registry) NewWithCause(code *ErrorCode, cause error) *Error {
	return &Error{
		Code:    code.Code,
		Message: code.Message,
		Type:    code.Type,
		Err:     cause,
	}
}
