// Package errors provides error handling utilities.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeValidation indicates caller input failed validation
	TypeValidation Type = "VALIDATION_ERROR"

	// TypeInput indicates malformed input that could not be parsed
	TypeInput Type = "INPUT_ERROR"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeOutput indicates a rendering or export failure
	TypeOutput Type = "OUTPUT_ERROR"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"

	// TypeNotSupported indicates an unsupported operation
	TypeNotSupported Type = "NOT_SUPPORTED"
)

// Validation message catalog. Every validation failure carries one of these.
const (
	MsgStandardPerNight = "standard per night must be positive"
	MsgNights           = "nights must be a positive integer"
	MsgTotalAmount      = "total amount invalid"
	MsgPricePerNight    = "price per night invalid"
	MsgInputMode        = "input mode must be total or pernight"
	MsgInvalidInput     = "invalid input"
	MsgNegativeTotal    = "total must be non-negative"
	MsgNegativeAmounts  = "amounts must be non-negative"
	MsgPercentRange     = "company percentage must be between 0 and 100"
	MsgPreset           = "preset must be one of economy100, upgrade75, custom"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// Field returns the "field" context entry, if any.
func (e *Error) Field() string {
	if f, ok := e.Context["field"].(string); ok {
		return f
	}
	return ""
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// As finds the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsType checks if an error, or any error it wraps, is of a specific type
func IsType(err error, t Type) bool {
	if e, ok := As(err); ok {
		return e.Type == t
	}
	return false
}

// IsValidation reports whether err is a validation failure
func IsValidation(err error) bool {
	return IsType(err, TypeValidation)
}

// Validation creates a validation error for the given field
func Validation(field, message string) *Error {
	return New(TypeValidation, message).WithContext("field", field)
}

// Input creates an input error
func Input(message string, cause error) *Error {
	return Wrap(TypeInput, message, cause)
}

// Config creates a configuration error
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}

// Output creates an output error
func Output(message string, cause error) *Error {
	return Wrap(TypeOutput, message, cause)
}

// NotSupported creates a not supported error
func NotSupported(operation string) *Error {
	return Newf(TypeNotSupported, "operation not supported: %s", operation)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
