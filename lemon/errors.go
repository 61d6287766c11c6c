package lemon

import (
	"github.com/pkg/errors"
)

// Special errors for graceful exits and misuse of the session lifecycle
var (
	ErrHelpShown = errors.New("help shown")
	ErrFinished  = errors.New("lemon: parser already finished, EnableHelp was called")
)

// ErrorType represents error categories for argument resolution.
// These categories drive exit-code mapping (via ExitCodeManager).
type ErrorType string

const (
	ErrorTypeDuplicateDefinition ErrorType = "duplicate_definition"
	ErrorTypeMalformedDefinition ErrorType = "malformed_definition"
	ErrorTypeMissingValue        ErrorType = "missing_value"
	ErrorTypeMissingListValues   ErrorType = "missing_list_values"
	ErrorTypeInvalidOption       ErrorType = "invalid_option"
	ErrorTypeMissingRequired     ErrorType = "missing_required"
	ErrorTypeConversion          ErrorType = "conversion_failure"
	ErrorTypeUnrecognizedToken   ErrorType = "unrecognized_token"
)

// ParseError is returned by every failing definition or by the final pass.
type ParseError struct {
	Type       ErrorType
	Message    string
	Label      string // "--key (-f)" of the failing definition, if any
	Token      string // offending token for unrecognized_token
	Suggestion string
	Cause      error
}

func (e *ParseError) Error() string {
	msg := e.Message
	if e.Label != "" {
		msg = e.Label + ": " + msg
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap exposes the underlying cause (e.g. a codec failure).
func (e *ParseError) Unwrap() error { return e.Cause }

// NewParseError creates a new ParseError with the given type and message
func NewParseError(errType ErrorType, message string) *ParseError {
	return &ParseError{
		Type:    errType,
		Message: message,
	}
}

// WithLabel attributes the error to a definition label
func (e *ParseError) WithLabel(label string) *ParseError {
	e.Label = label
	return e
}

// WithCause adds an underlying cause to the error
func (e *ParseError) WithCause(cause error) *ParseError {
	e.Cause = cause
	return e
}

// ErrorTypeOf reports the ErrorType carried by err, if err wraps a *ParseError.
func ErrorTypeOf(err error) (ErrorType, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Type, true
	}
	return "", false
}

// IsErrorType reports whether err wraps a *ParseError of the given type.
func IsErrorType(err error, typ ErrorType) bool {
	got, ok := ErrorTypeOf(err)
	return ok && got == typ
}

// describe formats an error for the terminal, one suggestion per line.
func describe(err error) string {
	var pe *ParseError
	if errors.As(err, &pe) && pe.Suggestion != "" {
		return err.Error() + "\n  " + pe.Suggestion
	}
	return err.Error()
}
