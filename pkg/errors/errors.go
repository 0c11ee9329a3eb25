package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType represents different types of parsing errors
type ErrorType int

const (
	ErrorTypeUnsupportedScheme ErrorType = iota
	ErrorTypeInvalidPort
	ErrorTypeInvalidResponse
	ErrorTypeMalformedHeader
	ErrorTypeCompressionError
)

func (t ErrorType) String() string {
	switch t {
	case ErrorTypeUnsupportedScheme:
		return "unsupported scheme"
	case ErrorTypeInvalidPort:
		return "invalid port"
	case ErrorTypeInvalidResponse:
		return "invalid response"
	case ErrorTypeMalformedHeader:
		return "malformed header"
	case ErrorTypeCompressionError:
		return "compression error"
	default:
		return "unknown"
	}
}

// Error represents a structured parsing error
type Error struct {
	Type    ErrorType
	Message string
	Context string
	Raw     []byte
}

func (e *Error) Error() string {
	return fmt.Sprintf("sbnet: %s (context: %s)", e.Message, e.Context)
}

// NewError creates a new Error
func NewError(errType ErrorType, message, context string, raw []byte) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Context: context,
		Raw:     raw,
	}
}

// IsParseError checks if an error is, or wraps, a parsing error
func IsParseError(err error) bool {
	var perr *Error
	return stderrors.As(err, &perr)
}

// IsType reports whether err is, or wraps, a parsing error of the given type
func IsType(err error, errType ErrorType) bool {
	var perr *Error
	if !stderrors.As(err, &perr) {
		return false
	}
	return perr.Type == errType
}
