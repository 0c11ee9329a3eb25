package rawhttp

import (
	"errors"
	"fmt"
)

// Error values matched by errors.Is against an *HTTPError of the same type
var (
	ErrInvalidRequest  = errors.New("invalid request")
	ErrDNSResolution   = errors.New("DNS resolution failed")
	ErrConnection      = errors.New("connection failed")
	ErrWrite           = errors.New("write failed")
	ErrRead            = errors.New("read failed")
	ErrDecode          = errors.New("response decoding failed")
	ErrInvalidResponse = errors.New("invalid response")
)

// ErrorType represents different error categories
type ErrorType int

const (
	ErrorTypeRequest ErrorType = iota
	ErrorTypeDNS
	ErrorTypeConnection
	ErrorTypeWrite
	ErrorTypeRead
	ErrorTypeDecode
	ErrorTypeResponse
)

func (t ErrorType) sentinel() error {
	switch t {
	case ErrorTypeRequest:
		return ErrInvalidRequest
	case ErrorTypeDNS:
		return ErrDNSResolution
	case ErrorTypeConnection:
		return ErrConnection
	case ErrorTypeWrite:
		return ErrWrite
	case ErrorTypeRead:
		return ErrRead
	case ErrorTypeDecode:
		return ErrDecode
	case ErrorTypeResponse:
		return ErrInvalidResponse
	default:
		return nil
	}
}

// HTTPError is the single error surface of the client. Type tells which
// phase of the exchange failed.
type HTTPError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the error's type
func (e *HTTPError) Is(target error) bool {
	return target != nil && target == e.Type.sentinel()
}

// IsNetworkError reports whether err is, or wraps, an *HTTPError
func IsNetworkError(err error) bool {
	var herr *HTTPError
	return errors.As(err, &herr)
}

func newError(t ErrorType, err error) *HTTPError {
	return &HTTPError{
		Type:    t,
		Message: t.sentinel().Error(),
		Err:     err,
	}
}

// NewRequestError reports arguments rejected before any I/O
func NewRequestError(err error) *HTTPError { return newError(ErrorTypeRequest, err) }

// NewDNSError creates a DNS resolution error
func NewDNSError(err error) *HTTPError { return newError(ErrorTypeDNS, err) }

// NewConnectionError creates a connection error
func NewConnectionError(err error) *HTTPError { return newError(ErrorTypeConnection, err) }

// NewWriteError creates an error for a failed request write
func NewWriteError(err error) *HTTPError { return newError(ErrorTypeWrite, err) }

// NewReadError creates an error for a failed response read
func NewReadError(err error) *HTTPError { return newError(ErrorTypeRead, err) }

// NewDecodeError creates an error for a response that is not valid UTF-8
func NewDecodeError(err error) *HTTPError { return newError(ErrorTypeDecode, err) }

// NewResponseError wraps a failure to parse the received response
func NewResponseError(err error) *HTTPError { return newError(ErrorTypeResponse, err) }
