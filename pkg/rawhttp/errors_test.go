package rawhttp

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorTypes(t *testing.T) {
	tests := []struct {
		name     string
		errFunc  func(error) *HTTPError
		wantType ErrorType
		sentinel error
	}{
		{"Request Error", NewRequestError, ErrorTypeRequest, ErrInvalidRequest},
		{"DNS Error", NewDNSError, ErrorTypeDNS, ErrDNSResolution},
		{"Connection Error", NewConnectionError, ErrorTypeConnection, ErrConnection},
		{"Write Error", NewWriteError, ErrorTypeWrite, ErrWrite},
		{"Read Error", NewReadError, ErrorTypeRead, ErrRead},
		{"Decode Error", NewDecodeError, ErrorTypeDecode, ErrDecode},
		{"Response Error", NewResponseError, ErrorTypeResponse, ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			baseErr := errors.New("test error")
			httpErr := tt.errFunc(baseErr)

			if httpErr.Type != tt.wantType {
				t.Errorf("Type = %v, want %v", httpErr.Type, tt.wantType)
			}

			if unwrapped := errors.Unwrap(httpErr); unwrapped != baseErr {
				t.Errorf("Unwrap() = %v, want %v", unwrapped, baseErr)
			}

			if !errors.Is(httpErr, tt.sentinel) {
				t.Errorf("errors.Is(%v) = false, want true", tt.sentinel)
			}

			want := tt.sentinel.Error() + ": test error"
			if httpErr.Error() != want {
				t.Errorf("Error() = %q, want %q", httpErr.Error(), want)
			}
		})
	}
}

func TestErrorIsDistinguishesTypes(t *testing.T) {
	err := fmt.Errorf("fetch: %w", NewDNSError(errors.New("nxdomain")))

	if errors.Is(err, ErrConnection) {
		t.Error("DNS error matched ErrConnection")
	}
	if !errors.Is(err, ErrDNSResolution) {
		t.Error("wrapped DNS error did not match ErrDNSResolution")
	}
	if !IsNetworkError(err) {
		t.Error("IsNetworkError() = false for wrapped HTTPError")
	}
	if IsNetworkError(errors.New("other")) {
		t.Error("IsNetworkError() = true for plain error")
	}
}

func TestHTTPErrorWithoutCause(t *testing.T) {
	err := &HTTPError{Type: ErrorTypeRead, Message: "read failed"}
	if err.Error() != "read failed" {
		t.Errorf("Error() = %q, want %q", err.Error(), "read failed")
	}
}
