// Package response parses raw HTTP/1.x response text into an immutable Response.
package response

import (
	"fmt"
	"strconv"

	"github.com/WhileEndless/go-sbnet/pkg/compression"
	"github.com/WhileEndless/go-sbnet/pkg/headers"
)

// Response represents a parsed HTTP response. It is never modified after Parse.
type Response struct {
	version    string
	statusCode int
	reason     string
	headers    headers.List
	body       string
	raw        string
}

// Version returns the protocol version token, e.g. "HTTP/1.1"
func (r *Response) Version() string { return r.version }

// StatusCode returns the numeric status, 404 when the status line had none
func (r *Response) StatusCode() int { return r.statusCode }

// Reason returns the first word of the reason phrase
func (r *Response) Reason() string { return r.reason }

// Body returns everything after the header block
func (r *Response) Body() string { return r.body }

// Raw returns the text the response was parsed from
func (r *Response) Raw() string { return r.raw }

// Headers returns the headers in the order they were received
func (r *Response) Headers() []headers.Header { return r.headers.All() }

// HeaderValue returns the value of the first header named exactly name.
// A miss returns an error wrapping headers.ErrHeaderNotFound.
func (r *Response) HeaderValue(name string) (string, error) {
	if v, ok := r.headers.Get(name); ok {
		return v, nil
	}
	return "", fmt.Errorf("header %s: %w", name, headers.ErrHeaderNotFound)
}

// ContentType returns the Content-Type header value, "" when absent
func (r *Response) ContentType() string {
	v, _ := r.headers.Get("Content-Type")
	return v
}

// ContentLength returns the Content-Length header as an integer, or -1
// when it is absent or not a number
func (r *Response) ContentLength() int {
	v, ok := r.headers.Get("Content-Length")
	if !ok {
		return -1
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return -1
	}
	return n
}

// DecodedBody returns the body with its Content-Encoding undone.
// Without a Content-Encoding header the body is returned unchanged.
func (r *Response) DecodedBody() ([]byte, error) {
	encoding, ok := r.headers.Get("Content-Encoding")
	if !ok {
		return []byte(r.body), nil
	}
	return compression.DecodeContent([]byte(r.body), encoding)
}

// IsSuccessful returns true if the response has a 2xx status code
func (r *Response) IsSuccessful() bool {
	return r.statusCode >= 200 && r.statusCode < 300
}

// IsRedirect returns true if the response has a 3xx status code
func (r *Response) IsRedirect() bool {
	return r.statusCode >= 300 && r.statusCode < 400
}

// IsClientError returns true if the response has a 4xx status code
func (r *Response) IsClientError() bool {
	return r.statusCode >= 400 && r.statusCode < 500
}

// IsServerError returns true if the response has a 5xx status code
func (r *Response) IsServerError() bool {
	return r.statusCode >= 500 && r.statusCode < 600
}
