// Package request builds the request bytes sent by the rawhttp client.
package request

// Method is the only request method the client issues
const Method = "GET"

// Version is the protocol version written on the request line
const Version = "HTTP/1.1"

// Request describes a GET request for a single resource
type Request struct {
	Host string // Value of the Host header
	Path string // Resource path without its leading slash
}

// New creates a Request for path on host
func New(host, path string) *Request {
	return &Request{Host: host, Path: path}
}

// Target returns the request target written on the request line
func (r *Request) Target() string {
	return "/" + r.Path
}
