package request

import "bytes"

// Fixed headers following Host. The request line ends in CRLF while header
// lines end in a bare LF; peers of this client expect exactly these bytes.
const (
	acceptHeader     = "Accept: text/html\n"
	connectionHeader = "Connection: close\n"
)

// Build serializes the request
func (r *Request) Build() []byte {
	var buf bytes.Buffer

	// Request line
	buf.WriteString(Method)
	buf.WriteString(" ")
	buf.WriteString(r.Target())
	buf.WriteString(" ")
	buf.WriteString(Version)
	buf.WriteString("\r\n")

	// Headers
	buf.WriteString("Host: ")
	buf.WriteString(r.Host)
	buf.WriteString("\n")
	buf.WriteString(acceptHeader)
	buf.WriteString(connectionHeader)

	// Empty line between headers and (absent) body
	buf.WriteString("\n")

	return buf.Bytes()
}

// BuildString serializes the request as a string
func (r *Request) BuildString() string {
	return string(r.Build())
}

// BuildGet serializes a GET request for path on host
func BuildGet(host, path string) []byte {
	return New(host, path).Build()
}
