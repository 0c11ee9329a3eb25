package rawhttp

import "github.com/WhileEndless/go-sbnet/pkg/response"

// Result is a fetched response together with connection metadata
type Result struct {
	// Parsed response
	Response *response.Response

	// Raw response bytes exactly as read from the connection
	Raw []byte

	// Connection metadata
	ConnectedIP   string // Address dialed (first resolved address)
	ConnectedPort int    // Port dialed

	// Timing information
	Timing *Timing
}

func newResult() *Result {
	return &Result{
		Timing: &Timing{},
	}
}
