package rawhttp

import (
	"time"

	"go.uber.org/zap/zapcore"
)

// Timing represents timing information for different phases of the request
type Timing struct {
	DNSLookup  time.Duration // Time spent on name resolution
	TCPConnect time.Duration // Time spent establishing the transport connection
	TTFB       time.Duration // Time from the end of the write to the first response byte
	Total      time.Duration // Total time from start to finish
}

// String returns a human-readable representation of timing information
func (t *Timing) String() string {
	return formatTiming(t)
}

// MarshalLogObject lets a Timing be logged with zap.Object
func (t *Timing) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddDuration("dns", t.DNSLookup)
	enc.AddDuration("connect", t.TCPConnect)
	enc.AddDuration("ttfb", t.TTFB)
	enc.AddDuration("total", t.Total)
	return nil
}

func formatTiming(t *Timing) string {
	result := "Timing:\n"
	if t.DNSLookup > 0 {
		result += "  DNS Lookup: " + t.DNSLookup.String() + "\n"
	}
	if t.TCPConnect > 0 {
		result += "  TCP Connect: " + t.TCPConnect.String() + "\n"
	}
	if t.TTFB > 0 {
		result += "  Time to First Byte: " + t.TTFB.String() + "\n"
	}
	result += "  Total: " + t.Total.String()
	return result
}
