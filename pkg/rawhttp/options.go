package rawhttp

import (
	"time"

	"go.uber.org/zap"
)

// DefaultReadBufferSize is the chunk size used when reading the response
const DefaultReadBufferSize = 4096

// Options represents configuration options for a Client
type Options struct {
	// Collaborators
	Resolver  Resolver  // Name resolution (default: NetResolver)
	Transport Transport // Stream transport (default: NetTransport)

	// DialTimeout bounds connection establishment of the default transport.
	// Zero means no timeout.
	DialTimeout time.Duration

	// ReadBufferSize is the size of each read from the connection (default: 4096)
	ReadBufferSize int

	// Logger receives debug events for each phase (default: no-op)
	Logger *zap.Logger
}

// SetDefaults sets default values for unspecified options
func (o *Options) SetDefaults() {
	if o.Resolver == nil {
		o.Resolver = NewNetResolver()
	}

	if o.Transport == nil {
		o.Transport = NewNetTransport(o.DialTimeout)
	}

	if o.ReadBufferSize <= 0 {
		o.ReadBufferSize = DefaultReadBufferSize
	}

	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
}
