package rawhttp

import (
	"context"
	"io"
	"net"
	"strconv"
	"time"

	"golang.org/x/net/idna"
)

// Resolver maps a host name to network addresses
type Resolver interface {
	Resolve(ctx context.Context, host string) ([]net.IP, error)
}

// Conn is a connected byte stream. Read returning 0 bytes or io.EOF means
// the peer closed the connection.
type Conn interface {
	io.ReadWriteCloser
}

// Transport opens stream connections
type Transport interface {
	Connect(ctx context.Context, ip net.IP, port int) (Conn, error)
}

// ResolverFunc adapts a function to the Resolver interface
type ResolverFunc func(ctx context.Context, host string) ([]net.IP, error)

// Resolve calls f(ctx, host)
func (f ResolverFunc) Resolve(ctx context.Context, host string) ([]net.IP, error) {
	return f(ctx, host)
}

// NetResolver resolves names with the system resolver. Internationalized
// names are converted to their ASCII form first.
type NetResolver struct {
	resolver *net.Resolver
}

// NewNetResolver creates a resolver backed by net.DefaultResolver
func NewNetResolver() *NetResolver {
	return &NetResolver{resolver: net.DefaultResolver}
}

// Resolve looks up host, keeping the order returned by the system resolver
func (r *NetResolver) Resolve(ctx context.Context, host string) ([]net.IP, error) {
	if ip := net.ParseIP(host); ip != nil {
		return []net.IP{ip}, nil
	}

	lookup := host
	if ascii, err := idna.Lookup.ToASCII(host); err == nil {
		lookup = ascii
	}

	addrs, err := r.resolver.LookupIPAddr(ctx, lookup)
	if err != nil {
		return nil, err
	}

	ips := make([]net.IP, 0, len(addrs))
	for _, addr := range addrs {
		ips = append(ips, addr.IP)
	}
	return ips, nil
}

// NetTransport dials TCP connections
type NetTransport struct {
	dialer *net.Dialer
}

// NewNetTransport creates a TCP transport. A zero timeout never times out.
func NewNetTransport(timeout time.Duration) *NetTransport {
	return &NetTransport{
		dialer: &net.Dialer{Timeout: timeout},
	}
}

// Connect dials ip:port. A deadline on ctx also bounds later reads and writes.
func (t *NetTransport) Connect(ctx context.Context, ip net.IP, port int) (Conn, error) {
	addr := net.JoinHostPort(ip.String(), strconv.Itoa(port))

	conn, err := t.dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			conn.Close()
			return nil, err
		}
	}

	return conn, nil
}
