// Package rawhttp performs single HTTP/1.1 GET exchanges over a pluggable
// resolver and transport.
package rawhttp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"github.com/WhileEndless/go-sbnet/pkg/request"
	"github.com/WhileEndless/go-sbnet/pkg/response"
	"github.com/WhileEndless/go-sbnet/pkg/url"
	"go.uber.org/zap"
)

const maxPort = 65535

// Client fetches resources with one connect/write/read/close cycle per call.
// It holds no per-request state.
type Client struct {
	opts Options
}

// NewClient creates a new Client instance
func NewClient(opts Options) *Client {
	opts.SetDefaults()
	return &Client{opts: opts}
}

// Get fetches /path from host:port and returns the parsed response.
// path is given without its leading slash.
func (c *Client) Get(ctx context.Context, host string, port int, path string) (*response.Response, error) {
	result, err := c.Do(ctx, host, port, path)
	if err != nil {
		return nil, err
	}
	return result.Response, nil
}

// Fetch parses rawURL and gets the resource it names. The searchpart is not sent.
func (c *Client) Fetch(ctx context.Context, rawURL string) (*response.Response, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}

	port, err := u.PortNumber()
	if err != nil {
		return nil, err
	}

	return c.Get(ctx, u.Host(), port, u.Path())
}

// Do performs the exchange and returns the response with connection metadata
func (c *Client) Do(ctx context.Context, host string, port int, path string) (*Result, error) {
	if host == "" {
		return nil, NewRequestError(errors.New("empty host"))
	}
	if port < 0 || port > maxPort {
		return nil, NewRequestError(fmt.Errorf("port %d out of range", port))
	}

	log := c.opts.Logger.With(zap.String("host", host), zap.Int("port", port))
	result := newResult()
	startTime := time.Now()

	// Resolve; only the first address is ever tried
	dnsStart := time.Now()
	ips, err := c.opts.Resolver.Resolve(ctx, host)
	if err != nil {
		log.Debug("resolve failed", zap.Error(err))
		return nil, NewDNSError(err)
	}
	if len(ips) == 0 {
		log.Debug("resolve returned no addresses")
		return nil, NewDNSError(fmt.Errorf("no IP addresses found for host: %s", host))
	}
	ip := ips[0]
	result.Timing.DNSLookup = time.Since(dnsStart)
	result.ConnectedIP = ip.String()
	result.ConnectedPort = port
	log = log.With(zap.Stringer("ip", ip))

	// Connect
	connStart := time.Now()
	conn, err := c.opts.Transport.Connect(ctx, ip, port)
	if err != nil {
		log.Debug("connect failed", zap.Error(err))
		return nil, NewConnectionError(err)
	}
	defer conn.Close()
	result.Timing.TCPConnect = time.Since(connStart)

	// Send request
	rawRequest := request.BuildGet(host, path)
	if err := writeFull(conn, rawRequest); err != nil {
		log.Debug("write failed", zap.Error(err))
		return nil, NewWriteError(err)
	}
	log.Debug("request sent", zap.Int("bytes", len(rawRequest)))

	// Read until the peer closes
	rawResponse, err := c.readResponse(conn, result.Timing)
	if err != nil {
		log.Debug("read failed", zap.Error(err))
		return nil, NewReadError(err)
	}
	result.Raw = rawResponse

	if !utf8.Valid(rawResponse) {
		return nil, NewDecodeError(errors.New("response is not valid UTF-8"))
	}

	resp, err := response.Parse(string(rawResponse))
	if err != nil {
		log.Debug("parse failed", zap.Error(err))
		return nil, NewResponseError(err)
	}
	result.Response = resp
	result.Timing.Total = time.Since(startTime)

	log.Debug("fetch complete",
		zap.Int("status", resp.StatusCode()),
		zap.Int("bytes", len(rawResponse)),
		zap.Object("timing", result.Timing))

	return result, nil
}

// writeFull writes data until all of it has been accepted
func writeFull(w io.Writer, data []byte) error {
	for len(data) > 0 {
		n, err := w.Write(data)
		if err != nil {
			return err
		}
		if n <= 0 {
			return io.ErrShortWrite
		}
		data = data[n:]
	}
	return nil
}

// readResponse accumulates fixed-size reads until a read returns no data.
// There is no Content-Length or chunked handling; the request asks the peer
// to close the connection.
func (c *Client) readResponse(r io.Reader, timing *Timing) ([]byte, error) {
	buf := make([]byte, c.opts.ReadBufferSize)
	var received []byte
	readStart := time.Now()

	for {
		n, err := r.Read(buf)
		if n > 0 {
			if received == nil {
				timing.TTFB = time.Since(readStart)
			}
			received = append(received, buf[:n]...)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if n == 0 {
			break
		}
	}

	return received, nil
}
