// Package url decomposes absolute http URLs into host, port, path and searchpart.
package url

import (
	"strconv"
	"strings"

	"github.com/WhileEndless/go-sbnet/pkg/errors"
)

const (
	// Scheme is the only prefix accepted by Parse
	Scheme = "http://"

	// DefaultPort is used when the authority carries no port
	DefaultPort = "80"

	maxPort = 65535
)

// URL is the decomposed form of an http URL. The zero value is empty;
// values are only produced by Parse and never change afterwards.
type URL struct {
	raw        string
	host       string
	port       string
	path       string
	searchpart string
}

// Parse decomposes raw of the form http://host[:port][/path[?searchpart]].
// Every split uses the first occurrence of its separator.
func Parse(raw string) (*URL, error) {
	if !strings.HasPrefix(raw, Scheme) {
		return nil, errors.NewError(errors.ErrorTypeUnsupportedScheme,
			"unsupported URL scheme", "parse", []byte(raw))
	}

	u := &URL{raw: raw, port: DefaultPort}

	authority, tail, hasSlash := strings.Cut(strings.TrimPrefix(raw, Scheme), "/")

	if host, port, ok := strings.Cut(authority, ":"); ok {
		u.host = host
		u.port = port
	} else {
		u.host = authority
	}

	if hasSlash {
		u.path, u.searchpart, _ = strings.Cut(tail, "?")
	}

	return u, nil
}

// Raw returns the text the URL was parsed from
func (u *URL) Raw() string { return u.raw }

// Host returns the host part of the authority
func (u *URL) Host() string { return u.host }

// Port returns the port in string form, DefaultPort if none was given
func (u *URL) Port() string { return u.port }

// Path returns the path without its leading slash
func (u *URL) Path() string { return u.path }

// Searchpart returns the query string without the leading '?'
func (u *URL) Searchpart() string { return u.searchpart }

// String returns the raw URL
func (u *URL) String() string { return u.raw }

// PortNumber converts the port to an integer in [0, 65535]
func (u *URL) PortNumber() (int, error) {
	port, err := strconv.Atoi(u.port)
	if err != nil || port < 0 || port > maxPort {
		return 0, errors.NewError(errors.ErrorTypeInvalidPort,
			"invalid port: "+u.port, "portNumber", []byte(u.raw))
	}
	return port, nil
}
