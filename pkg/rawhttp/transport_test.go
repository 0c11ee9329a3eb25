package rawhttp

import (
	"bytes"
	"context"
	"io"
	"net"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"
)

// serveOnce accepts one connection, captures the request up to its blank
// line, replies with reply and closes.
func serveOnce(t *testing.T, reply string) (port int, received <-chan []byte) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { ln.Close() })

	ch := make(chan []byte, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			ch <- nil
			return
		}
		defer conn.Close()

		var req []byte
		buf := make([]byte, 64)
		for !bytes.HasSuffix(req, []byte("\n\n")) {
			n, err := conn.Read(buf)
			req = append(req, buf[:n]...)
			if err != nil {
				break
			}
		}
		ch <- req

		io.WriteString(conn, reply)
	}()

	return ln.Addr().(*net.TCPAddr).Port, ch
}

func TestNetTransportRoundTrip(t *testing.T) {
	port, received := serveOnce(t, "HTTP/1.1 200 OK\nContent-Type: text/html\n\n<h1>loopback</h1>")

	client := NewClient(Options{
		DialTimeout: 5 * time.Second,
		Logger:      zaptest.NewLogger(t),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resp, err := client.Get(ctx, "127.0.0.1", port, "index.html")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	want := "GET /index.html HTTP/1.1\r\nHost: 127.0.0.1\nAccept: text/html\nConnection: close\n\n"
	if got := string(<-received); got != want {
		t.Errorf("server received %q, want %q", got, want)
	}

	if resp.StatusCode() != 200 {
		t.Errorf("StatusCode() = %d, want 200", resp.StatusCode())
	}
	if ct, _ := resp.HeaderValue("Content-Type"); ct != "text/html" {
		t.Errorf("Content-Type = %q, want %q", ct, "text/html")
	}
	if resp.Body() != "<h1>loopback</h1>" {
		t.Errorf("Body() = %q, want %q", resp.Body(), "<h1>loopback</h1>")
	}
}

func TestNetTransportConnectRefused(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()

	client := NewClient(Options{DialTimeout: 2 * time.Second})

	_, err = client.Get(context.Background(), "127.0.0.1", port, "")
	if !IsNetworkError(err) {
		t.Fatalf("Get() error = %v, want network error", err)
	}
	if err.(*HTTPError).Type != ErrorTypeConnection {
		t.Errorf("Type = %v, want %v", err.(*HTTPError).Type, ErrorTypeConnection)
	}
}

func TestNetResolverLiteralIP(t *testing.T) {
	ips, err := NewNetResolver().Resolve(context.Background(), "127.0.0.1")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(ips) != 1 || !ips[0].Equal(net.IPv4(127, 0, 0, 1)) {
		t.Errorf("Resolve() = %v, want [127.0.0.1]", ips)
	}
}

func TestNetResolverLocalhost(t *testing.T) {
	ips, err := NewNetResolver().Resolve(context.Background(), "localhost")
	if err != nil {
		t.Skipf("localhost does not resolve here: %v", err)
	}
	if len(ips) == 0 {
		t.Fatal("Resolve(localhost) returned no addresses")
	}
	for _, ip := range ips {
		if !ip.IsLoopback() {
			t.Errorf("Resolve(localhost) returned non-loopback %v", ip)
		}
	}
}
