package transport

import (
	"context"
	"net"
	"strconv"
	"time"
)

// TCPTransport implements Transport over TCP.
type TCPTransport struct {
	conn
	dialer net.Dialer
}

var _ Transport = (*TCPTransport)(nil)

// NewTCPTransport creates a TCPTransport. A positive dialTimeout bounds
// Connect in addition to the context.
func NewTCPTransport(dialTimeout time.Duration) *TCPTransport {
	return &TCPTransport{dialer: net.Dialer{Timeout: dialTimeout}}
}

// Connect establishes a TCP connection to host:port with Nagle's algorithm
// disabled.
func (t *TCPTransport) Connect(ctx context.Context, host string, port uint16) error {
	c, err := t.dialer.DialContext(ctx, "tcp", net.JoinHostPort(host, strconv.Itoa(int(port))))
	if err != nil {
		return classifyDial(err)
	}

	if tcp, ok := c.(*net.TCPConn); ok {
		if err := tcp.SetNoDelay(true); err != nil {
			c.Close()
			return newError(InitFailure, err)
		}
	}

	t.c = c
	return nil
}
