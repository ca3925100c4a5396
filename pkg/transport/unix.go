package transport

import (
	"context"
	"net"
)

// UnixTransport implements Transport over a Unix domain socket.
type UnixTransport struct {
	conn
	dialer net.Dialer
}

var _ Transport = (*UnixTransport)(nil)

// NewUnixTransport creates a UnixTransport.
func NewUnixTransport() *UnixTransport {
	return &UnixTransport{}
}

// Connect dials the socket at path. The port parameter is ignored.
func (t *UnixTransport) Connect(ctx context.Context, path string, _ uint16) error {
	c, err := t.dialer.DialContext(ctx, "unix", path)
	if err != nil {
		return classifyDial(err)
	}
	t.c = c
	return nil
}
