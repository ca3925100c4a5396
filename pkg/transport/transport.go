// Package transport provides the byte-stream connections that responses are
// decoded from. Implementations satisfy io.Reader, so a connected transport
// can be passed straight to http.ReadResponse.
package transport

import (
	"context"
	"io"
	"time"
)

// Transport defines the interface for network I/O operations.
// Implementations include TCP and Unix domain sockets.
type Transport interface {
	io.ReadWriteCloser

	// Connect establishes a connection to the specified host and port.
	// For Unix sockets, the host parameter is the socket path and port is ignored.
	Connect(ctx context.Context, host string, port uint16) error

	// SetDeadline sets the read and write deadline of the connection.
	// A zero value disables the deadline.
	SetDeadline(t time.Time) error
}
