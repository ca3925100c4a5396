package transport

import (
	"net"
	"time"
)

// conn holds the connection shared by the TCP and Unix transports.
type conn struct {
	c net.Conn
}

func (t *conn) Write(buf []byte) (int, error) {
	if t.c == nil {
		return 0, newError(NotConnected, nil)
	}
	n, err := t.c.Write(buf)
	if err != nil {
		return n, classifyWrite(err)
	}
	return n, nil
}

func (t *conn) Read(buf []byte) (int, error) {
	if t.c == nil {
		return 0, newError(NotConnected, nil)
	}
	n, err := t.c.Read(buf)
	if err != nil {
		return n, classifyRead(err)
	}
	return n, nil
}

func (t *conn) SetDeadline(d time.Time) error {
	if t.c == nil {
		return newError(NotConnected, nil)
	}
	if err := t.c.SetDeadline(d); err != nil {
		return newError(InitFailure, err)
	}
	return nil
}

// Close closes the connection. Closing twice is a no-op.
func (t *conn) Close() error {
	if t.c == nil {
		return nil
	}
	err := t.c.Close()
	t.c = nil
	if err != nil {
		return newError(CloseFailure, err)
	}
	return nil
}
