package transport

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"syscall"
)

// ErrorKind classifies transport failures.
type ErrorKind int

const (
	DNSFailure ErrorKind = iota + 1
	ConnectFailure
	WriteFailure
	ReadFailure
	ConnectionClosed
	CloseFailure
	InitFailure
	NotConnected
	Timeout
)

func (k ErrorKind) String() string {
	switch k {
	case DNSFailure:
		return "DNS lookup failed"
	case ConnectFailure:
		return "socket connection failed"
	case WriteFailure:
		return "socket write failed"
	case ReadFailure:
		return "socket read failed"
	case ConnectionClosed:
		return "connection closed"
	case CloseFailure:
		return "socket close failed"
	case InitFailure:
		return "initialization failed"
	case NotConnected:
		return "not connected"
	case Timeout:
		return "i/o timeout"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is a classified transport failure wrapping the underlying cause.
type Error struct {
	Kind ErrorKind
	Err  error
}

func newError(kind ErrorKind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transport: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("transport: %s", e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// classifyDial maps a dial failure to an Error.
func classifyDial(err error) *Error {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return newError(DNSFailure, err)
	}
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return newError(Timeout, err)
	}
	return newError(ConnectFailure, err)
}

// classifyRead maps a read failure to an Error. A clean close keeps io.EOF
// in the chain so callers can detect it with errors.Is.
func classifyRead(err error) *Error {
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, syscall.ECONNRESET), errors.Is(err, net.ErrClosed):
		return newError(ConnectionClosed, err)
	case errors.Is(err, os.ErrDeadlineExceeded):
		return newError(Timeout, err)
	}
	return newError(ReadFailure, err)
}

// classifyWrite maps a write failure to an Error.
func classifyWrite(err error) *Error {
	switch {
	case errors.Is(err, syscall.EPIPE), errors.Is(err, syscall.ECONNRESET), errors.Is(err, net.ErrClosed):
		return newError(ConnectionClosed, err)
	case errors.Is(err, os.ErrDeadlineExceeded):
		return newError(Timeout, err)
	}
	return newError(WriteFailure, err)
}
