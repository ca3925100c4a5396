package transport

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shortSocketPath returns a socket path short enough for sun_path.
func shortSocketPath(t *testing.T) string {
	t.Helper()
	dir, err := os.MkdirTemp("", "tr")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })
	return filepath.Join(dir, "s.sock")
}

func setupUnixTestServer(t *testing.T, serverLogic func(net.Conn)) string {
	t.Helper()

	path := shortSocketPath(t)
	listener, err := net.Listen("unix", path)
	require.NoError(t, err, "create test server")

	done := make(chan struct{})
	go func() {
		defer close(done)
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		serverLogic(conn)
	}()

	t.Cleanup(func() {
		listener.Close()
		<-done
	})
	return path
}

func TestUnixTransport_ConnectWriteRead(t *testing.T) {
	path := setupUnixTestServer(t, func(conn net.Conn) {
		buf := make([]byte, 5)
		n, _ := conn.Read(buf)
		conn.Write(buf[:n])
	})

	tr := NewUnixTransport()
	require.NoError(t, tr.Connect(context.Background(), path, 0))
	defer tr.Close()

	_, err := tr.Write([]byte("hello"))
	require.NoError(t, err)

	buf := make([]byte, 5)
	n, err := tr.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(buf[:n]))
}

func TestUnixTransport_ConnectMissingSocket(t *testing.T) {
	tr := NewUnixTransport()
	err := tr.Connect(context.Background(), shortSocketPath(t), 0)

	var terr *Error
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, ConnectFailure, terr.Kind)
}

func TestUnixTransport_CloseIdempotent(t *testing.T) {
	tr := NewUnixTransport()
	assert.NoError(t, tr.Close())
}
