package client

import (
	"io"
	"net"
	"testing"

	"github.com/indigo-web/tinyhttp/config"
	"github.com/indigo-web/tinyhttp/handlers"
	"github.com/indigo-web/tinyhttp/internal/server"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// serve handles a single exchange on the server side of the pipe.
func serve(t *testing.T, conn net.Conn) {
	srv := server.New(nil, handlers.New(config.Default()), config.Default(), zerolog.Nop())

	go func() {
		_ = srv.HandleConn(conn)
	}()
}

func TestExchange(t *testing.T) {
	t.Run("fixed amount", func(t *testing.T) {
		clientConn, serverConn := net.Pipe()
		serve(t, serverConn)
		reply, err := Exchange(clientConn, []byte("Hello TCPServer"), 5)
		require.NoError(t, err)
		require.Equal(t, "HTTP/", string(reply))
		_ = clientConn.Close()
	})

	t.Run("whole reply", func(t *testing.T) {
		clientConn, serverConn := net.Pipe()
		serve(t, serverConn)
		reply, err := Exchange(clientConn, []byte("GET /greeting HTTP/1.1\r\n\r\n"), 0)
		require.NoError(t, err)
		require.Contains(t, string(reply), "HTTP/1.1 200 OK\r\n")
		require.Contains(t, string(reply), handlers.GreetingPage)
	})

	t.Run("reply shorter than requested", func(t *testing.T) {
		clientConn, serverConn := net.Pipe()
		go func() {
			buff := make([]byte, 64)
			_, _ = serverConn.Read(buff)
			_, _ = serverConn.Write([]byte("ok"))
			_ = serverConn.Close()
		}()

		reply, err := Exchange(clientConn, []byte("ping"), 10)
		require.NoError(t, err)
		require.Equal(t, "ok", string(reply))
	})

	t.Run("closed connection", func(t *testing.T) {
		clientConn, serverConn := net.Pipe()
		_ = serverConn.Close()
		_, err := Exchange(clientConn, []byte("ping"), 5)
		require.ErrorIs(t, err, io.ErrClosedPipe)
	})
}
