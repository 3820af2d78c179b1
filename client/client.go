// Package client implements a probe client: it writes a single message into the
// connection and reads the reply back.
package client

import (
	"errors"
	"fmt"
	"io"
	"net"
)

// Exchange writes the message and reads at most n bytes of the reply. A reply shorter
// than n bytes isn't an error. If n isn't positive, the reply is read until the peer
// closes the connection.
func Exchange(conn net.Conn, msg []byte, n int) ([]byte, error) {
	if _, err := conn.Write(msg); err != nil {
		return nil, fmt.Errorf("write message: %w", err)
	}

	if n <= 0 {
		reply, err := io.ReadAll(conn)
		if err != nil {
			return reply, fmt.Errorf("read reply: %w", err)
		}

		return reply, nil
	}

	reply := make([]byte, n)
	read, err := io.ReadFull(conn, reply)
	switch {
	case err == nil, errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return reply[:read], nil
	default:
		return reply[:read], fmt.Errorf("read reply: %w", err)
	}
}
