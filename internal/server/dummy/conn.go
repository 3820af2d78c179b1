package dummy

import (
	"io"
	"net"
	"time"
)

// Conn is a net.Conn implementation used in testing purposes. It gives the Input away
// on the first read, reporting io.EOF afterwards, and accumulates everything written
// into the Output.
type Conn struct {
	Input    []byte
	Output   []byte
	ReadErr  error
	WriteErr error
	Closed   bool
	read     bool
}

func NewConn(input []byte) *Conn {
	return &Conn{
		Input: input,
	}
}

func (c *Conn) Read(b []byte) (n int, err error) {
	if c.ReadErr != nil {
		return 0, c.ReadErr
	}

	if c.read {
		return 0, io.EOF
	}

	c.read = true

	return copy(b, c.Input), nil
}

func (c *Conn) Write(b []byte) (n int, err error) {
	if c.WriteErr != nil {
		return 0, c.WriteErr
	}

	c.Output = append(c.Output, b...)

	return len(b), nil
}

func (c *Conn) Close() error {
	c.Closed = true
	return nil
}

func (c *Conn) LocalAddr() net.Addr {
	return nil
}

func (c *Conn) RemoteAddr() net.Addr {
	return nil
}

func (c *Conn) SetDeadline(time.Time) error {
	return nil
}

func (c *Conn) SetReadDeadline(time.Time) error {
	return nil
}

func (c *Conn) SetWriteDeadline(time.Time) error {
	return nil
}
