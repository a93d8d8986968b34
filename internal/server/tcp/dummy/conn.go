package dummy

import (
	"bytes"
	"io"
	"net"
	"sync"
	"time"
)

// Conn is a net.Conn, serving the data it was initialized with and recording
// everything written into it. Errors may be injected in order to simulate broken
// connections
type Conn struct {
	mu       sync.Mutex
	data     *bytes.Reader
	written  bytes.Buffer
	closed   bool
	ReadErr  error
	WriteErr error
	// WriteLimit, if positive, makes the write fail once that many bytes were written
	WriteLimit int
}

func NewConn(data string) *Conn {
	return &Conn{data: bytes.NewReader([]byte(data))}
}

func (c *Conn) Read(b []byte) (n int, err error) {
	if c.ReadErr != nil {
		return 0, c.ReadErr
	}

	n, err = c.data.Read(b)
	if err == nil && c.data.Len() == 0 {
		err = io.EOF
	}

	return n, err
}

func (c *Conn) Write(b []byte) (n int, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.WriteErr != nil {
		return 0, c.WriteErr
	}

	if c.WriteLimit > 0 && c.written.Len()+len(b) > c.WriteLimit {
		return 0, io.ErrClosedPipe
	}

	return c.written.Write(b)
}

// Written returns everything written so far
func (c *Conn) Written() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.written.String()
}

func (c *Conn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	return nil
}

// Closed reports whether Close was called
func (c *Conn) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.closed
}

func (*Conn) LocalAddr() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 80}
}

func (*Conn) RemoteAddr() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(192, 0, 2, 1), Port: 12345}
}

func (*Conn) SetDeadline(time.Time) error {
	return nil
}

func (*Conn) SetReadDeadline(time.Time) error {
	return nil
}

func (*Conn) SetWriteDeadline(time.Time) error {
	return nil
}
