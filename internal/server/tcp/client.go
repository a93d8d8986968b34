package tcp

import (
	"io"
	"net"

	"github.com/indigo-web/october/errors"
)

// Client is a single accepted connection together with its read buffer.
type Client struct {
	conn net.Conn
	buff []byte
}

// NewClient returns a client with a read buffer of the given capacity. One byte
// of it is always reserved, so at most size-1 bytes are read.
func NewClient(conn net.Conn, size int) *Client {
	return &Client{
		conn: conn,
		buff: make([]byte, size),
	}
}

// Read makes a single bounded read and returns whatever arrived. Nothing arriving
// before the peer closes its end isn't an error, but an empty result. There is no
// read deadline, so a peer sending nothing blocks the call forever.
func (c *Client) Read() ([]byte, error) {
	n, err := c.conn.Read(c.buff[:len(c.buff)-1])

	switch err {
	case nil, io.EOF:
		return c.buff[:n], nil
	default:
		return c.buff[:n], errors.System(err)
	}
}

// Write writes the whole data into the connection.
func (c *Client) Write(b []byte) error {
	_, err := c.conn.Write(b)

	return errors.System(err)
}

func (c *Client) Remote() net.Addr {
	return c.conn.RemoteAddr()
}

func (c *Client) Close() error {
	return c.conn.Close()
}
