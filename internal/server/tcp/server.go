package tcp

import (
	"net"
	"sync/atomic"

	"github.com/indigo-web/october/errors"
)

type OnConn func(net.Conn)

// Server is the accept loop. Every accepted connection is handed to onConn in a
// goroutine of its own, which is never waited for.
type Server struct {
	sock     net.Listener
	onConn   OnConn
	shutdown atomic.Bool
}

func NewServer(sock net.Listener, onConn OnConn) *Server {
	return &Server{
		sock:   sock,
		onConn: onConn,
	}
}

// Start blocks on accepting new connections. It returns only when the accept
// fails; errors.ErrShutdown is returned if the failure was caused by Stop.
func (s *Server) Start() error {
	for {
		conn, err := s.sock.Accept()
		if err != nil {
			if s.shutdown.Load() {
				return errors.ErrShutdown
			}

			return errors.System(err)
		}

		go s.onConn(conn)
	}
}

// Addr returns the address the server is listening at
func (s *Server) Addr() net.Addr {
	return s.sock.Addr()
}

// Stop closes the listener. Connections being served are left to finish on
// their own.
func (s *Server) Stop() error {
	s.shutdown.Store(true)

	return s.sock.Close()
}
