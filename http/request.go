package http

import (
	"github.com/indigo-web/october/http/method"
	"github.com/indigo-web/october/http/mime"
	"github.com/indigo-web/october/http/proto"
	"github.com/indigo-web/utils/buffer"
)

// Flags records which of the recognized headers were presented
type Flags uint8

const (
	HasHost Flags = 1 << iota
	HasConnection
	// KeepAlive is set for HTTP/1.1 requests with Connection: keep-alive. It is
	// recorded, but connections are closed after a single response anyway
	KeepAlive
	// NoTarget is set when the request line carries no target, so the path was
	// defaulted to /
	NoTarget
)

// Request is the state of the only request of a connection. It is owned by the
// connection handler and is never shared.
type Request struct {
	Method method.Method
	// Path is the request target. It usually points into the connection's read
	// buffer and is decoded in place.
	Path  []byte
	Proto proto.Proto
	Flags Flags
	// MIME is set after the requested file was found.
	MIME mime.MIME
	// Scratch is the workspace for the path decoding. It must be at least as large
	// as the read buffer.
	Scratch *buffer.Buffer
}

// NewRequest returns a request with a scratch buffer, which never grows beyond
// scratchSize bytes.
func NewRequest(scratchSize int) *Request {
	return &Request{
		Scratch: buffer.New(scratchSize, scratchSize),
	}
}

// Has reports whether all the passed flags are set
func (r *Request) Has(flags Flags) bool {
	return r.Flags&flags == flags
}
