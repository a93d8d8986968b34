package http1

import (
	"io"

	"github.com/indigo-web/october/errors"
	"github.com/indigo-web/october/http/mime"
	"github.com/indigo-web/october/http/proto"
	"github.com/indigo-web/october/http/status"
	"github.com/indigo-web/october/internal/timer"
)

const (
	crlf        = "\r\n"
	contentType = "Content-Type: "
	charset     = "; charset=" + mime.UTF8
	date        = "Date: "
	expires     = "Expires: -1"
	server      = "Server: october"
)

// NotFoundPage is the body of every 404 response
const NotFoundPage = "<html><head><title>404 Not Found</title></head>" +
	"<body><h1>Not Found</h1><p>The requested resource was not found on this server.</p></body></html>"

// Writer is the connection, as seen by the serializer
type Writer interface {
	Write([]byte) error
}

// Serializer assembles responses in a write buffer of fixed capacity. The buffer
// never grows: anything which doesn't fit into it results in ErrResponseTooLarge.
type Serializer struct {
	buff []byte
	n    int
	date func() string
}

func NewSerializer(size int) *Serializer {
	return &Serializer{
		buff: make([]byte, size),
		date: timer.Date,
	}
}

// Buffered returns the bytes written but not flushed yet
func (s *Serializer) Buffered() []byte {
	return s.buff[:s.n]
}

// NotFound renders the whole 404 response, including the body
func (s *Serializer) NotFound(protocol proto.Proto) error {
	return s.append(
		protocol.String(), " ", status.Line(status.NotFound), crlf,
		contentType, mime.HTML, charset, crlf,
		date, s.date(), crlf,
		crlf,
		NotFoundPage,
	)
}

// OK renders the status line and headers of a 200 response. The body is expected
// to be streamed right after.
func (s *Serializer) OK(protocol proto.Proto, mimeType mime.MIME) error {
	return s.append(
		protocol.String(), " ", status.Line(status.OK), crlf,
		contentType, mimeType, charset, crlf,
		date, s.date(), crlf,
		expires, crlf,
		server, crlf,
		crlf,
	)
}

// Stream reads the body straight into the write buffer, right after whatever is
// buffered already, and flushes the buffer after every read. It returns the number
// of body bytes streamed.
func (s *Serializer) Stream(r io.Reader, w Writer) (total int64, err error) {
	for {
		if s.n == len(s.buff) {
			if err = s.flush(w); err != nil {
				return total, err
			}
		}

		n, rerr := r.Read(s.buff[s.n:])
		s.n += n
		total += int64(n)

		if n > 0 {
			if err = s.flush(w); err != nil {
				return total, err
			}
		}

		switch rerr {
		case nil:
		case io.EOF:
			return total, nil
		default:
			return total, errors.System(rerr)
		}
	}
}

// Flush writes out everything buffered, terminated by CRLF.
func (s *Serializer) Flush(w Writer) error {
	if len(s.buff)-s.n >= len(crlf) {
		s.n += copy(s.buff[s.n:], crlf)
		return s.flush(w)
	}

	if err := s.flush(w); err != nil {
		return err
	}

	return errors.System(w.Write([]byte(crlf)))
}

func (s *Serializer) flush(w Writer) error {
	if s.n == 0 {
		return nil
	}

	err := w.Write(s.buff[:s.n])
	s.n = 0

	return errors.System(err)
}

// append writes all the strings or none of them
func (s *Serializer) append(strs ...string) error {
	var length int
	for _, str := range strs {
		length += len(str)
	}

	if s.n+length > len(s.buff) {
		return errors.Program(errors.ErrResponseTooLarge)
	}

	for _, str := range strs {
		s.n += copy(s.buff[s.n:], str)
	}

	return nil
}
