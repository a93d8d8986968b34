package http1

import (
	"bytes"

	"github.com/indigo-web/october/errors"
	"github.com/indigo-web/october/http"
	"github.com/indigo-web/october/http/method"
	"github.com/indigo-web/october/http/proto"
	"github.com/indigo-web/utils/strcomp"
	"github.com/indigo-web/utils/uf"
)

const (
	hostHeader       = "Host:"
	connectionHeader = "Connection:"
	keepAlive        = "keep-alive"
)

// Parse fills the request from the raw data, received within a single read. Lines
// are delimited by either CR, LF or both of them, so a bare CR is tolerated. Only
// the request line is mandatory; the target defaults to "/" and the protocol to
// HTTP/1.0. Headers are inspected for GET requests only, where just Host and
// Connection are recognized, everything else is ignored.
//
// The request's path points into data, so the data must outlive the request.
func Parse(data []byte, request *http.Request) error {
	line, data := nextLine(data)
	token, line := nextToken(line)
	if len(token) == 0 {
		return errors.Program(errors.ErrNoRequest)
	}

	request.Method = method.Parse(uf.B2S(token))
	if request.Method == method.Unknown {
		return errors.Program(errors.ErrMalformedMethod)
	}

	token, line = nextToken(line)
	if len(token) == 0 {
		token = []byte{'/'}
		request.Flags |= http.NoTarget
	}

	request.Path = token
	token, _ = nextToken(line)
	request.Proto = proto.Parse(uf.B2S(token))

	if request.Method != method.GET {
		return nil
	}

	for len(data) > 0 {
		line, data = nextLine(data)
		name, rest := nextToken(line)
		value, _ := nextToken(rest)

		switch {
		case strcomp.EqualFold(uf.B2S(name), hostHeader):
			request.Flags |= http.HasHost
		case strcomp.EqualFold(uf.B2S(name), connectionHeader):
			request.Flags |= http.HasConnection
			if request.Proto == proto.HTTP11 && strcomp.EqualFold(uf.B2S(value), keepAlive) {
				request.Flags |= http.KeepAlive
			}
		}
	}

	return nil
}

// nextLine cuts the first non-empty line. Leading line terminators are skipped,
// so neither CRLF nor empty lines produce empty results unless data is exhausted
func nextLine(data []byte) (line, rest []byte) {
	data = bytes.TrimLeft(data, "\r\n")
	end := bytes.IndexAny(data, "\r\n")
	if end == -1 {
		return data, nil
	}

	return data[:end], data[end+1:]
}

// nextToken cuts the first whitespace-delimited token
func nextToken(line []byte) (token, rest []byte) {
	line = bytes.TrimLeft(line, " \t")
	end := bytes.IndexAny(line, " \t")
	if end == -1 {
		return line, nil
	}

	return line[:end], line[end+1:]
}
