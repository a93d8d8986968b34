package http1

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/indigo-web/october/errors"
	"github.com/indigo-web/october/http/mime"
	"github.com/indigo-web/october/http/proto"
	"github.com/stretchr/testify/require"
)

const testDate = "Thu Oct 15 12:00:00 2026"

// sinkholeWriter records every write separately
type sinkholeWriter struct {
	Writes [][]byte
	Err    error
}

func (s *sinkholeWriter) Write(b []byte) error {
	if s.Err != nil {
		return s.Err
	}

	s.Writes = append(s.Writes, append([]byte(nil), b...))
	return nil
}

func (s *sinkholeWriter) Data() string {
	return string(bytes.Join(s.Writes, nil))
}

func newSerializer(size int) *Serializer {
	s := NewSerializer(size)
	s.date = func() string {
		return testDate
	}

	return s
}

func TestNotFound(t *testing.T) {
	for _, protocol := range []proto.Proto{proto.HTTP10, proto.HTTP11} {
		s := newSerializer(1024)
		require.NoError(t, s.NotFound(protocol))
		w := new(sinkholeWriter)
		require.NoError(t, s.Flush(w))

		want := protocol.String() + " 404 Not Found\r\n" +
			"Content-Type: text/html; charset=utf-8\r\n" +
			"Date: " + testDate + "\r\n" +
			"\r\n" +
			NotFoundPage + "\r\n"
		require.Equal(t, want, w.Data())
		require.Len(t, w.Writes, 1)
	}
}

func TestOK(t *testing.T) {
	s := newSerializer(1024)
	require.NoError(t, s.OK(proto.HTTP11, mime.PNG))

	want := "HTTP/1.1 200 OK\r\n" +
		"Content-Type: image/png; charset=utf-8\r\n" +
		"Date: " + testDate + "\r\n" +
		"Expires: -1\r\n" +
		"Server: october\r\n" +
		"\r\n"
	require.Equal(t, want, string(s.Buffered()))
}

func TestResponseTooLarge(t *testing.T) {
	s := newSerializer(32)
	err := s.OK(proto.HTTP11, mime.HTML)
	require.True(t, errors.Is(err, errors.ErrResponseTooLarge))
	require.Empty(t, s.Buffered(), "nothing must be written partially")

	err = s.NotFound(proto.HTTP10)
	require.True(t, errors.Is(err, errors.ErrResponseTooLarge))
}

func TestStream(t *testing.T) {
	head := func(s *Serializer) string {
		require.NoError(t, s.OK(proto.HTTP10, mime.Plain))
		return string(s.Buffered())
	}

	t.Run("small file", func(t *testing.T) {
		s := newSerializer(1024)
		headers := head(s)
		w := new(sinkholeWriter)
		n, err := s.Stream(strings.NewReader("Hello, world!"), w)
		require.NoError(t, err)
		require.Equal(t, int64(13), n)
		require.NoError(t, s.Flush(w))
		require.Equal(t, headers+"Hello, world!\r\n", w.Data())
	})

	t.Run("empty file", func(t *testing.T) {
		s := newSerializer(1024)
		headers := head(s)
		w := new(sinkholeWriter)
		n, err := s.Stream(strings.NewReader(""), w)
		require.NoError(t, err)
		require.Zero(t, n)
		require.NoError(t, s.Flush(w))
		require.Equal(t, headers+"\r\n", w.Data())
	})

	t.Run("file larger than buffer", func(t *testing.T) {
		const size = 256
		s := newSerializer(size)
		headers := head(s)
		body := strings.Repeat("abcdefghij", 1000)
		w := new(sinkholeWriter)
		n, err := s.Stream(strings.NewReader(body), w)
		require.NoError(t, err)
		require.Equal(t, int64(len(body)), n)
		require.NoError(t, s.Flush(w))
		require.Equal(t, headers+body+"\r\n", w.Data())

		for _, write := range w.Writes {
			require.LessOrEqual(t, len(write), size)
		}
	})

	t.Run("headers fill the buffer", func(t *testing.T) {
		s := newSerializer(len(head(newSerializer(1024))))
		headers := head(s)
		w := new(sinkholeWriter)
		_, err := s.Stream(strings.NewReader("body"), w)
		require.NoError(t, err)
		require.NoError(t, s.Flush(w))
		require.Equal(t, headers+"body\r\n", w.Data())
	})

	t.Run("one byte reads", func(t *testing.T) {
		s := newSerializer(1024)
		headers := head(s)
		w := new(sinkholeWriter)
		_, err := s.Stream(iotest.OneByteReader(strings.NewReader("abc")), w)
		require.NoError(t, err)
		require.NoError(t, s.Flush(w))
		require.Equal(t, headers+"abc\r\n", w.Data())
	})

	t.Run("data with EOF", func(t *testing.T) {
		s := newSerializer(1024)
		headers := head(s)
		w := new(sinkholeWriter)
		_, err := s.Stream(iotest.DataErrReader(strings.NewReader("abc")), w)
		require.NoError(t, err)
		require.NoError(t, s.Flush(w))
		require.Equal(t, headers+"abc\r\n", w.Data())
	})

	t.Run("read error", func(t *testing.T) {
		s := newSerializer(1024)
		head(s)
		_, err := s.Stream(iotest.ErrReader(io.ErrUnexpectedEOF), new(sinkholeWriter))
		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
		require.Equal(t, errors.SystemError, errors.KindOf(err))
	})

	t.Run("write error", func(t *testing.T) {
		s := newSerializer(1024)
		head(s)
		_, err := s.Stream(strings.NewReader("abc"), &sinkholeWriter{Err: io.ErrClosedPipe})
		require.ErrorIs(t, err, io.ErrClosedPipe)
		require.Equal(t, errors.SystemError, errors.KindOf(err))
	})
}

func TestFlush(t *testing.T) {
	t.Run("no room for CRLF", func(t *testing.T) {
		s := newSerializer(4)
		require.NoError(t, s.append("abcd"))
		w := new(sinkholeWriter)
		require.NoError(t, s.Flush(w))
		require.Equal(t, "abcd\r\n", w.Data())
		require.Empty(t, s.Buffered())
	})

	t.Run("write error", func(t *testing.T) {
		s := newSerializer(16)
		err := s.Flush(&sinkholeWriter{Err: io.ErrClosedPipe})
		require.ErrorIs(t, err, io.ErrClosedPipe)
	})
}
