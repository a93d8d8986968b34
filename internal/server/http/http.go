package http

import (
	"fmt"
	"net"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/october/config"
	"github.com/indigo-web/october/errors"
	"github.com/indigo-web/october/http"
	"github.com/indigo-web/october/http/method"
	"github.com/indigo-web/october/http/mime"
	"github.com/indigo-web/october/internal/docroot"
	"github.com/indigo-web/october/internal/server/tcp"
	"github.com/indigo-web/october/internal/transport/http1"
	"github.com/indigo-web/october/internal/uridecode"
	"github.com/indigo-web/october/logging"
	"github.com/indigo-web/utils/uf"
)

const connIDLength = 8

// Server serves exactly one request per connection and closes it afterwards.
type Server struct {
	root      *docroot.Root
	log       *logging.Facility
	readSize  int
	writeSize int
}

func NewServer(cfg *config.Config, root *docroot.Root, log *logging.Facility) *Server {
	return &Server{
		root:      root,
		log:       log,
		readSize:  cfg.NET.ReadBufferSize,
		writeSize: cfg.NET.WriteBufferSize,
	}
}

// Serve runs a single request-response cycle. Whatever goes wrong is reported
// and ends the connection only; the connection is closed on every path out.
func (s *Server) Serve(conn net.Conn) {
	log := s.log.Scoped(uniuri.NewLen(connIDLength))
	client := tcp.NewClient(conn, s.readSize)
	log.Debugf("accepted connection from %s", client.Remote())

	defer func() {
		if r := recover(); r != nil {
			log.Abort(errors.Program(fmt.Errorf("panic while handling the request: %v", r)))
		}

		if err := client.Close(); err != nil {
			log.Errorf("closing connection socket: %s", err)
		}

		log.Infof("connection socket closed")
	}()

	if err := s.handle(client, log); err != nil {
		log.Abort(err)
	}
}

func (s *Server) handle(client *tcp.Client, log *logging.Facility) error {
	data, err := client.Read()
	if err != nil {
		return err
	}

	log.Debugf("read %d bytes", len(data))

	request := http.NewRequest(s.readSize)
	if err = http1.Parse(data, request); err != nil {
		return err
	}

	if request.Has(http.NoTarget) {
		log.Debugf("no filename received, assuming /")
	}

	log.Debugf("%s %s %s, flags %03b", request.Method, request.Path, request.Proto, request.Flags)

	switch request.Method {
	case method.GET:
		return s.get(client, request, log)
	default:
		log.Debugf("%s %s: method is not served, dropping", request.Method, request.Path)
		return nil
	}
}

func (s *Server) get(client *tcp.Client, request *http.Request, log *logging.Facility) error {
	path, err := uridecode.Decode(request.Path, request.Scratch)
	if err != nil {
		return err
	}

	request.Path = path
	serializer := http1.NewSerializer(s.writeSize)

	name, ok := s.root.Resolve(uf.B2S(path))
	if !ok || !s.root.Exists(name) {
		log.Infof("GET %s: not found", path)

		if err = serializer.NotFound(request.Proto); err != nil {
			return err
		}

		return serializer.Flush(client)
	}

	file, err := s.root.Open(name)
	if err != nil {
		return errors.System(err)
	}

	defer func() {
		_ = file.Close()
	}()

	request.MIME = mime.Resolve(name)
	if err = serializer.OK(request.Proto, request.MIME); err != nil {
		return err
	}

	n, err := serializer.Stream(file, client)
	if err != nil {
		return err
	}

	log.Infof("GET %s: %d bytes of %s", path, n, request.MIME)

	return serializer.Flush(client)
}
