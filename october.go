package october

import (
	"net"
	"sync"

	"github.com/indigo-web/october/config"
	"github.com/indigo-web/october/errors"
	"github.com/indigo-web/october/internal/docroot"
	"github.com/indigo-web/october/internal/server/http"
	"github.com/indigo-web/october/internal/server/tcp"
	"github.com/indigo-web/october/logging"
)

// App is the file server: a single listener, serving every accepted connection
// in its own goroutine.
type App struct {
	cfg     *config.Config
	log     *logging.Facility
	onStart func()

	mu      sync.Mutex
	server  *tcp.Server
	stopped bool
}

// New returns a new App instance. The config is expected to be validated already.
func New(cfg *config.Config, log *logging.Facility) *App {
	return &App{
		cfg: cfg,
		log: log,
	}
}

// NotifyOnStart calls the callback as soon as the listener is bound, right before
// the first connection is accepted
func (a *App) NotifyOnStart(cb func()) *App {
	a.onStart = cb
	return a
}

// Serve binds the listener and accepts connections until Stop is called. Failing
// to listen or to accept is fatal for the whole process: it is reported via
// the logging facility, which terminates it. When the app was stopped,
// errors.ErrShutdown is returned.
func (a *App) Serve() error {
	sock, err := net.Listen("tcp", a.cfg.Address())
	if err != nil {
		err = errors.System(err)
		a.log.Fatal(err)
		return err
	}

	root := docroot.New(docroot.OS{}, a.cfg.Root.Dir, a.cfg.Root.DefaultFile)
	server := tcp.NewServer(sock, http.NewServer(a.cfg, root, a.log).Serve)

	a.mu.Lock()
	if a.stopped {
		a.mu.Unlock()
		_ = sock.Close()
		return errors.ErrShutdown
	}

	a.server = server
	a.mu.Unlock()

	a.log.Infof("serving %s at %s", a.cfg.Root.Dir, sock.Addr())
	callIfNotNil(a.onStart)

	err = server.Start()
	if err == errors.ErrShutdown {
		a.log.Infof("server is stopped")
		return err
	}

	a.log.Fatal(err)
	return err
}

// Addr returns the address the app is listening at, or nil if it isn't yet
func (a *App) Addr() net.Addr {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.server == nil {
		return nil
	}

	return a.server.Addr()
}

// Stop closes the listener, so Serve returns. Connections which are already being
// served are not interrupted.
func (a *App) Stop() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopped {
		return nil
	}

	a.stopped = true
	if a.server == nil {
		return nil
	}

	return a.server.Stop()
}

func callIfNotNil(f func()) {
	if f != nil {
		f()
	}
}
