package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/indigo-web/october/errors"
	"github.com/rs/zerolog"
)

type Level uint8

const (
	None Level = iota
	Panic
	Error
	Info
	Debug
)

func (l Level) String() string {
	switch l {
	case None:
		return "none"
	case Panic:
		return "panic"
	case Error:
		return "error"
	case Info:
		return "info"
	case Debug:
		return "debug"
	default:
		return fmt.Sprintf("level(%d)", uint8(l))
	}
}

// ParseLevel is case-insensitive
func ParseLevel(str string) (Level, error) {
	switch strings.ToLower(str) {
	case "none":
		return None, nil
	case "panic":
		return Panic, nil
	case "error":
		return Error, nil
	case "info":
		return Info, nil
	case "debug":
		return Debug, nil
	}

	return None, fmt.Errorf("unknown log level: %q", str)
}

func (l Level) zerolog() zerolog.Level {
	switch l {
	case Panic:
		return zerolog.PanicLevel
	case Error:
		return zerolog.ErrorLevel
	case Info:
		return zerolog.InfoLevel
	case Debug:
		return zerolog.DebugLevel
	default:
		return zerolog.Disabled
	}
}

// Exit statuses of a process-fatal report
const (
	ExitSystemError  = 1
	ExitProgramError = 2
)

type Option func(*Facility)

// WithExit replaces os.Exit, called after a process-fatal report
func WithExit(exit func(code int)) Option {
	return func(f *Facility) {
		f.exit = exit
	}
}

// WithLogger replaces the default JSON zerolog logger. The writer passed to New
// is ignored in this case
func WithLogger(logger zerolog.Logger) Option {
	return func(f *Facility) {
		f.out = logger
	}
}

// Facility is the single diagnostic sink of the process. It is created once at
// startup and handed to every component. All the emissions, including those made
// by scoped facilities, are serialized by one mutex.
type Facility struct {
	mu        *sync.Mutex
	out       zerolog.Logger
	threshold Level
	exit      func(int)
}

func New(w io.Writer, threshold Level, opts ...Option) *Facility {
	f := &Facility{
		mu:        new(sync.Mutex),
		out:       zerolog.New(w).With().Timestamp().Logger(),
		threshold: threshold,
		exit:      os.Exit,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Console returns a human-readable zerolog logger, suitable for WithLogger
func Console(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).With().Timestamp().Logger()
}

// Scoped returns a facility, sharing the lock, threshold and exit function, which
// tags every message with the passed connection id
func (f *Facility) Scoped(id string) *Facility {
	return &Facility{
		mu:        f.mu,
		out:       f.out.With().Str("conn", id).Logger(),
		threshold: f.threshold,
		exit:      f.exit,
	}
}

// Threshold returns the minimal severity which is still emitted
func (f *Facility) Threshold() Level {
	return f.threshold
}

// Enabled reports whether a message of the level would be emitted
func (f *Facility) Enabled(level Level) bool {
	return level != None && level <= f.threshold
}

func (f *Facility) Debugf(format string, args ...any) {
	f.emit(Debug, "", format, args)
}

func (f *Facility) Infof(format string, args ...any) {
	f.emit(Info, "", format, args)
}

func (f *Facility) Errorf(format string, args ...any) {
	f.emit(Error, "", format, args)
}

// Abort reports a connection-fatal error. It doesn't stop anything by itself:
// the caller is expected to return, so the deferred connection cleanup runs.
func (f *Facility) Abort(err error) {
	f.emit(Error, prefix(err), "%s", []any{err})
}

// Fatal reports a process-fatal error and terminates the process. The exit status
// tells a program error from a system one.
func (f *Facility) Fatal(err error) {
	f.emit(Panic, prefix(err), "%s", []any{err})

	if errors.KindOf(err) == errors.ProgramError {
		f.exit(ExitProgramError)
	} else {
		f.exit(ExitSystemError)
	}
}

func (f *Facility) emit(level Level, prefix, format string, args []any) {
	if !f.Enabled(level) {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.out.WithLevel(level.zerolog()).Msg(prefix + fmt.Sprintf(format, args...))
}

func prefix(err error) string {
	return errors.KindOf(err).String() + ": "
}
