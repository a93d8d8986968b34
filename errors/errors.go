package errors

import (
	"errors"
)

var (
	ErrNoRequest        = errors.New("no request received")
	ErrMalformedMethod  = errors.New("malformed request method")
	ErrURITooLong       = errors.New("request URI too long")
	ErrResponseTooLarge = errors.New("response doesn't fit into the write buffer")

	ErrShutdown = errors.New("server is shut down")
)

// Kind tells whose fault an error is. It decides the log prefix and the exit
// status of the process, if the error turns out to be process-fatal.
type Kind uint8

const (
	// SystemError is caused by the environment: sockets, files, resources
	SystemError Kind = iota
	// ProgramError is caused by malformed input or misuse
	ProgramError
)

func (k Kind) String() string {
	if k == ProgramError {
		return "Program error"
	}

	return "System error"
}

type kindError struct {
	kind Kind
	err  error
}

func (k kindError) Error() string {
	return k.err.Error()
}

func (k kindError) Unwrap() error {
	return k.err
}

// Program marks the error as caused by malformed input. Nil stays nil
func Program(err error) error {
	return withKind(ProgramError, err)
}

// System marks the error as caused by the environment. Nil stays nil
func System(err error) error {
	return withKind(SystemError, err)
}

func withKind(kind Kind, err error) error {
	if err == nil {
		return nil
	}

	return kindError{kind: kind, err: err}
}

// KindOf returns the outermost kind attached to the error. Errors without any
// are considered SystemError ones.
func KindOf(err error) Kind {
	var k kindError
	if errors.As(err, &k) {
		return k.kind
	}

	return SystemError
}

// Is reports whether any error in err's chain matches target. It is here so the
// package can be used instead of the standard one without an import alias.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
