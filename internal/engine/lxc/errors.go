package lxc

import (
	"errors"
	"fmt"
)

// Kind classifies a facade failure so callers never have to guess which
// field of a result describes what went wrong.
type Kind string

const (
	// KindValidation means an argument was rejected before any command ran.
	KindValidation Kind = "validation"
	// KindPrecondition means the container was not in the state the operation requires.
	KindPrecondition Kind = "precondition"
	// KindExternal means an lxc binary could not be run, exited non-zero, or did not confirm success.
	KindExternal Kind = "external"
	// KindParse means an lxc binary produced output that could not be parsed.
	KindParse Kind = "parse"
)

// Sentinel errors matched with errors.Is.
var (
	ErrBadCharacters      = errors.New("unacceptable characters")
	ErrTemplateNotAllowed = errors.New("template not allowed")
	ErrBadDiskSize        = errors.New("disk size has disallowed characters")
	ErrNameRequired       = errors.New("container name is required")

	ErrNotFound      = errors.New("no such container")
	ErrAlreadyExists = errors.New("container already exists")
	ErrNotStopped    = errors.New("container is not stopped")
	ErrNotRunning    = errors.New("container is not running")
	ErrMustStop      = errors.New("container must be stopped first")

	ErrCommandFailed   = errors.New("command failed")
	ErrNotCreated      = errors.New("container creation not confirmed")
	ErrMalformedOutput = errors.New("malformed command output")
)

// Error is the single failure type returned by Facade operations.
type Error struct {
	Kind      Kind
	Op        string // facade operation, e.g. "start"
	Container string
	Arg       string // offending argument, for validation failures
	Message   string
	Output    string // raw stdout/stderr of the failing command, if any
	Err       error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of the first *Error in err's chain, or "" if there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func validationError(op, arg string, cause error, format string, args ...any) *Error {
	return &Error{
		Kind:    KindValidation,
		Op:      op,
		Arg:     arg,
		Message: fmt.Sprintf(format, args...),
		Err:     cause,
	}
}

func preconditionError(op, container string, cause error, format string, args ...any) *Error {
	return &Error{
		Kind:      KindPrecondition,
		Op:        op,
		Container: container,
		Message:   fmt.Sprintf(format, args...),
		Err:       cause,
	}
}

func externalError(op, container, output string, cause error, format string, args ...any) *Error {
	return &Error{
		Kind:      KindExternal,
		Op:        op,
		Container: container,
		Message:   fmt.Sprintf(format, args...),
		Output:    output,
		Err:       cause,
	}
}

func parseError(op, container, output string, cause error) *Error {
	return &Error{
		Kind:      KindParse,
		Op:        op,
		Container: container,
		Message:   cause.Error(),
		Output:    output,
		Err:       cause,
	}
}
