package logger

import (
	"errors"
	"fmt"
)

// ErrorKind classifies logging failures.
type ErrorKind string

const (
	// KindFormat marks a template whose verbs do not match its arguments.
	KindFormat ErrorKind = "FORMAT"
	// KindIO marks a sink open, write, flush or close failure.
	KindIO ErrorKind = "IO"
)

// Error describes a failed log call. Log calls never return it; it is only
// handed to Config.OnError.
type Error struct {
	Kind ErrorKind
	// Op is the failed operation: "format", "open", "write", "flush" or "close".
	Op string
	// Path is the file target, empty for stderr and format errors.
	Path string
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Kind, e.Op)
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a logging *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var le *Error
	if errors.As(err, &le) {
		return le.Kind == kind
	}
	return false
}

var (
	errMissingArgs = errors.New("missing arguments")
	errExtraArgs   = errors.New("extra arguments")
	errBadIndex    = errors.New("bad argument index")
	errNoVerb      = errors.New("verb missing at end of template")
)
