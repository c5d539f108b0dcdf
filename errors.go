package luna

import (
	"fmt"

	"github.com/juju/errors"
)

// ParseError reports a lexical failure tied to a specific position, trimmed
// to what a lexer — rather than a full template engine — actually knows
// about: no Sender/Filename/Token fields, since those belong to a
// downstream parser.
type ParseError struct {
	Path   string
	Offset int
	Msg    string
	cause  error
}

func (e *ParseError) Error() string {
	s := "lex error"
	if e.Path != "" {
		s += " in " + e.Path
	}
	if e.Offset > 0 {
		s += fmt.Sprintf(" at byte %d", e.Offset)
	}
	s += ": " + e.Msg
	if e.cause != nil {
		s += ": " + e.cause.Error()
	}
	return s
}

func (e *ParseError) Unwrap() error { return e.cause }

// newParseError builds a *ParseError at the given byte offset, wrapping cause
// (if any) with errors.Trace so juju/errors.Cause still unwraps to the
// original I/O/decode failure.
func newParseError(path string, offset int, msg string, cause error) *ParseError {
	return &ParseError{Path: path, Offset: offset, Msg: msg, cause: errors.Trace(cause)}
}

// errAnnotatef wraps err with a juju/errors-formatted message, preserving the
// original error for errors.Is/As-style inspection (juju/errors.Cause). Used
// by LoadConfig for the dialect-override file I/O/decode path; the
// TokenizeFile try_* path instead builds a *ParseError (newParseError) so
// callers get Path/Offset alongside the message.
func errAnnotatef(err error, format string, args ...interface{}) error {
	return errors.Annotatef(err, format, args...)
}
