package sdp

import (
	"errors"
	"fmt"
)

var (
	// ErrLine classifies outcomes that break a hard protocol rule. They always
	// reject the document.
	ErrLine = errors.New("sdp line error")
	// ErrUnsupported classifies well-formed lines naming vocabulary the parser
	// does not model. They reject the document only when warnings are fatal.
	ErrUnsupported = errors.New("sdp unsupported value")
	// ErrEmptyDocument is returned for a document without any content.
	ErrEmptyDocument = errors.New("sdp document is empty")
)

type ErrorKind int

const (
	KindLineError ErrorKind = iota + 1
	KindUnsupported
)

func (k ErrorKind) String() string {
	switch k {
	case KindLineError:
		return "line error"
	case KindUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// ParseError is the outcome of a line that failed to parse. Line always holds
// the complete source line, never the failing token alone.
type ParseError struct {
	Kind    ErrorKind
	Message string
	Line    string
	// Number is the 1-based position of Line in its document, or 0 when the
	// line was parsed on its own.
	Number int
}

func (e *ParseError) Error() string {
	if e.Number > 0 {
		return fmt.Sprintf("line %d: %s: %q", e.Number, e.Message, e.Line)
	}
	return fmt.Sprintf("%s: %q", e.Message, e.Line)
}

func (e *ParseError) Unwrap() error {
	switch e.Kind {
	case KindUnsupported:
		return ErrUnsupported
	default:
		return ErrLine
	}
}

func lineError(value string, format string, args ...interface{}) *ParseError {
	return &ParseError{Kind: KindLineError, Message: fmt.Sprintf(format, args...), Line: value}
}

func unsupported(value string, format string, args ...interface{}) *ParseError {
	return &ParseError{Kind: KindUnsupported, Message: fmt.Sprintf(format, args...), Line: value}
}
