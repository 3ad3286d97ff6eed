package apperr

import (
	"errors"
	"fmt"
)

// Kind represents the category of a failure surfaced by the encoder
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidArgument
	KindUnsupportedEncodingPair
	KindConversion
	KindMalformedBase64
	KindFileAccess
)

// String returns the string representation of Kind
func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindUnsupportedEncodingPair:
		return "unsupported_encoding_pair"
	case KindConversion:
		return "conversion"
	case KindMalformedBase64:
		return "malformed_base64"
	case KindFileAccess:
		return "file_access"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is. They carry no message and match any *Error of the same kind.
var (
	ErrInvalidArgument         = &Error{Kind: KindInvalidArgument}
	ErrUnsupportedEncodingPair = &Error{Kind: KindUnsupportedEncodingPair}
	ErrConversion              = &Error{Kind: KindConversion}
	ErrMalformedBase64         = &Error{Kind: KindMalformedBase64}
	ErrFileAccess              = &Error{Kind: KindFileAccess}
)

// Error is a structured error carrying its kind, a message and optional context
type Error struct {
	Kind    Kind
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a kind sentinel matching e.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Message == "" && t.Cause == nil && t.Kind == e.Kind
}

// New creates a new error with the specified kind and message
func New(kind Kind, message string) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// Newf creates a new error with a formatted message
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return New(kind, fmt.Sprintf(format, args...))
}

// WithCause adds a cause error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithContext adds context information
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// KindOf returns the kind of the first *Error found in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func InvalidArgument(format string, args ...interface{}) *Error {
	return Newf(KindInvalidArgument, format, args...)
}

func UnsupportedEncodingPair(from, to string) *Error {
	return Newf(KindUnsupportedEncodingPair, "unsupported encoding pair %s -> %s", from, to).
		WithContext("from", from).
		WithContext("to", to)
}

func Conversion(encoding string, offset int) *Error {
	return Newf(KindConversion, "illegal %s sequence at offset %d", encoding, offset).
		WithContext("encoding", encoding).
		WithContext("offset", offset)
}

func MalformedBase64(cause error) *Error {
	return New(KindMalformedBase64, "malformed base64 input").WithCause(cause)
}

func FileAccess(op, path string, cause error) *Error {
	return Newf(KindFileAccess, "failed to %s %s", op, path).
		WithCause(cause).
		WithContext("path", path)
}
