// Package perr provides a structured error type with codes, wrapping and a
// wire form. Import it as perr.
package perr

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// Code is a stable machine-facing error code.
type Code string

const (
	CodeUnknown         Code = "unknown"
	CodeEmptySequence   Code = "empty_sequence"
	CodeInvalidArgument Code = "invalid_argument"
	CodeValidation      Code = "validation"
	CodeJSON            Code = "json"
	CodeNotFound        Code = "not_found"
	CodeMethod          Code = "method_not_allowed"
	CodeTooLarge        Code = "too_large"
	CodeUnavailable     Code = "unavailable"
	CodeIO              Code = "io"
	CodeStore           Code = "store"
)

// HTTPStatusCode maps a Code onto an HTTP status.
func HTTPStatusCode(c Code) int {
	switch c {
	case CodeEmptySequence, CodeInvalidArgument:
		return http.StatusUnprocessableEntity
	case CodeValidation, CodeJSON:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeMethod:
		return http.StatusMethodNotAllowed
	case CodeTooLarge:
		return http.StatusRequestEntityTooLarge
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// ErrEmptySequence is returned when no valid symbols survive normalization.
var ErrEmptySequence = New(CodeEmptySequence, "sequence is empty after cleaning")

// ErrNotFound is the generic missing-resource error.
var ErrNotFound = New(CodeNotFound, "not found")

// Error carries a message, a code, an optional offending field and an
// optional wrapped cause.
type Error struct {
	orig  error
	msg   string
	code  Code
	field string
}

// Wire is the JSON form returned by the HTTP API.
type Wire struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// New creates an *Error.
func New(code Code, msg string) *Error { return &Error{code: code, msg: msg} }

// Newf creates an *Error with a formatted message.
func Newf(code Code, format string, a ...any) *Error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrap attaches code and msg to cause. A nil cause yields nil.
func Wrap(cause error, code Code, msg string) error {
	if cause == nil {
		return nil
	}
	return &Error{orig: cause, code: code, msg: msg}
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}
	return e.msg
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error { return e.orig }

// Is matches another *Error by code and message, so sentinel comparisons
// survive copy-on-write mutators.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.code == t.code && e.msg == t.msg
}

// Code returns the error code.
func (e *Error) Code() Code { return e.code }

// Field returns the offending field, if any.
func (e *Error) Field() string { return e.field }

// ToWire converts to the wire payload.
func (e *Error) ToWire() Wire { return Wire{Code: e.code, Message: e.msg, Field: e.field} }

// WithField returns a copy of err carrying field; non-*Error values pass through.
func WithField(err error, field string) error {
	if e, ok := As(err); ok {
		c := *e
		c.field = field
		return &c
	}
	return err
}

// As unwraps err to an *Error.
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// CodeOf extracts the Code of err, CodeUnknown for foreign errors.
func CodeOf(err error) Code {
	if e, ok := As(err); ok {
		return e.code
	}
	return CodeUnknown
}

// HTTPStatus maps any error to an HTTP status.
func HTTPStatus(err error) int { return HTTPStatusCode(CodeOf(err)) }

// WireFrom converts any error to a wire payload.
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	if e, ok := As(err); ok {
		return e.ToWire()
	}
	return Wire{Code: CodeUnknown, Message: err.Error()}
}
