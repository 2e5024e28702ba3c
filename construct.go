// construct.go — constructors and context annotation.
//
// Scope:
//   - Construct from a static descriptor (New/Newf), from a bare code value
//     (NewCode), or from a foreign error value (From/FromCode).
//   - Annotate in place as the error propagates (PushContext/PushContextf).
//   - Wrap glues the two together for call sites handed an arbitrary error.
//
// Every constructor and every push records the call site that performed it.
// Runtime-rendered messages are formatted only when the configured
// representation can retain them; the compact representations fall back to
// the descriptor's static message at decode time.
package xgxerrcode

import (
	"fmt"
	"reflect"
)

// New constructs an error originating at the given static descriptor.
func New(src *Source) *Error {
	return &Error{be: newBackend(staticOrigin(src), "", caller(0))}
}

// Newf is New with a message rendered from runtime data. The rendered
// message replaces the descriptor's static one where the representation
// keeps messages; elsewhere the formatting work is skipped entirely.
func Newf(src *Source, format string, args ...any) *Error {
	var rendered string
	if repr.retainsMessages() {
		rendered = fmt.Sprintf(format, args...)
	}
	return &Error{be: newBackend(staticOrigin(src), rendered, caller(0))}
}

// NewCode constructs an error from a bare code value, using the code's own
// descriptor as the origin.
func NewCode(c CodeValue) *Error {
	return &Error{be: newBackend(staticOrigin(infoFor(c).source()), "", caller(0))}
}

// From converts an arbitrary foreign error value, capturing its dynamic type
// name as the origin. No code is attached; use FromCode to supply one.
// A nil err yields a nil *Error.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{be: newBackend(typeOrigin(typeNameOf(err), nil), "", caller(0))}
}

// FromCode converts a foreign error value and attaches an explicit code.
// The compact representations keep the code and give up the type name
// immediately; the full representation keeps both. A nil err yields nil.
func FromCode(err error, c CodeValue) *Error {
	if err == nil {
		return nil
	}
	return &Error{be: newBackend(typeOrigin(typeNameOf(err), infoFor(c)), "", caller(0))}
}

// Wrap annotates any error with a context frame. A native *Error is pushed
// onto directly; anything else is converted first. A nil err yields nil.
func Wrap(err error, src *Source) *Error {
	if err == nil {
		return nil
	}
	e, ok := err.(*Error)
	if !ok {
		e = &Error{be: newBackend(typeOrigin(typeNameOf(err), nil), "", caller(0))}
	}
	e.be.pushContext(src, "", caller(0))
	return e
}

// PushContext records one more context frame. It mutates the error in place,
// never fails, and requires exclusive access to e.
func (e *Error) PushContext(src *Source) {
	e.be.pushContext(src, "", caller(0))
}

// PushContextf is PushContext with a message rendered from runtime data,
// subject to the same retention rule as Newf.
func (e *Error) PushContextf(src *Source, format string, args ...any) {
	var rendered string
	if repr.retainsMessages() {
		rendered = fmt.Sprintf(format, args...)
	}
	e.be.pushContext(src, rendered, caller(0))
}

// typeNameOf reports the dynamic type name of a foreign error value,
// e.g. "*fs.PathError".
func typeNameOf(err error) string {
	return reflect.TypeOf(err).String()
}
