// error.go — the user-visible error type.
//
// An Error owns exactly one backend instance. Its origin is fixed at
// construction; PushContext is the only mutation, and it requires exclusive
// access. Code, IsCode and Frames are read-only and may be called repeatedly;
// once construction and annotation are done, an Error is safe to share for
// reading.
//
// Unlike the fluent, copy-on-write surface of its sibling library, the
// methods here mutate in place: an error is annotated while it propagates up
// a single goroutine's call chain, and the bounded representation exists
// precisely to make those annotations free of allocation.
package xgxerrcode

import (
	"iter"
	"reflect"
	"strings"
)

// Error carries a chain of diagnostic context alongside a typed error code.
// Construct one with New, Newf, NewCode, From or FromCode; annotate it with
// PushContext as it propagates; inspect it with Code, IsCode, DecodeValue
// and Frames at the reporting boundary.
type Error struct {
	be backend
}

// Error implements the error interface: substantive frames, newest first,
// joined with ": " in the usual Go wrapping shape. Diagnostic markers are
// left to the verbose form (%+v).
func (e *Error) Error() string {
	var parts []string
	for f := range e.be.frames() {
		if f.Diagnostic() {
			continue
		}
		parts = append(parts, f.String())
	}
	if len(parts) == 0 {
		return "error"
	}
	var b strings.Builder
	for i := len(parts) - 1; i >= 0; i-- {
		if b.Len() > 0 {
			b.WriteString(": ")
		}
		b.WriteString(parts[i])
	}
	return b.String()
}

// Code returns the current error code: the code of the most recently pushed
// frame that carries one, falling back to the origin's code, or nil when
// neither exists.
func (e *Error) Code() *CodeInfo { return e.be.currentCode() }

// IsCode reports whether the current code is exactly the given value.
// Matching is by (enum type, numeric value); codes from unrelated enum types
// never match, even when their numeric values coincide.
func (e *Error) IsCode(c CodeValue) bool {
	cur := e.be.currentCode()
	return cur != nil && cur.equal(infoFor(c))
}

// Frames returns the decoded frame sequence, oldest first. The sequence is
// lazy and single-use; range over it once and call Frames again for a fresh
// walk. Decoding never modifies the error.
func (e *Error) Frames() iter.Seq[Frame] { return e.be.frames() }

// DecodeValue recovers the current code as its typed enum value. It yields
// nothing when the error has no code or the code belongs to a different enum
// type than T.
func DecodeValue[T Coded](e *Error) (T, bool) {
	var zero T
	if e == nil {
		return zero, false
	}
	cur := e.Code()
	if cur == nil || cur.tid != reflect.TypeFor[T]() {
		return zero, false
	}
	return T(cur.Value), true
}

var _ error = (*Error)(nil)
