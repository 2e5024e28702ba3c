// location.go — call-site capture for xgx-errcode.
//
// Design goals:
//   - Use runtime.Caller for accurate single-frame resolution; the package
//     never needs a full stack, only the one site that constructed or
//     annotated an error.
//   - Skip accounting is kept inside this file; callers pass the number of
//     wrapper frames between themselves and the user-visible call site.
//
// The Go runtime reports file and line only; Column stays zero and is
// excluded from same-site comparison.
package xgxerrcode

import (
	"runtime"
	"strconv"
)

// Location identifies a single call site.
type Location struct {
	File   string // file path as provided by runtime
	Line   int
	Column int // zero when captured by the runtime
}

// String renders "file:line" (plus ":column" when one is known).
func (l Location) String() string {
	s := l.File + ":" + strconv.Itoa(l.Line)
	if l.Column > 0 {
		s += ":" + strconv.Itoa(l.Column)
	}
	return s
}

// sameSite reports whether two locations refer to the same (file, line) pair.
// Column is ignored: the runtime does not capture it, and a declaration and
// its use on the same line are the same site for diagnostic purposes.
func (l Location) sameSite(o Location) bool {
	return l.File == o.File && l.Line == o.Line
}

// isZero reports whether no location was captured.
func (l Location) isZero() bool {
	return l.File == "" && l.Line == 0
}

// caller captures the call site 'skip' frames above the caller of this
// function (0 = the caller's own caller). Returns a zero Location if the
// runtime cannot resolve the frame.
func caller(skip int) Location {
	// +2 skips this helper and the exported wrapper that invoked it.
	_, file, line, ok := runtime.Caller(skip + 2)
	if !ok {
		return Location{}
	}
	return Location{File: file, Line: line}
}
