// source.go — static origin descriptors.
//
// A Source is the immutable, one-per-call-site record behind every error
// origin and every pushed context frame. Declare them once (typically as
// package-level vars) and reference them by address thereafter; the compact
// backend stores Source pointers verbatim and uses address identity as its
// cheap equality key.
package xgxerrcode

// Source is the static descriptor for an error origin or a context frame.
// All fields are optional; the zero value is a descriptor that says nothing.
// Treat a Source as immutable once it is referenced by an error.
type Source struct {
	// Code is the error code this site raises, if any.
	Code *CodeInfo

	// Message is the static display message for this site, if any.
	Message string

	// Incomplete marks a static message that requires runtime data the
	// stored representation could not retain (it renders with an
	// "<unformatted message:>" prefix).
	Incomplete bool

	// Loc is the declaration site of this descriptor, if recorded.
	Loc *Location
}

// NewSource builds a descriptor and records the declaration site, so a
// package-level
//
//	var srcDialFailed = xgxerrcode.NewSource(KindUnavailable, "dial failed")
//
// remembers the file and line of the var declaration. code may be nil.
func NewSource(code CodeValue, message string) *Source {
	loc := caller(0)
	return &Source{
		Code:    infoFor(code),
		Message: message,
		Loc:     &loc,
	}
}

// origin is the immutable root cause of an error: either a static descriptor
// or the name of a foreign type the error was converted from. A type origin
// may carry a code descriptor supplied explicitly at conversion time.
type origin struct {
	src      *Source // static origin; nil for a bare type conversion
	typeName string  // foreign type name; "" for a static origin
}

// staticOrigin wraps a descriptor as an origin.
func staticOrigin(src *Source) origin { return origin{src: src} }

// typeOrigin records a foreign conversion. If code is non-nil the origin
// behaves like a static origin built from the code's own descriptor, with
// the type name retained only where the backend can afford it.
func typeOrigin(name string, code *CodeInfo) origin {
	o := origin{typeName: name}
	if code != nil {
		o.src = code.source()
	}
	return o
}
