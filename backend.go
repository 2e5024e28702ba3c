// backend.go — the shared storage contract and representation selection.
//
// Two interchangeable storage strategies implement one contract: construct
// from an origin, push context, report the current code, decode frames. The
// full backend keeps exact history at unbounded cost; the compact backend
// keeps a bounded summary and never grows. Which one a new error gets is a
// process-wide choice made once at startup, the Go rendition of the
// original's mutually exclusive build features.
package xgxerrcode

import "iter"

// Representation selects the storage strategy for newly constructed errors.
type Representation uint8

const (
	// ReprCompact stores the bounded origin summary with no call-site
	// retention. This is the default.
	ReprCompact Representation = iota

	// ReprCompactLocation additionally retains the construction call site,
	// enabling the constructed-elsewhere diagnostic frame.
	ReprCompactLocation

	// ReprFull keeps the complete, ordered step history, including rendered
	// messages and per-step call sites.
	ReprFull
)

// String returns the representation name.
func (r Representation) String() string {
	switch r {
	case ReprCompact:
		return "compact"
	case ReprCompactLocation:
		return "compact-with-location"
	case ReprFull:
		return "full"
	}
	return "unknown"
}

// retainsMessages reports whether this representation can keep a message
// rendered at runtime. Callers use it to skip formatting work the backend
// would discard anyway.
func (r Representation) retainsMessages() bool { return r == ReprFull }

// repr is the process-wide representation choice.
var repr = ReprCompact

// SetRepresentation selects the storage strategy for errors constructed from
// now on. Call it once during program initialization, before any error is
// constructed; it is not synchronized against concurrent construction.
func SetRepresentation(r Representation) { repr = r }

// CurrentRepresentation returns the configured storage strategy.
func CurrentRepresentation() Representation { return repr }

// backend is the contract shared by the storage strategies.
//
// pushContext mutates in place and never fails. currentCode and frames are
// read-only; frames returns a lazy one-shot sequence — obtain a fresh one for
// each walk.
type backend interface {
	pushContext(src *Source, rendered string, loc Location)
	currentCode() *CodeInfo
	frames() iter.Seq[Frame]
}

// newBackend builds the backend instance for the configured representation.
// rendered is the construction-time formatted message ("" for none); loc is
// the construction call site.
func newBackend(o origin, rendered string, loc Location) backend {
	switch repr {
	case ReprFull:
		return newFullBackend(o, rendered, loc)
	case ReprCompactLocation:
		return &compactBackend{packed: packOrigin(o), loc: loc, hasLoc: true}
	default:
		return &compactBackend{packed: packOrigin(o)}
	}
}
