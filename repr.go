// repr.go — the bounded origin summary behind the compact backend.
//
// The summary collapses an arbitrarily long push history into fixed storage:
// the origin, the first context anchor, the most recent code-preferring
// anchor, and a single omitted bit. It is a value type; pushing context
// rewrites fields in place and never allocates.
//
// The original word-packed encoding stole the low two bits of an aligned
// descriptor pointer for the state tag. Go's garbage collector does not
// permit smuggling references through integers, so the tag is an explicit
// field here; the summary stays fixed-size and allocation-free, but is wider
// than one machine word. The length bound on converted type names is kept
// from the word encoding, where the name length had to fit beside the tag.
package xgxerrcode

import "math/bits"

// packedState discriminates the three shapes of a summary.
type packedState uint8

const (
	// stateOriginal: the origin is a static descriptor, held in first.
	stateOriginal packedState = iota

	// stateTypeOnly: the origin is a bare foreign-type conversion with no
	// context pushed yet; name holds the type name, the anchors are unused.
	stateTypeOnly

	// stateContextOnly: a former type-only origin whose first pushed frame
	// replaced the (now lost) type identity; first holds that frame.
	stateContextOnly
)

// maxTypeNameLen mirrors the word encoding, where the name length shared a
// machine word with the two tag bits. Unreachable with real type names, but
// exceeding it must abort rather than corrupt decoding.
const maxTypeNameLen = 1<<(bits.UintSize-2) - 1

// packedOrigin is the fixed-size origin summary.
//
// Invariants:
//   - first is non-nil iff state is stateOriginal or stateContextOnly.
//   - last is nil until a second anchor exists; it then always holds the most
//     recently pushed code-bearing frame if any push carried a code, else the
//     most recently pushed frame.
//   - omitted is set iff a pushed frame was superseded.
//   - name is non-empty iff state is stateTypeOnly.
type packedOrigin struct {
	state   packedState
	omitted bool
	first   *Source
	last    *Source
	name    string
}

// packOrigin builds the initial summary for an origin.
func packOrigin(o origin) packedOrigin {
	if o.src != nil {
		return packedOrigin{state: stateOriginal, first: o.src}
	}
	if len(o.typeName) > maxTypeNameLen {
		panic("xgxerrcode: converted type name too long to encode")
	}
	return packedOrigin{state: stateTypeOnly, name: o.typeName}
}

// pushContext merges one more context frame into the summary.
//
// A type-only origin gives up its type name to the first frame. After that,
// the first anchor is frozen and later frames compete for the last anchor:
// a code-bearing frame always wins it, a codeless frame wins it only from
// another codeless frame. Whichever way the competition goes, losing a frame
// sets the omitted bit. The net effect is that the summary never trades a
// code away for a codeless frame, so the current code survives any suffix of
// codeless pushes.
func (p *packedOrigin) pushContext(src *Source) {
	switch p.state {
	case stateTypeOnly:
		*p = packedOrigin{state: stateContextOnly, first: src}
	case stateOriginal, stateContextOnly:
		if p.last == nil {
			p.last = src
			return
		}
		if p.last.Code == nil || src.Code != nil {
			p.last = src
		}
		p.omitted = true
	default:
		panic("xgxerrcode: corrupted origin summary state")
	}
}

// code resolves the current error code: the last anchor's code when present,
// else the first anchor's. A type-only origin has none.
func (p *packedOrigin) code() *CodeInfo {
	if p.state == stateTypeOnly {
		return nil
	}
	if p.last != nil && p.last.Code != nil {
		return p.last.Code
	}
	return p.first.Code
}

// typeName returns the converted type name; valid only for stateTypeOnly.
func (p *packedOrigin) typeName() string {
	if p.state != stateTypeOnly {
		panic("xgxerrcode: type name requested from a non-type origin")
	}
	return p.name
}
