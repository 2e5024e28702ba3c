// compact.go — the bounded-summary backend and its phase decoder.
//
// Storage is the packedOrigin value from repr.go plus, when the
// representation retains it, the construction call site. Rendered messages
// are accepted and dropped: the fixed storage has no slot for them, and the
// anchors' static messages stand in at decode time.
//
// Decoding walks five ordered phases, each contributing at most one frame:
// type frame, lost-type marker, constructed-elsewhere marker, first anchor,
// last anchor, omitted marker. The sequence is lazy and one-shot; a fresh
// call to frames starts over from the intact summary.
package xgxerrcode

import "iter"

type compactBackend struct {
	packed packedOrigin
	loc    Location // construction call site
	hasLoc bool
}

func (b *compactBackend) pushContext(src *Source, _ string, _ Location) {
	b.packed.pushContext(src)
}

func (b *compactBackend) currentCode() *CodeInfo { return b.packed.code() }

// constructionLoc returns the retained construction site, or nil.
func (b *compactBackend) constructionLoc() *Location {
	if !b.hasLoc {
		return nil
	}
	l := b.loc
	return &l
}

func (b *compactBackend) frames() iter.Seq[Frame] {
	return func(yield func(Frame) bool) {
		p := b.packed
		ctor := b.constructionLoc()

		// Phase 1: a bare type origin is a single type frame; nothing else
		// can follow it. A former type origin reports the lost identity and
		// falls through to its anchors.
		switch p.state {
		case stateTypeOnly:
			yield(Frame{Kind: FrameType, TypeName: p.typeName(), Loc: ctor})
			return
		case stateContextOnly:
			if !yield(Frame{Kind: FrameTypeLost, Loc: ctor}) {
				return
			}
		}

		// Phase 2: flag a static origin constructed away from the site its
		// descriptor was declared at (call-site capture forwarded through a
		// wrapper, usually).
		if p.state == stateOriginal {
			if declared := p.first.Loc; declared != nil && ctor != nil && !declared.sameSite(*ctor) {
				if !yield(Frame{Kind: FrameConstructedAt, Loc: declared}) {
					return
				}
			}
		}

		// Phase 3: the first anchor. A static origin is located at the
		// construction site; a first pushed frame at its own declaration.
		loc := ctor
		if p.state == stateContextOnly {
			loc = p.first.Loc
		}
		if !yield(contextFrame(p.first, "", loc)) {
			return
		}

		// Phase 4: the last anchor, when a distinct one was recorded.
		if p.last != nil {
			if !yield(contextFrame(p.last, "", p.last.Loc)) {
				return
			}
		}

		// Phase 5: the omission marker.
		if p.omitted {
			yield(Frame{Kind: FrameOmitted})
		}
	}
}
