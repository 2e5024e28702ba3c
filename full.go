// full.go — the exact-history backend.
//
// One step per event: the origin at construction, then one appended step per
// pushed frame. Nothing is ever discarded, so decoding is a plain
// chronological walk with no diagnostic markers. The current code is tracked
// incrementally: a step that carries a code takes over, a codeless step
// leaves the previous code standing, and the origin's code is the floor.
package xgxerrcode

import "iter"

// step is one recorded event of an error's history.
type step struct {
	src      *Source // descriptor; nil for a bare type-conversion origin
	typeName string  // foreign type name; origin step only
	rendered string  // runtime-rendered message, "" for none
	loc      Location
}

// frame decodes the step into a display-ready frame.
func (s step) frame() Frame {
	var loc *Location
	if !s.loc.isZero() {
		l := s.loc
		loc = &l
	}
	if s.typeName != "" {
		f := Frame{Kind: FrameType, TypeName: s.typeName, Loc: loc}
		if s.src != nil {
			f.Code = s.src.Code
		}
		return f
	}
	return contextFrame(s.src, s.rendered, loc)
}

// fullBackend keeps the complete ordered history.
type fullBackend struct {
	origin step
	steps  []step
	cur    *CodeInfo
}

func newFullBackend(o origin, rendered string, loc Location) *fullBackend {
	b := &fullBackend{
		origin: step{
			src:      o.src,
			typeName: o.typeName,
			rendered: rendered,
			loc:      loc,
		},
	}
	if o.src != nil {
		b.cur = o.src.Code
	}
	return b
}

func (b *fullBackend) pushContext(src *Source, rendered string, loc Location) {
	b.steps = append(b.steps, step{src: src, rendered: rendered, loc: loc})
	if src.Code != nil {
		b.cur = src.Code
	}
}

func (b *fullBackend) currentCode() *CodeInfo { return b.cur }

// frames yields the origin step and every pushed step in order.
func (b *fullBackend) frames() iter.Seq[Frame] {
	return func(yield func(Frame) bool) {
		if !yield(b.origin.frame()) {
			return
		}
		for _, s := range b.steps {
			if !yield(s.frame()) {
				return
			}
		}
	}
}
