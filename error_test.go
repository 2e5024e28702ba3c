// error_test.go — facade behavior: construction, matching, decoding, interop.
//
// The representation is a process-wide choice, so tests in this file run
// serially and restore the default before returning.
package xgxerrcode

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
)

func withRepr(t *testing.T, r Representation) {
	t.Helper()
	prev := CurrentRepresentation()
	SetRepresentation(r)
	t.Cleanup(func() { SetRepresentation(prev) })
}

func TestNew_DefaultRepresentationIsCompact(t *testing.T) {
	if got := CurrentRepresentation(); got != ReprCompact {
		t.Fatalf("default representation: want=%s got=%s", ReprCompact, got)
	}
	e := New(&Source{Code: infoNotFound, Message: "lookup failed"})
	if _, ok := e.be.(*compactBackend); !ok {
		t.Fatalf("want compact backend, got %T", e.be)
	}
}

func TestIsCode_Matching(t *testing.T) {
	e := New(&Source{Code: infoNotFound, Message: "lookup failed"})

	t.Run("matches_own_code", func(t *testing.T) {
		if !e.IsCode(tKindNotFound) {
			t.Fatalf("want IsCode(Kind.NotFound)=true")
		}
	})
	t.Run("rejects_sibling_variant", func(t *testing.T) {
		if e.IsCode(tKindTimeout) {
			t.Fatalf("want IsCode(Kind.Timeout)=false")
		}
	})
	t.Run("rejects_cross_type_same_value", func(t *testing.T) {
		if e.IsCode(tOtherNotFound) {
			t.Fatalf("Other.NotFound shares the numeric value but must not match")
		}
	})
	t.Run("codeless_error_matches_nothing", func(t *testing.T) {
		bare := New(&Source{Message: "no code here"})
		if bare.IsCode(tKindNotFound) {
			t.Fatalf("codeless error must not match any code")
		}
		if bare.Code() != nil {
			t.Fatalf("codeless error must report nil code")
		}
	})
}

func TestDecodeValue(t *testing.T) {
	e := New(&Source{Code: infoTimeout})

	if v, ok := DecodeValue[tKind](e); !ok || v != tKindTimeout {
		t.Fatalf("DecodeValue[tKind]: want (Timeout,true) got (%v,%v)", v, ok)
	}
	if _, ok := DecodeValue[tOther](e); ok {
		t.Fatalf("DecodeValue[tOther] must reject a Kind code")
	}
	if _, ok := DecodeValue[tKind](nil); ok {
		t.Fatalf("DecodeValue on nil error must yield nothing")
	}
	if _, ok := DecodeValue[tKind](From(io.EOF)); ok {
		t.Fatalf("DecodeValue on a codeless conversion must yield nothing")
	}
}

func TestFrom_ForeignConversion(t *testing.T) {
	e := From(io.EOF)

	var frames []Frame
	for f := range e.Frames() {
		frames = append(frames, f)
	}
	if len(frames) != 1 || frames[0].Kind != FrameType {
		t.Fatalf("want exactly one type frame, got %+v", frames)
	}
	if frames[0].TypeName != "*errors.errorString" {
		t.Fatalf("type name: got %q", frames[0].TypeName)
	}
	if e.Code() != nil {
		t.Fatalf("conversion must not attach a code")
	}
	if From(nil) != nil {
		t.Fatalf("From(nil) must be nil")
	}
}

func TestFromCode_AttachesExplicitCode(t *testing.T) {
	e := FromCode(io.EOF, tKindTimeout)
	if !e.IsCode(tKindTimeout) {
		t.Fatalf("explicitly attached code must match")
	}
}

func TestNewCode_BareCodeOrigin(t *testing.T) {
	e := NewCode(tKindNotFound)
	if !e.IsCode(tKindNotFound) {
		t.Fatalf("want the raised code to be current")
	}
	if got := e.Error(); got != "entity not found (Kind.NotFound)" {
		t.Fatalf("Error(): got %q", got)
	}
}

func TestWrap(t *testing.T) {
	srcBoundary := &Source{Message: "while handling request"}

	t.Run("foreign_error_is_converted_then_annotated", func(t *testing.T) {
		e := Wrap(io.EOF, srcBoundary)
		var frames []Frame
		for f := range e.Frames() {
			frames = append(frames, f)
		}
		// Conversion then push: the type identity is already lost.
		if len(frames) != 2 || frames[0].Kind != FrameTypeLost || frames[1].Kind != FrameContext {
			t.Fatalf("unexpected frames: %+v", frames)
		}
	})

	t.Run("native_error_is_annotated_in_place", func(t *testing.T) {
		e := New(&Source{Code: infoNotFound})
		if got := Wrap(e, srcBoundary); got != e {
			t.Fatalf("Wrap must push onto the same instance")
		}
		if !e.IsCode(tKindNotFound) {
			t.Fatalf("annotation must not displace the code")
		}
	})

	t.Run("nil", func(t *testing.T) {
		if Wrap(nil, srcBoundary) != nil {
			t.Fatalf("Wrap(nil) must be nil")
		}
	})
}

func TestErrorString_NewestFirst(t *testing.T) {
	e := New(&Source{Code: infoNotFound, Message: "lookup failed"})
	e.PushContext(&Source{Message: "loading profile"})

	want := "loading profile: lookup failed (Kind.NotFound)"
	if got := e.Error(); got != want {
		t.Fatalf("Error(): want=%q got=%q", want, got)
	}
}

func TestFormat_Verbs(t *testing.T) {
	e := New(&Source{Code: infoNotFound, Message: "lookup failed"})

	concise := e.Error()
	if got := fmt.Sprintf("%v", e); got != concise {
		t.Fatalf("%%v: want=%q got=%q", concise, got)
	}
	if got := fmt.Sprintf("%s", e); got != concise {
		t.Fatalf("%%s: want=%q got=%q", concise, got)
	}
	if got := fmt.Sprintf("%q", e); got != fmt.Sprintf("%q", concise) {
		t.Fatalf("%%q: got %q", got)
	}
}

func TestFormat_VerboseListsAllFrames(t *testing.T) {
	e := New(&Source{Code: infoNotFound, Message: "lookup failed"})
	e.PushContext(&Source{Message: "step one"})
	e.PushContext(&Source{Message: "step two"})

	out := fmt.Sprintf("%+v", e)
	for _, want := range []string{
		"lookup failed (Kind.NotFound)",
		"step two",
		"<some frames have been omitted>",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("%%+v missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "step one") {
		t.Fatalf("superseded frame must not appear in compact %%+v:\n%s", out)
	}
}

func TestNewf_MessageRetention(t *testing.T) {
	src := &Source{Message: "static fallback"}

	t.Run("compact_discards", func(t *testing.T) {
		e := Newf(src, "opening %s", "/etc/passwd")
		if got := e.Error(); got != "static fallback" {
			t.Fatalf("compact must fall back to the static message, got %q", got)
		}
	})

	t.Run("full_retains", func(t *testing.T) {
		withRepr(t, ReprFull)
		e := Newf(src, "opening %s", "/etc/passwd")
		if got := e.Error(); got != "opening /etc/passwd" {
			t.Fatalf("full must keep the rendered message, got %q", got)
		}
	})
}

func TestFullRepresentation_FacadeCompleteness(t *testing.T) {
	withRepr(t, ReprFull)

	e := New(&Source{Code: infoNotFound, Message: "origin"})
	e.PushContext(&Source{Message: "one"})
	e.PushContextf(&Source{Message: "two"}, "two rendered %d", 2)
	e.PushContext(&Source{Message: "three"})

	var frames []Frame
	for f := range e.Frames() {
		frames = append(frames, f)
	}
	if len(frames) != 4 {
		t.Fatalf("want 4 frames (origin + 3 pushes), got %d", len(frames))
	}
	if frames[2].Message != "two rendered 2" {
		t.Fatalf("rendered push message lost: %q", frames[2].Message)
	}
	for i, f := range frames {
		if f.Diagnostic() {
			t.Fatalf("frame %d: full history must not emit markers", i)
		}
	}
	if !e.IsCode(tKindNotFound) {
		t.Fatalf("origin code must survive codeless pushes")
	}
}

func TestCompactLocation_ConstructionMismatchAtFacade(t *testing.T) {
	withRepr(t, ReprCompactLocation)

	src := NewSource(tKindNotFound, "lookup failed") // declaration site
	e := New(src)                                    // construction site, different line

	var got []FrameKind
	for f := range e.Frames() {
		got = append(got, f.Kind)
	}
	if len(got) != 2 || got[0] != FrameConstructedAt || got[1] != FrameContext {
		t.Fatalf("want [constructed-at, context], got %v", got)
	}
}

func TestPredicates_TraverseWrappedChains(t *testing.T) {
	e := New(&Source{Code: infoTimeout, Message: "dial failed"})
	wrapped := fmt.Errorf("querying orders: %w", e)

	if !IsCode(wrapped, tKindTimeout) {
		t.Fatalf("IsCode must see through fmt.Errorf wrapping")
	}
	if IsCode(wrapped, tOtherNotFound) {
		t.Fatalf("cross-type match through a chain must still be rejected")
	}
	if got := CodeOf(wrapped); got != infoTimeout {
		t.Fatalf("CodeOf: want Timeout, got %v", got)
	}

	plain := errors.New("no codes here")
	if IsCode(plain, tKindTimeout) || CodeOf(plain) != nil {
		t.Fatalf("plain errors carry no code")
	}
	if IsCode(nil, tKindTimeout) || CodeOf(nil) != nil {
		t.Fatalf("nil-safety violated")
	}
}

func TestFrames_FreshWalkPerCall(t *testing.T) {
	e := New(&Source{Code: infoNotFound, Message: "origin"})
	e.PushContext(&Source{Message: "a"})
	e.PushContext(&Source{Message: "b"})

	count := func() int {
		n := 0
		for range e.Frames() {
			n++
		}
		return n
	}
	first, second := count(), count()
	if first != second {
		t.Fatalf("walks differ: %d vs %d", first, second)
	}
}
