// frame.go — decoded, display-ready error frames.
//
// Frames are what a decoder yields: substantive frames carrying a message
// and/or a code, and diagnostic marker frames noting information the compact
// representation had to give up. Rendering is plain-text only; richer export
// belongs to adapters outside the core.
package xgxerrcode

import "strings"

// FrameKind classifies a decoded frame.
type FrameKind uint8

const (
	// FrameContext is a substantive frame from a static descriptor or a
	// recorded step: a message and/or a code.
	FrameContext FrameKind = iota

	// FrameType reports a conversion from a foreign error type.
	FrameType

	// FrameTypeLost marks a converted origin whose type name was given up
	// to make room for pushed context.
	FrameTypeLost

	// FrameConstructedAt marks an error constructed at a different site
	// than the one its originating descriptor was declared at.
	FrameConstructedAt

	// FrameOmitted marks that intermediate context frames were discarded.
	FrameOmitted
)

// Frame is one decoded step of an error's history.
type Frame struct {
	Kind FrameKind

	// Message is the rendered or static message for FrameContext frames.
	Message string

	// Incomplete marks a static message that needed runtime data it never
	// received.
	Incomplete bool

	// Code is the descriptor attached to this frame, if any.
	Code *CodeInfo

	// TypeName is the foreign type name for FrameType frames.
	TypeName string

	// Loc is where this frame was recorded, if known.
	Loc *Location
}

// Diagnostic reports whether the frame is a marker rather than substance.
func (f Frame) Diagnostic() bool {
	switch f.Kind {
	case FrameTypeLost, FrameConstructedAt, FrameOmitted:
		return true
	}
	return false
}

// contextFrame decodes a static descriptor into a substantive frame.
// rendered, when non-empty, replaces the descriptor's static message.
func contextFrame(src *Source, rendered string, loc *Location) Frame {
	f := Frame{Kind: FrameContext, Code: src.Code, Loc: loc}
	if rendered != "" {
		f.Message = rendered
	} else {
		f.Message = src.Message
		f.Incomplete = src.Incomplete && src.Message != ""
	}
	return f
}

// String renders the frame for human consumption.
//
// Substantive frames render their message (or a placeholder) followed by the
// qualified code, e.g. `dial failed (Kind.Unavailable)`. Type frames render
// `<converted from type: T>`, preferring the attached code's own message when
// one exists. Diagnostic frames render fixed texts.
func (f Frame) String() string {
	switch f.Kind {
	case FrameConstructedAt:
		return "<error constructed at:>"
	case FrameTypeLost:
		return "<original error type lost>"
	case FrameOmitted:
		return "<some frames have been omitted>"
	case FrameType:
		switch {
		case f.Code != nil && f.Code.Message != "":
			return f.Code.Message + " (" + f.Code.String() + ")"
		case f.Code != nil:
			return "<converted from type: " + f.TypeName + "> (" + f.Code.String() + ")"
		default:
			return "<converted from type: " + f.TypeName + ">"
		}
	}

	// FrameContext
	var b strings.Builder
	switch {
	case f.Message != "":
		if f.Incomplete {
			b.WriteString("<unformatted message:>")
		}
		b.WriteString(f.Message)
	case f.Code != nil && f.Code.Message != "":
		// A codeful frame with no message of its own borrows the code's.
		b.WriteString(f.Code.Message)
	case f.Code != nil:
		b.WriteString("<no message given>")
	default:
		return "<no message or code given>"
	}
	if f.Code != nil {
		b.WriteString(" (")
		b.WriteString(f.Code.String())
		b.WriteString(")")
	}
	return b.String()
}
