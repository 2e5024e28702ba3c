// format.go — fmt.Formatter for the error facade.
//
// Behavior:
//
//	%s, %v   → concise string (Error()).
//	%+v      → verbose, one decoded frame per line, oldest first, with the
//	           recorded call site indented under each located frame:
//	             dial failed (Kind.Unavailable)
//	               at pkg/store/db.go:41
//	             <some frames have been omitted>
//	%q       → quoted Error().
//
// Rationale: the decoded frame walk is the whole diagnostic story; %+v is
// the cheapest faithful rendering of it without pulling logging policy into
// the core.
package xgxerrcode

import (
	"fmt"
	"io"
)

func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			e.formatVerbose(s)
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = io.WriteString(s, e.Error())
	}
}

// formatVerbose writes every decoded frame on its own line.
func (e *Error) formatVerbose(w io.Writer) {
	first := true
	for f := range e.be.frames() {
		if !first {
			_, _ = io.WriteString(w, "\n")
		}
		first = false
		_, _ = io.WriteString(w, f.String())
		if f.Loc != nil {
			_, _ = fmt.Fprintf(w, "\n  at %s", f.Loc)
		}
	}
	if first {
		_, _ = io.WriteString(w, e.Error())
	}
}

var _ fmt.Formatter = (*Error)(nil)
