// doc.go — package documentation for xgx-errcode
//
// Package xgxerrcode carries a chain of diagnostic context alongside a typed
// error code, from the point an error originates to the point it is
// reported, at a representation cost the program chooses once: a fully
// faithful heap-backed history, or a fixed-size summary that collapses
// history into a bounded set of anchors. It is designed to be:
//   - Cheap on the propagation path (compact pushes never allocate)
//   - Lossless where it matters (an attached code is never silently dropped)
//   - Policy-free (no HTTP/logging/retry rules in core)
//
// # Codes and Descriptors
//
// Error codes are small uint32-backed enum types. Each type registers its
// variants in a Domain once, at package initialization; the resulting
// CodeInfo descriptors are immutable and address-stable for the life of the
// process:
//
//	type Kind uint32
//
//	const (
//		KindNotFound Kind = 3
//		KindTimeout  Kind = 7
//	)
//
//	var kinds = xgxerrcode.NewDomain[Kind]("Kind")
//
//	var (
//		_ = kinds.Register(KindNotFound, "NotFound", "entity not found")
//		_ = kinds.Register(KindTimeout, "Timeout", "operation timed out")
//	)
//
//	func (k Kind) ErrorCode() *xgxerrcode.CodeInfo { return kinds.Info(k) }
//
// Code identity is the (enum type, numeric value) pair: IsCode and
// DecodeValue reject codes of unrelated types even when the numbers match.
//
// # Origins and Context
//
// Every error originates at a Source — a static, declared-once descriptor
// carrying an optional code, an optional message and its declaration site —
// or at a foreign error value, whose dynamic type name is captured instead:
//
//	var srcDialFailed = xgxerrcode.NewSource(KindUnavailable, "dial failed")
//
//	err := xgxerrcode.New(srcDialFailed)
//	...
//	err.PushContext(srcHandlingRequest) // annotate while propagating
//
// PushContext mutates in place and requires exclusive access; once an error
// stops being annotated it is safe to share for reading.
//
// # Representations
//
// The storage strategy is selected once, at startup:
//
//	+-------------------------+----------------------------+------------------+
//	| Representation          | History kept               | Cost per push    |
//	+-------------------------+----------------------------+------------------+
//	| ReprCompact (default)   | origin + 2 anchors + flag  | none             |
//	| ReprCompactLocation     | same, + construction site  | none             |
//	| ReprFull                | every step, with messages  | one list append  |
//	+-------------------------+----------------------------+------------------+
//
// The compact summary keeps the first context anchor forever and lets later
// frames compete for the last anchor, preferring frames that carry a code.
// Whatever is pushed, the reported code is always that of the most recent
// code-bearing frame, with the origin's code as the floor.
//
// # Decoding
//
// Frames returns the decoded history, oldest first, as a lazy one-shot
// sequence. The full representation yields one substantive frame per step;
// the compact ones yield up to five frames, including diagnostic markers for
// whatever the summary had to give up (a lost converted-type name, omitted
// intermediate frames, a construction site far from the origin declaration).
//
// Formatting follows the usual split: %v and %s give the concise one-line
// form, %+v the full frame walk with call sites.
//
// # Foreign Errors
//
// From(err) converts any error by capturing its dynamic type name; no code
// is attached unless supplied explicitly via FromCode. Wrap(err, src)
// converts if needed and pushes a context frame in one step. The package
// predicates IsCode and CodeOf traverse wrapped chains via errors.As.
package xgxerrcode
