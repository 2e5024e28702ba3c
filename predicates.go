// predicates.go — stdlib-aligned predicates over arbitrary errors.
//
// Scope:
//   - Zero-policy helpers that answer "does this error carry that code?"
//     without requiring the caller to hold a concrete *Error.
//   - Interop-first: traversal uses errors.As, so wrapped chains (including
//     multi-error joins) are observed.
//
// Out of scope: HTTP/status mapping, retry policy, logging.
package xgxerrcode

import "errors"

// IsCode reports whether err is (or wraps) an *Error whose current code is
// exactly the given value. Nil-safe.
func IsCode(err error, c CodeValue) bool {
	if err == nil {
		return false
	}
	var e *Error
	return errors.As(err, &e) && e.IsCode(c)
}

// CodeOf returns the current code of the first *Error found along err's
// chain, or nil if there is none.
func CodeOf(err error) *CodeInfo {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code()
	}
	return nil
}
