// codes.go — typed error-code descriptors and the per-type registry.
//
// Intent:
//   - Let projects declare small uint32-backed enum types as error codes.
//   - Keep one immutable, address-stable CodeInfo per enum variant; the rest
//     of the package references descriptors by pointer and never copies them.
//   - Identity is (enum type, numeric value). Two codes from different enum
//     types never compare equal, even when their numeric values coincide.
//
// Conventions (documented, not enforced here):
//   - Domain names are the enum type name (e.g. "Kind"); variant names are
//     the Go constant name without the type prefix (e.g. "NotFound").
//   - Register all variants during package initialization; descriptors live
//     for the life of the process.
package xgxerrcode

import (
	"fmt"
	"reflect"
)

// CodeInfo describes one variant of a typed error code. Instances are created
// by Domain.Register, are immutable afterwards, and are compared by the
// (enum type, numeric value) pair — never by pointer or by name.
type CodeInfo struct {
	tid reflect.Type

	// Value is the numeric value of the enum variant.
	Value uint32

	// Domain is the name of the enum type owning this code.
	Domain string

	// Name is the variant name within the domain.
	Name string

	// Message is an optional display message for this code. Empty means the
	// code renders as "Domain.Name" only.
	Message string

	// src is the code-only origin used when a bare code value is raised as
	// an error (NewCode) or attached to a foreign conversion (FromCode).
	src Source
}

// String renders the qualified variant name, e.g. "Kind.NotFound".
func (i *CodeInfo) String() string {
	return i.Domain + "." + i.Name
}

// equal reports identity per the (type, value) pair.
func (i *CodeInfo) equal(o *CodeInfo) bool {
	if i == nil || o == nil {
		return i == o
	}
	return i.tid == o.tid && i.Value == o.Value
}

// source returns the code-only origin descriptor for this code.
func (i *CodeInfo) source() *Source { return &i.src }

// CodeValue is implemented by enum types usable as error codes.
//
// The canonical implementation delegates to the type's Domain:
//
//	type Kind uint32
//
//	var kinds = xgxerrcode.NewDomain[Kind]("Kind")
//
//	func (k Kind) ErrorCode() *xgxerrcode.CodeInfo { return kinds.Info(k) }
type CodeValue interface {
	// ErrorCode returns the static descriptor for this value.
	ErrorCode() *CodeInfo
}

// Enum is the constraint for the numeric carrier of an error-code type.
type Enum interface{ ~uint32 }

// Coded combines Enum and CodeValue for generic decoding (see DecodeValue).
type Coded interface {
	Enum
	CodeValue
}

// Domain is the static descriptor registry for one enum type T. It provides
// the (type identity, numeric value) → descriptor lookups consumed by the
// error core. Populate it during package initialization; lookups after that
// are read-only and safe for concurrent use.
type Domain[T Enum] struct {
	name  string
	infos map[uint32]*CodeInfo
}

// NewDomain creates the registry for enum type T. The name should be the Go
// type name; it appears in rendered frames as the "Domain" half of
// "Domain.Variant".
func NewDomain[T Enum](name string) *Domain[T] {
	return &Domain[T]{
		name:  name,
		infos: make(map[uint32]*CodeInfo),
	}
}

// Register creates the descriptor for one variant. message may be empty.
// Registering the same numeric value twice is a programming bug and panics.
func (d *Domain[T]) Register(value T, name, message string) *CodeInfo {
	v := uint32(value)
	if prev, ok := d.infos[v]; ok {
		panic(fmt.Sprintf("xgxerrcode: duplicate code value %d in domain %s (already %s)",
			v, d.name, prev.Name))
	}
	info := &CodeInfo{
		tid:     reflect.TypeFor[T](),
		Value:   v,
		Domain:  d.name,
		Name:    name,
		Message: message,
	}
	info.src = Source{Code: info}
	d.infos[v] = info
	return info
}

// Info returns the descriptor for a typed value, or nil if the value was
// never registered.
func (d *Domain[T]) Info(value T) *CodeInfo { return d.infos[uint32(value)] }

// Lookup returns the descriptor for a raw numeric value, or nil if the value
// was never registered.
func (d *Domain[T]) Lookup(value uint32) *CodeInfo { return d.infos[value] }

// infoFor resolves a CodeValue to its descriptor, tolerating nil.
func infoFor(c CodeValue) *CodeInfo {
	if c == nil {
		return nil
	}
	return c.ErrorCode()
}
