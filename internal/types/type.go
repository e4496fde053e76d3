// Package types models every data type of the source language, computes
// canonical forms across typedef chains, and implements the four compatibility
// relations (matching, equivalent, assignment compatible, cast compatible)
// that the expression binder and semantic checker consult. Types are built
// from declaration syntax by the builders in this package and live for the
// whole compilation; they are never mutated after construction except for
// memoized lazy fields.
package types

import (
	"fmt"

	"github.com/emberhdl/ember/internal/syntax"
)

// Kind is the variant tag of a type.
type Kind int

const (
	KindError Kind = iota
	KindPredefinedInteger
	KindScalar
	KindFloating
	KindEnum
	KindPackedArray
	KindUnpackedArray
	KindPackedStruct
	KindUnpackedStruct
	KindVoid
	KindNull
	KindCHandle
	KindString
	KindEvent
	KindAlias
)

// Type is the interface implemented by all types.
type Type interface {
	// Kind returns the variant tag.
	Kind() Kind

	// Canonical returns the type with typedef chains fully resolved.
	// For all non-alias types it returns the receiver.
	Canonical() Type

	// Syntax returns the declaration syntax node the type originated from,
	// or nil for types without one. Two types sharing a syntax node are
	// matching by construction.
	Syntax() syntax.Node

	// String returns a human-readable representation of the type.
	String() string

	// aType is a marker method to restrict implementations to this package.
	aType()
}

// typ is the base struct for all type implementations.
type typ struct{}

func (typ) aType() {}

func (typ) Syntax() syntax.Node { return nil }

// Range is a constant range [Left:Right]. For packed types Left is the MSB
// and Right the LSB; either bound may be the larger one.
type Range struct {
	Left  int
	Right int
}

// Width returns the number of bits or elements the range spans.
func (r Range) Width() int {
	if r.Left > r.Right {
		return r.Left - r.Right + 1
	}
	return r.Right - r.Left + 1
}

// String returns the range in "[left:right]" form.
func (r Range) String() string {
	return fmt.Sprintf("[%d:%d]", r.Left, r.Right)
}

// simple is a payload-free type variant.
type simple struct {
	typ
	kind Kind
	name string
}

func (t *simple) Kind() Kind      { return t.kind }
func (t *simple) Canonical() Type { return t }
func (t *simple) String() string  { return t.name }

// Singleton instances for every payload-free type. These are allocated once
// and shared, so identity comparison is a valid matching test for them.
var (
	// ErrorType represents a previously diagnosed failure. Builders
	// receiving it propagate it without reporting a second diagnostic.
	ErrorType Type = &simple{kind: KindError, name: "<error>"}

	VoidType    Type = &simple{kind: KindVoid, name: "void"}
	NullType    Type = &simple{kind: KindNull, name: "null"}
	CHandleType Type = &simple{kind: KindCHandle, name: "chandle"}
	StringType  Type = &simple{kind: KindString, name: "string"}
	EventType   Type = &simple{kind: KindEvent, name: "event"}
)

// FloatKind identifies a floating type.
type FloatKind int

const (
	Real FloatKind = iota
	RealTime
	ShortReal
)

// Floating represents the real, realtime, and shortreal types.
type Floating struct {
	typ
	kind FloatKind
}

// Singleton instances for the floating types.
var (
	RealType      = &Floating{kind: Real}
	RealTimeType  = &Floating{kind: RealTime}
	ShortRealType = &Floating{kind: ShortReal}
)

// FloatKind returns which floating type this is.
func (t *Floating) FloatKind() FloatKind { return t.kind }

func (t *Floating) Kind() Kind      { return KindFloating }
func (t *Floating) Canonical() Type { return t }

// String implements Type.
func (t *Floating) String() string {
	switch t.kind {
	case Real:
		return "real"
	case RealTime:
		return "realtime"
	case ShortReal:
		return "shortreal"
	}
	panic("types: unknown floating kind")
}
