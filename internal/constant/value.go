// Package constant implements the compile-time values produced while
// elaborating types: four-state bit vectors, reals, strings, the null
// placeholder, and composites. It plays the role go/constant plays for a Go
// type checker; the X fill of four-state logic forces a custom
// representation.
package constant

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Value is the interface implemented by all constant values.
type Value interface {
	// String returns a human-readable representation of the value.
	String() string

	// aValue is a marker method to restrict implementations to this package.
	aValue()
}

// BitVector is a fixed-width two's-complement integer that may instead be an
// all-X (unknown) fill. The stored magnitude is always reduced modulo 2^width
// and kept non-negative; signedness only affects interpretation.
type BitVector struct {
	width  int
	signed bool
	allX   bool
	val    big.Int
}

// NewBitVector creates a bit vector of the given width holding v,
// wrapped to the width.
func NewBitVector(width int, signed bool, v int64) *BitVector {
	bv := &BitVector{width: width, signed: signed}
	bv.val.SetInt64(v)
	bv.wrap()
	return bv
}

// FillX creates an all-X bit vector of the given width.
func FillX(width int, signed bool) *BitVector {
	return &BitVector{width: width, signed: signed, allX: true}
}

// wrap reduces the stored magnitude modulo 2^width into [0, 2^width).
func (b *BitVector) wrap() {
	mod := new(big.Int).Lsh(big.NewInt(1), uint(b.width))
	b.val.Mod(&b.val, mod)
	if b.val.Sign() < 0 {
		b.val.Add(&b.val, mod)
	}
}

// Width returns the bit width.
func (b *BitVector) Width() int {
	return b.width
}

// Signed reports whether the value is interpreted as signed.
func (b *BitVector) Signed() bool {
	return b.signed
}

// IsAllX reports whether the value is an all-X fill.
func (b *BitVector) IsAllX() bool {
	return b.allX
}

// Int64 returns the value interpreted per its signedness.
// The second result is false for X fills and values outside int64 range.
func (b *BitVector) Int64() (int64, bool) {
	if b.allX {
		return 0, false
	}
	v := new(big.Int).Set(&b.val)
	if b.signed && b.width > 0 && b.val.Bit(b.width-1) == 1 {
		mod := new(big.Int).Lsh(big.NewInt(1), uint(b.width))
		v.Sub(v, mod)
	}
	if !v.IsInt64() {
		return 0, false
	}
	return v.Int64(), true
}

// AddOne returns the value plus one, wrapped to the width.
// Adding to an X fill yields an X fill.
func (b *BitVector) AddOne() *BitVector {
	if b.allX {
		return FillX(b.width, b.signed)
	}
	r := &BitVector{width: b.width, signed: b.signed}
	r.val.Add(&b.val, big.NewInt(1))
	r.wrap()
	return r
}

// Equal reports whether two bit vectors have the same width, signedness,
// and bits.
func (b *BitVector) Equal(o *BitVector) bool {
	if b.width != o.width || b.signed != o.signed || b.allX != o.allX {
		return false
	}
	return b.allX || b.val.Cmp(&o.val) == 0
}

// String implements Value. Values render in sized-literal form, e.g.
// 8'd42, 8'sd-6, or 8'bx for an X fill.
func (b *BitVector) String() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "%d'", b.width)
	if b.signed {
		buf.WriteString("s")
	}
	if b.allX {
		buf.WriteString("bx")
		return buf.String()
	}
	buf.WriteString("d")
	if v, ok := b.Int64(); ok {
		fmt.Fprintf(&buf, "%d", v)
	} else {
		buf.WriteString(b.val.String())
	}
	return buf.String()
}

// Real is a floating-point constant.
type Real float64

// String implements Value.
func (r Real) String() string {
	return strconv.FormatFloat(float64(r), 'g', -1, 64)
}

// Str is a string constant.
type Str string

// String implements Value.
func (s Str) String() string {
	return strconv.Quote(string(s))
}

// Null is the null placeholder value used for null, chandle, and event
// defaults.
type Null struct{}

// String implements Value.
func (Null) String() string {
	return "null"
}

// Composite is an ordered aggregate of element values, used for unpacked
// struct and array defaults.
type Composite struct {
	elems []Value
}

// NewComposite creates a composite from the given elements.
func NewComposite(elems []Value) *Composite {
	return &Composite{elems: elems}
}

// Elems returns the element values in order.
func (c *Composite) Elems() []Value {
	return c.elems
}

// String implements Value.
func (c *Composite) String() string {
	var buf strings.Builder
	buf.WriteString("'{")
	for i, e := range c.elems {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(e.String())
	}
	buf.WriteString("}")
	return buf.String()
}

func (*BitVector) aValue() {}
func (Real) aValue()       {}
func (Str) aValue()        {}
func (Null) aValue()       {}
func (*Composite) aValue() {}
