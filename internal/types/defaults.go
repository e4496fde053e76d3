package types

import (
	"github.com/emberhdl/ember/internal/constant"
)

// DefaultValue synthesizes the value a variable of type t holds before any
// assignment. Four-state integral types default to an all-X fill, two-state
// ones to zero. Enums take their base type's default, which need not name
// any member. Unpacked aggregates default element-wise. The void and error
// types have no values at all, so asking for one is a caller bug.
func DefaultValue(t Type) constant.Value {
	ct := t.Canonical()

	if e, ok := ct.(*Enum); ok {
		return DefaultValue(e.base)
	}

	if it, ok := integralOf(ct); ok {
		if it.fourState {
			return constant.FillX(it.width, it.signed)
		}
		return constant.NewBitVector(it.width, it.signed, 0)
	}

	switch ct := ct.(type) {
	case *Floating:
		return constant.Real(0)
	case *simple:
		switch ct.kind {
		case KindString:
			return constant.Str("")
		case KindNull, KindCHandle, KindEvent:
			return constant.Null{}
		}
	case *UnpackedStruct:
		elems := make([]constant.Value, len(ct.fields))
		for i, f := range ct.fields {
			elems[i] = DefaultValue(f.typ)
		}
		return constant.NewComposite(elems)
	case *UnpackedArray:
		n := ct.rng.Width()
		elems := make([]constant.Value, n)
		for i := range elems {
			elems[i] = DefaultValue(ct.elem)
		}
		return constant.NewComposite(elems)
	}

	panic("types: no default value for " + ct.String())
}
