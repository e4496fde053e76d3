package types

import (
	"fmt"

	"github.com/emberhdl/ember/internal/diag"
	"github.com/emberhdl/ember/internal/syntax"
)

// PackedArray represents a packed array type. Its width is the element
// width times the range width; signedness and four-state-ness come from the
// element.
type PackedArray struct {
	integral
	elem Type
	rng  Range
	syn  syntax.Node
}

func newPackedArray(elem Type, rng Range, syn syntax.Node) *PackedArray {
	return &PackedArray{
		integral: integral{
			width:     BitWidth(elem) * rng.Width(),
			signed:    IsSigned(elem),
			fourState: IsFourState(elem),
		},
		elem: elem,
		rng:  rng,
		syn:  syn,
	}
}

// Elem returns the element type.
func (t *PackedArray) Elem() Type { return t.elem }

// Bounds returns the index range.
func (t *PackedArray) Bounds() Range { return t.rng }

func (t *PackedArray) Kind() Kind          { return KindPackedArray }
func (t *PackedArray) Canonical() Type     { return t }
func (t *PackedArray) Syntax() syntax.Node { return t.syn }

// String implements Type.
func (t *PackedArray) String() string {
	return fmt.Sprintf("%s%s", t.elem, t.rng)
}

// PackedArrayFromSyntax builds a packed array over the given element type
// and evaluated range. The element must be integral; the error type
// propagates untouched.
func PackedArrayFromSyntax(c *Compilation, elem Type, rng Range, syn syntax.Node) Type {
	if IsError(elem) {
		return elem
	}
	if !IsIntegral(elem) {
		c.addDiag(diag.PackedMemberNotIntegral, syn.Pos()).Arg(elem)
		return ErrorType
	}
	return newPackedArray(elem, rng, syn)
}

// UnpackedArray represents an unpacked (memory) array type.
type UnpackedArray struct {
	typ
	elem Type
	rng  Range
	syn  syntax.Node
}

// Elem returns the element type.
func (t *UnpackedArray) Elem() Type { return t.elem }

// Bounds returns the index range.
func (t *UnpackedArray) Bounds() Range { return t.rng }

func (t *UnpackedArray) Kind() Kind          { return KindUnpackedArray }
func (t *UnpackedArray) Canonical() Type     { return t }
func (t *UnpackedArray) Syntax() syntax.Node { return t.syn }

// String implements Type.
func (t *UnpackedArray) String() string {
	return fmt.Sprintf("%s$%s", t.elem, t.rng)
}

// UnpackedArrayFromSyntax builds nested unpacked arrays over the element
// type, processing dimensions in reverse syntactic order so the first
// dimension becomes the outermost array. A failed dimension or an error
// element yields the error type.
func UnpackedArrayFromSyntax(c *Compilation, elem Type, dims []*syntax.Dimension, scope *Scope) Type {
	if IsError(elem) {
		return elem
	}

	result := elem
	for i := len(dims) - 1; i >= 0; i-- {
		rng, ok := c.evalDimension(dims[i], scope, false)
		if !ok {
			return ErrorType
		}
		result = &UnpackedArray{elem: result, rng: rng, syn: dims[i]}
	}
	return result
}
