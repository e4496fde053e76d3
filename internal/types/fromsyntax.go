package types

import (
	"github.com/emberhdl/ember/internal/diag"
	"github.com/emberhdl/ember/internal/syntax"
)

// FromSyntax maps a data type syntax node to a type. Shared instances are
// returned wherever the language defines the result structurally: predefined
// integers, scalars, floatings, and single-dimension vectors all come from
// singletons or the compilation's cache. forceSigned forces signedness on
// integer vector types regardless of the declared signing; it is set by
// declarations like "input signed x" where the keyword lives outside the
// type syntax.
func FromSyntax(c *Compilation, node syntax.DataType, scope *Scope, forceSigned bool) Type {
	switch node := node.(type) {
	case *syntax.IntegerType:
		if !node.Kind.IsPredefined() {
			signed := node.Signing == syntax.SigningSigned || forceSigned
			return c.integerVectorFromSyntax(node.Kind, node.Dims, signed, scope)
		}

		if len(node.Dims) > 0 {
			// Predefined integer types take no packed dimensions. Use the
			// type anyway so dependent declarations still get checked.
			c.addDiag(diag.PackedDimsOnPredefinedType, node.Dims[0].Pos()).Arg(node.Kind.String())
		}

		kind := predefinedKindOf(node.Kind)
		if node.Signing == syntax.SigningUnset {
			return PredefinedType(kind)
		}
		return c.predefinedType(kind, node.Signing == syntax.SigningSigned)

	case *syntax.KeywordType:
		switch node.Kind {
		case syntax.RealType:
			return RealType
		case syntax.RealTimeType:
			return RealTimeType
		case syntax.ShortRealType:
			return ShortRealType
		case syntax.StringType:
			return StringType
		case syntax.CHandleType:
			return CHandleType
		case syntax.EventType:
			return EventType
		case syntax.VoidType:
			return VoidType
		}
		panic("types: unknown keyword type")

	case *syntax.EnumType:
		return EnumFromSyntax(c, node, scope, forceSigned)

	case *syntax.StructType:
		if node.Packed {
			return PackedStructFromSyntax(c, node, scope, forceSigned)
		}
		return UnpackedStructFromSyntax(c, node, scope)

	case *syntax.NamedType:
		return c.namedTypeFromSyntax(node, scope)

	case *syntax.ImplicitType:
		signed := node.Signing == syntax.SigningSigned || forceSigned
		return c.integerVectorFromSyntax(syntax.Logic, node.Dims, signed, scope)
	}

	panic("types: unhandled data type syntax")
}

// integerVectorFromSyntax builds the type of a bit/logic/reg declaration
// with the given packed dimensions. No dimensions yield the bare scalar. A
// single dimension with a zero lower bound yields the shared vector type
// from the compilation cache; anything else nests packed arrays, innermost
// dimension first.
func (c *Compilation) integerVectorFromSyntax(kind syntax.IntegerKind, dims []*syntax.Dimension, signed bool, scope *Scope) Type {
	ranges := make([]Range, 0, len(dims))
	for _, dim := range dims {
		rng, ok := c.evalDimension(dim, scope, true)
		if !ok {
			return ErrorType
		}
		ranges = append(ranges, rng)
	}

	flags := IntegralFlags(0)
	if signed {
		flags |= SignedFlag
	}
	switch kind {
	case syntax.Logic:
		flags |= FourStateFlag
	case syntax.Reg:
		flags |= FourStateFlag | RegFlag
	}

	if len(ranges) == 0 {
		return scalarOfFlags(flags)
	}
	if len(ranges) == 1 && ranges[0].Right == 0 && ranges[0].Left >= 0 {
		return c.VectorType(ranges[0].Width(), flags)
	}

	var result Type = scalarOfFlags(flags)
	for i := len(ranges) - 1; i >= 0; i-- {
		result = PackedArrayFromSyntax(c, result, ranges[i], dims[i])
	}
	return result
}

// namedTypeFromSyntax resolves a type reference by name. An unknown name is
// assumed to have been reported at its declaration site and silently becomes
// the error type; a name that resolves to a non-type symbol is diagnosed
// here.
func (c *Compilation) namedTypeFromSyntax(node *syntax.NamedType, scope *Scope) Type {
	sym, _ := scope.LookupParent(node.Name.Value)
	if sym == nil {
		return ErrorType
	}

	t, ok := sym.(Type)
	if !ok {
		c.addDiag(diag.NotAType, node.Name.Position).Arg(node.Name.Value)
		return ErrorType
	}

	result := t
	for i := len(node.Dims) - 1; i >= 0; i-- {
		rng, ok := c.evalDimension(node.Dims[i], scope, true)
		if !ok {
			return ErrorType
		}
		result = PackedArrayFromSyntax(c, result, rng, node.Dims[i])
	}
	return result
}

// predefinedKindOf maps a predefined integer keyword to its type kind.
func predefinedKindOf(kind syntax.IntegerKind) IntegerKind {
	switch kind {
	case syntax.Byte:
		return Byte
	case syntax.ShortInt:
		return ShortInt
	case syntax.Int:
		return Int
	case syntax.LongInt:
		return LongInt
	case syntax.Integer:
		return Integer
	case syntax.Time:
		return Time
	}
	panic("types: not a predefined integer keyword")
}
