// Package binder evaluates the small expression language the type system
// consumes: dimension bounds, enum member initializers, and the expressions
// inside timing controls. It implements the types.Binder interface so that a
// compilation can call back into it during type construction.
package binder

import (
	"github.com/emberhdl/ember/internal/constant"
	"github.com/emberhdl/ember/internal/diag"
	"github.com/emberhdl/ember/internal/syntax"
	"github.com/emberhdl/ember/internal/types"
)

// Binder binds expressions against a scope, folding constants as it goes.
// Diagnostics are reported through the given sink; a failed binding comes
// back with Bad set and the error type, never as an error return.
type Binder struct {
	diags *diag.Sink
}

// New creates a binder reporting through sink.
func New(sink *diag.Sink) *Binder {
	return &Binder{diags: sink}
}

// bad is the result of a failed binding after its diagnostic has been
// reported.
func bad() types.BoundExpr {
	return types.BoundExpr{Type: types.ErrorType, Bad: true}
}

// Bind implements types.Binder. Integer literals are int-typed, real
// literals real-typed, and names resolve to value symbols whose constant is
// taken if they have one.
func (b *Binder) Bind(expr syntax.Expr, scope *types.Scope) types.BoundExpr {
	switch expr := expr.(type) {
	case *syntax.IntLit:
		return types.BoundExpr{
			Type:     types.PredefinedType(types.Int),
			Constant: constant.NewBitVector(32, true, expr.Value),
		}

	case *syntax.RealLit:
		return types.BoundExpr{
			Type:     types.RealType,
			Constant: constant.Real(expr.Value),
		}

	case *syntax.StringLit:
		return types.BoundExpr{
			Type:     types.StringType,
			Constant: constant.Str(expr.Value),
		}

	case *syntax.Name:
		return b.bindName(expr, scope)

	case *syntax.Unary:
		return b.bindUnary(expr, scope)

	case *syntax.Binary:
		return b.bindBinary(expr, scope)
	}

	panic("binder: unhandled expression syntax")
}

func (b *Binder) bindName(name *syntax.Name, scope *types.Scope) types.BoundExpr {
	sym, _ := scope.LookupParent(name.Value)
	if sym == nil {
		b.diags.Add(diag.UndeclaredIdentifier, name.Position).Arg(name.Value)
		return bad()
	}

	vs, ok := sym.(types.ValueSymbol)
	if !ok {
		b.diags.Add(diag.NotAValue, name.Position).Arg(name.Value)
		return bad()
	}

	return types.BoundExpr{Type: vs.Type(), Constant: vs.ConstantValue()}
}

func (b *Binder) bindUnary(expr *syntax.Unary, scope *types.Scope) types.BoundExpr {
	operand := b.Bind(expr.Operand, scope)
	if operand.Bad {
		return operand
	}

	switch c := operand.Constant.(type) {
	case nil:
		return types.BoundExpr{Type: operand.Type}

	case *constant.BitVector:
		v, ok := c.Int64()
		if !ok {
			// X fills propagate through arithmetic.
			return types.BoundExpr{Type: operand.Type, Constant: c}
		}
		switch expr.Op {
		case syntax.Neg:
			v = -v
		case syntax.BitNot:
			v = ^v
		default:
			panic("binder: bad unary operator")
		}
		return types.BoundExpr{
			Type:     operand.Type,
			Constant: constant.NewBitVector(c.Width(), c.Signed(), v),
		}

	case constant.Real:
		if expr.Op != syntax.Neg {
			b.diags.Add(diag.ExpressionNotConstant, expr.Position)
			return bad()
		}
		return types.BoundExpr{Type: operand.Type, Constant: -c}
	}

	b.diags.Add(diag.ExpressionNotConstant, expr.Position)
	return bad()
}

func (b *Binder) bindBinary(expr *syntax.Binary, scope *types.Scope) types.BoundExpr {
	left := b.Bind(expr.Left, scope)
	right := b.Bind(expr.Right, scope)
	if left.Bad || right.Bad {
		return bad()
	}

	lv, lok := left.Constant.(*constant.BitVector)
	rv, rok := right.Constant.(*constant.BitVector)
	if !lok || !rok {
		b.diags.Add(diag.ExpressionNotConstant, expr.Position)
		return bad()
	}

	// Result width is the larger operand's; signed only when both operands
	// are. Shifts are self-determined by the left operand.
	width := lv.Width()
	signed := lv.Signed()
	if expr.Op != syntax.Shl && expr.Op != syntax.Shr {
		if rv.Width() > width {
			width = rv.Width()
		}
		signed = signed && rv.Signed()
	}
	resultType := left.Type
	if width != lv.Width() {
		resultType = right.Type
	}

	li, lok := lv.Int64()
	ri, rok := rv.Int64()
	if !lok || !rok {
		return types.BoundExpr{
			Type:     resultType,
			Constant: constant.FillX(width, signed),
		}
	}

	var v int64
	switch expr.Op {
	case syntax.Add:
		v = li + ri
	case syntax.Sub:
		v = li - ri
	case syntax.Mul:
		v = li * ri
	case syntax.Shl:
		v = li << uint64(ri)
	case syntax.Shr:
		v = li >> uint64(ri)
	default:
		panic("binder: bad binary operator")
	}

	return types.BoundExpr{
		Type:     resultType,
		Constant: constant.NewBitVector(width, signed, v),
	}
}
