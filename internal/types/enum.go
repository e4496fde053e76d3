package types

import (
	"strings"

	"github.com/emberhdl/ember/internal/constant"
	"github.com/emberhdl/ember/internal/diag"
	"github.com/emberhdl/ember/internal/syntax"
)

// Enum represents an enum type. Its width, signedness, and four-state-ness
// mirror its base type. The enum owns a scope holding its value members;
// the members are also inserted into the enclosing scope so that plain name
// lookup finds them.
type Enum struct {
	integral
	base    Type
	members []*EnumValue
	scope   *Scope
	syn     syntax.Node
	pos     syntax.Pos
}

// BaseType returns the enum's base type.
func (t *Enum) BaseType() Type { return t.base }

// Members returns the enum's value members in declaration order.
func (t *Enum) Members() []*EnumValue { return t.members }

// MemberScope returns the scope holding the enum's value members.
func (t *Enum) MemberScope() *Scope { return t.scope }

func (t *Enum) Kind() Kind          { return KindEnum }
func (t *Enum) Canonical() Type     { return t }
func (t *Enum) Syntax() syntax.Node { return t.syn }

// String implements Type.
func (t *Enum) String() string {
	var buf strings.Builder
	buf.WriteString("enum{")
	for i, m := range t.members {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString(m.name)
	}
	buf.WriteString("}")
	return buf.String()
}

// EnumValue is a named member of an enum type.
type EnumValue struct {
	name  string
	pos   syntax.Pos
	enum  *Enum
	value *constant.BitVector
}

// Name implements Symbol.
func (v *EnumValue) Name() string { return v.name }

// Pos implements Symbol.
func (v *EnumValue) Pos() syntax.Pos { return v.pos }

// Type implements ValueSymbol; an enum value's type is the enum itself.
func (v *EnumValue) Type() Type { return v.enum }

// Value returns the member's constant, or nil if its initializer failed to
// evaluate.
func (v *EnumValue) Value() *constant.BitVector { return v.value }

// ConstantValue implements ValueSymbol.
func (v *EnumValue) ConstantValue() constant.Value {
	if v.value == nil {
		return nil
	}
	return v.value
}

// EnumFromSyntax builds an enum type. The base type defaults to int and
// must canonically be a simple bit vector. Members without initializers
// take the previous member's value plus one in the base type's width and
// signedness; the first member defaults to zero.
func EnumFromSyntax(c *Compilation, node *syntax.EnumType, scope *Scope, forceSigned bool) Type {
	var base, canonicalBase Type
	if node.Base == nil {
		base = PredefinedType(Int)
		canonicalBase = base
	} else {
		base = FromSyntax(c, node.Base, scope, forceSigned)

		canonicalBase = base.Canonical()
		if IsError(canonicalBase) {
			return canonicalBase
		}

		if !IsSimpleBitVector(canonicalBase) {
			c.addDiag(diag.InvalidEnumBase, node.Base.Pos()).Arg(base)
			return ErrorType
		}
	}

	width := BitWidth(canonicalBase)
	signed := IsSigned(canonicalBase)

	e := &Enum{
		integral: integral{
			width:     width,
			signed:    signed,
			fourState: IsFourState(canonicalBase),
		},
		base: base,
		syn:  node,
		pos:  node.Position,
	}
	e.scope = NewScope(scope, "enum")

	current := constant.NewBitVector(width, signed, 0)
	for _, member := range node.Members {
		ev := &EnumValue{
			name: member.Name.Value,
			pos:  member.Name.Position,
			enum: e,
		}

		if member.Init == nil {
			ev.value = current
			current = current.AddOne()
		} else if v, ok := c.evalEnumInit(member.Init, scope, width, signed); ok {
			ev.value = v
			current = v.AddOne()
		} else {
			// The initializer did not fold; the binder has reported it.
			// Keep counting from the next slot.
			current = current.AddOne()
		}

		e.members = append(e.members, ev)
		e.scope.Insert(ev)
		scope.Insert(ev)
	}

	return e
}

// evalEnumInit binds an enum member initializer and converts it to the base
// type's width and signedness.
func (c *Compilation) evalEnumInit(e syntax.Expr, scope *Scope, width int, signed bool) (*constant.BitVector, bool) {
	v, ok := c.evalInt(e, scope)
	if !ok {
		return nil, false
	}
	return constant.NewBitVector(width, signed, int64(v)), true
}
