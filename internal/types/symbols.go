package types

import (
	"github.com/emberhdl/ember/internal/constant"
	"github.com/emberhdl/ember/internal/syntax"
)

// Variable is a declared value of some type, optionally holding a constant.
// Parameters and localparams are variables whose constant is always set;
// nets and ordinary variables leave it nil.
type Variable struct {
	name  string
	pos   syntax.Pos
	typ   Type
	value constant.Value
}

// NewVariable creates a variable of the given type with no constant value.
func NewVariable(name string, pos syntax.Pos, t Type) *Variable {
	return &Variable{name: name, pos: pos, typ: t}
}

// NewParameter creates a variable holding a compile-time constant.
func NewParameter(name string, pos syntax.Pos, t Type, value constant.Value) *Variable {
	return &Variable{name: name, pos: pos, typ: t, value: value}
}

// Name implements Symbol.
func (v *Variable) Name() string { return v.name }

// Pos implements Symbol.
func (v *Variable) Pos() syntax.Pos { return v.pos }

// Type implements ValueSymbol.
func (v *Variable) Type() Type { return v.typ }

// ConstantValue implements ValueSymbol; nil for non-constant variables.
func (v *Variable) ConstantValue() constant.Value { return v.value }
