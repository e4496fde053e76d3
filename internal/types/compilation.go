package types

import (
	"github.com/emberhdl/ember/internal/constant"
	"github.com/emberhdl/ember/internal/diag"
	"github.com/emberhdl/ember/internal/syntax"
)

// BoundExpr is the result of binding an expression: its type, its constant
// value if it folds to one, and whether binding failed.
type BoundExpr struct {
	Type     Type
	Constant constant.Value // nil if not a compile-time constant
	Bad      bool
}

// Binder is implemented by the expression binder. Type builders use it to
// evaluate the constant expressions inside dimensions and enum member
// initializers; everything else about expressions stays outside this
// package.
type Binder interface {
	Bind(expr syntax.Expr, scope *Scope) BoundExpr
}

// Config configures a Compilation.
type Config struct {
	// OnDiag is invoked for every diagnostic reported through the
	// compilation's sink. If nil, diagnostics are only collected.
	OnDiag diag.Handler

	// Binder evaluates constant expressions during type construction.
	// If nil, every such expression is treated as non-constant and the
	// affected types come out as the error type.
	Binder Binder
}

// Compilation owns every type node built during one elaboration pass: the
// uniquification cache for vector types, the root scope, and the diagnostic
// sink. It is not safe for concurrent use.
type Compilation struct {
	conf    Config
	sink    *diag.Sink
	root    *Scope
	vectors map[vectorKey]Type
	wire    *NetType
}

type vectorKey struct {
	width int
	flags IntegralFlags
}

// NewCompilation creates an empty compilation.
func NewCompilation(conf *Config) *Compilation {
	c := &Compilation{
		vectors: make(map[vectorKey]Type),
	}
	if conf != nil {
		c.conf = *conf
	}
	c.sink = diag.NewSink(c.conf.OnDiag)
	c.root = NewScope(nil, "root")
	c.wire = NewNetType(Wire, "wire", ScalarType(Logic, false))
	return c
}

// SetBinder installs the expression binder after construction. The binder
// reports through the compilation's sink, so it cannot exist before the
// compilation does.
func (c *Compilation) SetBinder(b Binder) {
	c.conf.Binder = b
}

// Diags returns the compilation's diagnostic sink.
func (c *Compilation) Diags() *diag.Sink {
	return c.sink
}

// RootScope returns the compilation's root scope.
func (c *Compilation) RootScope() *Scope {
	return c.root
}

// WireNetType returns the built-in wire net type.
func (c *Compilation) WireNetType() *NetType {
	return c.wire
}

// addDiag reports a diagnostic through the compilation's sink.
func (c *Compilation) addDiag(code diag.Code, pos syntax.Pos) *diag.Diagnostic {
	return c.sink.Add(code, pos)
}

// VectorType returns the shared integral type with the given width and
// flags: the [width-1:0] packed array over the flag-selected scalar.
// A second request with the same parameters returns the same instance, so
// identity comparison is a valid matching test for these types.
func (c *Compilation) VectorType(width int, flags IntegralFlags) Type {
	if width <= 0 {
		panic("types: vector width must be positive")
	}
	key := vectorKey{width: width, flags: flags}
	if t, ok := c.vectors[key]; ok {
		return t
	}
	elem := scalarOfFlags(flags)
	t := newPackedArray(elem, Range{Left: width - 1, Right: 0}, nil)
	c.vectors[key] = t
	return t
}

// predefinedType returns the predefined integer type of the given kind with
// explicit signedness. When the signedness matches the kind's default the
// shared predefined instance is returned; otherwise a structurally
// equivalent vector type is produced from the cache.
func (c *Compilation) predefinedType(kind IntegerKind, signed bool) Type {
	predef := PredefinedType(kind)
	if predef.signed == signed {
		return predef
	}

	flags := IntegralFlagsOf(predef)
	if signed {
		flags |= SignedFlag
	} else {
		flags &^= SignedFlag
	}
	return c.VectorType(predef.width, flags)
}

// evalInt binds an expression and requires an integer constant result.
func (c *Compilation) evalInt(e syntax.Expr, scope *Scope) (int, bool) {
	if c.conf.Binder == nil {
		return 0, false
	}
	res := c.conf.Binder.Bind(e, scope)
	if res.Bad || res.Constant == nil {
		return 0, false
	}
	bv, ok := res.Constant.(*constant.BitVector)
	if !ok {
		return 0, false
	}
	v, ok := bv.Int64()
	if !ok {
		return 0, false
	}
	return int(v), true
}

// evalDimension evaluates a dimension to a constant range. The size form
// [n] maps to [n-1:0] for packed dimensions and [0:n-1] for unpacked ones.
func (c *Compilation) evalDimension(dim *syntax.Dimension, scope *Scope, packed bool) (Range, bool) {
	left, ok := c.evalInt(dim.Left, scope)
	if !ok {
		return Range{}, false
	}
	if dim.Right == nil {
		if left <= 0 {
			return Range{}, false
		}
		if packed {
			return Range{Left: left - 1, Right: 0}, true
		}
		return Range{Left: 0, Right: left - 1}, true
	}
	right, ok := c.evalInt(dim.Right, scope)
	if !ok {
		return Range{}, false
	}
	return Range{Left: left, Right: right}, true
}
