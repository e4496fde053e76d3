package binder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberhdl/ember/internal/constant"
	"github.com/emberhdl/ember/internal/diag"
	"github.com/emberhdl/ember/internal/syntax"
	"github.com/emberhdl/ember/internal/types"
)

func testBinder() (*Binder, *diag.Sink, *types.Scope) {
	sink := diag.NewSink(nil)
	return New(sink), sink, types.NewScope(nil, "test")
}

func num(v int64) *syntax.IntLit {
	return &syntax.IntLit{Value: v}
}

func name(s string) *syntax.Name {
	return &syntax.Name{Value: s}
}

func bin(op syntax.Op, l, r syntax.Expr) *syntax.Binary {
	return &syntax.Binary{Op: op, Left: l, Right: r}
}

func requireInt(t *testing.T, res types.BoundExpr) int64 {
	t.Helper()
	require.False(t, res.Bad)
	bv, ok := res.Constant.(*constant.BitVector)
	require.True(t, ok, "constant is %v", res.Constant)
	v, ok := bv.Int64()
	require.True(t, ok)
	return v
}

func TestBindLiterals(t *testing.T) {
	b, sink, scope := testBinder()

	res := b.Bind(num(42), scope)
	assert.Equal(t, int64(42), requireInt(t, res))
	assert.Same(t, types.Type(types.PredefinedType(types.Int)), res.Type)

	res = b.Bind(&syntax.RealLit{Value: 1.5}, scope)
	assert.Equal(t, constant.Real(1.5), res.Constant)
	assert.Same(t, types.RealType, res.Type)

	res = b.Bind(&syntax.StringLit{Value: "hi"}, scope)
	assert.Equal(t, constant.Str("hi"), res.Constant)

	assert.False(t, sink.HasErrors())
}

func TestConstantFolding(t *testing.T) {
	tests := []struct {
		name string
		expr syntax.Expr
		want int64
	}{
		{"add", bin(syntax.Add, num(2), num(3)), 5},
		{"sub", bin(syntax.Sub, num(2), num(3)), -1},
		{"mul", bin(syntax.Mul, num(6), num(7)), 42},
		{"shl", bin(syntax.Shl, num(1), num(4)), 16},
		{"shr", bin(syntax.Shr, num(32), num(2)), 8},
		{"neg", &syntax.Unary{Op: syntax.Neg, Operand: num(5)}, -5},
		{"bitnot", &syntax.Unary{Op: syntax.BitNot, Operand: num(0)}, -1},
		{"nested", bin(syntax.Add, num(1), bin(syntax.Mul, num(2), num(3))), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, sink, scope := testBinder()
			got := requireInt(t, b.Bind(tt.expr, scope))
			assert.Equal(t, tt.want, got)
			assert.False(t, sink.HasErrors())
		})
	}
}

func TestBindNames(t *testing.T) {
	t.Run("parameter folds to its value", func(t *testing.T) {
		b, sink, scope := testBinder()
		scope.Insert(types.NewParameter("W", syntax.Pos{},
			types.PredefinedType(types.Int), constant.NewBitVector(32, true, 16)))

		got := requireInt(t, b.Bind(bin(syntax.Sub, name("W"), num(1)), scope))
		assert.Equal(t, int64(15), got)
		assert.False(t, sink.HasErrors())
	})

	t.Run("variable has a type but no constant", func(t *testing.T) {
		b, sink, scope := testBinder()
		scope.Insert(types.NewVariable("x", syntax.Pos{}, types.PredefinedType(types.Int)))

		res := b.Bind(name("x"), scope)
		assert.False(t, res.Bad)
		assert.Nil(t, res.Constant)
		assert.False(t, sink.HasErrors())

		// But it cannot participate in constant arithmetic.
		res = b.Bind(bin(syntax.Add, name("x"), num(1)), scope)
		assert.True(t, res.Bad)
		assert.True(t, sink.HasErrors())
	})

	t.Run("undeclared", func(t *testing.T) {
		b, sink, scope := testBinder()
		res := b.Bind(name("nope"), scope)
		assert.True(t, res.Bad)
		assert.True(t, types.IsError(res.Type))
		require.Len(t, sink.All(), 1)
		assert.Equal(t, diag.UndeclaredIdentifier, sink.All()[0].Code)
	})

	t.Run("name found in parent scope", func(t *testing.T) {
		b, _, scope := testBinder()
		scope.Insert(types.NewParameter("N", syntax.Pos{},
			types.PredefinedType(types.Int), constant.NewBitVector(32, true, 3)))
		child := types.NewScope(scope, "child")

		got := requireInt(t, b.Bind(name("N"), child))
		assert.Equal(t, int64(3), got)
	})
}

func TestXPropagation(t *testing.T) {
	b, sink, scope := testBinder()
	scope.Insert(types.NewParameter("X", syntax.Pos{},
		types.PredefinedType(types.Integer), constant.FillX(32, true)))

	res := b.Bind(bin(syntax.Add, name("X"), num(1)), scope)
	require.False(t, res.Bad)
	bv, ok := res.Constant.(*constant.BitVector)
	require.True(t, ok)
	assert.True(t, bv.IsAllX())
	assert.False(t, sink.HasErrors())
}

func TestBindDelayControl(t *testing.T) {
	t.Run("numeric delay", func(t *testing.T) {
		b, sink, scope := testBinder()
		tc := b.BindTimingControl(&syntax.DelayControl{Delay: num(10)}, scope)
		d, ok := tc.(*Delay)
		require.True(t, ok)
		assert.Equal(t, int64(10), requireInt(t, d.Expr))
		assert.False(t, sink.HasErrors())
	})

	t.Run("real delay", func(t *testing.T) {
		b, sink, scope := testBinder()
		tc := b.BindTimingControl(&syntax.DelayControl{Delay: &syntax.RealLit{Value: 1.5}}, scope)
		assert.False(t, tc.Bad())
		assert.False(t, sink.HasErrors())
	})

	t.Run("non numeric delay", func(t *testing.T) {
		b, sink, scope := testBinder()
		tc := b.BindTimingControl(&syntax.DelayControl{Delay: &syntax.StringLit{Value: "ns"}}, scope)
		assert.True(t, tc.Bad())
		require.Len(t, sink.All(), 1)
		assert.Equal(t, diag.DelayNotNumeric, sink.All()[0].Code)
	})
}

func TestBindEventControls(t *testing.T) {
	withSignal := func(scope *types.Scope, name string, t types.Type) {
		scope.Insert(types.NewVariable(name, syntax.Pos{}, t))
	}

	t.Run("plain signal", func(t *testing.T) {
		b, sink, scope := testBinder()
		withSignal(scope, "clk", types.ScalarType(types.Logic, false))

		tc := b.BindTimingControl(&syntax.EventControl{EventName: name("clk")}, scope)
		se, ok := tc.(*SignalEvent)
		require.True(t, ok)
		assert.Equal(t, syntax.EdgeNone, se.Edge)
		assert.False(t, sink.HasErrors())
	})

	t.Run("edge on integral signal", func(t *testing.T) {
		b, sink, scope := testBinder()
		withSignal(scope, "clk", types.ScalarType(types.Logic, false))

		tc := b.BindTimingControl(&syntax.EventControlWithExpr{
			Expr: &syntax.SignalEventExpr{Edge: syntax.PosEdge, Expr: name("clk")},
		}, scope)
		se, ok := tc.(*SignalEvent)
		require.True(t, ok)
		assert.Equal(t, syntax.PosEdge, se.Edge)
		assert.False(t, sink.HasErrors())
	})

	t.Run("edge on real signal", func(t *testing.T) {
		b, sink, scope := testBinder()
		withSignal(scope, "v", types.RealType)

		tc := b.BindTimingControl(&syntax.EventControlWithExpr{
			Expr: &syntax.SignalEventExpr{Edge: syntax.NegEdge, Expr: name("v")},
		}, scope)
		assert.True(t, tc.Bad())
		require.Len(t, sink.All(), 1)
		assert.Equal(t, diag.InvalidEdgeEventExpression, sink.All()[0].Code)
	})

	t.Run("real signal without edge is allowed", func(t *testing.T) {
		b, sink, scope := testBinder()
		withSignal(scope, "v", types.RealType)

		tc := b.BindTimingControl(&syntax.EventControlWithExpr{
			Expr: &syntax.SignalEventExpr{Edge: syntax.EdgeNone, Expr: name("v")},
		}, scope)
		assert.False(t, tc.Bad())
		assert.False(t, sink.HasErrors())
	})

	t.Run("constant event warns", func(t *testing.T) {
		b, sink, scope := testBinder()
		tc := b.BindTimingControl(&syntax.EventControlWithExpr{
			Expr: &syntax.SignalEventExpr{Edge: syntax.EdgeNone, Expr: num(1)},
		}, scope)
		assert.False(t, tc.Bad())
		assert.False(t, sink.HasErrors())
		assert.Equal(t, 1, sink.Count(diag.Warning))
		assert.Equal(t, diag.EventExpressionConstant, sink.All()[0].Code)
	})

	t.Run("event list flattens", func(t *testing.T) {
		b, sink, scope := testBinder()
		withSignal(scope, "clk", types.ScalarType(types.Logic, false))
		withSignal(scope, "rst", types.ScalarType(types.Logic, false))
		withSignal(scope, "en", types.ScalarType(types.Logic, false))

		// @(posedge clk or (negedge rst or en))
		tc := b.BindTimingControl(&syntax.EventControlWithExpr{
			Expr: &syntax.BinaryEventExpr{
				Left: &syntax.SignalEventExpr{Edge: syntax.PosEdge, Expr: name("clk")},
				Right: &syntax.ParenEventExpr{Expr: &syntax.BinaryEventExpr{
					Left:  &syntax.SignalEventExpr{Edge: syntax.NegEdge, Expr: name("rst")},
					Right: &syntax.SignalEventExpr{Edge: syntax.EdgeNone, Expr: name("en")},
				}},
			},
		}, scope)

		list, ok := tc.(*EventList)
		require.True(t, ok)
		require.Len(t, list.Events, 3)
		assert.Equal(t, syntax.PosEdge, list.Events[0].(*SignalEvent).Edge)
		assert.Equal(t, syntax.NegEdge, list.Events[1].(*SignalEvent).Edge)
		assert.Equal(t, syntax.EdgeNone, list.Events[2].(*SignalEvent).Edge)
		assert.False(t, sink.HasErrors())
	})

	t.Run("bad member poisons the list", func(t *testing.T) {
		b, sink, scope := testBinder()
		withSignal(scope, "clk", types.ScalarType(types.Logic, false))

		tc := b.BindTimingControl(&syntax.EventControlWithExpr{
			Expr: &syntax.BinaryEventExpr{
				Left:  &syntax.SignalEventExpr{Edge: syntax.PosEdge, Expr: name("clk")},
				Right: &syntax.SignalEventExpr{Edge: syntax.EdgeNone, Expr: name("gone")},
			},
		}, scope)
		assert.True(t, tc.Bad())
		assert.True(t, sink.HasErrors())
	})
}
