package binder

import (
	"github.com/emberhdl/ember/internal/diag"
	"github.com/emberhdl/ember/internal/syntax"
	"github.com/emberhdl/ember/internal/types"
)

// TimingControl is the interface for bound timing controls.
type TimingControl interface {
	Bad() bool
	aTimingControl()
}

// InvalidTiming is a timing control that failed to bind.
type InvalidTiming struct{}

func (InvalidTiming) Bad() bool       { return true }
func (InvalidTiming) aTimingControl() {}

// Delay is a bound delay control with a numeric delay expression.
type Delay struct {
	Expr types.BoundExpr
}

func (*Delay) Bad() bool       { return false }
func (*Delay) aTimingControl() {}

// SignalEvent is a bound signal event: an optional edge over an expression.
type SignalEvent struct {
	Edge syntax.EdgeKind
	Expr types.BoundExpr
}

func (*SignalEvent) Bad() bool       { return false }
func (*SignalEvent) aTimingControl() {}

// EventList is a bound list of signal events joined by "or" or commas.
type EventList struct {
	Events []TimingControl
}

func (*EventList) Bad() bool       { return false }
func (*EventList) aTimingControl() {}

// BindTimingControl binds a timing control syntax node.
func (b *Binder) BindTimingControl(tc syntax.TimingControl, scope *types.Scope) TimingControl {
	switch tc := tc.(type) {
	case *syntax.DelayControl:
		return b.bindDelay(tc, scope)
	case *syntax.EventControl:
		return b.bindSignalEvent(syntax.EdgeNone, tc.EventName, scope)
	case *syntax.EventControlWithExpr:
		return b.bindEventExpr(tc.Expr, scope)
	}
	panic("binder: unhandled timing control syntax")
}

// bindDelay binds #expr. The delay must be numeric.
func (b *Binder) bindDelay(tc *syntax.DelayControl, scope *types.Scope) TimingControl {
	delay := b.Bind(tc.Delay, scope)
	if delay.Bad {
		return InvalidTiming{}
	}
	if !types.IsNumeric(delay.Type) {
		b.diags.Add(diag.DelayNotNumeric, tc.Delay.Pos()).Arg(delay.Type)
		return InvalidTiming{}
	}
	return &Delay{Expr: delay}
}

// bindEventExpr binds an event expression, flattening "or" lists into a
// single EventList.
func (b *Binder) bindEventExpr(e syntax.EventExpr, scope *types.Scope) TimingControl {
	switch e := e.(type) {
	case *syntax.SignalEventExpr:
		return b.bindSignalEvent(e.Edge, e.Expr, scope)

	case *syntax.ParenEventExpr:
		return b.bindEventExpr(e.Expr, scope)

	case *syntax.BinaryEventExpr:
		list := &EventList{}
		b.flattenEvents(e, scope, list)
		for _, ev := range list.Events {
			if ev.Bad() {
				return InvalidTiming{}
			}
		}
		return list
	}
	panic("binder: unhandled event expression syntax")
}

func (b *Binder) flattenEvents(e syntax.EventExpr, scope *types.Scope, list *EventList) {
	switch e := e.(type) {
	case *syntax.BinaryEventExpr:
		b.flattenEvents(e.Left, scope, list)
		b.flattenEvents(e.Right, scope, list)
	case *syntax.ParenEventExpr:
		b.flattenEvents(e.Expr, scope, list)
	default:
		list.Events = append(list.Events, b.bindEventExpr(e, scope))
	}
}

// bindSignalEvent binds one signal event. Aggregates cannot be waited on
// without an edge; edge events require an integral expression; a constant
// expression will never trigger and draws a warning.
func (b *Binder) bindSignalEvent(edge syntax.EdgeKind, expr syntax.Expr, scope *types.Scope) TimingControl {
	bound := b.Bind(expr, scope)
	if bound.Bad {
		return InvalidTiming{}
	}

	if edge == syntax.EdgeNone {
		if types.IsAggregate(bound.Type) || types.IsError(bound.Type) {
			b.diags.Add(diag.InvalidEventExpression, expr.Pos()).Arg(bound.Type)
			return InvalidTiming{}
		}
	} else if !types.IsIntegral(bound.Type) {
		b.diags.Add(diag.InvalidEdgeEventExpression, expr.Pos())
		return InvalidTiming{}
	}

	if bound.Constant != nil {
		b.diags.Add(diag.EventExpressionConstant, expr.Pos())
	}

	return &SignalEvent{Edge: edge, Expr: bound}
}
