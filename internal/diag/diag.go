// Package diag defines the diagnostic codes raised during type construction
// and binding, and the sink they are reported through. Reporting a diagnostic
// never alters control flow; callers substitute the error type and continue.
package diag

import (
	"fmt"
	"strings"

	"github.com/emberhdl/ember/internal/syntax"
)

// Code identifies a diagnostic.
type Code int

const (
	PackedDimsOnPredefinedType Code = iota
	NotAType
	InvalidEnumBase
	PackedMemberNotIntegral
	PackedMemberHasInitializer
	ForwardTypedefDoesNotMatch
	DelayNotNumeric
	InvalidEventExpression
	InvalidEdgeEventExpression
	EventExpressionConstant
	UndeclaredIdentifier
	NotAValue
	ExpressionNotConstant
	NoteDeclarationHere
)

// messages holds the format string for each code. Operands added with Arg
// fill the %s/%v verbs in order.
var messages = map[Code]string{
	PackedDimsOnPredefinedType: "packed dimensions not allowed on predefined type '%v'",
	NotAType:                   "'%v' is not a type",
	InvalidEnumBase:            "invalid enum base type %v",
	PackedMemberNotIntegral:    "packed members must be of integral type (not %v)",
	PackedMemberHasInitializer: "packed members can not have initializers",
	ForwardTypedefDoesNotMatch: "forward typedef basic type '%v' does not match declaration",
	DelayNotNumeric:            "delay expression type %v is not numeric",
	InvalidEventExpression:     "invalid event expression type %v",
	InvalidEdgeEventExpression: "edge expressions must be integral",
	EventExpressionConstant:    "event expression is constant and will never change",
	UndeclaredIdentifier:       "use of undeclared identifier '%v'",
	NotAValue:                  "'%v' does not name a value",
	ExpressionNotConstant:      "expression is not constant",
	NoteDeclarationHere:        "declared here",
}

// String returns the code's message template name.
func (c Code) String() string {
	if msg, ok := messages[c]; ok {
		return msg
	}
	panic("diag: unknown diagnostic code")
}

// Severity classifies a diagnostic.
type Severity int

const (
	Error Severity = iota
	Warning
	Note
)

// severities lists the codes that are not errors.
var severities = map[Code]Severity{
	EventExpressionConstant: Warning,
	NoteDeclarationHere:     Note,
}

// Diagnostic is a single reported diagnostic. Operands and notes may be
// appended after creation, builder style, while the diagnostic is still
// owned by the reporting call.
type Diagnostic struct {
	Code  Code
	Pos   syntax.Pos
	Args  []any
	Notes []*Diagnostic
}

// Severity returns the diagnostic's severity.
func (d *Diagnostic) Severity() Severity {
	if sev, ok := severities[d.Code]; ok {
		return sev
	}
	return Error
}

// Arg appends an operand to the diagnostic and returns it for chaining.
func (d *Diagnostic) Arg(arg any) *Diagnostic {
	d.Args = append(d.Args, arg)
	return d
}

// AddNote attaches a note diagnostic at the given position.
func (d *Diagnostic) AddNote(code Code, pos syntax.Pos) *Diagnostic {
	n := &Diagnostic{Code: code, Pos: pos}
	d.Notes = append(d.Notes, n)
	return n
}

// String formats the diagnostic with its operands interpolated.
func (d *Diagnostic) String() string {
	var buf strings.Builder
	if d.Pos.IsValid() {
		buf.WriteString(d.Pos.String())
		buf.WriteString(": ")
	}
	fmt.Fprintf(&buf, messages[d.Code], d.Args...)
	return buf.String()
}

// Handler is called for each diagnostic added to a sink.
type Handler func(*Diagnostic)

// Sink collects diagnostics. The zero value is ready to use.
type Sink struct {
	diags   []*Diagnostic
	handler Handler
}

// NewSink creates a sink that additionally forwards each diagnostic to
// handler. A nil handler only collects.
func NewSink(handler Handler) *Sink {
	return &Sink{handler: handler}
}

// Add reports a diagnostic and returns it so the caller can attach operands.
func (s *Sink) Add(code Code, pos syntax.Pos) *Diagnostic {
	d := &Diagnostic{Code: code, Pos: pos}
	s.diags = append(s.diags, d)
	if s.handler != nil {
		s.handler(d)
	}
	return d
}

// All returns every diagnostic reported so far, in order.
func (s *Sink) All() []*Diagnostic {
	return s.diags
}

// Count returns the number of diagnostics with the given severity.
func (s *Sink) Count(sev Severity) int {
	n := 0
	for _, d := range s.diags {
		if d.Severity() == sev {
			n++
		}
	}
	return n
}

// HasErrors reports whether any error-severity diagnostic was reported.
func (s *Sink) HasErrors() bool {
	return s.Count(Error) > 0
}
