package types

import (
	"fmt"
	"sort"
	"strings"

	"github.com/emberhdl/ember/internal/constant"
	"github.com/emberhdl/ember/internal/syntax"
)

// Symbol is a named entity that can be inserted into a scope: type aliases,
// enum values, net types, and collaborator-defined symbols such as
// parameters. The interface is deliberately open so that other packages can
// contribute symbol kinds.
type Symbol interface {
	Name() string
	Pos() syntax.Pos
}

// ValueSymbol is implemented by symbols that carry a typed compile-time
// value, such as enum values and parameters. The expression binder uses it
// to fold names into constants.
type ValueSymbol interface {
	Symbol
	Type() Type
	ConstantValue() constant.Value
}

// Scope represents a lexical scope. Scopes form a tree rooted at the
// compilation's root scope.
type Scope struct {
	parent   *Scope
	children []*Scope
	elems    map[string]Symbol
	comment  string // debugging comment (e.g., "enum", "package p")
}

// NewScope creates a new scope with the given parent.
func NewScope(parent *Scope, comment string) *Scope {
	s := &Scope{
		parent:  parent,
		elems:   make(map[string]Symbol),
		comment: comment,
	}
	if parent != nil {
		parent.children = append(parent.children, s)
	}
	return s
}

// Parent returns the parent scope, or nil for the root scope.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// Comment returns the scope's comment (for debugging).
func (s *Scope) Comment() string {
	return s.comment
}

// Lookup returns the symbol with the given name in this scope only.
// Returns nil if not found (does not search parent scopes).
func (s *Scope) Lookup(name string) Symbol {
	return s.elems[name]
}

// LookupParent returns the symbol with the given name by searching from this
// scope up through all parent scopes. Returns the symbol and the scope in
// which it was found, or (nil, nil) if not found.
func (s *Scope) LookupParent(name string) (Symbol, *Scope) {
	for scope := s; scope != nil; scope = scope.parent {
		if sym := scope.elems[name]; sym != nil {
			return sym, scope
		}
	}
	return nil, nil
}

// Insert inserts a symbol into the scope. If a symbol with the same name
// already exists, returns the existing symbol and does not insert.
// Otherwise, returns nil.
func (s *Scope) Insert(sym Symbol) Symbol {
	name := sym.Name()
	if existing := s.elems[name]; existing != nil {
		return existing
	}
	s.elems[name] = sym
	return nil
}

// Names returns the names of all symbols in the scope, sorted.
func (s *Scope) Names() []string {
	names := make([]string, 0, len(s.elems))
	for name := range s.elems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NumSymbols returns the number of symbols in the scope.
func (s *Scope) NumSymbols() int {
	return len(s.elems)
}

// String returns a string representation of the scope for debugging.
func (s *Scope) String() string {
	var buf strings.Builder
	s.writeTo(&buf, 0)
	return buf.String()
}

func (s *Scope) writeTo(buf *strings.Builder, indent int) {
	prefix := strings.Repeat("  ", indent)
	fmt.Fprintf(buf, "%sscope %s {\n", prefix, s.comment)
	for _, name := range s.Names() {
		fmt.Fprintf(buf, "%s  %s\n", prefix, name)
	}
	for _, child := range s.children {
		child.writeTo(buf, indent+1)
	}
	fmt.Fprintf(buf, "%s}\n", prefix)
}
