package types

import (
	"github.com/emberhdl/ember/internal/syntax"
)

// NetKind identifies the kind of net a net type describes.
type NetKind int

const (
	UserDefined NetKind = iota
	Wire
	WAnd
	WOr
	Tri
	TriAnd
	TriOr
	Tri0
	Tri1
	TriReg
	Supply0
	Supply1
	UWire
)

// NetType is a net type symbol: a data-flow-carrying declared type, possibly
// aliasing another net type. Built-in net types are resolved at
// construction; user-defined ones resolve lazily on first access. It is a
// symbol, not a Type; the carried data type is reached through DataType.
type NetType struct {
	netKind    NetKind
	name       string
	pos        syntax.Pos
	comp       *Compilation
	scope      *Scope
	declSyntax *syntax.NetTypeDecl

	resolved bool
	alias    *NetType
	dataType Type
	resolver Symbol
}

// NewNetType creates a built-in net type carrying the given data type.
// It is resolved at construction.
func NewNetType(kind NetKind, name string, dataType Type) *NetType {
	return &NetType{
		netKind:  kind,
		name:     name,
		resolved: true,
		dataType: dataType,
	}
}

// NetTypeFromSyntax creates a user-defined net type from its declaration.
// Resolution of the underlying type is deferred to first use, except for
// enum data types, which are resolved eagerly so the enum's members are
// visible to name lookup as soon as the net type is added to its scope.
func NetTypeFromSyntax(c *Compilation, node *syntax.NetTypeDecl, scope *Scope) *NetType {
	nt := &NetType{
		netKind:    UserDefined,
		name:       node.Name.Value,
		pos:        node.Name.Position,
		comp:       c,
		scope:      scope,
		declSyntax: node,
	}

	if _, ok := node.Type.(*syntax.EnumType); ok {
		nt.dataType = FromSyntax(c, node.Type, scope, false)
	}

	return nt
}

// Name implements Symbol.
func (n *NetType) Name() string { return n.name }

// Pos implements Symbol.
func (n *NetType) Pos() syntax.Pos { return n.pos }

// NetKind returns the kind of net.
func (n *NetType) NetKind() NetKind { return n.netKind }

// DataType returns the net type's underlying data type, resolving it on
// first use.
func (n *NetType) DataType() Type {
	if !n.resolved {
		n.resolve()
	}
	return n.dataType
}

// AliasTarget returns the net type this one aliases, or nil, resolving on
// first use.
func (n *NetType) AliasTarget() *NetType {
	if !n.resolved {
		n.resolve()
	}
	return n.alias
}

// Canonical returns the net type at the end of the alias chain. A cycle
// among net type aliases is a defect in the declaration machinery, not a
// user error, so it aborts rather than loops.
func (n *NetType) Canonical() *NetType {
	seen := map[*NetType]bool{n: true}
	cur := n
	for {
		target := cur.AliasTarget()
		if target == nil {
			return cur
		}
		if seen[target] {
			panic("types: net type alias cycle through " + n.name)
		}
		seen[target] = true
		cur = target
	}
}

// ResolutionFunction returns the user resolution function symbol, or nil,
// resolving on first use.
func (n *NetType) ResolutionFunction() Symbol {
	if !n.resolved {
		n.resolve()
	}
	return n.resolver
}

// resolve binds the declared type exactly once. The declared type syntax is
// either a link to another net type this one aliases, or an ordinary data
// type used as the basis for a custom net type.
func (n *NetType) resolve() {
	if n.resolved {
		panic("types: net type resolved twice")
	}
	n.resolved = true

	decl := n.declSyntax
	if decl == nil {
		panic("types: unresolved net type without declaration syntax")
	}

	if decl.WithFunction != nil {
		if sym, _ := n.scope.LookupParent(decl.WithFunction.Value); sym != nil {
			n.resolver = sym
		}
	}

	// Enum data types were resolved eagerly at construction.
	if n.dataType != nil {
		return
	}

	if named, ok := decl.Type.(*syntax.NamedType); ok {
		if sym, _ := n.scope.LookupParent(named.Name.Value); sym != nil {
			if other, ok := sym.(*NetType); ok {
				n.alias = other
				n.dataType = other.Canonical().DataType()
				return
			}
		}
	}

	n.dataType = FromSyntax(n.comp, decl.Type, n.scope, false)
}
