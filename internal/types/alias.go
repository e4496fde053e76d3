package types

import (
	"github.com/emberhdl/ember/internal/diag"
	"github.com/emberhdl/ember/internal/syntax"
)

// Alias represents a typedef. The target is bound lazily from its syntax on
// first use; the canonical type is memoized on this node after the alias
// chain has been walked.
type Alias struct {
	typ
	name         string
	pos          syntax.Pos
	comp         *Compilation
	scope        *Scope
	targetSyntax syntax.DataType
	target       Type
	canonical    Type
	firstForward *ForwardTypedef
	syn          syntax.Node
}

// NewAlias creates an alias with an already-resolved target. Used for
// programmatic typedefs and by tests.
func NewAlias(c *Compilation, name string, pos syntax.Pos, target Type) *Alias {
	return &Alias{name: name, pos: pos, comp: c, target: target}
}

// AliasFromSyntax creates an alias from a typedef declaration. The caller
// inserts it into the declaring scope; the target type is not bound until
// first use.
func AliasFromSyntax(c *Compilation, node *syntax.TypedefDecl, scope *Scope) *Alias {
	return &Alias{
		name:         node.Name.Value,
		pos:          node.Name.Position,
		comp:         c,
		scope:        scope,
		targetSyntax: node.Type,
		syn:          node,
	}
}

// Name implements Symbol.
func (a *Alias) Name() string { return a.name }

// Pos implements Symbol.
func (a *Alias) Pos() syntax.Pos { return a.pos }

// Target returns the alias target, binding it from syntax on first use.
func (a *Alias) Target() Type {
	if a.target == nil {
		a.target = FromSyntax(a.comp, a.targetSyntax, a.scope, false)
	}
	return a.target
}

func (a *Alias) Kind() Kind          { return KindAlias }
func (a *Alias) Syntax() syntax.Node { return a.syn }

// Canonical implements Type, resolving the alias chain to the underlying
// non-alias type. The result is cached on this node; intermediate aliases
// compute their own when asked.
func (a *Alias) Canonical() Type {
	if a.canonical == nil {
		a.resolveCanonical()
	}
	return a.canonical
}

// resolveCanonical walks the alias chain to a non-alias type. A cycle among
// aliases is a defect in the declaration machinery, not a user error, so it
// aborts rather than loops.
func (a *Alias) resolveCanonical() {
	seen := map[*Alias]bool{a: true}
	t := a.Target()
	for {
		next, ok := t.(*Alias)
		if !ok {
			break
		}
		if seen[next] {
			panic("types: alias cycle through " + a.name)
		}
		seen[next] = true
		t = next.Target()
	}
	a.canonical = t
}

// String implements Type.
func (a *Alias) String() string { return a.name }

// AddForwardDecl records a forward typedef for this alias, appended to the
// chain of previously seen forward declarations.
func (a *Alias) AddForwardDecl(decl *ForwardTypedef) {
	if a.firstForward == nil {
		a.firstForward = decl
	} else {
		a.firstForward.addForwardDecl(decl)
	}
}

// FirstForwardDecl returns the head of the forward declaration chain, or
// nil.
func (a *Alias) FirstForwardDecl() *ForwardTypedef { return a.firstForward }

// CheckForwardDecls verifies that every forward declaration of this typedef
// agrees with the actual definition's category, reporting the first
// mismatch.
func (a *Alias) CheckForwardDecls() {
	var category syntax.ForwardCategory
	switch a.Target().Kind() {
	case KindPackedStruct, KindUnpackedStruct:
		category = syntax.ForwardStruct
	case KindEnum:
		category = syntax.ForwardEnum
	default:
		return
	}

	for fwd := a.firstForward; fwd != nil; fwd = fwd.next {
		if fwd.category != syntax.ForwardNone && fwd.category != category {
			d := a.comp.addDiag(diag.ForwardTypedefDoesNotMatch, fwd.pos)
			d.Arg(fwd.category.String())
			d.AddNote(diag.NoteDeclarationHere, a.pos)
			return
		}
	}
}

// ForwardTypedef is a forward typedef declaration, possibly constraining
// the category of the eventual definition.
type ForwardTypedef struct {
	name     string
	pos      syntax.Pos
	category syntax.ForwardCategory
	next     *ForwardTypedef
}

// ForwardTypedefFromSyntax creates a forward typedef symbol.
func ForwardTypedefFromSyntax(node *syntax.ForwardTypedefDecl) *ForwardTypedef {
	return &ForwardTypedef{
		name:     node.Name.Value,
		pos:      node.Name.Position,
		category: node.Category,
	}
}

// Name implements Symbol.
func (f *ForwardTypedef) Name() string { return f.name }

// Pos implements Symbol.
func (f *ForwardTypedef) Pos() syntax.Pos { return f.pos }

// Category returns the declared category constraint.
func (f *ForwardTypedef) Category() syntax.ForwardCategory { return f.category }

// NextForwardDecl returns the next forward declaration in the chain, or
// nil.
func (f *ForwardTypedef) NextForwardDecl() *ForwardTypedef { return f.next }

func (f *ForwardTypedef) addForwardDecl(decl *ForwardTypedef) {
	last := f
	for last.next != nil {
		last = last.next
	}
	last.next = decl
}
