// Package syntax defines the declaration syntax tree consumed by the type
// system: data types, dimensions, struct and enum members, typedefs, net type
// declarations, and timing controls. Nodes carry only the fields the semantic
// passes need; producing them from source text is the parser's job and is not
// part of this package.
package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// There are three main classes of nodes: Expressions, DataTypes, and
// Declarations. All nodes implement the Node interface. Nodes have exported
// fields so that they can be constructed outside this package.

// Node is the interface implemented by all syntax nodes.
type Node interface {
	Pos() Pos // position of first character belonging to the node
	aNode()   // marker method to restrict implementations to this package
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	aExpr()
}

// DataType is the interface for all data type nodes.
type DataType interface {
	Node
	aDataType()
}

// Decl is the interface for all declaration nodes.
type Decl interface {
	Node
	aDecl()
}

// ----------------------------------------------------------------------------
// Expressions
//
// The expression grammar here is deliberately small: the type system only
// consumes expressions inside dimensions, enum member initializers, and
// timing controls, always through the expression binder.

// Name represents an identifier.
type Name struct {
	Position Pos
	Value    string // identifier string
}

// IntLit represents an integer literal.
type IntLit struct {
	Position Pos
	Value    int64
}

// RealLit represents a real (floating-point) literal.
type RealLit struct {
	Position Pos
	Value    float64
}

// StringLit represents a string literal (decoded).
type StringLit struct {
	Position Pos
	Value    string
}

// Op identifies a unary or binary operator.
type Op int

const (
	Neg    Op = iota // unary -
	BitNot           // unary ~
	Add              // binary +
	Sub              // binary -
	Mul              // binary *
	Shl              // binary <<
	Shr              // binary >>
)

// Unary represents a unary operation.
type Unary struct {
	Position Pos
	Op       Op
	Operand  Expr
}

// Binary represents a binary operation.
type Binary struct {
	Position Pos
	Op       Op
	Left     Expr
	Right    Expr
}

// ----------------------------------------------------------------------------
// Dimensions

// Dimension represents a packed or unpacked dimension.
// [Left:Right] when Right is non-nil, or the size form [Left] otherwise.
type Dimension struct {
	Position Pos
	Left     Expr
	Right    Expr // nil for the single-expression size form
}

// ----------------------------------------------------------------------------
// Declarations

// TypedefDecl represents a typedef declaration: typedef Type Name;
type TypedefDecl struct {
	Position Pos
	Name     *Name
	Type     DataType
}

// ForwardCategory classifies a forward typedef declaration.
type ForwardCategory int

const (
	ForwardNone ForwardCategory = iota
	ForwardEnum
	ForwardStruct
	ForwardUnion
	ForwardClass
	ForwardInterfaceClass
)

// String returns the keyword text of the forward category.
func (c ForwardCategory) String() string {
	switch c {
	case ForwardNone:
		return "none"
	case ForwardEnum:
		return "enum"
	case ForwardStruct:
		return "struct"
	case ForwardUnion:
		return "union"
	case ForwardClass:
		return "class"
	case ForwardInterfaceClass:
		return "interface class"
	}
	panic("syntax: unknown forward category")
}

// ForwardTypedefDecl represents a forward typedef: typedef enum Name;
type ForwardTypedefDecl struct {
	Position Pos
	Name     *Name
	Category ForwardCategory
}

// NetTypeDecl represents a user-defined net type declaration:
// nettype Type Name [with Function];
type NetTypeDecl struct {
	Position     Pos
	Name         *Name
	Type         DataType
	WithFunction *Name // resolution function, nil if absent
}

// ----------------------------------------------------------------------------
// Pos implementations

func (n *Name) Pos() Pos               { return n.Position }
func (n *IntLit) Pos() Pos             { return n.Position }
func (n *RealLit) Pos() Pos            { return n.Position }
func (n *StringLit) Pos() Pos          { return n.Position }
func (n *Unary) Pos() Pos              { return n.Position }
func (n *Binary) Pos() Pos             { return n.Position }
func (n *Dimension) Pos() Pos          { return n.Position }
func (n *TypedefDecl) Pos() Pos        { return n.Position }
func (n *ForwardTypedefDecl) Pos() Pos { return n.Position }
func (n *NetTypeDecl) Pos() Pos        { return n.Position }

func (*Name) aNode()               {}
func (*IntLit) aNode()             {}
func (*RealLit) aNode()            {}
func (*StringLit) aNode()          {}
func (*Unary) aNode()              {}
func (*Binary) aNode()             {}
func (*Dimension) aNode()          {}
func (*TypedefDecl) aNode()        {}
func (*ForwardTypedefDecl) aNode() {}
func (*NetTypeDecl) aNode()        {}

func (*Name) aExpr()      {}
func (*IntLit) aExpr()    {}
func (*RealLit) aExpr()   {}
func (*StringLit) aExpr() {}
func (*Unary) aExpr()     {}
func (*Binary) aExpr()    {}

func (*TypedefDecl) aDecl()        {}
func (*ForwardTypedefDecl) aDecl() {}
func (*NetTypeDecl) aDecl()        {}
