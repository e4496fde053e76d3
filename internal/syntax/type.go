package syntax

// IntegerKind identifies an integer type keyword.
type IntegerKind int

const (
	Bit IntegerKind = iota
	Logic
	Reg
	Byte
	ShortInt
	Int
	LongInt
	Integer
	Time
)

// String returns the keyword text of the integer kind.
func (k IntegerKind) String() string {
	switch k {
	case Bit:
		return "bit"
	case Logic:
		return "logic"
	case Reg:
		return "reg"
	case Byte:
		return "byte"
	case ShortInt:
		return "shortint"
	case Int:
		return "int"
	case LongInt:
		return "longint"
	case Integer:
		return "integer"
	case Time:
		return "time"
	}
	panic("syntax: unknown integer kind")
}

// IsPredefined reports whether the kind names a predefined integer type
// (byte, shortint, int, longint, integer, time) rather than a vector base
// keyword (bit, logic, reg).
func (k IntegerKind) IsPredefined() bool {
	switch k {
	case Bit, Logic, Reg:
		return false
	default:
		return true
	}
}

// Signing records an explicit signed/unsigned keyword on a type.
type Signing int

const (
	SigningUnset Signing = iota
	SigningSigned
	SigningUnsigned
)

// KeywordKind identifies a single-keyword data type.
type KeywordKind int

const (
	RealType KeywordKind = iota
	RealTimeType
	ShortRealType
	StringType
	CHandleType
	EventType
	VoidType
)

// IntegerType represents an integer data type with optional signing and
// packed dimensions: e.g. "logic signed [7:0]" or "int".
type IntegerType struct {
	Position Pos
	Kind     IntegerKind
	Signing  Signing
	Dims     []*Dimension
}

// KeywordType represents a data type named by a single keyword:
// real, realtime, shortreal, string, chandle, event, void.
type KeywordType struct {
	Position Pos
	Kind     KeywordKind
}

// EnumMember represents one member of an enum declaration.
type EnumMember struct {
	Position Pos
	Name     *Name
	Init     Expr // nil if no explicit initializer
}

// EnumType represents an enum declaration with an optional base type.
type EnumType struct {
	Position Pos
	Base     DataType // nil for the default int base
	Members  []*EnumMember
}

// Declarator represents one declared name within a struct member,
// with optional unpacked dimensions and initializer.
type Declarator struct {
	Position Pos
	Name     *Name
	Dims     []*Dimension // unpacked dimensions on the name
	Init     Expr         // nil if no initializer
}

// StructMember represents one member declaration within a struct,
// possibly declaring several names of the same type.
type StructMember struct {
	Position    Pos
	Type        DataType
	Declarators []*Declarator
}

// StructType represents a packed or unpacked struct declaration.
type StructType struct {
	Position Pos
	Packed   bool
	Signing  Signing
	Members  []*StructMember
	Dims     []*Dimension // packed dimensions following the closing brace
}

// NamedType represents a reference to a named type, with optional packed
// dimensions applied to the name.
type NamedType struct {
	Position Pos
	Name     *Name
	Dims     []*Dimension
}

// ImplicitType represents an omitted data type, which defaults to a logic
// vector: e.g. the type of "input signed [3:0] x".
type ImplicitType struct {
	Position Pos
	Signing  Signing
	Dims     []*Dimension
}

func (n *IntegerType) Pos() Pos  { return n.Position }
func (n *KeywordType) Pos() Pos  { return n.Position }
func (n *EnumMember) Pos() Pos   { return n.Position }
func (n *EnumType) Pos() Pos     { return n.Position }
func (n *Declarator) Pos() Pos   { return n.Position }
func (n *StructMember) Pos() Pos { return n.Position }
func (n *StructType) Pos() Pos   { return n.Position }
func (n *NamedType) Pos() Pos    { return n.Position }
func (n *ImplicitType) Pos() Pos { return n.Position }

func (*IntegerType) aNode()  {}
func (*KeywordType) aNode()  {}
func (*EnumMember) aNode()   {}
func (*EnumType) aNode()     {}
func (*Declarator) aNode()   {}
func (*StructMember) aNode() {}
func (*StructType) aNode()   {}
func (*NamedType) aNode()    {}
func (*ImplicitType) aNode() {}

func (*IntegerType) aDataType()  {}
func (*KeywordType) aDataType()  {}
func (*EnumType) aDataType()     {}
func (*StructType) aDataType()   {}
func (*NamedType) aDataType()    {}
func (*ImplicitType) aDataType() {}
