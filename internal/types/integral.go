package types

// IntegerKind identifies a predefined integer type.
type IntegerKind int

const (
	ShortInt IntegerKind = iota
	Int
	LongInt
	Byte
	Integer
	Time
)

// Predefined width, signedness, and four-state tables.

func predefinedWidth(kind IntegerKind) int {
	switch kind {
	case ShortInt:
		return 16
	case Int:
		return 32
	case LongInt:
		return 64
	case Byte:
		return 8
	case Integer:
		return 32
	case Time:
		return 64
	}
	panic("types: unknown integer kind")
}

func predefinedSigned(kind IntegerKind) bool {
	switch kind {
	case ShortInt, Int, LongInt, Byte, Integer:
		return true
	case Time:
		return false
	}
	panic("types: unknown integer kind")
}

func predefinedFourState(kind IntegerKind) bool {
	switch kind {
	case ShortInt, Int, LongInt, Byte:
		return false
	case Integer, Time:
		return true
	}
	panic("types: unknown integer kind")
}

// ScalarKind identifies a single-bit type.
type ScalarKind int

const (
	Bit ScalarKind = iota
	Logic
	Reg
)

// IntegralFlags projects an integral type's signedness, four-state-ness,
// and reg-ness. The empty set means "not integral".
type IntegralFlags uint8

const (
	SignedFlag IntegralFlags = 1 << iota
	FourStateFlag
	RegFlag
)

// integral carries the attributes shared by every integral type variant.
type integral struct {
	typ
	width     int
	signed    bool
	fourState bool
}

// PredefinedInteger represents one of the predefined integer types:
// shortint, int, longint, byte, integer, time. Only the default-signedness
// instances exist as this variant; requesting the opposite signedness yields
// a structurally equivalent vector type instead.
type PredefinedInteger struct {
	integral
	kind IntegerKind
}

// IntegerKind returns which predefined integer type this is.
func (t *PredefinedInteger) IntegerKind() IntegerKind { return t.kind }

func (t *PredefinedInteger) Kind() Kind      { return KindPredefinedInteger }
func (t *PredefinedInteger) Canonical() Type { return t }

// String implements Type.
func (t *PredefinedInteger) String() string {
	switch t.kind {
	case ShortInt:
		return "shortint"
	case Int:
		return "int"
	case LongInt:
		return "longint"
	case Byte:
		return "byte"
	case Integer:
		return "integer"
	case Time:
		return "time"
	}
	panic("types: unknown integer kind")
}

// Scalar represents the single-bit types bit, logic, and reg.
type Scalar struct {
	integral
	kind ScalarKind
}

// ScalarKind returns which scalar type this is.
func (t *Scalar) ScalarKind() ScalarKind { return t.kind }

func (t *Scalar) Kind() Kind      { return KindScalar }
func (t *Scalar) Canonical() Type { return t }

// String implements Type.
func (t *Scalar) String() string {
	var name string
	switch t.kind {
	case Bit:
		name = "bit"
	case Logic:
		name = "logic"
	case Reg:
		name = "reg"
	default:
		panic("types: unknown scalar kind")
	}
	if t.signed {
		return name + " signed"
	}
	return name
}

// The predefined integer singletons, one per kind at default signedness.
var predefinedTypes = [...]*PredefinedInteger{
	ShortInt: newPredefined(ShortInt),
	Int:      newPredefined(Int),
	LongInt:  newPredefined(LongInt),
	Byte:     newPredefined(Byte),
	Integer:  newPredefined(Integer),
	Time:     newPredefined(Time),
}

func newPredefined(kind IntegerKind) *PredefinedInteger {
	return &PredefinedInteger{
		integral: integral{
			width:     predefinedWidth(kind),
			signed:    predefinedSigned(kind),
			fourState: predefinedFourState(kind),
		},
		kind: kind,
	}
}

// PredefinedType returns the shared instance of a predefined integer type
// at its default signedness.
func PredefinedType(kind IntegerKind) *PredefinedInteger {
	return predefinedTypes[kind]
}

// The scalar singletons, indexed by kind and signedness.
var scalarTypes = [3][2]*Scalar{
	Bit:   {newScalar(Bit, false), newScalar(Bit, true)},
	Logic: {newScalar(Logic, false), newScalar(Logic, true)},
	Reg:   {newScalar(Reg, false), newScalar(Reg, true)},
}

func newScalar(kind ScalarKind, signed bool) *Scalar {
	return &Scalar{
		integral: integral{width: 1, signed: signed, fourState: kind != Bit},
		kind:     kind,
	}
}

// ScalarType returns the shared instance of a scalar type.
func ScalarType(kind ScalarKind, signed bool) *Scalar {
	if signed {
		return scalarTypes[kind][1]
	}
	return scalarTypes[kind][0]
}

// scalarOfFlags returns the scalar type matching a flag set: reg if the reg
// flag is set, logic if merely four-state, bit otherwise.
func scalarOfFlags(flags IntegralFlags) *Scalar {
	kind := Bit
	if flags&RegFlag != 0 {
		kind = Reg
	} else if flags&FourStateFlag != 0 {
		kind = Logic
	}
	return ScalarType(kind, flags&SignedFlag != 0)
}
