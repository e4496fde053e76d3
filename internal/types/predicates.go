package types

// integralOf returns the shared integral header of a canonical type, or
// false if the type is not integral.
func integralOf(ct Type) (*integral, bool) {
	switch t := ct.(type) {
	case *PredefinedInteger:
		return &t.integral, true
	case *Scalar:
		return &t.integral, true
	case *Enum:
		return &t.integral, true
	case *PackedArray:
		return &t.integral, true
	case *PackedStruct:
		return &t.integral, true
	}
	return nil, false
}

// IsError reports whether t is the error type.
func IsError(t Type) bool {
	return t.Canonical().Kind() == KindError
}

// IsIntegral reports whether t is an integral type: a predefined integer,
// scalar, enum, packed array, or packed struct.
func IsIntegral(t Type) bool {
	_, ok := integralOf(t.Canonical())
	return ok
}

// IsFloating reports whether t is a floating type.
func IsFloating(t Type) bool {
	return t.Canonical().Kind() == KindFloating
}

// IsNumeric reports whether t is integral or floating.
func IsNumeric(t Type) bool {
	return IsIntegral(t) || IsFloating(t)
}

// IsEnum reports whether t is an enum type.
func IsEnum(t Type) bool {
	return t.Canonical().Kind() == KindEnum
}

// IsScalar reports whether t is a single-bit scalar type.
func IsScalar(t Type) bool {
	return t.Canonical().Kind() == KindScalar
}

// IsPredefinedInteger reports whether t is a predefined integer type.
func IsPredefinedInteger(t Type) bool {
	return t.Canonical().Kind() == KindPredefinedInteger
}

// IsUnpackedArray reports whether t is an unpacked array type.
func IsUnpackedArray(t Type) bool {
	return t.Canonical().Kind() == KindUnpackedArray
}

// IsAggregate reports whether t is an unpacked array or unpacked struct.
func IsAggregate(t Type) bool {
	switch t.Canonical().Kind() {
	case KindUnpackedArray, KindUnpackedStruct:
		return true
	default:
		return false
	}
}

// IsStructUnion reports whether t is a packed or unpacked struct.
func IsStructUnion(t Type) bool {
	switch t.Canonical().Kind() {
	case KindPackedStruct, KindUnpackedStruct:
		return true
	default:
		return false
	}
}

// IsSimpleBitVector reports whether t is a predefined integer, a scalar, or
// a packed array of scalars.
func IsSimpleBitVector(t Type) bool {
	ct := t.Canonical()
	switch ct.Kind() {
	case KindPredefinedInteger, KindScalar:
		return true
	case KindPackedArray:
		return ct.(*PackedArray).elem.Kind() == KindScalar
	default:
		return false
	}
}

// IsBooleanConvertible reports whether a value of type t can be used where
// a boolean is expected.
func IsBooleanConvertible(t Type) bool {
	switch t.Canonical().Kind() {
	case KindNull, KindCHandle, KindString, KindEvent:
		return true
	default:
		return IsNumeric(t)
	}
}

// BitWidth returns the bit width of t: the stored width for integral types,
// 64 or 32 for floating types by kind, and 0 for everything else.
func BitWidth(t Type) int {
	ct := t.Canonical()
	if it, ok := integralOf(ct); ok {
		return it.width
	}
	if f, ok := ct.(*Floating); ok {
		switch f.kind {
		case Real, RealTime:
			return 64
		case ShortReal:
			return 32
		default:
			panic("types: unknown floating kind")
		}
	}
	return 0
}

// IsSigned reports whether t is a signed integral type.
func IsSigned(t Type) bool {
	it, ok := integralOf(t.Canonical())
	return ok && it.signed
}

// IsFourState reports whether values of t can carry X or Z bits. Unpacked
// arrays take their element's four-state-ness; unpacked structs are
// four-state if any field is.
func IsFourState(t Type) bool {
	ct := t.Canonical()
	if it, ok := integralOf(ct); ok {
		return it.fourState
	}
	switch ct := ct.(type) {
	case *UnpackedArray:
		return IsFourState(ct.elem)
	case *UnpackedStruct:
		for _, f := range ct.fields {
			if IsFourState(f.typ) {
				return true
			}
		}
	}
	return false
}

// BitVectorRange returns the bit range of an integral type: the stored
// range for packed arrays and [width-1:0] for every other integral variant.
func BitVectorRange(t Type) Range {
	ct := t.Canonical()
	if pa, ok := ct.(*PackedArray); ok {
		return pa.rng
	}
	it, ok := integralOf(ct)
	if !ok {
		return Range{}
	}
	return Range{Left: it.width - 1, Right: 0}
}

// ArrayRange returns the bit range for integral types, the element range
// for unpacked arrays, and the zero range otherwise.
func ArrayRange(t Type) Range {
	ct := t.Canonical()
	if IsIntegral(ct) {
		return BitVectorRange(ct)
	}
	if ua, ok := ct.(*UnpackedArray); ok {
		return ua.rng
	}
	return Range{}
}

// IsDeclaredReg reports whether t was declared with the reg keyword,
// looking through packed array elements.
func IsDeclaredReg(t Type) bool {
	ct := t.Canonical()
	for {
		pa, ok := ct.(*PackedArray)
		if !ok {
			break
		}
		ct = pa.elem.Canonical()
	}
	if s, ok := ct.(*Scalar); ok {
		return s.kind == Reg
	}
	return false
}

// IntegralFlagsOf projects t's canonical form into a flag set of
// signedness, four-state-ness, and reg-ness. Non-integral types project to
// the empty set.
func IntegralFlagsOf(t Type) IntegralFlags {
	ct := t.Canonical()
	it, ok := integralOf(ct)
	if !ok {
		return 0
	}
	var flags IntegralFlags
	if it.signed {
		flags |= SignedFlag
	}
	if it.fourState {
		flags |= FourStateFlag
	}
	if IsDeclaredReg(ct) {
		flags |= RegFlag
	}
	return flags
}

// Matching reports whether l and r are matching types, the strictest of the
// four compatibility relations. It is reflexive and symmetric.
func Matching(l, r Type) bool {
	cl := l.Canonical()
	cr := r.Canonical()

	// If the two types are the same allocated instance they are literally
	// the same type. This covers the shared predefined singletons and the
	// uniquified vector types. Sharing a declaration syntax node means the
	// same thing.
	if cl == cr {
		return true
	}
	if cl.Syntax() != nil && cl.Syntax() == cr.Syntax() {
		return true
	}

	// Type synonyms: logic/reg.
	if ls, ok := cl.(*Scalar); ok {
		if rs, ok := cr.(*Scalar); ok {
			return (ls.kind == Logic || ls.kind == Reg) &&
				(rs.kind == Logic || rs.kind == Reg)
		}
	}

	// Type synonyms: real/realtime.
	if lf, ok := cl.(*Floating); ok {
		if rf, ok := cr.(*Floating); ok {
			return (lf.kind == Real || lf.kind == RealTime) &&
				(rf.kind == Real || rf.kind == RealTime)
		}
	}

	// A predefined integer matches a vector type with the same signedness,
	// four-state-ness, and bit range.
	if IsSimpleBitVector(cl) && IsSimpleBitVector(cr) &&
		IsPredefinedInteger(cl) != IsPredefinedInteger(cr) {
		li, _ := integralOf(cl)
		ri, _ := integralOf(cr)
		return li.signed == ri.signed && li.fourState == ri.fourState &&
			BitVectorRange(cl) == BitVectorRange(cr)
	}

	// Arrays match when their ranges are identical and their elements match.
	if la, ok := cl.(*PackedArray); ok {
		if ra, ok := cr.(*PackedArray); ok {
			return la.rng == ra.rng && Matching(la.elem, ra.elem)
		}
	}
	if la, ok := cl.(*UnpackedArray); ok {
		if ra, ok := cr.(*UnpackedArray); ok {
			return la.rng == ra.rng && Matching(la.elem, ra.elem)
		}
	}

	return false
}

// Equivalent reports whether l and r are equivalent types: matching, or
// integral non-enums that agree on signedness, four-state-ness, and width
// (their ranges may differ), or unpacked arrays of equal element count with
// equivalent elements.
func Equivalent(l, r Type) bool {
	cl := l.Canonical()
	cr := r.Canonical()
	if Matching(cl, cr) {
		return true
	}

	if IsIntegral(cl) && IsIntegral(cr) && !IsEnum(cl) && !IsEnum(cr) {
		li, _ := integralOf(cl)
		ri, _ := integralOf(cr)
		return li.signed == ri.signed && li.fourState == ri.fourState &&
			li.width == ri.width
	}

	if la, ok := cl.(*UnpackedArray); ok {
		if ra, ok := cr.(*UnpackedArray); ok {
			return la.rng.Width() == ra.rng.Width() && Equivalent(la.elem, ra.elem)
		}
	}

	return false
}

// AssignmentCompatible reports whether a value of type rhs may be assigned
// to a target of type lhs without a cast: equivalent types, or any numeric
// source into a non-enum numeric target.
func AssignmentCompatible(lhs, rhs Type) bool {
	cl := lhs.Canonical()
	cr := rhs.Canonical()
	if Equivalent(cl, cr) {
		return true
	}

	if (IsIntegral(cl) && !IsEnum(cl)) || IsFloating(cl) {
		return IsIntegral(cr) || IsFloating(cr)
	}

	return false
}

// CastCompatible reports whether a value of type rhs may be explicitly cast
// to lhs: assignment compatible, or any numeric source into an enum target.
func CastCompatible(lhs, rhs Type) bool {
	cl := lhs.Canonical()
	cr := rhs.Canonical()
	if AssignmentCompatible(cl, cr) {
		return true
	}

	if IsEnum(cl) {
		return IsIntegral(cr) || IsFloating(cr)
	}

	return false
}
