package types

import (
	"fmt"
	"strings"

	"github.com/emberhdl/ember/internal/diag"
	"github.com/emberhdl/ember/internal/syntax"
)

// Field represents a struct field. For packed structs Offset is a bit
// offset from the LSB of the struct; for unpacked structs it is the field's
// sequential index.
type Field struct {
	name   string
	pos    syntax.Pos
	typ    Type
	offset int
	packed bool
}

// Name returns the field name.
func (f *Field) Name() string { return f.name }

// Pos returns the field's declaration position.
func (f *Field) Pos() syntax.Pos { return f.pos }

// Type returns the field type.
func (f *Field) Type() Type { return f.typ }

// Offset returns the bit offset (packed) or sequential index (unpacked).
func (f *Field) Offset() int { return f.offset }

// IsPacked reports whether the field belongs to a packed struct.
func (f *Field) IsPacked() bool { return f.packed }

// PackedStruct represents a packed struct type. Fields are laid out most
// significant first: the syntactically first field occupies the highest bit
// positions.
type PackedStruct struct {
	integral
	fields []*Field
	syn    syntax.Node
}

// Fields returns the fields in declaration order.
func (t *PackedStruct) Fields() []*Field { return t.fields }

// FieldByName returns the named field, or nil.
func (t *PackedStruct) FieldByName(name string) *Field {
	for _, f := range t.fields {
		if f.name == name {
			return f
		}
	}
	return nil
}

func (t *PackedStruct) Kind() Kind          { return KindPackedStruct }
func (t *PackedStruct) Canonical() Type     { return t }
func (t *PackedStruct) Syntax() syntax.Node { return t.syn }

// String implements Type.
func (t *PackedStruct) String() string {
	return structString("struct packed", t.fields)
}

func structString(head string, fields []*Field) string {
	var buf strings.Builder
	buf.WriteString(head)
	buf.WriteString("{")
	for i, f := range fields {
		if i > 0 {
			buf.WriteString("; ")
		}
		fmt.Fprintf(&buf, "%s %s", f.typ, f.name)
	}
	buf.WriteString("}")
	return buf.String()
}

// PackedStructFromSyntax builds a packed struct. Members are processed in
// reverse syntactic order so bit offsets accumulate from the LSB of the last
// member to the MSB of the first. Non-integral member types, unpacked-array
// member dimensions, and member initializers are each diagnosed, but
// processing continues to surface further errors. Outer packed dimensions
// are applied after the struct itself is built.
func PackedStructFromSyntax(c *Compilation, node *syntax.StructType, scope *Scope, forceSigned bool) Type {
	if !node.Packed {
		panic("types: packed struct builder invoked on unpacked syntax")
	}

	signed := node.Signing == syntax.SigningSigned || forceSigned
	fourState := false
	width := 0
	var fields []*Field

	for i := len(node.Members) - 1; i >= 0; i-- {
		member := node.Members[i]
		memberType := FromSyntax(c, member.Type, scope, false)
		fourState = fourState || IsFourState(memberType)

		issuedError := false
		if !IsIntegral(memberType) && !IsError(memberType) {
			issuedError = true
			c.addDiag(diag.PackedMemberNotIntegral, member.Type.Pos()).Arg(memberType)
		}

		for _, decl := range member.Declarators {
			fields = append(fields, &Field{
				name:   decl.Name.Value,
				pos:    decl.Name.Position,
				typ:    memberType,
				offset: width,
				packed: true,
			})

			// Unpacked arrays are disallowed in packed structs.
			if len(decl.Dims) > 0 && !issuedError {
				dimType := UnpackedArrayFromSyntax(c, memberType, decl.Dims, scope)
				if IsUnpackedArray(dimType) {
					c.addDiag(diag.PackedMemberNotIntegral, decl.Name.Position).Arg(dimType)
				}
			}

			width += BitWidth(memberType)

			if decl.Init != nil {
				c.addDiag(diag.PackedMemberHasInitializer, decl.Init.Pos())
			}
		}
	}

	// Restore declaration order.
	for i, j := 0, len(fields)-1; i < j; i, j = i+1, j-1 {
		fields[i], fields[j] = fields[j], fields[i]
	}

	st := &PackedStruct{
		integral: integral{width: width, signed: signed, fourState: fourState},
		fields:   fields,
		syn:      node,
	}

	var result Type = st
	for i := len(node.Dims) - 1; i >= 0; i-- {
		rng, ok := c.evalDimension(node.Dims[i], scope, true)
		if !ok {
			return ErrorType
		}
		result = PackedArrayFromSyntax(c, result, rng, node.Dims[i])
	}
	return result
}

// UnpackedStruct represents an unpacked struct type. It has no aggregate
// width; four-state-ness is derived from the fields on demand.
type UnpackedStruct struct {
	typ
	fields []*Field
	syn    syntax.Node
}

// Fields returns the fields in declaration order.
func (t *UnpackedStruct) Fields() []*Field { return t.fields }

// FieldByName returns the named field, or nil.
func (t *UnpackedStruct) FieldByName(name string) *Field {
	for _, f := range t.fields {
		if f.name == name {
			return f
		}
	}
	return nil
}

func (t *UnpackedStruct) Kind() Kind          { return KindUnpackedStruct }
func (t *UnpackedStruct) Canonical() Type     { return t }
func (t *UnpackedStruct) Syntax() syntax.Node { return t.syn }

// String implements Type.
func (t *UnpackedStruct) String() string {
	return structString("struct", t.fields)
}

// UnpackedStructFromSyntax builds an unpacked struct, assigning fields
// sequential indices in declaration order. Declarator dimensions become
// unpacked arrays of the member type.
func UnpackedStructFromSyntax(c *Compilation, node *syntax.StructType, scope *Scope) Type {
	if node.Packed {
		panic("types: unpacked struct builder invoked on packed syntax")
	}

	index := 0
	var fields []*Field
	for _, member := range node.Members {
		memberType := FromSyntax(c, member.Type, scope, false)
		for _, decl := range member.Declarators {
			fieldType := memberType
			if len(decl.Dims) > 0 {
				fieldType = UnpackedArrayFromSyntax(c, memberType, decl.Dims, scope)
			}
			fields = append(fields, &Field{
				name:   decl.Name.Value,
				pos:    decl.Name.Position,
				typ:    fieldType,
				offset: index,
			})
			index++
		}
	}

	return &UnpackedStruct{fields: fields, syn: node}
}
