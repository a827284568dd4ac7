// Package stabs defines the StabsType graph that the (out of scope) STABS
// textual tokenizer is assumed to hand to the translator in package
// translate. Nothing in this package parses STABS symbol strings; it only
// describes the shape of the parsed result, grounded on the descriptor
// fields used by the original tool's ccc/stabs.cpp parser.
package stabs

// TypeNumber identifies a type definition within one compilation unit.
// Within one file, (File, Type) uniquely identifies a definition.
type TypeNumber struct {
	File int32
	Type int32
}

// Descriptor tags which variant of the STABS type union a StabsType node
// holds. Matches the descriptor set enumerated in the language-neutral
// translation contract (spec-level §3), not the tokenizer's full character
// grammar (which also has a couple of unused/"not sure" descriptors that
// never reach the translator).
type Descriptor int

const (
	TypeReference Descriptor = iota
	Array
	Enum
	Function
	VolatileQualifier
	ConstQualifier
	Range
	Struct
	Union
	CrossReference
	FloatingPointBuiltin
	Method
	Pointer
	Reference
	TypeAttribute
	PointerToDataMember
	Builtin
)

// Visibility mirrors the STABS field/base-class/member-function visibility
// tag. NONE and PUBLIC_OPTIMIZED_OUT both map to AS_PUBLIC in the AST.
type Visibility int

const (
	VisibilityNone Visibility = iota
	VisibilityPublic
	VisibilityProtected
	VisibilityPrivate
	VisibilityPublicOptimizedOut
)

// CrossReferenceKind is the forward-declared entity kind a CROSS_REFERENCE
// node names.
type CrossReferenceKind int

const (
	CrossReferenceStruct CrossReferenceKind = iota
	CrossReferenceUnion
	CrossReferenceEnum
)

// EnumConstant is one (name, value) pair of an ENUM node, copied verbatim
// into the AST.
type EnumConstant struct {
	Name  string
	Value int64
}

// BaseClass is one entry of a STRUCT's base-class list.
type BaseClass struct {
	Visibility Visibility
	Offset     int64
	Type       *StabsType
}

// Field is one entry of a STRUCT/UNION's field list.
type Field struct {
	Name       string
	Visibility Visibility
	Type       *StabsType
	IsStatic   bool
	OffsetBits int64
	SizeBits   int64
}

// MemberFunctionModifier distinguishes a normal member function from a
// virtual or static one, as decoded from the STABS member-function
// modifier character ('*' virtual, '?' static, '.' normal).
type MemberFunctionModifier int

const (
	MemberFunctionNormal MemberFunctionModifier = iota
	MemberFunctionVirtual
	MemberFunctionStatic
)

// MemberFunctionOverload is a single overload within a MemberFunctionSet.
type MemberFunctionOverload struct {
	Type       *StabsType
	Visibility Visibility
	Modifier   MemberFunctionModifier
	// VTableIndex is only meaningful when Modifier == MemberFunctionVirtual.
	VTableIndex int64
}

// MemberFunctionSet groups all overloads sharing a mangled name, as STABS
// emits them.
type MemberFunctionSet struct {
	Name      string
	Overloads []MemberFunctionOverload
}

// StabsType is one node of the STABS type graph. Only the fields relevant
// to its Descriptor are populated; the translator in package translate
// switches on Descriptor to know which to read.
type StabsType struct {
	Name       *string
	Number     TypeNumber
	Anonymous  bool
	IsRoot     bool
	HasBody    bool
	Descriptor Descriptor

	// TypeReference
	Reference *StabsType

	// Array
	IndexType   *StabsType
	ElementType *StabsType

	// Enum
	Constants []EnumConstant

	// Function / Method return type; Qualifiers; TypeAttribute inner type;
	// Pointer/Reference value type.
	Inner *StabsType

	// Range
	Low  string
	High string

	// Struct / Union
	IsStruct        bool
	SizeBytes       int64
	BaseClasses     []BaseClass
	Fields          []Field
	MemberFunctions []MemberFunctionSet

	// CrossReference
	CrossReferenceIdentifier string
	CrossReferenceKind       CrossReferenceKind

	// Method
	ParameterTypes []*StabsType

	// FloatingPointBuiltin
	ByteWidth int

	// TypeAttribute
	AttributeSizeBits int64

	// PointerToDataMember
	ClassType  *StabsType
	MemberType *StabsType

	// Builtin
	BuiltinTypeID int
}

// Symbol is what the tokenizer hands back for one parsed STABS symbol
// string: a name plus the type graph rooted at that symbol.
type Symbol struct {
	Name string
	Type *StabsType
}
