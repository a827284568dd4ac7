package ast

// BuiltInClass enumerates the fundamental numeric/void/bool types the range
// classifier (translate.ClassifyRange) and a handful of direct descriptor
// rules (FLOATING_POINT_BUILTIN, BUILTIN) can produce.
type BuiltInClass int

const (
	Void BuiltInClass = iota
	Bool8

	Unsigned8
	Signed8
	Unqualified8

	Unsigned16
	Signed16

	Unsigned32
	Signed32

	Unsigned64
	Signed64

	Unsigned128
	Signed128
	Unqualified128

	Float32
	Float64
	Float128
)

// builtInClassSizeBytes mirrors the original tool's builtin_class_size
// table, used by the bitfield detector to compute an underlying type's size
// in bits (size_bytes * 8).
var builtInClassSizeBytes = map[BuiltInClass]int32{
	Void:           0,
	Bool8:          1,
	Unsigned8:      1,
	Signed8:        1,
	Unqualified8:   1,
	Unsigned16:     2,
	Signed16:       2,
	Unsigned32:     4,
	Signed32:       4,
	Unsigned64:     8,
	Signed64:       8,
	Unsigned128:    16,
	Signed128:      16,
	Unqualified128: 16,
	Float32:        4,
	Float64:        8,
	Float128:       16,
}

// BuiltInClassSize returns the size in bytes of a built-in class.
func BuiltInClassSize(class BuiltInClass) int32 {
	return builtInClassSizeBytes[class]
}

// BuiltIn is a fundamental numeric, boolean or void type.
type BuiltIn struct {
	NodeCommon
	Class BuiltInClass
}

// NewBuiltIn constructs a BuiltIn node with its size stamped in from the
// built-in class's known width.
func NewBuiltIn(class BuiltInClass) *BuiltIn {
	return &BuiltIn{Class: class, NodeCommon: NodeCommon{SizeBits: BuiltInClassSize(class) * 8}}
}
