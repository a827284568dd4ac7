// Package ast defines the language-neutral abstract syntax tree that the
// STABS-to-AST translator (package translate) produces: structs, unions,
// enums, functions, built-ins, pointers, arrays, bitfields and member
// functions reconstructed from a compiled program's debug information.
//
// Node is a Go interface with one concrete struct per descriptor, each
// embedding NodeCommon for the fields every node carries regardless of
// kind — the same shape debug/dwarf-style type hierarchies use in Go
// (a Type interface backed by a CommonType), rather than a single struct
// with a kind tag and a grab-bag of optional fields.
package ast

// FileHandle identifies which compilation unit a cross-file type reference
// belongs to. It is an index into the caller's symbol table, not a STABS
// type number.
type FileHandle int32

// Node is implemented by every AST node kind: BuiltIn, Array, Enum,
// Function, StructOrUnion, TypeName, PointerOrReference,
// PointerToDataMember, BitField and ErrorNode.
type Node interface {
	Common() *NodeCommon
}

// NodeCommon holds the fields every AST node carries, independent of kind.
type NodeCommon struct {
	Name string

	SizeBits    int32
	OffsetBytes int32

	IsConst         bool
	IsVolatile      bool
	IsVTablePointer bool
	IsBaseClass     bool

	IsConstructorOrDestructor bool
	IsSpecialMemberFunction   bool
	IsOperatorMemberFunction  bool

	Access       AccessSpecifier
	StorageClass StorageClass
}

func (c *NodeCommon) Common() *NodeCommon { return c }

// AccessSpecifier is the member visibility of a field, base class or member
// function. The zero value is AccessPublic, matching the STABS default.
type AccessSpecifier int

const (
	AccessPublic AccessSpecifier = iota
	AccessProtected
	AccessPrivate
)

// StorageClass marks a field or function as having non-default storage.
type StorageClass int

const (
	StorageClassNone StorageClass = iota
	StorageClassStatic
	StorageClassTypedef
)

// SetAccess sets the node's access specifier.
func (c *NodeCommon) SetAccess(access AccessSpecifier) { c.Access = access }
