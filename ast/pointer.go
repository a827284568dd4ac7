package ast

// PointerOrReference is a pointer or reference to another type.
type PointerOrReference struct {
	NodeCommon
	IsPointer bool
	ValueType Node
}

// PointerToDataMember is a pointer-to-member type, e.g. `int Foo::*`.
type PointerToDataMember struct {
	NodeCommon
	ClassType  Node
	MemberType Node
}
