package ast

// StructOrUnion is a struct or union type, with its base classes, fields
// and (non-purely-synthetic) member functions.
type StructOrUnion struct {
	NodeCommon
	IsStruct        bool
	BaseClasses     []Node
	Fields          []Node
	MemberFunctions []Node
}
