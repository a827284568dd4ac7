package ast

// EnumConstant is one (name, value) pair of an enum, copied verbatim from
// the STABS enum fields.
type EnumConstant struct {
	Name  string
	Value int64
}

// Enum is an inline or named enumeration.
type Enum struct {
	NodeCommon
	Constants []EnumConstant
}
