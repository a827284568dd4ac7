package ast

// FunctionModifier distinguishes a normal member function from a virtual
// or static one.
type FunctionModifier int

const (
	FunctionNormal FunctionModifier = iota
	FunctionVirtual
	FunctionStatic
)

// Function is a function or member-function signature: a return type, and
// — for METHOD nodes — a parameter list. Parameters is nil when translating
// a plain FUNCTION descriptor, whose parameter types are not recoverable
// from that descriptor alone; this includes a member function whose
// overload type is a FUNCTION descriptor. It is non-nil (possibly empty)
// for METHOD descriptors, where STABS does encode parameter types.
type Function struct {
	NodeCommon
	ReturnType Node
	Parameters *[]Node

	// Modifier/VTableIndex are only populated for member functions (where
	// the owning MemberFunctionOverload carried them); they are the zero
	// value for a plain top-level FUNCTION/METHOD translation.
	Modifier    FunctionModifier
	VTableIndex int64
}
