package translate

import (
	"strings"

	"github.com/cualquiercosa327/ccc/demangle"
)

// MemberFunctionInfo is the result of analyzing a single member function's
// mangled name (component D, spec §4.D).
type MemberFunctionInfo struct {
	Name                      string
	IsConstructorOrDestructor bool
	IsSpecialMemberFunction   bool
	IsOperatorMemberFunction  bool
}

// ctorNames and dtorNames are the GNU v2-era mangled spellings recognized
// regardless of the owning type's name.
var ctorNames = map[string]bool{
	"__ct":        true,
	"__comp_ctor": true,
	"__base_ctor": true,
}

var dtorNames = map[string]bool{
	"__dt":            true,
	"__comp_dtor":     true,
	"__base_dtor":     true,
	"__deleting_dtor": true,
}

// AnalyzeMemberFunction implements component D (spec §4.D): classify a
// member function's mangled name as constructor/destructor/special/operator,
// given the owning type's name with any template arguments stripped.
func AnalyzeMemberFunction(mangledName, typeNameNoTemplateArgs string, demangler demangle.Functions) MemberFunctionInfo {
	name := mangledName
	isOperator := false
	if demangler.OpName != nil {
		if demangled, ok := demangler.OpName(mangledName, 0); ok {
			name = demangled
			isOperator = strings.HasPrefix(demangled, "operator")
		}
	}

	isCtor := ctorNames[name] || name == typeNameNoTemplateArgs
	isDtor := dtorNames[name] || strings.HasPrefix(name, "~"+typeNameNoTemplateArgs)
	isCtorOrDtor := isCtor || isDtor || strings.HasPrefix(name, "$_")

	isSpecial := isCtorOrDtor || name == "operator="

	return MemberFunctionInfo{
		Name:                      name,
		IsConstructorOrDestructor: isCtorOrDtor,
		IsSpecialMemberFunction:   isSpecial,
		IsOperatorMemberFunction:  isOperator,
	}
}
