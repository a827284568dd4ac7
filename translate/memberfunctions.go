package translate

import (
	"strings"

	"github.com/cualquiercosa327/ccc"
	"github.com/cualquiercosa327/ccc/ast"
	"github.com/cualquiercosa327/ccc/stabs"
)

// translateMemberFunctions implements the member-function half of the
// STRUCT/UNION dispatch rule (spec §4.E) plus the NO_GENERATED_MEMBER_FUNCTIONS
// gate (spec §4.E "Member-function filtering"). structType is both the
// source of the overload sets and the enclosing type passed to recursive
// translation, matching the struct/union dispatch rule's reset of
// "enclosing" to the type currently being expanded.
func translateMemberFunctions(structType *stabs.StabsType, state *State, depth int) ([]ast.Node, error) {
	typeName := ""
	if structType.Name != nil {
		typeName = stripTemplateArgs(*structType.Name)
	}

	type translatedOverload struct {
		node       ast.Node
		info       MemberFunctionInfo
		rawName    string
		paramCount int
	}
	var overloads []translatedOverload

	for _, set := range structType.MemberFunctions {
		for _, overload := range set.Overloads {
			info := AnalyzeMemberFunction(set.Name, typeName, state.Demangler)

			node, err := Translate(overload.Type, structType, state, depth+1, false, true)
			if err != nil {
				return nil, err
			}

			common := node.Common()
			common.Name = info.Name
			common.IsConstructorOrDestructor = info.IsConstructorOrDestructor
			common.IsSpecialMemberFunction = info.IsSpecialMemberFunction
			common.IsOperatorMemberFunction = info.IsOperatorMemberFunction
			common.Access = visibilityToAccess(overload.Visibility)

			paramCount := 0
			if fn, ok := node.(*ast.Function); ok {
				fn.Modifier = memberModifierToFunctionModifier(overload.Modifier)
				if overload.Modifier == stabs.MemberFunctionVirtual {
					fn.VTableIndex = overload.VTableIndex
				}
				if fn.Parameters != nil {
					paramCount = len(*fn.Parameters)
				}
			}

			overloads = append(overloads, translatedOverload{
				node: node, info: info, rawName: set.Name, paramCount: paramCount,
			})
		}
	}

	if len(overloads) == 0 {
		return nil, nil
	}

	if state.ParserFlags.Has(ccc.NoGeneratedMemberFunctions) {
		allGenerated := true
		for _, o := range overloads {
			if !isCompilerGenerated(o.info, o.rawName, typeName, o.paramCount) {
				allGenerated = false
				break
			}
		}
		if allGenerated {
			return nil, nil
		}
	}

	nodes := make([]ast.Node, len(overloads))
	for i, o := range overloads {
		nodes[i] = o.node
	}
	return nodes, nil
}

// isCompilerGenerated reports whether a single member function looks
// compiler-synthesized, per the heuristic spec §4.E describes: constructor,
// destructor, operator=, the raw "__as" opname, a named constructor with no
// parameters, or a name beginning with "$".
func isCompilerGenerated(info MemberFunctionInfo, rawName, typeName string, paramCount int) bool {
	if info.IsConstructorOrDestructor {
		return true
	}
	if info.Name == "operator=" || rawName == "__as" {
		return true
	}
	if info.Name == typeName && paramCount == 0 {
		return true
	}
	return strings.HasPrefix(info.Name, "$")
}

func stripTemplateArgs(name string) string {
	if i := strings.IndexByte(name, '<'); i >= 0 {
		return name[:i]
	}
	return name
}

func memberModifierToFunctionModifier(m stabs.MemberFunctionModifier) ast.FunctionModifier {
	switch m {
	case stabs.MemberFunctionVirtual:
		return ast.FunctionVirtual
	case stabs.MemberFunctionStatic:
		return ast.FunctionStatic
	default:
		return ast.FunctionNormal
	}
}
