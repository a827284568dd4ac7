package translate

import (
	"strings"

	"github.com/cualquiercosa327/ccc"
	"github.com/cualquiercosa327/ccc/ast"
	"github.com/cualquiercosa327/ccc/stabs"
)

// Translate implements component E (spec §4.E): recursively converts one
// STABS type node into an AST node. enclosing is the STABS type of the
// struct/union currently being expanded (nil at the top level) — it is
// reset to the current node whenever a STRUCT/UNION is entered, so base
// classes, fields and member functions see their own owning type as
// enclosing, not whatever the caller passed in.
func Translate(t *stabs.StabsType, enclosing *stabs.StabsType, state *State, depth int, substituteName, forceSubstitute bool) (ast.Node, error) {
	if depth > maxRecursionDepth {
		return state.fail(ccc.RecursionDepthExceeded, "translate.Translate",
			"recursion depth %d exceeds the limit of %d", depth, maxRecursionDepth)
	}

	if name, ok := substitutableName(t); ok {
		if substituteName || (depth > 0 && (t.IsRoot || t.Descriptor == stabs.Range || t.Descriptor == stabs.Builtin)) {
			return &ast.TypeName{
				NodeCommon: ast.NodeCommon{Name: name},
				Source:     ast.SourceReference,
				UnresolvedStabs: ast.UnresolvedStabs{
					TypeName:             name,
					ReferencedFileHandle: state.FileHandle,
					StabsNumber:          t.Number,
				},
			}, nil
		}
	}

	if forceSubstitute && enclosing != nil && isNamed(t) && isNamed(enclosing) && t.Number == enclosing.Number {
		return &ast.TypeName{
			NodeCommon: ast.NodeCommon{Name: *t.Name},
			Source:     ast.SourceThis,
			UnresolvedStabs: ast.UnresolvedStabs{
				TypeName:             *t.Name,
				ReferencedFileHandle: state.FileHandle,
				StabsNumber:          t.Number,
			},
		}, nil
	}

	if !t.HasBody {
		resolved, ok := state.StabsTypes[t.Number]
		if !ok {
			return state.fail(ccc.UnresolvedTypeNumber, "translate.Translate",
				"no definition for type (%d, %d)", t.Number.File, t.Number.Type)
		}
		return Translate(resolved, enclosing, state, depth+1, substituteName, forceSubstitute)
	}

	return dispatch(t, enclosing, state, depth)
}

// substitutableName reports the name a node would be substituted with, and
// whether it is eligible at all: non-empty, not the single-space anonymous
// sentinel, not "void"/"__builtin_va_list", and not a cross-reference (those
// are always emitted as their own TypeName variant by the dispatch switch).
func substitutableName(t *stabs.StabsType) (string, bool) {
	if t.Name == nil {
		return "", false
	}
	name := *t.Name
	if name == "" || name == " " || name == "void" || name == "__builtin_va_list" {
		return "", false
	}
	if t.Descriptor == stabs.CrossReference {
		return "", false
	}
	return name, true
}

func isNamed(t *stabs.StabsType) bool {
	return t.Name != nil && *t.Name != "" && *t.Name != " "
}

func dispatch(t *stabs.StabsType, enclosing *stabs.StabsType, state *State, depth int) (ast.Node, error) {
	switch t.Descriptor {
	case stabs.TypeReference:
		return translateTypeReference(t, enclosing, state, depth)
	case stabs.Array:
		return translateArray(t, enclosing, state, depth)
	case stabs.Enum:
		return translateEnum(t), nil
	case stabs.Function:
		return translateFunction(t, enclosing, state, depth)
	case stabs.VolatileQualifier:
		return translateQualifier(t, enclosing, state, depth, func(c *ast.NodeCommon) { c.IsVolatile = true })
	case stabs.ConstQualifier:
		return translateQualifier(t, enclosing, state, depth, func(c *ast.NodeCommon) { c.IsConst = true })
	case stabs.Range:
		class, err := ClassifyRange(t.Low, t.High)
		if err != nil {
			return state.failErr(err.(*ccc.Error))
		}
		return ast.NewBuiltIn(class), nil
	case stabs.Struct, stabs.Union:
		return translateStructOrUnion(t, state, depth)
	case stabs.CrossReference:
		return translateCrossReference(t, state), nil
	case stabs.FloatingPointBuiltin:
		return translateFloatingPointBuiltin(t), nil
	case stabs.Method:
		return translateMethod(t, enclosing, state, depth)
	case stabs.Pointer, stabs.Reference:
		return translatePointerOrReference(t, enclosing, state, depth)
	case stabs.TypeAttribute:
		return translateTypeAttribute(t, enclosing, state, depth)
	case stabs.PointerToDataMember:
		return translatePointerToDataMember(t, state, depth)
	case stabs.Builtin:
		if t.BuiltinTypeID == 16 {
			return ast.NewBuiltIn(ast.Bool8), nil
		}
		return state.fail(ccc.UnknownBuiltin, "translate.dispatch", "unrecognized BUILTIN type id %d", t.BuiltinTypeID)
	default:
		return state.fail(ccc.NullResult, "translate.dispatch", "no translation rule for descriptor %d", t.Descriptor)
	}
}

func translateTypeReference(t *stabs.StabsType, enclosing *stabs.StabsType, state *State, depth int) (ast.Node, error) {
	if t.Reference != nil && t.Reference.Number != t.Number {
		return Translate(t.Reference, enclosing, state, depth+1, false, false)
	}
	return ast.NewBuiltIn(ast.Void), nil
}

func translateArray(t *stabs.StabsType, enclosing *stabs.StabsType, state *State, depth int) (ast.Node, error) {
	if t.IndexType == nil || t.IndexType.Descriptor != stabs.Range || t.IndexType.Low != "0" {
		return state.fail(ccc.InvalidArrayIndex, "translate.translateArray",
			"array index type must be a RANGE with low bound \"0\"")
	}

	high, err := parseRangeBound(t.IndexType.High)
	if err != nil {
		return state.fail(ccc.InvalidArrayIndex, "translate.translateArray",
			"failed to parse array index high bound %q", t.IndexType.High)
	}

	count := high + 1
	if high == 4294967295 {
		count = 0
	}

	element, err := Translate(t.ElementType, enclosing, state, depth+1, false, false)
	if err != nil {
		return nil, err
	}

	return &ast.Array{ElementType: element, ElementCount: count}, nil
}

func translateEnum(t *stabs.StabsType) ast.Node {
	constants := make([]ast.EnumConstant, len(t.Constants))
	for i, c := range t.Constants {
		constants[i] = ast.EnumConstant{Name: c.Name, Value: c.Value}
	}
	return &ast.Enum{Constants: constants}
}

func translateFunction(t *stabs.StabsType, enclosing *stabs.StabsType, state *State, depth int) (ast.Node, error) {
	ret, err := Translate(t.Inner, enclosing, state, depth+1, true, false)
	if err != nil {
		return nil, err
	}
	return &ast.Function{ReturnType: ret}, nil
}

func translateQualifier(t *stabs.StabsType, enclosing *stabs.StabsType, state *State, depth int, mark func(*ast.NodeCommon)) (ast.Node, error) {
	inner, err := Translate(t.Inner, enclosing, state, depth+1, false, false)
	if err != nil {
		return nil, err
	}
	mark(inner.Common())
	return inner, nil
}

func translateStructOrUnion(t *stabs.StabsType, state *State, depth int) (ast.Node, error) {
	node := &ast.StructOrUnion{
		NodeCommon: ast.NodeCommon{SizeBits: int32(t.SizeBytes * 8)},
		IsStruct:   t.IsStruct,
	}

	for _, base := range t.BaseClasses {
		baseNode, err := Translate(base.Type, t, state, depth+1, false, true)
		if err != nil {
			return nil, err
		}
		common := baseNode.Common()
		common.IsBaseClass = true
		common.OffsetBytes = int32(base.Offset)
		common.Access = visibilityToAccess(base.Visibility)
		node.BaseClasses = append(node.BaseClasses, baseNode)
	}

	for i := range t.Fields {
		field := &t.Fields[i]
		fieldNode, err := translateField(field, t, state, depth)
		if err != nil {
			return nil, err
		}
		node.Fields = append(node.Fields, fieldNode)
	}

	if !state.ParserFlags.Has(ccc.NoMemberFunctions) {
		members, err := translateMemberFunctions(t, state, depth)
		if err != nil {
			return nil, err
		}
		node.MemberFunctions = members
	}

	return node, nil
}

// translateField implements the field-translation rule (spec §4.E "Field
// translation"): a bitfield field becomes a BitField wrapping its resolved
// underlying type; any other field is the recursively translated type with
// name/offset/size/access stamped on.
func translateField(field *stabs.Field, enclosing *stabs.StabsType, state *State, depth int) (ast.Node, error) {
	isBitfield, err := DetectBitfield(field, state.StabsTypes)
	if err != nil {
		return nil, err
	}

	var node ast.Node
	if isBitfield {
		underlying, err := Translate(field.Type, enclosing, state, depth+1, false, false)
		if err != nil {
			return nil, err
		}
		node = &ast.BitField{
			NodeCommon: ast.NodeCommon{
				OffsetBytes: int32(field.OffsetBits / 8),
				SizeBits:    int32(field.SizeBits),
			},
			UnderlyingType:     underlying,
			BitfieldOffsetBits: int32(field.OffsetBits % 8),
		}
	} else {
		translated, err := Translate(field.Type, enclosing, state, depth+1, false, false)
		if err != nil {
			return nil, err
		}
		common := translated.Common()
		common.OffsetBytes = int32(field.OffsetBits / 8)
		common.SizeBits = int32(field.SizeBits)
		node = translated
	}

	common := node.Common()
	common.Name = normalizeFieldName(field.Name)
	common.Access = visibilityToAccess(field.Visibility)
	if strings.HasPrefix(field.Name, "$vf") || strings.HasPrefix(field.Name, "_vptr$") || strings.HasPrefix(field.Name, "_vptr.") {
		common.IsVTablePointer = true
	}
	if field.IsStatic {
		common.StorageClass = ast.StorageClassStatic
	}
	return node, nil
}

func normalizeFieldName(name string) string {
	if name == " " {
		return ""
	}
	return name
}

func translateCrossReference(t *stabs.StabsType, state *State) ast.Node {
	return &ast.TypeName{
		NodeCommon: ast.NodeCommon{Name: t.CrossReferenceIdentifier},
		Source:     ast.SourceCrossReference,
		UnresolvedStabs: ast.UnresolvedStabs{
			TypeName:             t.CrossReferenceIdentifier,
			ReferencedFileHandle: state.FileHandle,
			CrossReferenceKind:   t.CrossReferenceKind,
		},
	}
}

func translateFloatingPointBuiltin(t *stabs.StabsType) ast.Node {
	switch t.ByteWidth {
	case 2:
		return ast.NewBuiltIn(ast.Unsigned16)
	case 4:
		return ast.NewBuiltIn(ast.Unsigned32)
	case 8:
		return ast.NewBuiltIn(ast.Unsigned64)
	case 16:
		return ast.NewBuiltIn(ast.Unsigned128)
	default:
		return ast.NewBuiltIn(ast.Unsigned8)
	}
}

func translateMethod(t *stabs.StabsType, enclosing *stabs.StabsType, state *State, depth int) (ast.Node, error) {
	ret, err := Translate(t.Inner, enclosing, state, depth+1, true, true)
	if err != nil {
		return nil, err
	}
	params := make([]ast.Node, len(t.ParameterTypes))
	for i, p := range t.ParameterTypes {
		paramNode, err := Translate(p, enclosing, state, depth+1, true, true)
		if err != nil {
			return nil, err
		}
		params[i] = paramNode
	}
	return &ast.Function{ReturnType: ret, Parameters: &params}, nil
}

func translatePointerOrReference(t *stabs.StabsType, enclosing *stabs.StabsType, state *State, depth int) (ast.Node, error) {
	value, err := Translate(t.Inner, enclosing, state, depth+1, true, false)
	if err != nil {
		return nil, err
	}
	return &ast.PointerOrReference{IsPointer: t.Descriptor == stabs.Pointer, ValueType: value}, nil
}

func translateTypeAttribute(t *stabs.StabsType, enclosing *stabs.StabsType, state *State, depth int) (ast.Node, error) {
	inner, err := Translate(t.Inner, enclosing, state, depth+1, false, false)
	if err != nil {
		return nil, err
	}
	inner.Common().SizeBits = int32(t.AttributeSizeBits)
	return inner, nil
}

func translatePointerToDataMember(t *stabs.StabsType, state *State, depth int) (ast.Node, error) {
	class, err := Translate(t.ClassType, nil, state, depth+1, true, true)
	if err != nil {
		return nil, err
	}
	member, err := Translate(t.MemberType, nil, state, depth+1, true, true)
	if err != nil {
		return nil, err
	}
	return &ast.PointerToDataMember{ClassType: class, MemberType: member}, nil
}

func visibilityToAccess(v stabs.Visibility) ast.AccessSpecifier {
	switch v {
	case stabs.VisibilityProtected:
		return ast.AccessProtected
	case stabs.VisibilityPrivate:
		return ast.AccessPrivate
	default:
		return ast.AccessPublic
	}
}
