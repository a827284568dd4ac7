package translate

import (
	"testing"

	"github.com/cualquiercosa327/ccc"
	"github.com/cualquiercosa327/ccc/ast"
	"github.com/cualquiercosa327/ccc/demangle"
	"github.com/cualquiercosa327/ccc/stabs"
)

func newState(flags ccc.ParserFlags) *State {
	return &State{
		StabsTypes:  map[stabs.TypeNumber]*stabs.StabsType{},
		ParserFlags: flags,
		Demangler:   demangle.Default(),
	}
}

// Scenario 5: a TypeReference whose target's type number equals its own
// translates to BuiltIn(VOID).
func TestTranslateVoidSelfReference(t *testing.T) {
	num := stabs.TypeNumber{File: 0, Type: 1}
	void := &stabs.StabsType{HasBody: true, Descriptor: stabs.TypeReference, Number: num}
	void.Reference = void

	node, err := Translate(void, nil, newState(0), 0, false, false)
	if err != nil {
		t.Fatalf("Translate returned error: %v", err)
	}
	b, ok := node.(*ast.BuiltIn)
	if !ok || b.Class != ast.Void {
		t.Errorf("got %#v, want BuiltIn(Void)", node)
	}
}

// Scenario 3: a simple enum translates its constants verbatim.
func TestTranslateEnum(t *testing.T) {
	enumType := &stabs.StabsType{
		HasBody:    true,
		Descriptor: stabs.Enum,
		Constants: []stabs.EnumConstant{
			{Name: "RED", Value: 0},
			{Name: "GREEN", Value: 1},
			{Name: "BLUE", Value: 2},
		},
	}

	node, err := Translate(enumType, nil, newState(0), 0, false, false)
	if err != nil {
		t.Fatalf("Translate returned error: %v", err)
	}
	e, ok := node.(*ast.Enum)
	if !ok {
		t.Fatalf("got %T, want *ast.Enum", node)
	}
	want := []ast.EnumConstant{{Name: "RED", Value: 0}, {Name: "GREEN", Value: 1}, {Name: "BLUE", Value: 2}}
	if len(e.Constants) != len(want) {
		t.Fatalf("got %d constants, want %d", len(e.Constants), len(want))
	}
	for i := range want {
		if e.Constants[i] != want[i] {
			t.Errorf("constant %d = %+v, want %+v", i, e.Constants[i], want[i])
		}
	}
}

// Boundary: array with high = 4294967295 yields element_count = 0.
func TestTranslateArrayWraparound(t *testing.T) {
	elem := &stabs.StabsType{HasBody: true, Descriptor: stabs.Builtin, BuiltinTypeID: 16}
	arr := &stabs.StabsType{
		HasBody:     true,
		Descriptor:  stabs.Array,
		IndexType:   &stabs.StabsType{HasBody: true, Descriptor: stabs.Range, Low: "0", High: "4294967295"},
		ElementType: elem,
	}

	node, err := Translate(arr, nil, newState(0), 0, false, false)
	if err != nil {
		t.Fatalf("Translate returned error: %v", err)
	}
	a, ok := node.(*ast.Array)
	if !ok {
		t.Fatalf("got %T, want *ast.Array", node)
	}
	if a.ElementCount != 0 {
		t.Errorf("ElementCount = %d, want 0", a.ElementCount)
	}
}

func TestTranslateArrayOrdinaryCount(t *testing.T) {
	elem := &stabs.StabsType{HasBody: true, Descriptor: stabs.Builtin, BuiltinTypeID: 16}
	arr := &stabs.StabsType{
		HasBody:     true,
		Descriptor:  stabs.Array,
		IndexType:   &stabs.StabsType{HasBody: true, Descriptor: stabs.Range, Low: "0", High: "9"},
		ElementType: elem,
	}

	node, err := Translate(arr, nil, newState(0), 0, false, false)
	if err != nil {
		t.Fatalf("Translate returned error: %v", err)
	}
	a := node.(*ast.Array)
	if a.ElementCount != 10 {
		t.Errorf("ElementCount = %d, want 10", a.ElementCount)
	}
}

// Boundary: recursion past the depth limit of 200 (depth 201) succeeds with
// an Error node in lenient mode and fails in strict mode.
func TestTranslateRecursionDepthLenient(t *testing.T) {
	node, err := Translate(&stabs.StabsType{HasBody: true, Descriptor: stabs.Builtin, BuiltinTypeID: 16}, nil, newState(0), 201, false, false)
	if err != nil {
		t.Fatalf("lenient mode must not return an error, got: %v", err)
	}
	if _, ok := node.(*ast.ErrorNode); !ok {
		t.Errorf("got %T, want *ast.ErrorNode", node)
	}
}

func TestTranslateRecursionDepthStrict(t *testing.T) {
	_, err := Translate(&stabs.StabsType{HasBody: true, Descriptor: stabs.Builtin, BuiltinTypeID: 16}, nil, newState(ccc.StrictParsing), 201, false, false)
	if err == nil {
		t.Error("strict mode must return an error past the recursion depth limit")
	}
}

func TestTranslateRecursionDepthAtLimitSucceeds(t *testing.T) {
	_, err := Translate(&stabs.StabsType{HasBody: true, Descriptor: stabs.Builtin, BuiltinTypeID: 16}, nil, newState(ccc.StrictParsing), 200, false, false)
	if err != nil {
		t.Errorf("depth exactly at the limit must still succeed, got: %v", err)
	}
}

// Builtin: only type id 16 is recognized.
func TestTranslateBuiltinBool(t *testing.T) {
	node, err := Translate(&stabs.StabsType{HasBody: true, Descriptor: stabs.Builtin, BuiltinTypeID: 16}, nil, newState(0), 0, false, false)
	if err != nil {
		t.Fatalf("Translate returned error: %v", err)
	}
	if b, ok := node.(*ast.BuiltIn); !ok || b.Class != ast.Bool8 {
		t.Errorf("got %#v, want BuiltIn(Bool8)", node)
	}
}

func TestTranslateBuiltinUnknownIDStrict(t *testing.T) {
	_, err := Translate(&stabs.StabsType{HasBody: true, Descriptor: stabs.Builtin, BuiltinTypeID: 99}, nil, newState(ccc.StrictParsing), 0, false, false)
	if err == nil {
		t.Error("an unrecognized BUILTIN type id must fail in strict mode")
	}
}

// Unresolved definitions: a type with HasBody = false is looked up by
// number and, if missing, fails (strict) or yields an Error node (lenient).
func TestTranslateUnresolvedReferenceLenient(t *testing.T) {
	ref := &stabs.StabsType{HasBody: false, Number: stabs.TypeNumber{File: 0, Type: 42}}
	node, err := Translate(ref, nil, newState(0), 0, false, false)
	if err != nil {
		t.Fatalf("lenient mode must not return an error, got: %v", err)
	}
	if _, ok := node.(*ast.ErrorNode); !ok {
		t.Errorf("got %T, want *ast.ErrorNode", node)
	}
}

func TestTranslateUnresolvedReferenceStrict(t *testing.T) {
	ref := &stabs.StabsType{HasBody: false, Number: stabs.TypeNumber{File: 0, Type: 42}}
	_, err := Translate(ref, nil, newState(ccc.StrictParsing), 0, false, false)
	if err == nil {
		t.Error("strict mode must fail when a referenced type number has no definition")
	}
}

func TestTranslateUnresolvedReferenceResolves(t *testing.T) {
	num := stabs.TypeNumber{File: 0, Type: 42}
	state := newState(0)
	state.StabsTypes[num] = &stabs.StabsType{HasBody: true, Descriptor: stabs.Builtin, BuiltinTypeID: 16}

	ref := &stabs.StabsType{HasBody: false, Number: num}
	node, err := Translate(ref, nil, state, 0, false, false)
	if err != nil {
		t.Fatalf("Translate returned error: %v", err)
	}
	if b, ok := node.(*ast.BuiltIn); !ok || b.Class != ast.Bool8 {
		t.Errorf("got %#v, want the resolved BuiltIn(Bool8)", node)
	}
}

// Name-substitution policy: a named root type emits a TypeName rather than
// being expanded in place.
func TestTranslateNameSubstitutionAtRoot(t *testing.T) {
	name := "Color"
	enumType := &stabs.StabsType{
		Name:       &name,
		IsRoot:     true,
		HasBody:    true,
		Descriptor: stabs.Enum,
	}
	// Simulate a reference to this root type from inside another structure:
	// depth > 0 and IsRoot triggers substitution even without an explicit request.
	node, err := Translate(enumType, nil, newState(0), 1, false, false)
	if err != nil {
		t.Fatalf("Translate returned error: %v", err)
	}
	tn, ok := node.(*ast.TypeName)
	if !ok {
		t.Fatalf("got %T, want *ast.TypeName", node)
	}
	if tn.Source != ast.SourceReference || tn.UnresolvedStabs.TypeName != "Color" {
		t.Errorf("got %+v, want source REFERENCE targeting %q", tn, "Color")
	}
}

func TestTranslateAnonymousEnumSentinelNotSubstituted(t *testing.T) {
	sentinel := " "
	enumType := &stabs.StabsType{
		Name:       &sentinel,
		IsRoot:     true,
		HasBody:    true,
		Descriptor: stabs.Enum,
	}
	node, err := Translate(enumType, nil, newState(0), 1, false, false)
	if err != nil {
		t.Fatalf("Translate returned error: %v", err)
	}
	if _, ok := node.(*ast.TypeName); ok {
		t.Error("the single-space anonymous sentinel must never trigger name substitution")
	}
}

// CrossReference: always emitted as a TypeName, never inlined.
func TestTranslateCrossReference(t *testing.T) {
	xref := &stabs.StabsType{
		HasBody:                  true,
		Descriptor:               stabs.CrossReference,
		CrossReferenceIdentifier: "Widget",
		CrossReferenceKind:       stabs.CrossReferenceStruct,
	}
	node, err := Translate(xref, nil, newState(0), 0, false, false)
	if err != nil {
		t.Fatalf("Translate returned error: %v", err)
	}
	tn, ok := node.(*ast.TypeName)
	if !ok {
		t.Fatalf("got %T, want *ast.TypeName", node)
	}
	if tn.Source != ast.SourceCrossReference || tn.UnresolvedStabs.TypeName != "Widget" {
		t.Errorf("got %+v, want source CROSS_REFERENCE targeting %q", tn, "Widget")
	}
}

// Scenario 4 (via the struct dispatch path): a struct field detected as a
// bitfield translates to a BitField node.
func TestTranslateStructBitfieldField(t *testing.T) {
	intType := &stabs.StabsType{HasBody: true, Descriptor: stabs.Range, Low: "0", High: "4294967295"}
	structType := &stabs.StabsType{
		HasBody:    true,
		Descriptor: stabs.Struct,
		IsStruct:   true,
		SizeBytes:  4,
		Fields: []stabs.Field{
			{Name: "flags", Type: intType, OffsetBits: 0, SizeBits: 3},
		},
	}

	node, err := Translate(structType, nil, newState(0), 0, false, false)
	if err != nil {
		t.Fatalf("Translate returned error: %v", err)
	}
	s, ok := node.(*ast.StructOrUnion)
	if !ok {
		t.Fatalf("got %T, want *ast.StructOrUnion", node)
	}
	if len(s.Fields) != 1 {
		t.Fatalf("got %d fields, want 1", len(s.Fields))
	}
	bf, ok := s.Fields[0].(*ast.BitField)
	if !ok {
		t.Fatalf("got %T, want *ast.BitField", s.Fields[0])
	}
	if bf.Common().SizeBits != 3 {
		t.Errorf("SizeBits = %d, want 3", bf.Common().SizeBits)
	}
	if bf.UnderlyingType.Common().SizeBits != 32 {
		t.Errorf("underlying SizeBits = %d, want 32", bf.UnderlyingType.Common().SizeBits)
	}
}

// Boundary: a field named "$vf..." is marked is_vtable_pointer.
func TestTranslateVTablePointerField(t *testing.T) {
	ptr := &stabs.StabsType{HasBody: true, Descriptor: stabs.Builtin, BuiltinTypeID: 16}
	structType := &stabs.StabsType{
		HasBody:    true,
		Descriptor: stabs.Struct,
		IsStruct:   true,
		Fields: []stabs.Field{
			{Name: "$vf Widget", Type: ptr, SizeBits: 32},
		},
	}

	node, err := Translate(structType, nil, newState(0), 0, false, false)
	if err != nil {
		t.Fatalf("Translate returned error: %v", err)
	}
	s := node.(*ast.StructOrUnion)
	if !s.Fields[0].Common().IsVTablePointer {
		t.Error("field named with the $vf prefix must be marked IsVTablePointer")
	}
}

// Scenario 6: a member function named "__ct" classifies as a constructor
// and keeps that name as output.
func TestTranslateMemberFunctionConstructor(t *testing.T) {
	name := "Foo"
	fnType := &stabs.StabsType{HasBody: true, Descriptor: stabs.Function, Inner: &stabs.StabsType{HasBody: true, Descriptor: stabs.Builtin, BuiltinTypeID: 16}}
	structType := &stabs.StabsType{
		Name:       &name,
		HasBody:    true,
		Descriptor: stabs.Struct,
		IsStruct:   true,
		MemberFunctions: []stabs.MemberFunctionSet{
			{
				Name: "__ct",
				Overloads: []stabs.MemberFunctionOverload{
					{Type: fnType, Visibility: stabs.VisibilityPublic, Modifier: stabs.MemberFunctionNormal},
				},
			},
		},
	}

	node, err := Translate(structType, nil, newState(0), 0, false, false)
	if err != nil {
		t.Fatalf("Translate returned error: %v", err)
	}
	s := node.(*ast.StructOrUnion)
	if len(s.MemberFunctions) != 1 {
		t.Fatalf("got %d member functions, want 1", len(s.MemberFunctions))
	}
	common := s.MemberFunctions[0].Common()
	if !common.IsConstructorOrDestructor || !common.IsSpecialMemberFunction {
		t.Errorf("got %+v, want a constructor classified as special", common)
	}
	if common.Name != "__ct" {
		t.Errorf("Name = %q, want %q", common.Name, "__ct")
	}
}

func TestTranslateNoMemberFunctionsFlag(t *testing.T) {
	name := "Foo"
	fnType := &stabs.StabsType{HasBody: true, Descriptor: stabs.Function, Inner: &stabs.StabsType{HasBody: true, Descriptor: stabs.Builtin, BuiltinTypeID: 16}}
	structType := &stabs.StabsType{
		Name:       &name,
		HasBody:    true,
		Descriptor: stabs.Struct,
		IsStruct:   true,
		MemberFunctions: []stabs.MemberFunctionSet{
			{Name: "__ct", Overloads: []stabs.MemberFunctionOverload{{Type: fnType}}},
		},
	}

	node, err := Translate(structType, nil, newState(ccc.NoMemberFunctions), 0, false, false)
	if err != nil {
		t.Fatalf("Translate returned error: %v", err)
	}
	s := node.(*ast.StructOrUnion)
	if s.MemberFunctions != nil {
		t.Errorf("NoMemberFunctions must drop the member function list entirely, got %v", s.MemberFunctions)
	}
}

func TestCollectUnresolved(t *testing.T) {
	xref := &ast.TypeName{Source: ast.SourceCrossReference}
	this := &ast.TypeName{Source: ast.SourceThis}
	s := &ast.StructOrUnion{Fields: []ast.Node{xref, this}}

	got := CollectUnresolved(s)
	if len(got) != 1 || got[0] != xref {
		t.Errorf("CollectUnresolved = %v, want only the cross-reference TypeName", got)
	}
}
