package translate

import (
	"testing"

	"github.com/cualquiercosa327/ccc/stabs"
)

func TestDetectBitfieldStaticNeverBitfield(t *testing.T) {
	field := &stabs.Field{IsStatic: true, SizeBits: 3, Type: &stabs.StabsType{}}
	got, err := DetectBitfield(field, nil)
	if err != nil {
		t.Fatalf("DetectBitfield returned error: %v", err)
	}
	if got {
		t.Error("a static field must never be classified as a bitfield")
	}
}

func TestDetectBitfieldRangeUnderlyingType(t *testing.T) {
	intType := &stabs.StabsType{
		HasBody:    true,
		Descriptor: stabs.Range,
		Low:        "0",
		High:       "4294967295",
	}
	field := &stabs.Field{SizeBits: 3, Type: intType}

	got, err := DetectBitfield(field, map[stabs.TypeNumber]*stabs.StabsType{})
	if err != nil {
		t.Fatalf("DetectBitfield returned error: %v", err)
	}
	if !got {
		t.Error("3-bit field over a 32-bit underlying range must be a bitfield")
	}
}

func TestDetectBitfieldSameSizeIsNotBitfield(t *testing.T) {
	boolType := &stabs.StabsType{HasBody: true, Descriptor: stabs.Builtin, BuiltinTypeID: 16}
	field := &stabs.Field{SizeBits: 8, Type: boolType}

	got, err := DetectBitfield(field, map[stabs.TypeNumber]*stabs.StabsType{})
	if err != nil {
		t.Fatalf("DetectBitfield returned error: %v", err)
	}
	if got {
		t.Error("field whose declared size equals the underlying size must not be a bitfield")
	}
}

func TestDetectBitfieldChasesReferences(t *testing.T) {
	num := stabs.TypeNumber{File: 0, Type: 5}
	rangeType := &stabs.StabsType{HasBody: true, Descriptor: stabs.Range, Low: "0", High: "255"}
	types := map[stabs.TypeNumber]*stabs.StabsType{num: rangeType}

	reference := &stabs.StabsType{HasBody: false, Number: num}
	field := &stabs.Field{SizeBits: 3, Type: reference}

	got, err := DetectBitfield(field, types)
	if err != nil {
		t.Fatalf("DetectBitfield returned error: %v", err)
	}
	if !got {
		t.Error("expected a 3-bit field over an 8-bit resolved range to be a bitfield")
	}
}

func TestDetectBitfieldSelfReferentialMapEntryIsNotResolved(t *testing.T) {
	num := stabs.TypeNumber{File: 0, Type: 7}
	cyclic := &stabs.StabsType{HasBody: false, Number: num}
	types := map[stabs.TypeNumber]*stabs.StabsType{num: cyclic}

	field := &stabs.Field{SizeBits: 3, Type: cyclic}
	got, err := DetectBitfield(field, types)
	if err != nil {
		t.Fatalf("DetectBitfield returned error: %v", err)
	}
	if got {
		t.Error("a self-referential map entry must resolve to nil, never a bitfield")
	}
}
