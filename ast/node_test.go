package ast

import "testing"

func TestNewBuiltInStampsSize(t *testing.T) {
	cases := []struct {
		class    BuiltInClass
		wantBits int32
	}{
		{Void, 0},
		{Bool8, 8},
		{Unsigned32, 32},
		{Signed64, 64},
		{Unsigned128, 128},
		{Float64, 64},
	}
	for _, c := range cases {
		b := NewBuiltIn(c.class)
		if b.SizeBits != c.wantBits {
			t.Errorf("NewBuiltIn(%v).SizeBits = %d, want %d", c.class, b.SizeBits, c.wantBits)
		}
		if b.Class != c.class {
			t.Errorf("NewBuiltIn(%v).Class = %v, want %v", c.class, b.Class, c.class)
		}
	}
}

func TestNodeCommonDefaultAccessIsPublic(t *testing.T) {
	var c NodeCommon
	if c.Access != AccessPublic {
		t.Errorf("zero-value NodeCommon.Access = %v, want AccessPublic", c.Access)
	}
}

func TestSetAccess(t *testing.T) {
	var c NodeCommon
	c.SetAccess(AccessPrivate)
	if c.Access != AccessPrivate {
		t.Errorf("SetAccess(AccessPrivate) left Access = %v", c.Access)
	}
}

func TestCommonReturnsSameStorage(t *testing.T) {
	b := NewBuiltIn(Unsigned32)
	common := b.Common()
	common.Name = "foo"
	if b.Name != "foo" {
		t.Error("Common() must return a pointer into the node's own storage, not a copy")
	}
}

func TestEveryNodeKindImplementsNode(t *testing.T) {
	var nodes = []Node{
		&BuiltIn{},
		&Array{},
		&Enum{},
		&Function{},
		&StructOrUnion{},
		&TypeName{},
		&PointerOrReference{},
		&PointerToDataMember{},
		&BitField{},
		&ErrorNode{},
	}
	for _, n := range nodes {
		if n.Common() == nil {
			t.Errorf("%T.Common() returned nil", n)
		}
	}
}
