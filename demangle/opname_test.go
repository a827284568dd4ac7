package demangle

import "testing"

func TestOpNameKnownCodes(t *testing.T) {
	cases := []struct {
		code string
		want string
	}{
		{"__pl", "operator+"},
		{"__as", "operator="},
		{"__eq", "operator=="},
		{"__vc", "operator[]"},
		{"__nw", "operator new"},
		{"__rm", "operator->*"},
	}
	for _, c := range cases {
		got, ok := OpName(c.code, 0)
		if !ok {
			t.Errorf("OpName(%q) ok = false, want true", c.code)
		}
		if got != c.want {
			t.Errorf("OpName(%q) = %q, want %q", c.code, got, c.want)
		}
	}
}

func TestOpNameUnrecognizedCode(t *testing.T) {
	_, ok := OpName("__not_a_real_code", 0)
	if ok {
		t.Error("OpName on an unrecognized code must return ok = false")
	}
}

func TestOpNameOrdinaryName(t *testing.T) {
	_, ok := OpName("DoSomething", 0)
	if ok {
		t.Error("OpName on an ordinary member-function name must return ok = false")
	}
}

func TestDefaultWiresBothFunctions(t *testing.T) {
	fns := Default()
	if fns.OpName == nil || fns.Full == nil {
		t.Fatal("Default() must populate both OpName and Full")
	}
	if _, ok := fns.OpName("__pl", 0); !ok {
		t.Error("Default().OpName must behave like the package-level OpName")
	}
}
