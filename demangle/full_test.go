package demangle

import "testing"

func TestFullGNUv2MemberFunction(t *testing.T) {
	cases := []struct {
		mangled string
		want    string
	}{
		{"foo__6Banana", "Banana::foo"},
		{"bar__3Foo", "Foo::bar"},
	}
	for _, c := range cases {
		got, ok := Full(c.mangled, 0)
		if !ok {
			t.Errorf("Full(%q) ok = false, want true", c.mangled)
		}
		if got != c.want {
			t.Errorf("Full(%q) = %q, want %q", c.mangled, got, c.want)
		}
	}
}

func TestFullRejectsMalformedInput(t *testing.T) {
	cases := []string{
		"",
		"nounderscore",
		"__leadingonly",
		"foo__",
		"foo__0Banana",
		"foo__99Banana", // length longer than the remaining string
	}
	for _, mangled := range cases {
		if _, ok := Full(mangled, 0); ok {
			t.Errorf("Full(%q) ok = true, want false", mangled)
		}
	}
}
