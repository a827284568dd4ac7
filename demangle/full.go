package demangle

import "strings"

// Full implements a minimal cplus_demangle capability for the GNU v2
// "name__<len><Class>" member-function mangling scheme (e.g.
// "foo__6Banana" demangles to "Banana::foo"). translate never calls this
// directly — §4.D only calls OpName — but it is part of the documented
// demangler capability and is exposed through Default for callers that want
// to display non-operator mangled names.
func Full(name string, options int) (string, bool) {
	idx := strings.Index(name, "__")
	if idx <= 0 || idx+2 >= len(name) {
		return "", false
	}
	method, rest := name[:idx], name[idx+2:]

	length := 0
	i := 0
	for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
		length = length*10 + int(rest[i]-'0')
		i++
	}
	if i == 0 || length == 0 || i+length > len(rest) {
		return "", false
	}
	class := rest[i : i+length]

	return class + "::" + method, true
}
