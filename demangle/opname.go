package demangle

// opnameTable is the historical GNU libiberty cplus-dem.c table mapping a
// GCC 2.x "opname" encoding to its operator spelling. Some compiler
// versions in the wild emit these short codes instead of a fully mangled
// "operator..." name for overloaded operators; translate.AnalyzeMemberFunction
// calls OpName first so it can recognize either form.
var opnameTable = map[string]string{
	"__as":  "operator=",
	"__eq":  "operator==",
	"__ne":  "operator!=",
	"__lt":  "operator<",
	"__gt":  "operator>",
	"__le":  "operator<=",
	"__ge":  "operator>=",
	"__pl":  "operator+",
	"__mi":  "operator-",
	"__ml":  "operator*",
	"__dv":  "operator/",
	"__md":  "operator%",
	"__aa":  "operator&&",
	"__oo":  "operator||",
	"__nt":  "operator!",
	"__or":  "operator|",
	"__co":  "operator~",
	"__er":  "operator^",
	"__ad":  "operator&",
	"__ls":  "operator<<",
	"__rs":  "operator>>",
	"__apl": "operator+=",
	"__ami": "operator-=",
	"__amu": "operator*=",
	"__adv": "operator/=",
	"__amd": "operator%=",
	"__aer": "operator^=",
	"__aad": "operator&=",
	"__aor": "operator|=",
	"__als": "operator<<=",
	"__ars": "operator>>=",
	"__pp":  "operator++",
	"__mm":  "operator--",
	"__rf":  "operator->",
	"__cl":  "operator()",
	"__vc":  "operator[]",
	"__nw":  "operator new",
	"__dl":  "operator delete",
	"__rm":  "operator->*",
	"__cm":  "operator,",
}

// OpName implements the cplus_demangle_opname capability: it maps a GNU v2
// opname code to its "operator..." spelling. options is accepted to match
// the C signature (cplus_demangle_opname(name, options)) but unused — the
// historical DMGL_* flags only affect the full demangler's output style.
func OpName(name string, options int) (string, bool) {
	demangled, ok := opnameTable[name]
	return demangled, ok
}
