// Package demangle provides the demangler capability described in the
// translator's external interfaces: two optional functions,
// cplus_demangle_opname and cplus_demangle, consumed by
// translate.AnalyzeMemberFunction to recover proper operator names (and,
// in principle, full demangled names) from GCC 2.x-era mangled symbols.
//
// The translator only ever calls through the Functions capability — it
// never assumes a concrete demangler is linked in, matching the original
// tool's function-pointer design, which lets the demangler be swapped or
// absent entirely. Default provides a real implementation grounded on the
// historical GNU libiberty cplus-dem.c opname table, so the translator can
// be exercised end-to-end without a cgo binding to libiberty itself.
package demangle

// Functions is the Go realization of the two optional demangler function
// pointers. A nil field means "unavailable"; the caller falls back to the
// mangled name unchanged, exactly like the original's null-pointer check.
type Functions struct {
	// OpName demangles a GNU v2 operator name like "__pl" into "operator+".
	// The second return value is false when name wasn't a recognized
	// opname (the analogue of the C function pointer returning NULL).
	OpName func(name string, options int) (string, bool)
	// Full demangles an arbitrary mangled C++ name. Also returns false on
	// failure.
	Full func(name string, options int) (string, bool)
}

// Default returns the Functions capability backed by this package's own
// opname/full-name tables.
func Default() Functions {
	return Functions{OpName: OpName, Full: Full}
}
