// Package translate implements the STABS-to-AST translator: the main
// recursive transform (component E) from a parsed STABS type graph to the
// language-neutral AST in package ast, together with the range classifier
// (B), bitfield detector (C) and member-function analyzer (D) it calls
// internally. This is the core of the module — every STABS type descriptor
// has one translation rule here, ported directly from
// original_source/src/ccc/stabs_to_ast.cpp.
package translate

import (
	"github.com/cualquiercosa327/ccc"
	"github.com/cualquiercosa327/ccc/ast"
	"github.com/cualquiercosa327/ccc/demangle"
	"github.com/cualquiercosa327/ccc/stabs"
)

// maxRecursionDepth bounds the overall depth of a single Translate call
// tree (§3 invariant: depth of translation recursion ≤ 200).
const maxRecursionDepth = 200

// maxReferenceHops bounds the bitfield detector's type-reference chase
// (§3 invariant: reference-chase loops ≤ 50).
const maxReferenceHops = 50

// State carries everything one translator invocation needs beyond the
// STABS node currently being visited: the per-file type map a reference
// lookup resolves against, the parser flags controlling strict/lenient
// behavior and member-function filtering, the demangler capability, and
// the file handle stamped onto any TypeName this call produces.
//
// A State is exclusively owned by one Translate call tree — the StabsTypes
// map it wraps is built once by the tokenizer and never mutated once
// translation begins (§5).
type State struct {
	FileHandle  ast.FileHandle
	StabsTypes  map[stabs.TypeNumber]*stabs.StabsType
	ParserFlags ccc.ParserFlags
	Demangler   demangle.Functions

	// Warn receives every recoverable error converted to an ast.ErrorNode
	// in lenient mode, on the side channel §7 describes. Defaults to a
	// no-op if left nil.
	Warn func(*ccc.Error)
}

func (s *State) warn(err *ccc.Error) {
	if s.Warn != nil {
		s.Warn(err)
	}
}

// fail is the uniform error-propagation point described in spec §7: in
// strict mode it returns the error; in lenient mode (the default) it warns
// on the side channel and substitutes an ast.ErrorNode so the enclosing
// structure can still be built and serialized.
func (s *State) fail(kind ccc.ErrorKind, location, format string, args ...interface{}) (ast.Node, error) {
	return s.failErr(ccc.Fail(kind, location, format, args...))
}

// failErr applies the same uniform strict/lenient policy to an error
// already constructed elsewhere (e.g. by ClassifyRange, called both
// standalone and from within a Translate call tree).
func (s *State) failErr(err *ccc.Error) (ast.Node, error) {
	if s.ParserFlags.Has(ccc.StrictParsing) {
		return nil, err
	}
	s.warn(err)
	return &ast.ErrorNode{Message: err.Error()}, nil
}
