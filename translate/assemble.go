package translate

import (
	"github.com/elliotchance/orderedmap"

	"github.com/cualquiercosa327/ccc"
	"github.com/cualquiercosa327/ccc/ast"
	"github.com/cualquiercosa327/ccc/demangle"
	"github.com/cualquiercosa327/ccc/mdebug"
	"github.com/cualquiercosa327/ccc/stabs"
)

// FileResult is one compilation unit's translated output (§4.F): every root
// type translated to an AST node, in the order the compiler first defined
// them, plus the warnings lenient mode accumulated along the way.
type FileResult struct {
	// Types maps stabs.TypeNumber -> ast.Node, preserving first-definition
	// order — the same re-entrant-tolerant accumulation GoReSym's
	// objfile.go uses to build its own parsedTypes map while chasing
	// mutually-recursive type graphs.
	Types    *orderedmap.OrderedMap
	Warnings []*ccc.Error
}

// TranslateFile implements component F: translate every root STABS type of
// one compilation unit and assemble the results into a FileResult. fd is
// accepted for the caller's context and is not read here; the file handle
// comes from the first root's type number. The actual symbol strings have
// already been tokenized into stabsTypes/roots by the (out of scope) STABS
// tokenizer by the time this is called.
func TranslateFile(fd *mdebug.SymFileDescriptor, stabsTypes map[stabs.TypeNumber]*stabs.StabsType, roots []*stabs.StabsType, flags ccc.ParserFlags, demangler demangle.Functions) (*FileResult, error) {
	var fileHandle ast.FileHandle
	if len(roots) > 0 {
		fileHandle = ast.FileHandle(roots[0].Number.File)
	}

	result := &FileResult{Types: orderedmap.NewOrderedMap()}
	state := &State{
		FileHandle:  fileHandle,
		StabsTypes:  stabsTypes,
		ParserFlags: flags,
		Demangler:   demangler,
		Warn: func(err *ccc.Error) {
			result.Warnings = append(result.Warnings, err)
		},
	}

	for _, root := range roots {
		if _, exists := result.Types.Get(root.Number); exists {
			continue
		}
		node, err := Translate(root, nil, state, 0, false, false)
		if err != nil {
			return nil, err
		}
		result.Types.Set(root.Number, node)
	}

	return result, nil
}
