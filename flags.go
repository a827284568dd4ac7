package ccc

import "strings"

// ParserFlags controls the translator's error-handling mode and which
// member functions get emitted. Zero value is lenient mode with member
// functions included, matching the original tool's default.
type ParserFlags uint32

const (
	// StrictParsing makes recoverable errors fail the whole translation
	// instead of being substituted with an ast.ErrorNode.
	StrictParsing ParserFlags = 1 << iota
	// NoMemberFunctions drops all member functions from struct/union nodes.
	NoMemberFunctions
	// NoGeneratedMemberFunctions drops a struct/union's member function list
	// entirely when every function in it looks compiler-generated.
	NoGeneratedMemberFunctions
)

func (f ParserFlags) Has(bit ParserFlags) bool { return f&bit != 0 }

// SectionDescriptor locates the mdebug section within an image, as handed
// over by the (out of scope) ELF/executable loader.
type SectionDescriptor struct {
	FileOffset uint32
	Size       uint32
}

// SourceLanguage is the language a compilation unit was detected to be
// written in, inferred purely from its file extension.
type SourceLanguage int

const (
	LanguageUnknown SourceLanguage = iota
	LanguageC
	LanguageCPP
	LanguageAssembly
)

func (l SourceLanguage) String() string {
	switch l {
	case LanguageC:
		return "C"
	case LanguageCPP:
		return "C++"
	case LanguageAssembly:
		return "Assembly"
	default:
		return "Unknown"
	}
}

// DetectLanguage classifies a source path by its lowercased extension, per
// the heuristic table the original toolchain uses.
func DetectLanguage(path string) SourceLanguage {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".c"):
		return LanguageC
	case strings.HasSuffix(lower, ".cpp") || strings.HasSuffix(lower, ".cc") || strings.HasSuffix(lower, ".cxx"):
		return LanguageCPP
	case strings.HasSuffix(lower, ".s") || strings.HasSuffix(lower, ".asm"):
		return LanguageAssembly
	default:
		return LanguageUnknown
	}
}
