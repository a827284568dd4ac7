package ast

import "github.com/cualquiercosa327/ccc/stabs"

// TypeNameSource records why a node was emitted as a TypeName instead of
// being expanded in place.
type TypeNameSource int

const (
	// SourceReference: the STABS type carried a user-written name and the
	// name-substitution policy decided to preserve it rather than expand.
	SourceReference TypeNameSource = iota
	// SourceCrossReference: a STABS CROSS_REFERENCE node — forward
	// declares a struct/union/enum without defining it. Never inlined.
	SourceCrossReference
	// SourceThis: self-reference substitution broke a recursion cycle on
	// an auto-generated member function's this-pointer or return type.
	SourceThis
)

// UnresolvedStabs identifies the target of a TypeName node for a later
// resolution pass (out of scope here) to look up. Exactly one of TypeName
// or (ReferencedFileHandle, StabsNumber) need be meaningful depending on
// Source; for SourceCrossReference, CrossReferenceKind is also meaningful
// and StabsNumber is zero.
type UnresolvedStabs struct {
	TypeName             string
	ReferencedFileHandle FileHandle
	StabsNumber          stabs.TypeNumber
	CrossReferenceKind   stabs.CrossReferenceKind
}

// TypeName is a deferred reference to a type defined elsewhere — by name,
// by (file, type) number, or as a cross-reference/this-pointer
// substitution. It is never resolved by this package; see
// translate.CollectUnresolved for the walk a later pass would start from.
type TypeName struct {
	NodeCommon
	Source          TypeNameSource
	UnresolvedStabs UnresolvedStabs
}
