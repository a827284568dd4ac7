package ast

// ErrorNode substitutes for a node that failed to translate in lenient
// mode (the default — see ccc.ParserFlags). The enclosing structure still
// gets a node in its place so translation as a whole can still succeed and
// serialize.
type ErrorNode struct {
	NodeCommon
	Message string
}
