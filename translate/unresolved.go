package translate

import "github.com/cualquiercosa327/ccc/ast"

// CollectUnresolved implements component G: walk an AST and collect every
// TypeName node that still needs resolving against a later pass's symbol
// table — everything except SourceThis, which already resolved itself by
// construction (it names the enclosing struct directly, not a deferred
// lookup). No resolution logic lives here; a caller owns what happens next.
func CollectUnresolved(root ast.Node) []*ast.TypeName {
	var out []*ast.TypeName
	walkUnresolved(root, &out)
	return out
}

func walkUnresolved(node ast.Node, out *[]*ast.TypeName) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *ast.TypeName:
		if n.Source != ast.SourceThis {
			*out = append(*out, n)
		}
	case *ast.Array:
		walkUnresolved(n.ElementType, out)
	case *ast.Function:
		walkUnresolved(n.ReturnType, out)
		if n.Parameters != nil {
			for _, p := range *n.Parameters {
				walkUnresolved(p, out)
			}
		}
	case *ast.StructOrUnion:
		for _, b := range n.BaseClasses {
			walkUnresolved(b, out)
		}
		for _, f := range n.Fields {
			walkUnresolved(f, out)
		}
		for _, m := range n.MemberFunctions {
			walkUnresolved(m, out)
		}
	case *ast.PointerOrReference:
		walkUnresolved(n.ValueType, out)
	case *ast.PointerToDataMember:
		walkUnresolved(n.ClassType, out)
		walkUnresolved(n.MemberType, out)
	case *ast.BitField:
		walkUnresolved(n.UnderlyingType, out)
	case *ast.BuiltIn, *ast.Enum, *ast.ErrorNode:
		// leaf nodes, nothing to descend into
	}
}
