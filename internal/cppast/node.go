package cppast

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/standardbeagle/cppeffects/internal/source"
)

// Node is the capability interface the classifier and scanner see. It is
// satisfied by the tree-sitter-backed nodes produced by Parse and by
// hand-built fake trees in tests.
type Node interface {
	// Kind is the node's syntactic category.
	Kind() NodeKind
	// Operator is the operator token for unary and assignment
	// expressions ("*", "&", "=", "&=", ...), "" for other nodes.
	Operator() string
	// Operand is the argument of a unary expression, nil otherwise.
	Operand() Node
	// Type is the canonical type of the expression, nil when the type
	// cannot be resolved. Assignment expressions carry the type of
	// their left-hand side.
	Type() *Type
	// Extent is the node's own source range.
	Extent() source.Range
	// Children returns the named child nodes in source order.
	Children() []Node
}

// Function is a top-level function or method definition found in a
// translation unit. Body is the function body node, nil for bodiless
// declarations.
type Function struct {
	Name string
	Kind NodeKind
	Body Node
}

// tsNode adapts a tree-sitter node to the Node interface. It keeps a
// reference to the owning translation unit for source text and type
// lookups; nodes are only valid while the translation unit is open.
type tsNode struct {
	inner *tree_sitter.Node
	tu    *TranslationUnit
}

func (n *tsNode) Kind() NodeKind {
	switch n.inner.Kind() {
	case "pointer_expression":
		return KindUnaryExpr
	case "assignment_expression":
		return KindAssignExpr
	case "new_expression":
		return KindNewExpr
	case "throw_statement":
		return KindThrowExpr
	case "function_definition":
		return KindFunctionDecl
	default:
		return KindOther
	}
}

func (n *tsNode) Operator() string {
	op := n.inner.ChildByFieldName("operator")
	if op == nil {
		return ""
	}
	return n.tu.text(op)
}

func (n *tsNode) Operand() Node {
	if n.inner.Kind() != "pointer_expression" {
		return nil
	}
	arg := n.inner.ChildByFieldName("argument")
	if arg == nil {
		return nil
	}
	return n.tu.wrap(arg)
}

func (n *tsNode) Type() *Type {
	return n.tu.typeOf(n.inner)
}

func (n *tsNode) Extent() source.Range {
	return n.tu.extent(n.inner)
}

func (n *tsNode) Children() []Node {
	count := n.inner.NamedChildCount()
	children := make([]Node, 0, count)
	for i := uint(0); i < count; i++ {
		if child := n.inner.NamedChild(i); child != nil {
			children = append(children, n.tu.wrap(child))
		}
	}
	return children
}
