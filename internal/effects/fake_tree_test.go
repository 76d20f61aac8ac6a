package effects

import (
	"github.com/standardbeagle/cppeffects/internal/cppast"
	"github.com/standardbeagle/cppeffects/internal/source"
)

// fakeNode is a hand-built facade node so classifier and scanner tests
// run without a real parser.
type fakeNode struct {
	kind     cppast.NodeKind
	op       string
	operand  *fakeNode
	typ      *cppast.Type
	extent   source.Range
	children []*fakeNode
}

func (n *fakeNode) Kind() cppast.NodeKind { return n.kind }
func (n *fakeNode) Operator() string      { return n.op }
func (n *fakeNode) Type() *cppast.Type    { return n.typ }

func (n *fakeNode) Operand() cppast.Node {
	if n.operand == nil {
		return nil
	}
	return n.operand
}

func (n *fakeNode) Extent() source.Range { return n.extent }

func (n *fakeNode) Children() []cppast.Node {
	children := make([]cppast.Node, len(n.children))
	for i, c := range n.children {
		children[i] = c
	}
	return children
}

// fakeTU is a hand-built translation unit for driver tests.
type fakeTU struct {
	fns []cppast.Function
}

func (f *fakeTU) Functions() []cppast.Function { return f.fns }

// span builds a single-line range into the shared test source.
func span(line, startCol, endCol int) source.Range {
	return source.Range{
		File:  "test.cpp",
		Start: source.Position{Line: line, Column: startCol},
		End:   source.Position{Line: line, Column: endCol},
	}
}

var (
	intType      = &cppast.Type{Kind: cppast.TypeOther}
	constIntType = &cppast.Type{Kind: cppast.TypeOther, Const: true}
	intPtr       = &cppast.Type{Kind: cppast.TypePointer, Pointee: intType}
	constIntPtr  = &cppast.Type{Kind: cppast.TypePointer, Pointee: constIntType}
	intPtrPtr    = &cppast.Type{Kind: cppast.TypePointer, Pointee: intPtr}
	intPtrRef    = &cppast.Type{Kind: cppast.TypeLValueReference, Pointee: intPtr}
	unresolved   *cppast.Type
)

func identOf(t *cppast.Type) *fakeNode {
	return &fakeNode{kind: cppast.KindOther, typ: t}
}

func derefOf(t *cppast.Type, extent source.Range) *fakeNode {
	return &fakeNode{kind: cppast.KindUnaryExpr, op: "*", operand: identOf(t), extent: extent}
}

func assignOf(op string, lhs *cppast.Type, extent source.Range) *fakeNode {
	return &fakeNode{kind: cppast.KindAssignExpr, op: op, typ: lhs, extent: extent}
}
