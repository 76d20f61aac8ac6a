package effects

import (
	"github.com/standardbeagle/cppeffects/internal/cppast"
	"github.com/standardbeagle/cppeffects/internal/source"
)

// Classifier matches a single node, in isolation, against the fixed
// side-effect pattern set. It never recurses and never fails: odd node
// shapes and unresolved types fall through to "no match".
type Classifier struct {
	src *source.File
}

// NewClassifier creates a classifier that reconstructs code text from src.
func NewClassifier(src *source.File) *Classifier {
	return &Classifier{src: src}
}

// Classify checks the node against the four patterns in fixed precedence
// and returns the finding for the first one that matches.
func (c *Classifier) Classify(node cppast.Node) (Finding, bool) {
	switch node.Kind() {
	case cppast.KindUnaryExpr:
		if node.Operator() != "*" {
			return Finding{}, false
		}
		operand := node.Operand()
		if operand == nil {
			return Finding{}, false
		}
		t := operand.Type()
		if t == nil || t.Kind != cppast.TypePointer || t.Pointee == nil || t.Pointee.IsConst() {
			return Finding{}, false
		}
		return c.finding(KindDereferenceNonConstPointer, node), true

	case cppast.KindAssignExpr:
		op := node.Operator()
		if op != "=" && op != "&=" {
			return Finding{}, false
		}
		// The original tool stripped one level of indirection from the
		// assignment's own type and asked whether the result is still a
		// pointer or lvalue reference. For a plain pointer LHS that
		// leaves a non-pointer type, so `q = nullptr` does not match;
		// only pointer-to-pointer and reference-to-pointer left sides
		// do. Kept as observed rather than widened to every pointer
		// assignment.
		t := node.Type()
		if t == nil || t.Pointee == nil {
			return Finding{}, false
		}
		stripped := t.Pointee
		if stripped.Kind != cppast.TypePointer && stripped.Kind != cppast.TypeLValueReference {
			return Finding{}, false
		}
		return c.finding(KindAssignToPointerOrReference, node), true

	case cppast.KindNewExpr:
		return c.finding(KindDynamicMemoryAllocation, node), true

	case cppast.KindThrowExpr:
		return c.finding(KindThrowException, node), true
	}
	return Finding{}, false
}

func (c *Classifier) finding(kind Kind, node cppast.Node) Finding {
	extent := node.Extent()
	return Finding{Kind: kind, Range: extent, Code: c.src.Snippet(extent)}
}
