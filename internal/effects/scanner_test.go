package effects

import (
	"testing"

	"github.com/standardbeagle/cppeffects/internal/cppast"
	"github.com/standardbeagle/cppeffects/internal/source"
)

const scannerSrc = `*p;
new int(5);
throw 1;
x + 1;
`

func newTestScanner() *Scanner {
	return NewScanner(source.New("test.cpp", []byte(scannerSrc)))
}

func TestScanEmptyBody(t *testing.T) {
	s := newTestScanner()

	body := &fakeNode{kind: cppast.KindOther}
	if got := s.Scan(body); len(got) != 0 {
		t.Errorf("expected no findings, got %d", len(got))
	}
	if got := s.Scan(nil); got != nil {
		t.Errorf("nil body should yield nil, got %v", got)
	}
}

func TestScanCleanStatements(t *testing.T) {
	s := newTestScanner()

	stmt := &fakeNode{kind: cppast.KindOther, children: []*fakeNode{
		{kind: cppast.KindOther, children: []*fakeNode{identOf(intType)}},
	}}
	body := &fakeNode{kind: cppast.KindOther, children: []*fakeNode{stmt, stmt}}

	if got := s.Scan(body); len(got) != 0 {
		t.Errorf("expected no findings, got %d", len(got))
	}
}

func TestScanSiblingStatementsBothReported(t *testing.T) {
	s := newTestScanner()

	deref := &fakeNode{kind: cppast.KindOther, children: []*fakeNode{derefOf(intPtr, span(1, 1, 3))}}
	alloc := &fakeNode{kind: cppast.KindOther, children: []*fakeNode{
		{kind: cppast.KindNewExpr, extent: span(2, 1, 11)},
	}}
	body := &fakeNode{kind: cppast.KindOther, children: []*fakeNode{deref, alloc}}

	got := s.Scan(body)
	if len(got) != 2 {
		t.Fatalf("expected 2 findings, got %d", len(got))
	}
	if got[0].Kind != KindDereferenceNonConstPointer || got[1].Kind != KindDynamicMemoryAllocation {
		t.Errorf("findings out of source order: %s, %s", got[0].Kind, got[1].Kind)
	}
}

func TestScanShortCircuitsWithinStatement(t *testing.T) {
	s := newTestScanner()

	// A new-expression nested under an already-matching dereference in
	// the same statement subtree must not be reported separately.
	nested := derefOf(intPtr, span(1, 1, 3))
	nested.children = []*fakeNode{{kind: cppast.KindNewExpr, extent: span(2, 1, 11)}}
	stmt := &fakeNode{kind: cppast.KindOther, children: []*fakeNode{nested}}
	body := &fakeNode{kind: cppast.KindOther, children: []*fakeNode{stmt}}

	got := s.Scan(body)
	if len(got) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(got))
	}
	if got[0].Kind != KindDereferenceNonConstPointer {
		t.Errorf("kind = %s, want the first pre-order match", got[0].Kind)
	}
}

func TestScanMatchSuppressesLaterSiblingInSameSubtree(t *testing.T) {
	s := newTestScanner()

	// First match in pre-order prunes the whole statement subtree,
	// including a later sibling expression.
	stmt := &fakeNode{kind: cppast.KindOther, children: []*fakeNode{
		derefOf(intPtr, span(1, 1, 3)),
		{kind: cppast.KindThrowExpr, extent: span(3, 1, 9)},
	}}
	body := &fakeNode{kind: cppast.KindOther, children: []*fakeNode{stmt}}

	got := s.Scan(body)
	if len(got) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(got))
	}
}

func TestScanStatementMatchingDirectly(t *testing.T) {
	s := newTestScanner()

	body := &fakeNode{kind: cppast.KindOther, children: []*fakeNode{
		{kind: cppast.KindThrowExpr, extent: span(3, 1, 9)},
	}}

	got := s.Scan(body)
	if len(got) != 1 || got[0].Code != "throw 1" {
		t.Fatalf("unexpected findings: %+v", got)
	}
}

func TestScanFileKeepsEncounterOrder(t *testing.T) {
	s := newTestScanner()

	dirty := cppast.Function{
		Name: "dirty",
		Kind: cppast.KindFunctionDecl,
		Body: &fakeNode{kind: cppast.KindOther, children: []*fakeNode{
			{kind: cppast.KindThrowExpr, extent: span(3, 1, 9)},
		}},
	}
	clean := cppast.Function{
		Name: "clean",
		Kind: cppast.KindMethodDecl,
		Body: &fakeNode{kind: cppast.KindOther},
	}

	results := s.ScanFile(&fakeTU{fns: []cppast.Function{clean, dirty}})
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].FunctionName != "clean" || len(results[0].Findings) != 0 {
		t.Errorf("clean function misreported: %+v", results[0])
	}
	if results[1].FunctionName != "dirty" || len(results[1].Findings) != 1 {
		t.Errorf("dirty function misreported: %+v", results[1])
	}
}
