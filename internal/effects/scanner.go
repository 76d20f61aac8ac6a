package effects

import (
	"github.com/standardbeagle/cppeffects/internal/cppast"
	"github.com/standardbeagle/cppeffects/internal/debug"
	"github.com/standardbeagle/cppeffects/internal/source"
)

// FunctionLister yields the scannable functions of a translation unit.
// Implemented by cppast.TranslationUnit and by fake trees in tests.
type FunctionLister interface {
	Functions() []cppast.Function
}

// Scanner walks function bodies and collects findings. The walk is
// depth-first pre-order with short-circuit pruning: within each
// top-level statement of a body, descent stops at the first matching
// node, so a side effect nested inside or after another match in the
// same statement subtree is never reported separately. Two matches in
// sibling statements are both reported, in source order. This pruning
// is part of the observable contract, not an optimization.
type Scanner struct {
	classifier *Classifier
}

// NewScanner creates a scanner over one source file.
func NewScanner(src *source.File) *Scanner {
	return &Scanner{classifier: NewClassifier(src)}
}

// Scan collects at most one finding per direct child of the function
// body, in source order. A nil body yields nothing.
func (s *Scanner) Scan(body cppast.Node) []Finding {
	if body == nil {
		return nil
	}
	var findings []Finding
	for _, child := range body.Children() {
		if f, ok := s.findFirst(child); ok {
			findings = append(findings, f)
		}
	}
	return findings
}

// findFirst returns the first match in pre-order within the subtree
// rooted at node, pruning the rest of the subtree once it matches.
func (s *Scanner) findFirst(node cppast.Node) (Finding, bool) {
	if f, ok := s.classifier.Classify(node); ok {
		return f, true
	}
	for _, child := range node.Children() {
		if f, ok := s.findFirst(child); ok {
			return f, true
		}
	}
	return Finding{}, false
}

// ScanFile scans every top-level function and method of the translation
// unit in encounter order. Functions without findings are included with
// an empty list; the report formatter decides what to show.
func (s *Scanner) ScanFile(tu FunctionLister) []ScanResult {
	var results []ScanResult
	for _, fn := range tu.Functions() {
		findings := s.Scan(fn.Body)
		debug.Log("SCAN", "%s: %d findings", fn.Name, len(findings))
		results = append(results, ScanResult{FunctionName: fn.Name, Findings: findings})
	}
	return results
}
