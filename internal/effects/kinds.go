// Package effects classifies and collects side-effect expressions in a
// parsed C++ translation unit: non-const pointer dereferences,
// pointer/reference assignments, heap allocations, and throws.
package effects

import "github.com/standardbeagle/cppeffects/internal/source"

// Kind is the closed set of reportable side-effect categories.
type Kind uint8

const (
	// KindOther is reserved for forward extension; the current pattern
	// set never emits it.
	KindOther Kind = iota
	KindDereferenceNonConstPointer
	KindAssignToPointerOrReference
	KindDynamicMemoryAllocation
	KindThrowException
)

// String returns the kind tag used in report output.
func (k Kind) String() string {
	switch k {
	case KindDereferenceNonConstPointer:
		return "DEREFERENCE_NON_CONST_POINTER"
	case KindAssignToPointerOrReference:
		return "ASSIGN_TO_POINTER_OR_REFERENCE"
	case KindDynamicMemoryAllocation:
		return "DYNAMIC_MEMORY_ALLOCATION"
	case KindThrowException:
		return "THROW_EXCEPTION"
	default:
		return "OTHER"
	}
}

// Finding is one detected side-effect occurrence. Code is the verbatim
// source text covering Range, reconstructed from the file content.
type Finding struct {
	Kind  Kind
	Range source.Range
	Code  string
}

// ScanResult holds the findings of one function, in discovery order.
type ScanResult struct {
	FunctionName string
	Findings     []Finding
}
