package cppast

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain ensures no goroutines leak in any test in this package. The
// parser and tree handles live in cgo; leaks here would show up as
// goroutines stuck on finalizer paths.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
