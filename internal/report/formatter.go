// Package report renders scan results as plain text.
package report

import (
	"fmt"
	"io"

	"github.com/standardbeagle/cppeffects/internal/effects"
)

// NoSideEffectsSummary is printed when a whole file yields no findings.
const NoSideEffectsSummary = "No side effects found."

// Formatter writes the per-function side-effect report.
type Formatter struct {
	w io.Writer
}

// NewFormatter creates a formatter writing to w.
func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{w: w}
}

// Write renders every function with at least one finding, in order, or
// the single summary line when the whole file is clean. Functions with
// empty finding lists are skipped but still count toward the summary
// decision.
func (f *Formatter) Write(results []effects.ScanResult) error {
	clean := true
	for _, result := range results {
		if len(result.Findings) == 0 {
			continue
		}
		clean = false
		if err := f.writeFunction(result); err != nil {
			return err
		}
	}
	if clean {
		if _, err := fmt.Fprintln(f.w, NoSideEffectsSummary); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	return nil
}

func (f *Formatter) writeFunction(result effects.ScanResult) error {
	if _, err := fmt.Fprintf(f.w, "Function: %s\n", result.FunctionName); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	for _, finding := range result.Findings {
		_, err := fmt.Fprintf(f.w, "Side effect found: %s\nLocation: %s\nCode: %s\n\n",
			finding.Kind, finding.Range, finding.Code)
		if err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	return nil
}
