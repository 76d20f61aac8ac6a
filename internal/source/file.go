// Package source holds a scanned file in memory and reconstructs the
// code text covered by a source range.
package source

import (
	"fmt"
	"os"
	"strings"
)

// Position is a 1-based line/column location in a source file.
type Position struct {
	Line   int
	Column int
}

// Range is an immutable span of source text. Columns are end-exclusive:
// slicing [Start.Column, End.Column) of a line yields the token text.
type Range struct {
	File  string
	Start Position
	End   Position
}

// String renders the range in the report's location format.
func (r Range) String() string {
	return fmt.Sprintf("%s:%d:%d - %d:%d", r.File, r.Start.Line, r.Start.Column, r.End.Line, r.End.Column)
}

// File is a source file read once, up front, with a pre-split line table
// so code-text reconstruction never touches the disk again.
type File struct {
	path    string
	content []byte
	lines   []string
}

// Load reads path once and builds the line table.
func Load(path string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return New(path, content), nil
}

// New builds a File around content already in memory.
func New(path string, content []byte) *File {
	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return &File{path: path, content: content, lines: lines}
}

// Path returns the path the file was loaded from.
func (f *File) Path() string { return f.path }

// Content returns the raw bytes handed to the parser.
func (f *File) Content() []byte { return f.content }

// LineCount returns the number of physical lines.
func (f *File) LineCount() int { return len(f.lines) }

// Line returns the 1-based physical line without its terminator, or ""
// when n is out of range.
func (f *File) Line(n int) string {
	if n < 1 || n > len(f.lines) {
		return ""
	}
	return f.lines[n-1]
}

// Snippet reconstructs the code text covering r. Single-line ranges slice
// the line between the columns; multi-line ranges join the start line's
// tail, each interior line, and the end line's head with single spaces.
// One trailing ";" is stripped if present.
func (f *File) Snippet(r Range) string {
	var text string
	if r.Start.Line == r.End.Line {
		text = strings.TrimSpace(sliceColumns(f.Line(r.Start.Line), r.Start.Column, r.End.Column))
	} else {
		var parts []string
		if head := strings.TrimSpace(tailFrom(f.Line(r.Start.Line), r.Start.Column)); head != "" {
			parts = append(parts, head)
		}
		for n := r.Start.Line + 1; n < r.End.Line; n++ {
			if line := strings.TrimSpace(f.Line(n)); line != "" {
				parts = append(parts, line)
			}
		}
		if tail := strings.TrimSpace(headTo(f.Line(r.End.Line), r.End.Column)); tail != "" {
			parts = append(parts, tail)
		}
		text = strings.Join(parts, " ")
	}
	if strings.HasSuffix(text, ";") {
		text = strings.TrimSpace(text[:len(text)-1])
	}
	return text
}

// sliceColumns slices [start, end) of a line in 1-based end-exclusive
// columns, clamping both ends to the line.
func sliceColumns(line string, start, end int) string {
	lo := clamp(start-1, 0, len(line))
	hi := clamp(end-1, lo, len(line))
	return line[lo:hi]
}

func tailFrom(line string, start int) string {
	return line[clamp(start-1, 0, len(line)):]
}

func headTo(line string, end int) string {
	return line[:clamp(end-1, 0, len(line))]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
