// Package source provides an immutable view of a SQL file with fast
// conversion between line/column positions and byte offsets.
package source

import (
	"sort"
	"strings"

	"github.com/leapstack-labs/sqlex/pkg/token"
)

// Document wraps source text with a precomputed line-offset index.
// The index holds one byte offset per line start; lineOffsets[0] is
// always 0 and the slice is strictly increasing.
type Document struct {
	name        string
	text        string
	lineOffsets []int
}

// New builds a Document over text. Line starts are recorded after every
// '\n', so "\r\n" line endings index the '\r' into the preceding line.
func New(name, text string) *Document {
	offsets := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	return &Document{name: name, text: text, lineOffsets: offsets}
}

// Name returns the document's file name.
func (d *Document) Name() string { return d.name }

// Text returns the full source text.
func (d *Document) Text() string { return d.text }

// Len returns the source length in bytes.
func (d *Document) Len() int { return len(d.text) }

// LineCount returns the number of recorded lines. Text ending in '\n'
// counts the empty trailing line.
func (d *Document) LineCount() int { return len(d.lineOffsets) }

// ByteOffset converts a 1-based line/column position to a byte offset.
// Lines past the end clamp to the final recorded line start; lines and
// columns below 1 clamp to 1. The result never exceeds len(text).
func (d *Document) ByteOffset(pos token.Position) int {
	line := pos.Line
	if line < 1 {
		line = 1
	}
	if line > len(d.lineOffsets) {
		line = len(d.lineOffsets)
	}
	col := pos.Column
	if col < 1 {
		col = 1
	}

	off := d.lineOffsets[line-1] + col - 1
	if off > len(d.text) {
		off = len(d.text)
	}
	return off
}

// Position converts a byte offset back to a 1-based line/column position.
// Offsets are clamped to [0, len(text)].
func (d *Document) Position(offset int) token.Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(d.text) {
		offset = len(d.text)
	}

	// First line whose start is past the offset; the offset belongs to
	// the line before it.
	line := sort.Search(len(d.lineOffsets), func(i int) bool {
		return d.lineOffsets[i] > offset
	})

	return token.Position{
		Line:   line,
		Column: offset - d.lineOffsets[line-1] + 1,
	}
}

// Line returns the content of the 1-based line n without its line ending.
// Out-of-range lines return "".
func (d *Document) Line(n int) string {
	if n < 1 || n > len(d.lineOffsets) {
		return ""
	}
	start := d.lineOffsets[n-1]
	end := len(d.text)
	if n < len(d.lineOffsets) {
		end = d.lineOffsets[n] - 1
	}
	return strings.TrimSuffix(d.text[start:end], "\r")
}
