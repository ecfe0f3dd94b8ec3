package token

import "fmt"

// Position is a line/column location in SQL source text.
// Line and Column are 1-based; Column counts bytes from the line start.
type Position struct {
	Line   int
	Column int
}

// String returns the position in "line:column" form.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Before reports whether p is strictly before other in source order.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column < other.Column
}

// Span is a half-open source range [Start, End).
type Span struct {
	Start Position
	End   Position
}

// String returns the span in "start-end" form.
func (s Span) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}

// Contains reports whether pos falls inside the span.
func (s Span) Contains(pos Position) bool {
	return !pos.Before(s.Start) && pos.Before(s.End)
}
