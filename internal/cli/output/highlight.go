package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leapstack-labs/sqlex/pkg/source"
)

// contextRadius is the number of lines shown around the error line.
const contextRadius = 2

// ErrorContext prints the source lines around a syntax error with a
// caret under the error column. suspectLine, when non-zero, names a
// line a hint points at; it is rendered highlighted when it falls
// inside the context window.
func (r *Renderer) ErrorContext(doc *source.Document, line, col, suspectLine int) {
	last := doc.LineCount()
	if line > last {
		line = last
	}
	if line < 1 {
		line = 1
	}

	start := line - contextRadius
	if start < 1 {
		start = 1
	}
	end := line + contextRadius
	if end > last {
		end = last
	}

	width := len(strconv.Itoa(end))
	for n := start; n <= end; n++ {
		content := doc.Line(n)
		if n == suspectLine {
			content = r.styles.Warning.Render(content)
		}
		num := fmt.Sprintf("%*d", width, n)
		r.Printf("%s | %s\n", r.styles.LineNum.Render(num), content)

		if n == line {
			r.Printf("%s | %s\n",
				strings.Repeat(" ", width),
				r.styles.Caret.Render(makeIndicator(col, len(doc.Line(n)))))
		}
	}
}

// makeIndicator builds the caret line for a 1-based column, clamped to
// the line length so short lines still get a visible marker.
func makeIndicator(col, lineLen int) string {
	pad := col - 1
	if pad > lineLen {
		pad = lineLen
	}
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + "^"
}
