package checker

import "strings"

// ParseErrorLocation extracts the 1-based line and column from a
// rendered parser error. Both values default to 1 when the message
// carries no location. The column scan tolerates "Column: 7" as well
// as "Column 7".
func ParseErrorLocation(msg string) (line, col int) {
	line, col = 1, 1

	if i := strings.Index(msg, "Line: "); i >= 0 {
		if n, ok := leadingInt(msg[i+len("Line: "):]); ok {
			line = n
		}
	}

	if i := strings.Index(msg, "Column"); i >= 0 {
		rest := msg[i+len("Column"):]
		j := 0
		for j < len(rest) && !isDigit(rest[j]) {
			j++
		}
		if n, ok := leadingInt(rest[j:]); ok {
			col = n
		}
	}

	return line, col
}

func leadingInt(s string) (int, bool) {
	n, ok := 0, false
	for i := 0; i < len(s) && isDigit(s[i]); i++ {
		n = n*10 + int(s[i]-'0')
		ok = true
	}
	return n, ok
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
