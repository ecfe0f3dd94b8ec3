package parser

import (
	"fmt"

	"github.com/leapstack-labs/sqlex/pkg/token"
)

// Error is a syntax error at a source position. Its rendering carries the
// "Line: <n>, Column: <n>" form downstream location extraction relies on.
type Error struct {
	Pos     token.Position
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("syntax error at Line: %d, Column: %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// tokenDesc renders a token for error messages. EOF renders as "EOF",
// keywords and operators as themselves, value-carrying tokens with their
// literal text.
func tokenDesc(tok token.Token) string {
	switch tok.Type {
	case token.EOF:
		return "EOF"
	case token.IDENT, token.NUMBER, token.STRING, token.ILLEGAL:
		return fmt.Sprintf("%q", tok.Literal)
	default:
		return tok.Type.String()
	}
}
