package parser

import (
	"fmt"

	"github.com/leapstack-labs/sqlex/pkg/dialect"
	"github.com/leapstack-labs/sqlex/pkg/token"
)

// Parser is a recursive-descent SQL parser with two-token lookahead.
// The first syntax error aborts the parse; every error path consumes at
// least one token so malformed input cannot loop.
type Parser struct {
	lexer   *Lexer
	dialect *dialect.Dialect

	token token.Token // current token
	peek  token.Token
	peek2 token.Token

	// end of the previously consumed token, for statement spans
	prevEnd token.Position

	err *Error
}

// NewParser creates a parser over input for the given dialect.
func NewParser(input string, d *dialect.Dialect) *Parser {
	p := &Parser{
		lexer:   NewLexer(input, d),
		dialect: d,
		prevEnd: token.Position{Line: 1, Column: 1},
	}
	// Prime the lookahead window.
	p.token = p.lexer.NextToken()
	p.peek = p.lexer.NextToken()
	p.peek2 = p.lexer.NextToken()
	return p
}

// Parse parses the input as a list of statements separated by semicolons.
// An empty input yields an empty list.
func (p *Parser) Parse() ([]Statement, error) {
	var stmts []Statement

	for p.token.Type != token.EOF {
		if p.token.Type == token.SEMICOLON {
			p.nextToken()
			continue
		}

		stmt := p.parseTopStatement()
		if p.err != nil {
			return nil, p.err
		}
		stmts = append(stmts, stmt)

		if p.token.Type != token.SEMICOLON && p.token.Type != token.EOF {
			p.addError("expected %s, found %s", token.SEMICOLON, tokenDesc(p.token))
			return nil, p.err
		}
	}

	return stmts, nil
}

// parseTopStatement dispatches on the leading keyword.
func (p *Parser) parseTopStatement() Statement {
	start := p.token.Pos

	var stmt Statement
	switch p.token.Type {
	case token.SELECT, token.WITH:
		s := p.parseStatement()
		s.SetSpan(token.Span{Start: start, End: p.prevEnd})
		stmt = s
	case token.INSERT:
		s := p.parseInsert()
		s.SetSpan(token.Span{Start: start, End: p.prevEnd})
		stmt = s
	case token.UPDATE:
		s := p.parseUpdate()
		s.SetSpan(token.Span{Start: start, End: p.prevEnd})
		stmt = s
	case token.DELETE:
		s := p.parseDelete()
		s.SetSpan(token.Span{Start: start, End: p.prevEnd})
		stmt = s
	default:
		p.addError("expected a statement, found %s", tokenDesc(p.token))
		p.nextToken()
	}
	return stmt
}

// nextToken advances the lookahead window.
func (p *Parser) nextToken() {
	p.prevEnd = p.token.End
	p.token = p.peek
	p.peek = p.peek2
	p.peek2 = p.lexer.NextToken()
}

// check reports whether the current token has the given type.
func (p *Parser) check(t token.TokenType) bool {
	return p.token.Type == t
}

// checkPeek reports whether the next token has the given type.
func (p *Parser) checkPeek(t token.TokenType) bool {
	return p.peek.Type == t
}

// checkPeek2 reports whether the token after next has the given type.
func (p *Parser) checkPeek2(t token.TokenType) bool {
	return p.peek2.Type == t
}

// match consumes the current token if it has the given type.
func (p *Parser) match(t token.TokenType) bool {
	if p.check(t) {
		p.nextToken()
		return true
	}
	return false
}

// expect consumes the current token if it has the given type; otherwise
// it records a syntax error.
func (p *Parser) expect(t token.TokenType) bool {
	if p.check(t) {
		p.nextToken()
		return true
	}
	p.addError("expected %s, found %s", t, tokenDesc(p.token))
	return false
}

// failed reports whether a syntax error has been recorded.
func (p *Parser) failed() bool {
	return p.err != nil
}

// addError records the first syntax error at the current token.
func (p *Parser) addError(format string, args ...any) {
	if p.err != nil {
		return
	}
	p.err = &Error{
		Pos:     p.token.Pos,
		Message: fmt.Sprintf(format, args...),
	}
}

// isClauseKeyword reports whether tok starts a clause that terminates an
// alias-free identifier sequence.
func (p *Parser) isClauseKeyword(tok token.Token) bool {
	switch tok.Type {
	case token.WHERE, token.GROUP, token.HAVING, token.ORDER, token.LIMIT,
		token.OFFSET, token.UNION, token.INTERSECT, token.EXCEPT, token.ON,
		token.USING, token.SET, token.VALUES:
		return true
	}
	if p.dialect != nil && p.dialect.IsClause(tok.Type) {
		return true
	}
	return false
}

// isJoinKeyword reports whether tok starts a join.
func (p *Parser) isJoinKeyword(tok token.Token) bool {
	switch tok.Type {
	case token.JOIN, token.INNER, token.LEFT, token.RIGHT, token.FULL,
		token.CROSS, token.NATURAL:
		return true
	}
	return false
}

// Parse is the package-level convenience entry point.
func Parse(input string, d *dialect.Dialect) ([]Statement, error) {
	return NewParser(input, d).Parse()
}
