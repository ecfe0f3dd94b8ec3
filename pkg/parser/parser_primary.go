package parser

import (
	"strings"

	"github.com/leapstack-labs/sqlex/pkg/token"
)

// Primary expression parsing: literals, column refs, function calls,
// parenthesized expressions and subqueries, CASE, CAST, EXISTS.

// parsePrimary parses primary expressions.
func (p *Parser) parsePrimary() Expr {
	switch p.token.Type {
	case token.NUMBER:
		lit := &Literal{Type: LiteralNumber, Value: p.token.Literal}
		p.nextToken()
		return lit

	case token.STRING:
		lit := &Literal{Type: LiteralString, Value: p.token.Literal}
		p.nextToken()
		return lit

	case token.TRUE:
		p.nextToken()
		return &Literal{Type: LiteralBool, Value: "true"}

	case token.FALSE:
		p.nextToken()
		return &Literal{Type: LiteralBool, Value: "false"}

	case token.NULL:
		p.nextToken()
		return &Literal{Type: LiteralNull, Value: "null"}

	case token.CASE:
		return p.parseCaseExpr()

	case token.CAST:
		return p.parseCastExpr()

	case token.EXISTS:
		return p.parseExistsExpr(false)

	case token.IDENT:
		return p.parseIdentifierExpr()

	case token.LPAREN:
		return p.parseParenExpr()

	case token.STAR:
		span := token.Span{Start: p.token.Pos, End: p.token.End}
		p.nextToken()
		return &StarExpr{Span: span}

	default:
		p.addError("expected an expression, found %s", tokenDesc(p.token))
		p.nextToken()
		return nil
	}
}

// parseIdentifierExpr parses an identifier which could be a column ref or
// function call.
func (p *Parser) parseIdentifierExpr() Expr {
	name := p.token.Literal
	quoted := p.token.Quoted
	p.nextToken()

	if !quoted && p.check(token.LPAREN) {
		return p.parseFuncCall(name)
	}

	if p.check(token.DOT) {
		return p.parseQualifiedColumnRef(name)
	}

	return &ColumnRef{Column: name}
}

// parseQualifiedColumnRef parses a qualified column reference.
func (p *Parser) parseQualifiedColumnRef(firstPart string) Expr {
	parts := []string{firstPart}

	for p.match(token.DOT) {
		// table.*
		if p.check(token.STAR) {
			span := token.Span{Start: p.token.Pos, End: p.token.End}
			p.nextToken()
			return &StarExpr{Table: firstPart, Span: span}
		}

		if !p.check(token.IDENT) {
			p.addError("expected identifier after '.', found %s", tokenDesc(p.token))
			break
		}
		parts = append(parts, p.token.Literal)
		p.nextToken()
	}

	ref := &ColumnRef{}
	switch len(parts) {
	case 2:
		ref.Table = parts[0]
		ref.Column = parts[1]
	case 3:
		// schema.table.column, keep table.column
		ref.Table = parts[1]
		ref.Column = parts[2]
	default:
		ref.Column = parts[len(parts)-1]
	}

	return ref
}

// parseFuncCall parses a function call.
func (p *Parser) parseFuncCall(name string) Expr {
	fn := &FuncCall{Name: strings.ToUpper(name)}

	p.expect(token.LPAREN)

	// COUNT(*) and friends
	if p.check(token.STAR) {
		fn.Star = true
		p.nextToken()
	} else if !p.check(token.RPAREN) {
		if p.match(token.DISTINCT) {
			fn.Distinct = true
		}

		for !p.failed() {
			arg := p.parseExpression()
			fn.Args = append(fn.Args, arg)

			if !p.match(token.COMMA) {
				break
			}
		}
	}

	p.expect(token.RPAREN)

	return fn
}

// parseParenExpr parses a parenthesized expression or scalar subquery.
func (p *Parser) parseParenExpr() Expr {
	p.expect(token.LPAREN)

	if p.check(token.SELECT) || p.check(token.WITH) {
		sub := &SubqueryExpr{Query: p.parseStatement()}
		p.expect(token.RPAREN)
		return sub
	}

	expr := p.parseExpression()
	p.expect(token.RPAREN)
	return &ParenExpr{Expr: expr}
}

// parseCaseExpr parses CASE [operand] WHEN ... THEN ... [ELSE ...] END.
func (p *Parser) parseCaseExpr() Expr {
	p.expect(token.CASE)
	caseExpr := &CaseExpr{}

	// Simple CASE has an operand before the first WHEN
	if !p.check(token.WHEN) {
		caseExpr.Operand = p.parseExpression()
	}

	for p.match(token.WHEN) {
		when := WhenClause{}
		when.Cond = p.parseExpression()
		p.expect(token.THEN)
		when.Result = p.parseExpression()
		caseExpr.Whens = append(caseExpr.Whens, when)

		if p.failed() {
			break
		}
	}

	if len(caseExpr.Whens) == 0 {
		p.addError("expected WHEN in CASE expression, found %s", tokenDesc(p.token))
	}

	if p.match(token.ELSE) {
		caseExpr.Else = p.parseExpression()
	}

	p.expect(token.END)
	return caseExpr
}

// parseCastExpr parses CAST(expr AS type).
func (p *Parser) parseCastExpr() Expr {
	p.expect(token.CAST)
	p.expect(token.LPAREN)

	cast := &CastExpr{}
	cast.Expr = p.parseExpression()

	p.expect(token.AS)
	cast.Type = p.parseTypeName()

	p.expect(token.RPAREN)
	return cast
}

// parseTypeName parses a type name, possibly parameterized like NUMERIC(10, 2).
func (p *Parser) parseTypeName() string {
	if !p.check(token.IDENT) {
		p.addError("expected type name, found %s", tokenDesc(p.token))
		return ""
	}

	var sb strings.Builder
	sb.WriteString(p.token.Literal)
	p.nextToken()

	// Multi-word types (DOUBLE PRECISION, CHARACTER VARYING)
	for p.check(token.IDENT) {
		sb.WriteByte(' ')
		sb.WriteString(p.token.Literal)
		p.nextToken()
	}

	if p.match(token.LPAREN) {
		sb.WriteByte('(')
		for !p.failed() {
			if !p.check(token.NUMBER) {
				p.addError("expected type parameter, found %s", tokenDesc(p.token))
				break
			}
			sb.WriteString(p.token.Literal)
			p.nextToken()
			if p.match(token.COMMA) {
				sb.WriteString(", ")
				continue
			}
			break
		}
		p.expect(token.RPAREN)
		sb.WriteByte(')')
	}

	return sb.String()
}

// parseExistsExpr parses [NOT] EXISTS (subquery).
func (p *Parser) parseExistsExpr(not bool) Expr {
	p.expect(token.EXISTS)
	p.expect(token.LPAREN)

	exists := &ExistsExpr{Not: not}
	exists.Query = p.parseStatement()

	p.expect(token.RPAREN)
	return exists
}
