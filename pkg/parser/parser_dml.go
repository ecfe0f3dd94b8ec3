package parser

import "github.com/leapstack-labs/sqlex/pkg/token"

// DML statement parsing.
//
// Grammar:
//
//	insert → INSERT INTO table_name ["(" column_list ")"] (VALUES row_list | statement)
//	row    → "(" expr_list ")"
//	update → UPDATE table_name SET assignment ("," assignment)* [WHERE expr]
//	delete → DELETE FROM table_name [WHERE expr]

// parseInsert parses an INSERT statement.
func (p *Parser) parseInsert() *InsertStmt {
	p.expect(token.INSERT)
	p.expect(token.INTO)

	stmt := &InsertStmt{}
	stmt.Table = p.parseTableName()

	if p.match(token.LPAREN) {
		for !p.failed() {
			if !p.check(token.IDENT) {
				p.addError("expected column name, found %s", tokenDesc(p.token))
				break
			}
			stmt.Columns = append(stmt.Columns, p.token.Literal)
			p.nextToken()
			if !p.match(token.COMMA) {
				break
			}
		}
		p.expect(token.RPAREN)
	}

	switch p.token.Type {
	case token.VALUES:
		p.nextToken()
		for !p.failed() {
			stmt.Values = append(stmt.Values, p.parseValueRow())
			if !p.match(token.COMMA) {
				break
			}
		}
	case token.SELECT, token.WITH:
		stmt.Query = p.parseStatement()
	default:
		p.addError("expected VALUES or SELECT, found %s", tokenDesc(p.token))
	}

	return stmt
}

// parseValueRow parses one parenthesized VALUES row.
func (p *Parser) parseValueRow() []Expr {
	p.expect(token.LPAREN)
	row := p.parseExpressionList()
	p.expect(token.RPAREN)
	return row
}

// parseUpdate parses an UPDATE statement.
func (p *Parser) parseUpdate() *UpdateStmt {
	p.expect(token.UPDATE)

	stmt := &UpdateStmt{}
	stmt.Table = p.parseTableName()

	p.expect(token.SET)

	for !p.failed() {
		assign := Assignment{}
		if !p.check(token.IDENT) {
			p.addError("expected column name, found %s", tokenDesc(p.token))
			break
		}
		assign.Column = p.token.Literal
		p.nextToken()

		if !p.expect(token.EQ) {
			break
		}
		assign.Value = p.parseExpression()
		stmt.Assignments = append(stmt.Assignments, assign)

		if !p.match(token.COMMA) {
			break
		}
	}

	if p.match(token.WHERE) {
		stmt.Where = p.parseExpression()
	}

	return stmt
}

// parseDelete parses a DELETE statement.
func (p *Parser) parseDelete() *DeleteStmt {
	p.expect(token.DELETE)
	p.expect(token.FROM)

	stmt := &DeleteStmt{}
	stmt.Table = p.parseTableName()

	if p.match(token.WHERE) {
		stmt.Where = p.parseExpression()
	}

	return stmt
}
