package parser

import "github.com/leapstack-labs/sqlex/pkg/token"

// AST node definitions.
//
// Nodes carry source spans where the diagnostics need them (star items,
// table names, statements); the rest of the tree stays lean.

// Statement is the interface implemented by all top-level statements.
type Statement interface {
	stmtNode()
	// Span returns the source range the statement covers.
	Span() token.Span
}

// Expr is the interface implemented by all expression nodes.
type Expr interface {
	exprNode()
}

// TableRef is the interface implemented by FROM-clause table references.
type TableRef interface {
	tableRef()
}

// SetOp identifies the set operation combining two SELECT bodies.
type SetOp int

const (
	SetOpNone SetOp = iota
	SetOpUnion
	SetOpUnionAll
	SetOpIntersect
	SetOpExcept
)

// SelectStmt is a full SELECT statement with optional WITH clause.
type SelectStmt struct {
	With *WithClause
	Body *SelectBody
	span token.Span
}

func (*SelectStmt) stmtNode()               {}
func (s *SelectStmt) Span() token.Span      { return s.span }
func (s *SelectStmt) SetSpan(sp token.Span) { s.span = sp }

// WithClause holds the CTE list.
type WithClause struct {
	Recursive bool
	CTEs      []*CTE
}

// CTE is a single common table expression.
type CTE struct {
	Name   string
	Select *SelectStmt
}

// SelectBody is a SELECT core possibly combined with another body by a
// set operation. Op is SetOpNone for a plain SELECT.
type SelectBody struct {
	Left  *SelectCore
	Op    SetOp
	Right *SelectBody
}

// SelectCore is a single SELECT ... FROM ... clause chain.
type SelectCore struct {
	Distinct bool
	Columns  []SelectItem
	From     *FromClause
	Where    Expr
	GroupBy  []Expr
	Having   Expr
	Qualify  Expr
	OrderBy  []OrderByItem
	Limit    Expr
	Offset   Expr
}

// SelectItem is one entry of the SELECT list. Star and TableStar carry
// the span of the wildcard for diagnostics.
type SelectItem struct {
	Star      bool
	TableStar string
	StarSpan  token.Span
	Expr      Expr
	Alias     string
}

// OrderByItem is one ORDER BY entry.
type OrderByItem struct {
	Expr       Expr
	Desc       bool
	NullsFirst *bool
}

// FromClause is the FROM source plus its joins.
type FromClause struct {
	Source TableRef
	Joins  []*Join
}

// JoinType identifies the join flavor.
type JoinType string

const (
	JoinInner JoinType = "INNER"
	JoinLeft  JoinType = "LEFT"
	JoinRight JoinType = "RIGHT"
	JoinFull  JoinType = "FULL"
	JoinCross JoinType = "CROSS"
	JoinComma JoinType = "COMMA"
)

// Join is one join step in a FROM clause.
type Join struct {
	Type      JoinType
	Natural   bool
	Right     TableRef
	Condition Expr
	Using     []string
}

// TableName is a possibly qualified table reference with optional alias.
// NameSpan covers the qualified name for diagnostics.
type TableName struct {
	Catalog  string
	Schema   string
	Name     string
	Alias    string
	NameSpan token.Span
}

func (*TableName) tableRef() {}

// Qualified returns the dotted full name.
func (t *TableName) Qualified() string {
	name := t.Name
	if t.Schema != "" {
		name = t.Schema + "." + name
	}
	if t.Catalog != "" {
		name = t.Catalog + "." + name
	}
	return name
}

// DerivedTable is a subquery in FROM position.
type DerivedTable struct {
	Select *SelectStmt
	Alias  string
}

func (*DerivedTable) tableRef() {}

// LateralTable is a LATERAL subquery in FROM position.
type LateralTable struct {
	Select *SelectStmt
	Alias  string
}

func (*LateralTable) tableRef() {}

// InsertStmt is INSERT INTO ... VALUES / INSERT INTO ... SELECT.
type InsertStmt struct {
	Table   *TableName
	Columns []string
	Values  [][]Expr
	Query   *SelectStmt
	span    token.Span
}

func (*InsertStmt) stmtNode()               {}
func (s *InsertStmt) Span() token.Span      { return s.span }
func (s *InsertStmt) SetSpan(sp token.Span) { s.span = sp }

// Assignment is one SET column = expr pair in UPDATE.
type Assignment struct {
	Column string
	Value  Expr
}

// UpdateStmt is UPDATE ... SET ... [WHERE ...].
type UpdateStmt struct {
	Table       *TableName
	Assignments []Assignment
	Where       Expr
	span        token.Span
}

func (*UpdateStmt) stmtNode()               {}
func (s *UpdateStmt) Span() token.Span      { return s.span }
func (s *UpdateStmt) SetSpan(sp token.Span) { s.span = sp }

// DeleteStmt is DELETE FROM ... [WHERE ...].
type DeleteStmt struct {
	Table *TableName
	Where Expr
	span  token.Span
}

func (*DeleteStmt) stmtNode()               {}
func (s *DeleteStmt) Span() token.Span      { return s.span }
func (s *DeleteStmt) SetSpan(sp token.Span) { s.span = sp }

// Expression nodes.

// LiteralType identifies the literal flavor.
type LiteralType int

const (
	LiteralNumber LiteralType = iota
	LiteralString
	LiteralBool
	LiteralNull
)

// Literal is a constant value.
type Literal struct {
	Type  LiteralType
	Value string
}

func (*Literal) exprNode() {}

// ColumnRef is a possibly qualified column reference.
type ColumnRef struct {
	Table  string
	Column string
}

func (*ColumnRef) exprNode() {}

// StarExpr is a bare * or table.* in expression position.
type StarExpr struct {
	Table string
	Span  token.Span
}

func (*StarExpr) exprNode() {}

// FuncCall is a function invocation.
type FuncCall struct {
	Name     string
	Distinct bool
	Star     bool
	Args     []Expr
}

func (*FuncCall) exprNode() {}

// UnaryExpr is a prefix operator application.
type UnaryExpr struct {
	Op   token.TokenType
	Expr Expr
}

func (*UnaryExpr) exprNode() {}

// BinaryExpr is an infix operator application.
type BinaryExpr struct {
	Left  Expr
	Op    token.TokenType
	Right Expr
}

func (*BinaryExpr) exprNode() {}

// ParenExpr preserves explicit grouping.
type ParenExpr struct {
	Expr Expr
}

func (*ParenExpr) exprNode() {}

// IsNullExpr is expr IS [NOT] NULL.
type IsNullExpr struct {
	Expr Expr
	Not  bool
}

func (*IsNullExpr) exprNode() {}

// IsBoolExpr is expr IS [NOT] TRUE/FALSE.
type IsBoolExpr struct {
	Expr  Expr
	Not   bool
	Value bool
}

func (*IsBoolExpr) exprNode() {}

// InExpr is expr [NOT] IN (list | subquery).
type InExpr struct {
	Expr   Expr
	Not    bool
	Values []Expr
	Query  *SelectStmt
}

func (*InExpr) exprNode() {}

// BetweenExpr is expr [NOT] BETWEEN low AND high.
type BetweenExpr struct {
	Expr Expr
	Not  bool
	Low  Expr
	High Expr
}

func (*BetweenExpr) exprNode() {}

// LikeExpr is expr [NOT] LIKE/ILIKE pattern.
type LikeExpr struct {
	Expr    Expr
	Not     bool
	Op      token.TokenType
	Pattern Expr
}

func (*LikeExpr) exprNode() {}

// CaseExpr is CASE [operand] WHEN ... THEN ... [ELSE ...] END.
type CaseExpr struct {
	Operand Expr
	Whens   []WhenClause
	Else    Expr
}

func (*CaseExpr) exprNode() {}

// WhenClause is one WHEN ... THEN ... arm.
type WhenClause struct {
	Cond   Expr
	Result Expr
}

// CastExpr is CAST(expr AS type).
type CastExpr struct {
	Expr Expr
	Type string
}

func (*CastExpr) exprNode() {}

// ExistsExpr is [NOT] EXISTS (subquery).
type ExistsExpr struct {
	Not   bool
	Query *SelectStmt
}

func (*ExistsExpr) exprNode() {}

// SubqueryExpr is a scalar subquery in expression position.
type SubqueryExpr struct {
	Query *SelectStmt
}

func (*SubqueryExpr) exprNode() {}
