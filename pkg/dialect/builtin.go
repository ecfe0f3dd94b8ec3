package dialect

// Builtin dialect definitions. The generic dialect is the ANSI core with
// permissive quoting; the others layer keywords and quoting styles on top.

func init() {
	generic := New("generic")
	generic.BacktickIdents = true
	Register(generic)

	mysql := New("mysql")
	mysql.BacktickIdents = true
	Register(mysql)

	postgres := New("postgres", "postgresql")
	postgres.LikeOperator("ILIKE")
	Register(postgres)

	sqlite := New("sqlite")
	sqlite.BacktickIdents = true
	sqlite.BracketIdents = true
	Register(sqlite)

	bigquery := New("bigquery")
	bigquery.BacktickIdents = true
	bigquery.Clause("QUALIFY")
	Register(bigquery)
}
