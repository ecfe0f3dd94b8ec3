package token

import "strings"

// reservedWords is the word set the case-normalization passes operate on.
// It is wider than the lexer's keyword map: words like CREATE or PARTITION
// lex as IDENT here but still get their case normalized.
var reservedWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"SELECT", "FROM", "WHERE", "AND", "OR", "NOT", "IN", "IS", "NULL",
		"LIKE", "BETWEEN", "JOIN", "LEFT", "RIGHT", "INNER", "OUTER", "FULL",
		"CROSS", "ON", "AS", "ORDER", "BY", "ASC", "DESC", "GROUP", "HAVING",
		"LIMIT", "OFFSET", "UNION", "ALL", "DISTINCT", "INSERT", "INTO",
		"VALUES", "UPDATE", "SET", "DELETE", "CREATE", "TABLE", "INDEX",
		"VIEW", "DROP", "ALTER", "ADD", "COLUMN", "PRIMARY", "KEY", "FOREIGN",
		"REFERENCES", "CONSTRAINT", "DEFAULT", "UNIQUE", "CHECK", "CASCADE",
		"RESTRICT", "IF", "EXISTS", "CASE", "WHEN", "THEN", "ELSE", "END",
		"CAST", "COALESCE", "NULLIF", "TRUE", "FALSE", "WITH", "RECURSIVE",
		"WINDOW", "OVER", "PARTITION", "ROWS", "RANGE", "UNBOUNDED",
		"PRECEDING", "FOLLOWING", "CURRENT", "ROW", "EXCEPT", "INTERSECT",
		"FETCH", "FIRST", "NEXT", "ONLY", "PERCENT", "TIES", "FOR", "SHARE",
		"NOWAIT", "SKIP", "LOCKED",
	} {
		reservedWords[w] = struct{}{}
	}
}

// IsReservedWord reports whether word is a reserved SQL word, regardless of
// the case it was written in.
func IsReservedWord(word string) bool {
	_, ok := reservedWords[strings.ToUpper(word)]
	return ok
}
