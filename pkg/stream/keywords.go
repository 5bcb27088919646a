package stream

// multiwordKeywords lists keyword phrases merged into a single token during
// the construction pass, longest first so LEFT OUTER JOIN wins over LEFT
// JOIN.
var multiwordKeywords = [][]string{
	{"LEFT", "OUTER", "JOIN"},
	{"RIGHT", "OUTER", "JOIN"},
	{"FULL", "OUTER", "JOIN"},
	{"GROUP", "BY"},
	{"ORDER", "BY"},
	{"UNION", "ALL"},
	{"INSERT", "INTO"},
	{"DELETE", "FROM"},
	{"CREATE", "TABLE"},
	{"DROP", "TABLE"},
	{"ALTER", "TABLE"},
	{"LEFT", "JOIN"},
	{"RIGHT", "JOIN"},
	{"INNER", "JOIN"},
	{"CROSS", "JOIN"},
	{"FULL", "JOIN"},
	{"PRIMARY", "KEY"},
	{"FOREIGN", "KEY"},
}

// clauseKeywords is the set of clause-introducing keywords tracked as the
// enclosing keyword context of the tokens that follow them. Keys are
// normalized (uppercased, whitespace removed).
var clauseKeywords = map[string]bool{
	"SELECT":         true,
	"FROM":           true,
	"WHERE":          true,
	"GROUPBY":        true,
	"ORDERBY":        true,
	"HAVING":         true,
	"LIMIT":          true,
	"OFFSET":         true,
	"WITH":           true,
	"JOIN":           true,
	"LEFTJOIN":       true,
	"RIGHTJOIN":      true,
	"INNERJOIN":      true,
	"CROSSJOIN":      true,
	"FULLJOIN":       true,
	"LEFTOUTERJOIN":  true,
	"RIGHTOUTERJOIN": true,
	"FULLOUTERJOIN":  true,
	"ON":             true,
	"USING":          true,
	"INSERTINTO":     true,
	"UPDATE":         true,
	"SET":            true,
	"VALUES":         true,
	"DELETEFROM":     true,
	"CREATETABLE":    true,
	"DROPTABLE":      true,
	"ALTERTABLE":     true,
	"TRUNCATE":       true,
	"UNION":          true,
	"UNIONALL":       true,
	"RETURNING":      true,
}

// columnListKeywords are the clause contexts where a parenthesis following a
// table name opens a column list rather than a function call.
var columnListKeywords = map[string]bool{
	"CREATETABLE": true,
	"INSERTINTO":  true,
}

// mainClauseKeywords are the statement-level keywords that terminate a WITH
// block once seen outside any parentheses.
var mainClauseKeywords = map[string]bool{
	"SELECT":     true,
	"INSERTINTO": true,
	"UPDATE":     true,
	"DELETEFROM": true,
}
