package lexer

// keywords maps lowercase keyword strings to keyword status. Identifiers
// outside this map lex as names; TRUE, FALSE and NULL are handled
// separately as literal-like names.
var keywords = map[string]bool{
	"all":        true,
	"alter":      true,
	"and":        true,
	"as":         true,
	"asc":        true,
	"between":    true,
	"by":         true,
	"case":       true,
	"cascade":    true,
	"check":      true,
	"constraint": true,
	"create":     true,
	"cross":      true,
	"default":    true,
	"delete":     true,
	"desc":       true,
	"distinct":   true,
	"drop":       true,
	"else":       true,
	"end":        true,
	"except":     true,
	"exists":     true,
	"foreign":    true,
	"from":       true,
	"full":       true,
	"group":      true,
	"having":     true,
	"if":         true,
	"in":         true,
	"index":      true,
	"inner":      true,
	"insert":     true,
	"intersect":  true,
	"into":       true,
	"is":         true,
	"join":       true,
	"key":        true,
	"left":       true,
	"like":       true,
	"limit":      true,
	"natural":    true,
	"not":        true,
	"offset":     true,
	"on":         true,
	"or":         true,
	"order":      true,
	"outer":      true,
	"primary":    true,
	"recursive":  true,
	"references": true,
	"returning":  true,
	"right":      true,
	"select":     true,
	"set":        true,
	"table":      true,
	"then":       true,
	"truncate":   true,
	"union":      true,
	"unique":     true,
	"update":     true,
	"using":      true,
	"values":     true,
	"view":       true,
	"when":       true,
	"where":      true,
	"with":       true,
}

// literals are keyword-like constants the tokenizer files under a narrower
// name kind, which the token layer then classifies as keywords.
var literals = map[string]bool{
	"true":  true,
	"false": true,
	"null":  true,
}
