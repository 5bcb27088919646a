package token

// spacingIgnoredFunctions lists function names after which an opening
// parenthesis attaches directly, so a rebuilt query reads COUNT(*) rather
// than COUNT (*).
var spacingIgnoredFunctions = map[string]bool{
	"ABS":            true,
	"AVG":            true,
	"CAST":           true,
	"COALESCE":       true,
	"CONCAT":         true,
	"CONVERT":        true,
	"COUNT":          true,
	"DATE":           true,
	"EXTRACT":        true,
	"FROM_UNIXTIME":  true,
	"IF":             true,
	"IFNULL":         true,
	"LENGTH":         true,
	"LOWER":          true,
	"MAX":            true,
	"MIN":            true,
	"NOW":            true,
	"NULLIF":         true,
	"ROUND":          true,
	"SUBSTRING":      true,
	"SUM":            true,
	"TRIM":           true,
	"UNIX_TIMESTAMP": true,
	"UPPER":          true,
}
