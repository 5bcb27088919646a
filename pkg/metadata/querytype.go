package metadata

import "github.com/leapstack-labs/sqlmeta/pkg/stream"

// QueryType identifies the statement kind of an analyzed query.
type QueryType string

const (
	QueryTypeUnknown     QueryType = "UNKNOWN"
	QueryTypeSelect      QueryType = "SELECT"
	QueryTypeInsert      QueryType = "INSERT"
	QueryTypeUpdate      QueryType = "UPDATE"
	QueryTypeDelete      QueryType = "DELETE"
	QueryTypeCreateTable QueryType = "CREATE TABLE"
	QueryTypeDropTable   QueryType = "DROP TABLE"
	QueryTypeAlterTable  QueryType = "ALTER TABLE"
	QueryTypeTruncate    QueryType = "TRUNCATE"
)

// queryTypes maps the normalized statement-opening keyword to its type.
var queryTypes = map[string]QueryType{
	"SELECT":      QueryTypeSelect,
	"INSERTINTO":  QueryTypeInsert,
	"UPDATE":      QueryTypeUpdate,
	"DELETEFROM":  QueryTypeDelete,
	"CREATETABLE": QueryTypeCreateTable,
	"DROPTABLE":   QueryTypeDropTable,
	"ALTERTABLE":  QueryTypeAlterTable,
	"TRUNCATE":    QueryTypeTruncate,
}

// detectQueryType finds the first statement-level keyword, skipping
// comments and the bodies of WITH queries so that WITH x AS (SELECT ...)
// DELETE FROM ... classifies by the outer statement.
func detectQueryType(s *stream.Stream) QueryType {
	depth := 0
	inWithQuery := false
	for _, tok := range s.Tokens {
		if inWithQuery {
			if tok.IsLeftParenthesis {
				depth++
			}
			if tok.IsRightParenthesis {
				depth--
				if depth == 0 {
					inWithQuery = false
				}
			}
			continue
		}
		if tok.IsWithQueryStart {
			inWithQuery = true
			depth = 1
			continue
		}
		if !tok.IsKeyword {
			continue
		}
		if qt, ok := queryTypes[tok.Normalized()]; ok {
			return qt
		}
	}
	return QueryTypeUnknown
}
