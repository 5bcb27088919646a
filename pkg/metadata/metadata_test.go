package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlmeta/pkg/token"
)

func analyze(t *testing.T, sql string) *Metadata {
	t.Helper()
	md, err := Analyze(sql)
	require.NoError(t, err)
	return md
}

func TestAnalyze_SimpleSelect(t *testing.T) {
	md := analyze(t, "SELECT id, name FROM users")

	assert.Equal(t, QueryTypeSelect, md.QueryType)
	assert.Equal(t, []string{"users"}, md.Tables)
	assert.Equal(t, []string{"id", "name"}, md.Columns)
	assert.Empty(t, md.TableAliases)
}

func TestAnalyze_QueryTypes(t *testing.T) {
	tests := []struct {
		sql  string
		want QueryType
	}{
		{"SELECT 1", QueryTypeSelect},
		{"INSERT INTO t VALUES (1)", QueryTypeInsert},
		{"UPDATE t SET a = 1", QueryTypeUpdate},
		{"DELETE FROM t WHERE a = 1", QueryTypeDelete},
		{"CREATE TABLE t (id INT)", QueryTypeCreateTable},
		{"DROP TABLE t", QueryTypeDropTable},
		{"ALTER TABLE t ADD c INT", QueryTypeAlterTable},
		{"TRUNCATE t", QueryTypeTruncate},
		{"WITH x AS (SELECT 1 FROM a) DELETE FROM t", QueryTypeDelete},
		{"EXPLAIN PLAN", QueryTypeUnknown},
	}
	for _, tt := range tests {
		md := analyze(t, tt.sql)
		assert.Equal(t, tt.want, md.QueryType, "sql %q", tt.sql)
	}
}

func TestAnalyze_TableAliases(t *testing.T) {
	md := analyze(t, "SELECT o.id, u.name FROM orders o JOIN db.users AS u ON o.user_id = u.id")

	assert.Equal(t, []string{"orders", "db.users"}, md.Tables)
	assert.Equal(t, map[string]string{"o": "orders", "u": "db.users"}, md.TableAliases)
	assert.Equal(t, []string{"orders.id", "db.users.name", "orders.user_id", "db.users.id"}, md.Columns)
}

func TestAnalyze_QualifiedWildcard(t *testing.T) {
	md := analyze(t, "SELECT u.* FROM users u")

	assert.Equal(t, []string{"users.*"}, md.Columns)
	assert.Equal(t, []string{"users"}, md.Tables)
}

func TestAnalyze_ColumnAliases(t *testing.T) {
	md := analyze(t, "SELECT price total, name AS label FROM products")

	assert.Equal(t, []string{"price", "name"}, md.Columns)
	assert.Equal(t, []string{"total", "label"}, md.ColumnAliases)
}

func TestAnalyze_FunctionColumns(t *testing.T) {
	md := analyze(t, "SELECT COUNT(id), MAX(price) FROM orders")

	// Function names are not columns; their arguments are.
	assert.Equal(t, []string{"id", "price"}, md.Columns)
	assert.Equal(t, []string{"orders"}, md.Tables)
}

func TestAnalyze_Subquery(t *testing.T) {
	md := analyze(t, "SELECT * FROM (SELECT id FROM users) sub WHERE id > 1")

	assert.Equal(t, []string{"users"}, md.Tables)
	assert.Contains(t, md.Columns, "id")
}

func TestAnalyze_WithQuery(t *testing.T) {
	md := analyze(t, "WITH recent AS (SELECT id FROM orders) SELECT id FROM recent")

	assert.Equal(t, []string{"recent"}, md.WithNames)
	// The CTE name is not a source table.
	assert.Equal(t, []string{"orders"}, md.Tables)
	assert.Equal(t, QueryTypeSelect, md.QueryType)
}

func TestAnalyze_WithColumns(t *testing.T) {
	md := analyze(t, "WITH cte (x, y) AS (SELECT a, b FROM t) SELECT x FROM cte")

	assert.Equal(t, []string{"cte"}, md.WithNames)
	assert.Equal(t, []string{"t"}, md.Tables)
	// CTE column-list names are not source columns.
	assert.NotContains(t, md.Columns, "y")
	assert.Contains(t, md.Columns, "a")
	assert.Contains(t, md.Columns, "b")
}

func TestAnalyze_UpdateAndDelete(t *testing.T) {
	md := analyze(t, "UPDATE users SET active = 1 WHERE id = 5")
	assert.Equal(t, []string{"users"}, md.Tables)
	assert.Equal(t, []string{"active", "id"}, md.Columns)

	md = analyze(t, "DELETE FROM logs WHERE created < '2020-01-01'")
	assert.Equal(t, []string{"logs"}, md.Tables)
	assert.Equal(t, []string{"created"}, md.Columns)
}

func TestAnalyze_ColumnListTables(t *testing.T) {
	md := analyze(t, "CREATE TABLE t (id INT, name VARCHAR)")
	assert.Equal(t, []string{"t"}, md.Tables)

	md = analyze(t, "INSERT INTO logs (level, message) VALUES (1, 'boot')")
	assert.Equal(t, []string{"logs"}, md.Tables)
}

func TestAnalyze_Comments(t *testing.T) {
	md := analyze(t, "SELECT a -- pick a\nFROM t /* the source */")

	assert.Equal(t, []string{"-- pick a", "/* the source */"}, md.Comments)
}

func TestAnalyze_ReconstructsQuery(t *testing.T) {
	md := analyze(t, "SELECT a,b")
	assert.Equal(t, "SELECT a, b", md.Query)
}

func TestAnalyze_DeduplicatesColumns(t *testing.T) {
	md := analyze(t, "SELECT id FROM t WHERE id = 1 ORDER BY id")
	assert.Equal(t, []string{"id"}, md.Columns)
}

func TestAnalyze_QualificationTooDeep(t *testing.T) {
	_, err := Analyze("SELECT a.b.c.d FROM t")
	require.Error(t, err)

	var qerr *token.QualificationError
	assert.ErrorAs(t, err, &qerr)
}

func TestAnalyze_BacktickedTables(t *testing.T) {
	md := analyze(t, "SELECT `id` FROM `db`.`users`")

	assert.Equal(t, []string{"db.users"}, md.Tables)
	assert.Equal(t, []string{"id"}, md.Columns)
}
