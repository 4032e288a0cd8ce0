package database

import (
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
)

// InsertInto builds a single parameterized INSERT statement covering every row
// in rows. Identifiers are quote-escaped and values are always bound as
// placeholders, so neither column names nor row data can smuggle SQL into the
// statement.
func InsertInto(table string, columns []string, rows [][]interface{}) (string, []interface{}, error) {
	if table == "" {
		return "", nil, fmt.Errorf("insert: no table name")
	}
	if len(columns) == 0 {
		return "", nil, fmt.Errorf("insert into %s: no columns", table)
	}
	if len(rows) == 0 {
		return "", nil, fmt.Errorf("insert into %s: no rows", table)
	}

	quoted := make([]string, len(columns))
	for i, column := range columns {
		quoted[i] = quoteIdent(column)
	}

	builder := squirrel.Insert(quoteIdent(table)).
		Columns(quoted...).
		PlaceholderFormat(squirrel.Dollar)

	for i, row := range rows {
		if len(row) != len(columns) {
			return "", nil, fmt.Errorf("insert into %s: row %d has %d values, want %d", table, i, len(row), len(columns))
		}
		builder = builder.Values(row...)
	}

	return builder.ToSql()
}

// quoteIdent escapes an identifier the same way Postgres quote_ident does.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
