package postgresql

import (
	"fmt"
	"strings"
)

// SelectBuilder builds SELECT queries with PostgreSQL positional arguments.
// Conditions use ? as placeholder and are joined with AND.
type SelectBuilder struct {
	columns []string
	table   string
	where   []string
	args    []any
	orderBy []string
	limit   *int
	offset  *int
}

// Select starts a query selecting columns.
func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: columns}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

// Where adds a condition, replacing each ? with the next positional argument.
func (b *SelectBuilder) Where(condition string, args ...any) *SelectBuilder {
	b.where = append(b.where, placeholders(condition, len(b.args), len(args)))
	b.args = append(b.args, args...)
	return b
}

func (b *SelectBuilder) OrderBy(column string, desc bool) *SelectBuilder {
	order := "ASC"
	if desc {
		order = "DESC"
	}
	b.orderBy = append(b.orderBy, column+" "+order)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = &limit
	return b
}

func (b *SelectBuilder) Offset(offset int) *SelectBuilder {
	b.offset = &offset
	return b
}

// Build returns the SQL and its arguments.
func (b *SelectBuilder) Build() (string, []any) {
	var query strings.Builder
	args := append([]any(nil), b.args...)

	query.WriteString("SELECT ")
	if len(b.columns) == 0 {
		query.WriteString("*")
	} else {
		query.WriteString(strings.Join(b.columns, ", "))
	}

	query.WriteString(" FROM ")
	query.WriteString(b.table)

	if len(b.where) > 0 {
		query.WriteString(" WHERE ")
		query.WriteString(strings.Join(b.where, " AND "))
	}

	if len(b.orderBy) > 0 {
		query.WriteString(" ORDER BY ")
		query.WriteString(strings.Join(b.orderBy, ", "))
	}

	if b.limit != nil {
		args = append(args, *b.limit)
		fmt.Fprintf(&query, " LIMIT $%d", len(args))
	}

	if b.offset != nil {
		args = append(args, *b.offset)
		fmt.Fprintf(&query, " OFFSET $%d", len(args))
	}

	return query.String(), args
}

// InsertBuilder builds single row INSERT queries.
type InsertBuilder struct {
	table      string
	columns    []string
	values     []any
	onConflict string
}

// InsertInto starts an insert into table.
func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

// Set adds a column and its value.
func (b *InsertBuilder) Set(column string, value any) *InsertBuilder {
	b.columns = append(b.columns, column)
	b.values = append(b.values, value)
	return b
}

// OnConflictDoNothing ignores rows that violate the unique columns.
func (b *InsertBuilder) OnConflictDoNothing(columns ...string) *InsertBuilder {
	b.onConflict = fmt.Sprintf(" ON CONFLICT (%s) DO NOTHING", strings.Join(columns, ", "))
	return b
}

// Build returns the SQL and its arguments.
func (b *InsertBuilder) Build() (string, []any) {
	marks := make([]string, len(b.values))
	for i := range b.values {
		marks[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)%s",
		b.table,
		strings.Join(b.columns, ", "),
		strings.Join(marks, ", "),
		b.onConflict,
	)
	return query, append([]any(nil), b.values...)
}

func placeholders(condition string, offset, n int) string {
	for i := 1; i <= n; i++ {
		condition = strings.Replace(condition, "?", fmt.Sprintf("$%d", offset+i), 1)
	}
	return condition
}
