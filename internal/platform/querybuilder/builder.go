// Package querybuilder renders the admin store's SELECT, INSERT and UPDATE
// statements with portable '?' bindvars. Callers rebind for their driver
// (sqlx.DB.Rebind), which is what lets one repository serve postgres and sqlite.
package querybuilder

import (
	"fmt"
	"strings"
)

// Condition is a column equality in a WHERE clause. Conditions are ANDed.
type Condition struct {
	column string
	value  any
}

func Eq(column string, value any) Condition {
	return Condition{column: column, value: value}
}

type where []Condition

func (w where) write(buf *strings.Builder, args []any) []any {
	for i, c := range w {
		if i == 0 {
			buf.WriteString(" WHERE ")
		} else {
			buf.WriteString(" AND ")
		}
		buf.WriteString(c.column)
		buf.WriteString(" = ?")
		args = append(args, c.value)
	}
	return args
}

type SelectBuilder struct {
	columns []string
	table   string
	where   where
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("select columns are required")
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("select table is required")
	}

	var buf strings.Builder
	fmt.Fprintf(&buf, "SELECT %s FROM %s", strings.Join(b.columns, ", "), b.table)
	args := b.where.write(&buf, nil)
	return buf.String(), args, nil
}

type UpdateBuilder struct {
	table   string
	columns []string
	values  []any
	where   where
}

func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.columns = append(b.columns, column)
	b.values = append(b.values, value)
	return b
}

func (b *UpdateBuilder) Where(conditions ...Condition) *UpdateBuilder {
	b.where = append(b.where, conditions...)
	return b
}

// ToSQL refuses an UPDATE without a WHERE clause.
func (b *UpdateBuilder) ToSQL() (string, []any, error) {
	switch {
	case strings.TrimSpace(b.table) == "":
		return "", nil, fmt.Errorf("update table is required")
	case len(b.columns) == 0:
		return "", nil, fmt.Errorf("update sets are required")
	case len(b.where) == 0:
		return "", nil, fmt.Errorf("update of %s has no where clause", b.table)
	}

	var buf strings.Builder
	fmt.Fprintf(&buf, "UPDATE %s SET %s = ?", b.table, strings.Join(b.columns, " = ?, "))
	args := b.where.write(&buf, append([]any(nil), b.values...))
	return buf.String(), args, nil
}
