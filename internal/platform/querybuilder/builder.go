package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

type Condition interface {
	appendSQL(buf *strings.Builder, args *[]any, argIndex *int)
}

type eqCondition struct {
	column string
	value  any
}

func Eq(column string, value any) Condition {
	return eqCondition{column: column, value: value}
}

func (c eqCondition) appendSQL(buf *strings.Builder, args *[]any, argIndex *int) {
	buf.WriteString(c.column)
	buf.WriteString(" = ")
	buf.WriteString(placeholder(*argIndex))
	*args = append(*args, c.value)
	*argIndex = *argIndex + 1
}

type exprCondition struct {
	expr string
	args []any
}

// Expr embeds a raw predicate; each ? is bound to the next arg.
func Expr(expr string, args ...any) Condition {
	return exprCondition{expr: expr, args: args}
}

func (c exprCondition) appendSQL(buf *strings.Builder, args *[]any, argIndex *int) {
	buf.WriteString(rewritePlaceholders(c.expr, c.args, args, argIndex))
}

// RawExpr is written into a statement verbatim instead of being bound.
type RawExpr string

func Raw(expr string) RawExpr {
	return RawExpr(expr)
}

type SelectBuilder struct {
	columns []string
	table   string
	where   []Condition
	orderBy []string
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

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
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
	buf.WriteString("SELECT ")
	buf.WriteString(strings.Join(b.columns, ", "))
	buf.WriteString(" FROM ")
	buf.WriteString(b.table)

	args := make([]any, 0, len(b.where))
	argIndex := 1
	if len(b.where) > 0 {
		buf.WriteString(" WHERE ")
		for i, c := range b.where {
			if i > 0 {
				buf.WriteString(" AND ")
			}
			c.appendSQL(&buf, &args, &argIndex)
		}
	}
	if len(b.orderBy) > 0 {
		buf.WriteString(" ORDER BY ")
		buf.WriteString(strings.Join(b.orderBy, ", "))
	}

	return buf.String(), args, nil
}

type InsertBuilder struct {
	table   string
	columns []string
	values  []any
	suffix  string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

// Set appends one column and its value. A RawExpr value is inlined.
func (b *InsertBuilder) Set(column string, value any) *InsertBuilder {
	b.columns = append(b.columns, column)
	b.values = append(b.values, value)
	return b
}

func (b *InsertBuilder) Suffix(sql string) *InsertBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("insert table is required")
	}
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("insert columns are required")
	}

	var buf strings.Builder
	buf.WriteString("INSERT INTO ")
	buf.WriteString(b.table)
	buf.WriteString(" (")
	buf.WriteString(strings.Join(b.columns, ", "))
	buf.WriteString(") VALUES (")

	args := make([]any, 0, len(b.values))
	argIndex := 1
	for i, value := range b.values {
		if i > 0 {
			buf.WriteString(", ")
		}
		if raw, ok := value.(RawExpr); ok {
			buf.WriteString(string(raw))
			continue
		}
		buf.WriteString(placeholder(argIndex))
		args = append(args, value)
		argIndex++
	}
	buf.WriteString(")")

	if b.suffix != "" {
		buf.WriteString(" ")
		buf.WriteString(b.suffix)
	}

	return buf.String(), args, nil
}

// OnConflictUpdate renders an ON CONFLICT ... DO UPDATE suffix that copies
// every column in update from EXCLUDED and appends the raw extra assignments.
// Without any assignment it renders DO NOTHING.
func OnConflictUpdate(target []string, update []string, extra ...string) string {
	var buf strings.Builder
	buf.WriteString("ON CONFLICT (")
	buf.WriteString(strings.Join(target, ", "))
	buf.WriteString(")")

	sets := make([]string, 0, len(update)+len(extra))
	for _, col := range update {
		sets = append(sets, col+" = EXCLUDED."+col)
	}
	sets = append(sets, extra...)
	if len(sets) == 0 {
		buf.WriteString(" DO NOTHING")
		return buf.String()
	}

	buf.WriteString(" DO UPDATE SET ")
	buf.WriteString(strings.Join(sets, ", "))
	return buf.String()
}

type AlterTableBuilder struct {
	table   string
	columns [][2]string
}

func AlterTable(table string) *AlterTableBuilder {
	return &AlterTableBuilder{table: table}
}

func (b *AlterTableBuilder) AddColumn(column, typ string) *AlterTableBuilder {
	b.columns = append(b.columns, [2]string{column, typ})
	return b
}

func (b *AlterTableBuilder) ToSQL() (string, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", fmt.Errorf("alter table name is required")
	}
	if len(b.columns) == 0 {
		return "", fmt.Errorf("alter table columns are required")
	}

	var buf strings.Builder
	buf.WriteString("ALTER TABLE ")
	buf.WriteString(b.table)
	for i, col := range b.columns {
		if strings.TrimSpace(col[0]) == "" || strings.TrimSpace(col[1]) == "" {
			return "", fmt.Errorf("alter table column %d requires a name and a type", i)
		}
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString(" ADD COLUMN ")
		buf.WriteString(col[0])
		buf.WriteString(" ")
		buf.WriteString(col[1])
	}

	return buf.String(), nil
}

func placeholder(i int) string {
	return "$" + strconv.Itoa(i)
}

func rewritePlaceholders(expr string, exprArgs []any, args *[]any, argIndex *int) string {
	if len(exprArgs) == 0 {
		return expr
	}

	var out strings.Builder
	next := 0
	for i := 0; i < len(expr); i++ {
		if expr[i] == '?' {
			if next >= len(exprArgs) {
				out.WriteByte('?')
				continue
			}
			out.WriteString(placeholder(*argIndex))
			*args = append(*args, exprArgs[next])
			*argIndex = *argIndex + 1
			next++
			continue
		}
		out.WriteByte(expr[i])
	}
	return out.String()
}
