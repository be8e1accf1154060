package postgres

import (
	"context"
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/player-ingest/internal/domain/schema"
	qb "github.com/riskibarqy/player-ingest/internal/platform/querybuilder"
)

// TableRepository introspects, extends and upserts into the player tables.
type TableRepository struct {
	db *sqlx.DB
}

func NewTableRepository(db *sqlx.DB) *TableRepository {
	return &TableRepository{db: db}
}

// Columns returns the live columns of table in ordinal order. A missing
// table has no rows in information_schema and yields an empty set.
func (r *TableRepository) Columns(ctx context.Context, table schema.Table) (*schema.ColumnSet, error) {
	query, args, err := qb.Select("column_name").
		From("information_schema.columns").
		Where(
			qb.Expr("table_schema = current_schema()"),
			qb.Eq("table_name", table.String()),
		).
		OrderBy("ordinal_position").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select table columns query: %w", err)
	}

	var names []string
	if err := r.db.SelectContext(ctx, &names, query, args...); err != nil {
		if isUndefinedTable(err) {
			return schema.NewColumnSet(), nil
		}
		return nil, fmt.Errorf("select columns of %s: %w", table, err)
	}

	return schema.NewColumnSet(names...), nil
}

func (r *TableRepository) AddColumn(ctx context.Context, table schema.Table, column string, typ schema.ColumnType) error {
	query, err := qb.AlterTable(pq.QuoteIdentifier(table.String())).
		AddColumn(pq.QuoteIdentifier(column), string(typ)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build add column query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query); err != nil {
		wrapped := crerr.Wrapf(err, "add column %s.%s", table, column)
		if isDuplicateColumn(err) {
			return crerr.Mark(wrapped, schema.ErrColumnExists)
		}
		return wrapped
	}
	return nil
}

func (r *TableRepository) Upsert(ctx context.Context, table schema.Table, fields *schema.FieldMap) error {
	if fields.Len() == 0 {
		return nil
	}
	if err := table.Validate(); err != nil {
		return err
	}

	query, args, err := buildUpsert(table, fields)
	if err != nil {
		return fmt.Errorf("build upsert %s query: %w", table, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUndefinedColumn(err) {
			return crerr.Wrapf(err, "upsert %s references a missing column", table)
		}
		return fmt.Errorf("upsert %s: %w", table, err)
	}
	return nil
}

// buildUpsert inserts every field plus last_updated = NOW(); on a natural key
// conflict every non-key field is overwritten and last_updated refreshed.
func buildUpsert(table schema.Table, fields *schema.FieldMap) (string, []any, error) {
	builder := qb.InsertInto(pq.QuoteIdentifier(table.String()))
	update := make([]string, 0, fields.Len())
	for _, key := range fields.Keys() {
		if key == schema.LastUpdatedColumn {
			continue
		}
		value, _ := fields.Get(key)
		quoted := pq.QuoteIdentifier(key)
		builder.Set(quoted, value.Arg())
		if !table.IsKeyColumn(key) {
			update = append(update, quoted)
		}
	}

	lastUpdated := pq.QuoteIdentifier(schema.LastUpdatedColumn)
	builder.Set(lastUpdated, qb.Raw("NOW()"))
	builder.Suffix(qb.OnConflictUpdate(
		quoteIdents(table.NaturalKey()),
		update,
		lastUpdated+" = NOW()",
	))

	return builder.ToSQL()
}
