package schema

import (
	"context"
	"errors"
)

// ErrColumnExists is returned by AddColumn when the column is already there,
// usually because another writer added it first.
var ErrColumnExists = errors.New("column already exists")

// Repository describes the schema and row access the ingestion pipeline needs.
type Repository interface {
	// Columns returns the live columns of table. A table that does not exist
	// yields an empty set and a nil error, same as a table with no columns.
	Columns(ctx context.Context, table Table) (*ColumnSet, error)
	// AddColumn issues one additive alteration.
	AddColumn(ctx context.Context, table Table, column string, typ ColumnType) error
	// Upsert inserts fields into table or, on a natural key conflict,
	// overwrites every non-key column. LastUpdatedColumn is always refreshed.
	Upsert(ctx context.Context, table Table, fields *FieldMap) error
}
