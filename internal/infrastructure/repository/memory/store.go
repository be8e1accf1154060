package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/riskibarqy/player-ingest/internal/domain/schema"
)

// Row is one stored row keyed by column name.
type Row map[string]schema.Value

type table struct {
	columns *schema.ColumnSet
	types   map[string]schema.ColumnType
	rows    map[string]Row
	order   []string
}

// Store is an in-process schema.Repository used for dry runs and tests. It
// enforces the same column and natural key rules as the database.
type Store struct {
	mu     sync.RWMutex
	tables map[schema.Table]*table
	now    func() time.Time
}

type Option func(*Store)

// WithClock overrides the time source used for last_updated.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		tables: make(map[schema.Table]*table, len(schema.AllTables)),
		now:    time.Now,
	}
	for _, t := range schema.AllTables {
		base := t.BaseColumns()
		types := make(map[string]schema.ColumnType, len(base))
		for _, col := range base {
			types[col] = schema.ColumnTypeForName(col)
		}
		types[schema.LastUpdatedColumn] = schema.TypeTimestamp
		s.tables[t] = &table{
			columns: schema.NewColumnSet(base...),
			types:   types,
			rows:    make(map[string]Row),
		}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Columns(_ context.Context, t schema.Table) (*schema.ColumnSet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tbl, ok := s.tables[t]
	if !ok {
		return schema.NewColumnSet(), nil
	}
	return schema.NewColumnSet(tbl.columns.Names()...), nil
}

func (s *Store) AddColumn(_ context.Context, t schema.Table, column string, typ schema.ColumnType) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if column == "" {
		return fmt.Errorf("add column to %s: empty column name", t)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tbl := s.tables[t]
	if !tbl.columns.Add(column) {
		return fmt.Errorf("add column %s.%s: %w", t, column, schema.ErrColumnExists)
	}
	tbl.types[column] = typ
	return nil
}

func (s *Store) Upsert(_ context.Context, t schema.Table, fields *schema.FieldMap) error {
	if fields.Len() == 0 {
		return nil
	}
	if err := t.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tbl := s.tables[t]
	for _, key := range fields.Keys() {
		if !tbl.columns.Has(key) {
			return fmt.Errorf("upsert %s: column %q does not exist", t, key)
		}
	}

	key, err := rowKey(t, fields)
	if err != nil {
		return err
	}

	row, ok := tbl.rows[key]
	if !ok {
		row = make(Row, fields.Len()+1)
		tbl.rows[key] = row
		tbl.order = append(tbl.order, key)
	}
	for _, col := range fields.Keys() {
		if col == schema.LastUpdatedColumn {
			continue
		}
		v, _ := fields.Get(col)
		row[col] = v
	}
	row[schema.LastUpdatedColumn] = schema.Text(s.now().UTC().Format(time.RFC3339Nano))
	return nil
}

// Rows returns copies of the rows of t in first-insert order.
func (s *Store) Rows(t schema.Table) []Row {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tbl, ok := s.tables[t]
	if !ok {
		return nil
	}
	out := make([]Row, 0, len(tbl.order))
	for _, key := range tbl.order {
		out = append(out, copyRow(tbl.rows[key]))
	}
	return out
}

// Row looks up a row by its natural key values, in NaturalKey order.
func (s *Store) Row(t schema.Table, key ...string) (Row, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tbl, ok := s.tables[t]
	if !ok {
		return nil, false
	}
	row, ok := tbl.rows[strings.Join(key, keySeparator)]
	if !ok {
		return nil, false
	}
	return copyRow(row), true
}

// ColumnType reports the declared type of a column.
func (s *Store) ColumnType(t schema.Table, column string) (schema.ColumnType, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tbl, ok := s.tables[t]
	if !ok {
		return "", false
	}
	typ, ok := tbl.types[column]
	return typ, ok
}

const keySeparator = "\x1f"

func rowKey(t schema.Table, fields *schema.FieldMap) (string, error) {
	natural := t.NaturalKey()
	parts := make([]string, 0, len(natural))
	for _, col := range natural {
		v, ok := fields.Get(col)
		if !ok || v.IsNull() {
			return "", fmt.Errorf("upsert %s: natural key column %q is required", t, col)
		}
		parts = append(parts, fmt.Sprint(v.Arg()))
	}
	return strings.Join(parts, keySeparator), nil
}

func copyRow(row Row) Row {
	out := make(Row, len(row))
	for k, v := range row {
		out[k] = v
	}
	return out
}
