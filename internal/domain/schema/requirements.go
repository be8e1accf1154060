package schema

// Requirements accumulates the columns each table needs while a batch
// prefix is sampled. Every table starts from its base columns.
type Requirements struct {
	sets     map[Table]*ColumnSet
	inferred map[Table]map[string]ColumnType
}

func NewRequirements() *Requirements {
	r := &Requirements{
		sets:     make(map[Table]*ColumnSet, len(AllTables)),
		inferred: make(map[Table]map[string]ColumnType, len(AllTables)),
	}
	for _, table := range AllTables {
		r.sets[table] = NewColumnSet(table.BaseColumns()...)
		r.inferred[table] = make(map[string]ColumnType)
	}
	return r
}

// Add records column for table. The first sample seen decides the advisory
// inferred type.
func (r *Requirements) Add(table Table, column string, sample any) {
	set, ok := r.sets[table]
	if !ok || column == "" {
		return
	}
	set.Add(column)
	if _, seen := r.inferred[table][column]; !seen {
		r.inferred[table][column] = InferValueType(sample)
	}
}

func (r *Requirements) Set(table Table) *ColumnSet {
	if set, ok := r.sets[table]; ok {
		return set
	}
	return NewColumnSet()
}

// Columns lists the required columns of table in discovery order.
func (r *Requirements) Columns(table Table) []Column {
	names := r.Set(table).Names()
	out := make([]Column, 0, len(names))
	for _, name := range names {
		out = append(out, Column{Name: name, Inferred: r.inferred[table][name]})
	}
	return out
}

// Missing lists the required columns of table absent from existing.
func (r *Requirements) Missing(table Table, existing *ColumnSet) []Column {
	names := r.Set(table).Difference(existing)
	out := make([]Column, 0, len(names))
	for _, name := range names {
		out = append(out, Column{Name: name, Inferred: r.inferred[table][name]})
	}
	return out
}
