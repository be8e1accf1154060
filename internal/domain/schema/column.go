package schema

// Column describes a discovered column. Inferred is the value-based type of
// the first sample seen for it, kept for diagnostics.
type Column struct {
	Name     string
	Inferred ColumnType
}

// ColumnSet is an insertion-ordered set of column names. The zero value is
// ready to use.
type ColumnSet struct {
	order []string
	index map[string]struct{}
}

func NewColumnSet(names ...string) *ColumnSet {
	s := &ColumnSet{}
	for _, name := range names {
		s.Add(name)
	}
	return s
}

// Add inserts name and reports whether it was new. Empty names are ignored.
func (s *ColumnSet) Add(name string) bool {
	if name == "" {
		return false
	}
	if s.index == nil {
		s.index = make(map[string]struct{})
	}
	if _, ok := s.index[name]; ok {
		return false
	}
	s.index[name] = struct{}{}
	s.order = append(s.order, name)
	return true
}

func (s *ColumnSet) Has(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[name]
	return ok
}

func (s *ColumnSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

func (s *ColumnSet) Names() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.order...)
}

// Difference returns the names in s that are not in other.
func (s *ColumnSet) Difference(other *ColumnSet) []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.order))
	for _, name := range s.order {
		if other.Has(name) {
			continue
		}
		out = append(out, name)
	}
	return out
}
