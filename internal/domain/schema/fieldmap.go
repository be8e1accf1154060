package schema

// FieldMap is an insertion-ordered mapping from column name to value. Keys
// that were never set are "undefined" and never reach a statement; a key set
// to Null() is written as NULL.
type FieldMap struct {
	keys   []string
	values map[string]Value
}

func NewFieldMap() *FieldMap {
	return &FieldMap{values: make(map[string]Value)}
}

// Set stores v under key, keeping the original position when key exists.
// Empty keys are ignored.
func (m *FieldMap) Set(key string, v Value) {
	if key == "" {
		return
	}
	if m.values == nil {
		m.values = make(map[string]Value)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

func (m *FieldMap) Get(key string) (Value, bool) {
	if m == nil {
		return Value{}, false
	}
	v, ok := m.values[key]
	return v, ok
}

func (m *FieldMap) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

func (m *FieldMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

func (m *FieldMap) Keys() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.keys...)
}

// Filter splits m into the entries accepted by keep and the rejected keys.
func (m *FieldMap) Filter(keep func(key string) bool) (*FieldMap, []string) {
	out := NewFieldMap()
	var dropped []string
	if m == nil {
		return out, nil
	}
	for _, key := range m.keys {
		if !keep(key) {
			dropped = append(dropped, key)
			continue
		}
		out.Set(key, m.values[key])
	}
	return out, dropped
}
