package player

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Reserved top-level keys with fixed meaning in a record.
const (
	KeyID            = "id"
	KeyName          = "name"
	KeyFullName      = "fullName"
	KeyNationality   = "nationality"
	KeyBirthDate     = "birthDate"
	KeyHeight        = "height"
	KeyPreferredFoot = "preferredFoot"
	KeyPositions     = "positions"
	KeyClub          = "club"
	KeyLeague        = "league"
	KeyStats         = "stats"
	KeyAttributes    = "attributes"
)

// Record is one decoded input player entity. Values are whatever the JSON
// decoder produced: nil, bool, string, json.Number, []any or map[string]any.
type Record map[string]any

// Lookup returns the raw value of key and whether it was present at all.
// A JSON null is present with a nil value.
func (r Record) Lookup(key string) (any, bool) {
	v, ok := r[key]
	return v, ok
}

// Nested returns the object stored under key, if key holds an object.
func (r Record) Nested(key string) (map[string]any, bool) {
	v, ok := r[key].(map[string]any)
	return v, ok
}

// NestedLookup reads child from the object stored under key.
func (r Record) NestedLookup(key, child string) (any, bool) {
	obj, ok := r.Nested(key)
	if !ok {
		return nil, false
	}
	v, ok := obj[child]
	return v, ok
}

// Keys returns the top-level keys in lexical order.
func (r Record) Keys() []string {
	return SortedKeys(r)
}

// ID returns the record identifier rendered as text, or "" when absent.
func (r Record) ID() string {
	v, ok := r[KeyID]
	if !ok || v == nil {
		return ""
	}
	return scalarString(v)
}

// Name returns the display name used in logs.
func (r Record) Name() string {
	if v, ok := r[KeyName].(string); ok && strings.TrimSpace(v) != "" {
		return v
	}
	if id := r.ID(); id != "" {
		return "#" + id
	}
	return "<unnamed>"
}

// IsScalar reports whether v is neither a JSON object nor an array.
func IsScalar(v any) bool {
	switch v.(type) {
	case map[string]any, []any:
		return false
	default:
		return true
	}
}

// SortedKeys returns the keys of obj in lexical order.
func SortedKeys(obj map[string]any) []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func scalarString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}
