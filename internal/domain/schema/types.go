package schema

import (
	"encoding/json"
	"math"
	"strings"
)

// ColumnType is the Postgres DDL type used when a column is added.
type ColumnType string

const (
	TypeSmallUnsigned ColumnType = "SMALLINT"
	TypeInteger       ColumnType = "INTEGER"
	TypeDecimal       ColumnType = "NUMERIC(10,2)"
	TypeMoney         ColumnType = "NUMERIC(15,2)"
	TypeBoolean       ColumnType = "BOOLEAN"
	TypeShortText     ColumnType = "VARCHAR(255)"
	TypeLongText      ColumnType = "TEXT"
	TypeJSON          ColumnType = "JSONB"
	TypeIdentifier    ColumnType = "VARCHAR(64)"
	TypeDate          ColumnType = "DATE"
	TypeTimestamp     ColumnType = "TIMESTAMPTZ"
	TypeURL           ColumnType = "VARCHAR(500)"
	TypePhone         ColumnType = "VARCHAR(20)"
	TypeCategory      ColumnType = "VARCHAR(100)"
)

const shortTextMaxLength = 50

// InferValueType maps a sampled JSON value to a storage type. The result is
// advisory; ColumnTypeForName decides what a migration actually applies.
func InferValueType(value any) ColumnType {
	switch v := value.(type) {
	case nil:
		return TypeLongText
	case bool:
		return TypeBoolean
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return integerType(i)
		}
		if integerOutOfRange(v) {
			return TypeShortText
		}
		return TypeDecimal
	case float64:
		if v == math.Trunc(v) && !math.IsInf(v, 0) && math.Abs(v) < 1<<53 {
			return integerType(int64(v))
		}
		return TypeDecimal
	case float32:
		return InferValueType(float64(v))
	case int:
		return integerType(int64(v))
	case int64:
		return integerType(v)
	case string:
		if len([]rune(v)) <= shortTextMaxLength {
			return TypeShortText
		}
		return TypeLongText
	case []any, map[string]any:
		return TypeJSON
	default:
		return TypeLongText
	}
}

func integerType(v int64) ColumnType {
	if v >= 0 && v <= 255 {
		return TypeSmallUnsigned
	}
	return TypeInteger
}

type nameRule struct {
	keywords []string
	typ      ColumnType
}

// Order matters: the first rule whose keyword is contained in the name wins.
var nameRules = []nameRule{
	{keywords: []string{"id"}, typ: TypeIdentifier},
	{keywords: []string{"name"}, typ: TypeShortText},
	{keywords: []string{"date"}, typ: TypeDate},
	{keywords: []string{"timestamp", "updated", "created"}, typ: TypeTimestamp},
	{keywords: []string{"url"}, typ: TypeURL},
	{keywords: []string{"email"}, typ: TypeShortText},
	{keywords: []string{"phone"}, typ: TypePhone},
	{keywords: []string{"age"}, typ: TypeSmallUnsigned},
	{keywords: []string{"height", "weight"}, typ: TypeInteger},
	{keywords: []string{"price", "value", "wage"}, typ: TypeMoney},
	{keywords: []string{"rating", "overall"}, typ: TypeSmallUnsigned},
	{keywords: []string{"position", "foot"}, typ: TypeCategory},
	{keywords: []string{"nationality", "country"}, typ: TypeCategory},
	{keywords: []string{"club", "team"}, typ: TypeShortText},
}

// ColumnTypeForName derives the migration type of a column from its name only.
func ColumnTypeForName(column string) ColumnType {
	lowered := strings.ToLower(column)
	for _, rule := range nameRules {
		if containsAny(lowered, rule.keywords) {
			return rule.typ
		}
	}
	return TypeLongText
}
