package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	sonic "github.com/bytedance/sonic"
)

// ValueKind tags the variant held by a Value.
type ValueKind uint8

const (
	KindNull ValueKind = iota
	KindInteger
	KindDecimal
	KindText
	KindBoolean
	KindJSON
)

func (k ValueKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInteger:
		return "integer"
	case KindDecimal:
		return "decimal"
	case KindText:
		return "text"
	case KindBoolean:
		return "boolean"
	case KindJSON:
		return "json"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Value is a single cell destined for a column. KindJSON values carry their
// serialized document in Text.
type Value struct {
	Kind  ValueKind
	Int   int64
	Float float64
	Text  string
	Bool  bool
}

func Null() Value                 { return Value{Kind: KindNull} }
func Integer(v int64) Value       { return Value{Kind: KindInteger, Int: v} }
func Decimal(v float64) Value     { return Value{Kind: KindDecimal, Float: v} }
func Text(v string) Value         { return Value{Kind: KindText, Text: v} }
func Boolean(v bool) Value        { return Value{Kind: KindBoolean, Bool: v} }
func JSONDocument(v string) Value { return Value{Kind: KindJSON, Text: v} }

// ValueOf converts a decoded JSON value into a Value. Arrays and objects are
// serialized to JSON text.
func ValueOf(raw any) (Value, error) {
	switch v := raw.(type) {
	case nil:
		return Null(), nil
	case Value:
		return v, nil
	case bool:
		return Boolean(v), nil
	case string:
		return Text(v), nil
	case json.Number:
		i, err := v.Int64()
		if err == nil {
			return Integer(i), nil
		}
		if errors.Is(err, strconv.ErrRange) {
			// Outside int64; keep every digit instead of rounding through float64.
			return Text(v.String()), nil
		}
		f, err := v.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("parse number %q: %w", v.String(), err)
		}
		return Decimal(f), nil
	case float64:
		if v == math.Trunc(v) && math.Abs(v) < 1<<53 {
			return Integer(int64(v)), nil
		}
		return Decimal(v), nil
	case int:
		return Integer(int64(v)), nil
	case int64:
		return Integer(v), nil
	case []any, map[string]any:
		return EncodeJSON(v)
	default:
		return Value{}, fmt.Errorf("unsupported value type %T", raw)
	}
}

// EncodeJSON serializes raw as a JSON document regardless of its shape.
func EncodeJSON(raw any) (Value, error) {
	encoded, err := sonic.Marshal(raw)
	if err != nil {
		return Value{}, fmt.Errorf("encode json value: %w", err)
	}
	return JSONDocument(string(encoded)), nil
}

// Arg returns the database/sql argument for the value.
func (v Value) Arg() any {
	switch v.Kind {
	case KindInteger:
		return v.Int
	case KindDecimal:
		return v.Float
	case KindText, KindJSON:
		return v.Text
	case KindBoolean:
		return v.Bool
	default:
		return nil
	}
}

func (v Value) IsNull() bool {
	return v.Kind == KindNull
}

// integerOutOfRange reports whether n is an integer literal too wide for
// int64. ParseInt rejects fractions and exponents as syntax errors first.
func integerOutOfRange(n json.Number) bool {
	_, err := n.Int64()
	return errors.Is(err, strconv.ErrRange)
}
