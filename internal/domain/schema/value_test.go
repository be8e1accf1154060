package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueOf(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  any
		want Value
	}{
		{name: "nil", raw: nil, want: Null()},
		{name: "bool", raw: false, want: Boolean(false)},
		{name: "string", raw: "Left", want: Text("Left")},
		{name: "integer number", raw: json.Number("7"), want: Integer(7)},
		{name: "decimal number", raw: json.Number("1.85"), want: Decimal(1.85)},
		{name: "integer beyond int64", raw: json.Number("12345678901234567890"), want: Text("12345678901234567890")},
		{name: "negative integer beyond int64", raw: json.Number("-98765432109876543210"), want: Text("-98765432109876543210")},
		{name: "exponent stays decimal", raw: json.Number("1e3"), want: Decimal(1000)},
		{name: "integral float", raw: float64(42), want: Integer(42)},
		{name: "array", raw: []any{"ST", "CF"}, want: JSONDocument(`["ST","CF"]`)},
		{name: "value passthrough", raw: Text("x"), want: Text("x")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ValueOf(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestValueOf_Unsupported(t *testing.T) {
	t.Parallel()

	_, err := ValueOf(struct{}{})
	require.Error(t, err)

	_, err = ValueOf(json.Number("not-a-number"))
	require.Error(t, err)
}

func TestValueArg(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Null().Arg())
	assert.Equal(t, int64(3), Integer(3).Arg())
	assert.Equal(t, 2.5, Decimal(2.5).Arg())
	assert.Equal(t, "a", Text("a").Arg())
	assert.Equal(t, true, Boolean(true).Arg())
	assert.Equal(t, `{"k":1}`, JSONDocument(`{"k":1}`).Arg())
	assert.True(t, Null().IsNull())
	assert.Equal(t, "json", KindJSON.String())
}

func TestFieldMap(t *testing.T) {
	t.Parallel()

	m := NewFieldMap()
	m.Set("id", Text("1"))
	m.Set("name", Text("A"))
	m.Set("", Text("ignored"))
	m.Set("club_name", Null())
	m.Set("id", Text("2"))

	assert.Equal(t, []string{"id", "name", "club_name"}, m.Keys())
	v, ok := m.Get("id")
	require.True(t, ok)
	assert.Equal(t, Text("2"), v)
	assert.True(t, m.Has("club_name"))
	assert.False(t, m.Has("height"))

	kept, dropped := m.Filter(func(key string) bool { return key != "name" })
	assert.Equal(t, []string{"id", "club_name"}, kept.Keys())
	assert.Equal(t, []string{"name"}, dropped)

	var nilMap *FieldMap
	assert.Equal(t, 0, nilMap.Len())
	filtered, none := nilMap.Filter(func(string) bool { return true })
	assert.Equal(t, 0, filtered.Len())
	assert.Nil(t, none)
}
