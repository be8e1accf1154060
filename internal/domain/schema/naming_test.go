package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeColumnName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{in: "goals", want: "goals"},
		{in: "playerAge", want: "playerage"},
		{in: "Market Value (€)", want: "market_value"},
		{in: "__weak--foot__", want: "weak_foot"},
		{in: "shots.on.target", want: "shots_on_target"},
		{in: "a   b", want: "a_b"},
		{in: "Pace", want: "pace"},
		{in: "çava", want: "ava"},
		{in: "???", want: ""},
		{in: "", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, SanitizeColumnName(tc.in))
		})
	}
}

func TestSanitizeColumnName_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"Market Value (€)", "__x__y__", "Yellow-Cards", strings.Repeat("Ab_", 40)}
	for _, in := range inputs {
		once := SanitizeColumnName(in)
		assert.Equal(t, once, SanitizeColumnName(once), in)
	}
}

func TestSanitizeColumnName_Truncates(t *testing.T) {
	t.Parallel()

	got := SanitizeColumnName(strings.Repeat("a", 63) + "_" + strings.Repeat("b", 10))
	assert.Equal(t, strings.Repeat("a", 63), got)
	assert.LessOrEqual(t, len(SanitizeColumnName(strings.Repeat("x", 200))), MaxColumnNameLength)
}
