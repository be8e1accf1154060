package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyField(t *testing.T) {
	t.Parallel()

	cases := []struct {
		field string
		want  FieldClass
	}{
		{field: "fullName", want: FieldClassProfile},
		{field: "nationality", want: FieldClassProfile},
		{field: "preferredFoot", want: FieldClassProfile},
		{field: "birthDate", want: FieldClassProfile},
		{field: "positions", want: FieldClassProfile},
		{field: "goals", want: FieldClassStatistic},
		{field: "YellowCards", want: FieldClassStatistic},
		{field: "positioning", want: FieldClassStatistic},
		{field: "overall", want: FieldClassStatistic},
		{field: "marketValue", want: FieldClassGeneric},
		{field: "playerAge", want: FieldClassGeneric},
		{field: "shirt_number", want: FieldClassGeneric},
	}

	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyField(tc.field))
		})
	}
}

func TestClassifyField_ProfileWinsOverStatistic(t *testing.T) {
	t.Parallel()

	// "name" is a profile keyword and "goals" a statistic keyword.
	assert.Equal(t, FieldClassProfile, ClassifyField("goals_name"))
	assert.Equal(t, TableProfiles, ClassifyField("goals_name").Table())
}

func TestFieldClassTable(t *testing.T) {
	t.Parallel()

	assert.Equal(t, TableProfiles, FieldClassProfile.Table())
	assert.Equal(t, TableStatistics, FieldClassStatistic.Table())
	assert.Equal(t, TablePlayers, FieldClassGeneric.Table())
}
