package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnSet(t *testing.T) {
	t.Parallel()

	set := NewColumnSet("id", "name", "id", "")
	assert.Equal(t, []string{"id", "name"}, set.Names())
	assert.True(t, set.Add("club_id"))
	assert.False(t, set.Add("club_id"))
	assert.Equal(t, 3, set.Len())

	other := NewColumnSet("name")
	assert.Equal(t, []string{"id", "club_id"}, set.Difference(other))

	var zero ColumnSet
	assert.True(t, zero.Add("x"))

	var nilSet *ColumnSet
	assert.False(t, nilSet.Has("x"))
	assert.Equal(t, 0, nilSet.Len())
	assert.Equal(t, []string{"id", "name", "club_id"}, set.Difference(nilSet))
}

func TestRequirements(t *testing.T) {
	t.Parallel()

	req := NewRequirements()
	for _, table := range AllTables {
		assert.Equal(t, table.BaseColumns(), req.Set(table).Names())
	}

	req.Add(TableStatistics, "goals", json.Number("5"))
	req.Add(TableStatistics, "goals", "five")
	req.Add(TableStatistics, "", 1)
	req.Add(Table("unknown"), "x", 1)

	cols := req.Columns(TableStatistics)
	require.Len(t, cols, len(TableStatistics.BaseColumns())+1)
	assert.Equal(t, Column{Name: "goals", Inferred: TypeSmallUnsigned}, cols[len(cols)-1])

	existing := NewColumnSet(TableStatistics.BaseColumns()...)
	assert.Equal(t, []Column{{Name: "goals", Inferred: TypeSmallUnsigned}}, req.Missing(TableStatistics, existing))
	assert.Empty(t, req.Missing(TableStatistics, req.Set(TableStatistics)))
}

func TestTable(t *testing.T) {
	t.Parallel()

	assert.NoError(t, TablePlayers.Validate())
	assert.Error(t, Table("coaches").Validate())
	assert.Equal(t, []string{"player_id", "season"}, TableStatistics.NaturalKey())
	assert.True(t, TableProfiles.IsKeyColumn("player_id"))
	assert.False(t, TableProfiles.IsKeyColumn("name"))
	assert.Contains(t, TablePlayers.BaseColumns(), LastUpdatedColumn)
}
