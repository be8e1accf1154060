package schema

import "fmt"

// Table is one of the fixed logical target tables.
type Table string

const (
	TablePlayers    Table = "players"
	TableProfiles   Table = "player_profiles"
	TableStatistics Table = "player_statistics"
)

// LastUpdatedColumn is refreshed on every upsert.
const LastUpdatedColumn = "last_updated"

// AllTables lists target tables in write order.
var AllTables = []Table{TablePlayers, TableProfiles, TableStatistics}

var baseColumns = map[Table][]string{
	TablePlayers: {
		"id",
		"name",
		"club_name",
		"club_id",
		LastUpdatedColumn,
	},
	TableProfiles: {
		"player_id",
		"name",
		"full_name",
		"nationality",
		"birth_date",
		"height",
		"preferred_foot",
		"positions",
		LastUpdatedColumn,
	},
	TableStatistics: {
		"player_id",
		"name",
		"season",
		"club_name",
		"competition",
		LastUpdatedColumn,
	},
}

var naturalKeys = map[Table][]string{
	TablePlayers:    {"id"},
	TableProfiles:   {"player_id"},
	TableStatistics: {"player_id", "season"},
}

func (t Table) String() string {
	return string(t)
}

func (t Table) Validate() error {
	if _, ok := baseColumns[t]; !ok {
		return fmt.Errorf("unknown table: %q", string(t))
	}
	return nil
}

// BaseColumns returns the always-present columns of the table.
func (t Table) BaseColumns() []string {
	return append([]string(nil), baseColumns[t]...)
}

// NaturalKey returns the conflict target columns used for upserts.
func (t Table) NaturalKey() []string {
	return append([]string(nil), naturalKeys[t]...)
}

func (t Table) IsKeyColumn(column string) bool {
	for _, key := range naturalKeys[t] {
		if key == column {
			return true
		}
	}
	return false
}
