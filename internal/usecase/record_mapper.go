package usecase

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/player-ingest/internal/domain/player"
	"github.com/riskibarqy/player-ingest/internal/domain/schema"
)

// DefaultSeason is stamped on every statistics row.
const DefaultSeason = "2024-25"

// Top-level keys the players map never copies as extra columns.
var playerReservedKeys = map[string]struct{}{
	player.KeyID:         {},
	player.KeyName:       {},
	player.KeyClub:       {},
	player.KeyStats:      {},
	player.KeyAttributes: {},
}

// MappedRecord holds the per-table field maps built from one record.
type MappedRecord struct {
	Player     *schema.FieldMap
	Profile    *schema.FieldMap
	Statistics *schema.FieldMap
}

func (m MappedRecord) For(table schema.Table) *schema.FieldMap {
	switch table {
	case schema.TablePlayers:
		return m.Player
	case schema.TableProfiles:
		return m.Profile
	case schema.TableStatistics:
		return m.Statistics
	default:
		return nil
	}
}

type RecordMapper struct {
	season string
}

func NewRecordMapper(season string) *RecordMapper {
	season = strings.TrimSpace(season)
	if season == "" {
		season = DefaultSeason
	}
	return &RecordMapper{season: season}
}

// Map flattens record into the players, player_profiles and
// player_statistics field maps.
func (m *RecordMapper) Map(record player.Record) (MappedRecord, error) {
	b := &fieldBuilder{}
	out := MappedRecord{
		Player:     m.playerFields(b, record),
		Profile:    m.profileFields(b, record),
		Statistics: m.statisticsFields(b, record),
	}
	if b.err != nil {
		return MappedRecord{}, fmt.Errorf("map record %s: %w: %w", record.Name(), ErrInvalidInput, b.err)
	}
	return out, nil
}

func (m *RecordMapper) playerFields(b *fieldBuilder, record player.Record) *schema.FieldMap {
	fields := schema.NewFieldMap()
	b.setFrom(fields, "id", record, player.KeyID)
	b.setFrom(fields, "name", record, player.KeyName)
	b.setNested(fields, "club_name", record, player.KeyClub, "name")
	b.setNested(fields, "club_id", record, player.KeyClub, "id")

	for _, key := range record.Keys() {
		if _, reserved := playerReservedKeys[key]; reserved {
			continue
		}
		value := record[key]
		if !player.IsScalar(value) {
			continue
		}
		b.set(fields, schema.SanitizeColumnName(key), value)
	}
	return fields
}

func (m *RecordMapper) profileFields(b *fieldBuilder, record player.Record) *schema.FieldMap {
	fields := schema.NewFieldMap()
	b.setFrom(fields, "player_id", record, player.KeyID)
	b.setFrom(fields, "name", record, player.KeyName)
	if fullName, ok := record.Lookup(player.KeyFullName); ok && !isBlank(fullName) {
		b.set(fields, "full_name", fullName)
	} else {
		b.setFrom(fields, "full_name", record, player.KeyName)
	}
	b.setFrom(fields, "nationality", record, player.KeyNationality)
	b.setFrom(fields, "birth_date", record, player.KeyBirthDate)
	b.setFrom(fields, "height", record, player.KeyHeight)
	b.setFrom(fields, "preferred_foot", record, player.KeyPreferredFoot)
	if positions, ok := record.Lookup(player.KeyPositions); ok {
		if positions == nil {
			fields.Set("positions", schema.Null())
		} else {
			b.setJSON(fields, "positions", positions)
		}
	}

	if attributes, ok := record.Nested(player.KeyAttributes); ok {
		for _, key := range player.SortedKeys(attributes) {
			b.set(fields, schema.SanitizeColumnName(key), attributes[key])
		}
	}
	return fields
}

func (m *RecordMapper) statisticsFields(b *fieldBuilder, record player.Record) *schema.FieldMap {
	fields := schema.NewFieldMap()
	b.setFrom(fields, "player_id", record, player.KeyID)
	b.setFrom(fields, "name", record, player.KeyName)
	fields.Set("season", schema.Text(m.season))
	b.setNested(fields, "club_name", record, player.KeyClub, "name")
	b.setNested(fields, "competition", record, player.KeyLeague, "name")

	if stats, ok := record.Nested(player.KeyStats); ok {
		for _, key := range player.SortedKeys(stats) {
			b.set(fields, schema.SanitizeColumnName(key), stats[key])
		}
	}
	return fields
}

// fieldBuilder keeps the first conversion error so the map helpers stay terse.
type fieldBuilder struct {
	err error
}

func (b *fieldBuilder) set(fields *schema.FieldMap, column string, raw any) {
	v, err := schema.ValueOf(raw)
	if err != nil {
		if b.err == nil {
			b.err = fmt.Errorf("column %s: %w", column, err)
		}
		return
	}
	fields.Set(column, v)
}

func (b *fieldBuilder) setFrom(fields *schema.FieldMap, column string, record player.Record, key string) {
	raw, ok := record.Lookup(key)
	if !ok {
		return
	}
	b.set(fields, column, raw)
}

func (b *fieldBuilder) setNested(fields *schema.FieldMap, column string, record player.Record, key, child string) {
	raw, ok := record.NestedLookup(key, child)
	if !ok {
		return
	}
	b.set(fields, column, raw)
}

// setJSON stores the JSON text form of raw, whatever its shape.
func (b *fieldBuilder) setJSON(fields *schema.FieldMap, column string, raw any) {
	v, err := schema.EncodeJSON(raw)
	if err != nil {
		if b.err == nil {
			b.err = fmt.Errorf("column %s: %w", column, err)
		}
		return
	}
	fields.Set(column, v)
}

func isBlank(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) == ""
}
