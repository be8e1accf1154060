package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/riskibarqy/player-ingest/internal/domain/player"
	"github.com/riskibarqy/player-ingest/internal/domain/schema"
	"github.com/riskibarqy/player-ingest/internal/infrastructure/repository/memory"
	schemamock "github.com/riskibarqy/player-ingest/internal/mocks/domain/schema"
	"github.com/riskibarqy/player-ingest/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSchemaAnalyzer_Requirements(t *testing.T) {
	t.Parallel()

	analyzer := NewSchemaAnalyzer(memory.NewStore(), 0, logging.NewNop())
	req := analyzer.Requirements([]player.Record{sampleRecord()})

	players := req.Set(schema.TablePlayers)
	assert.True(t, players.Has("marketvalue"))
	for _, col := range []string{"club", "league", "stats", "attributes"} {
		assert.Truef(t, players.Has(col), "object-valued field %q is classified too", col)
	}

	profiles := req.Set(schema.TableProfiles)
	for _, col := range []string{"fullname", "nationality", "preferredfoot", "pace", "weak_foot"} {
		assert.Truef(t, profiles.Has(col), "profile column %q", col)
	}

	stats := req.Set(schema.TableStatistics)
	assert.True(t, stats.Has("goals"))
	assert.True(t, stats.Has("yellow_cards"))
	assert.False(t, stats.Has("pace"))
}

func TestSchemaAnalyzer_Requirements_ClassifiesObjectValuedFields(t *testing.T) {
	t.Parallel()

	analyzer := NewSchemaAnalyzer(memory.NewStore(), 0, logging.NewNop())
	req := analyzer.Requirements([]player.Record{{
		"id":    json.Number("1"),
		"name":  "A",
		"club":  map[string]any{"id": json.Number("7"), "name": "Persija Jakarta"},
		"stats": map[string]any{"goals": json.Number("3")},
	}})

	players := req.Set(schema.TablePlayers)
	assert.True(t, players.Has("club"))
	assert.True(t, players.Has("stats"))
	assert.True(t, req.Set(schema.TableStatistics).Has("goals"))

	cols := req.Columns(schema.TablePlayers)
	assert.Contains(t, cols, schema.Column{Name: "club", Inferred: schema.TypeJSON})
}

func TestSchemaAnalyzer_Requirements_StartsFromBaseColumns(t *testing.T) {
	t.Parallel()

	analyzer := NewSchemaAnalyzer(memory.NewStore(), 10, logging.NewNop())
	req := analyzer.Requirements(nil)

	for _, table := range schema.AllTables {
		assert.Equal(t, table.BaseColumns(), req.Set(table).Names())
	}
}

func TestSchemaAnalyzer_Requirements_SamplingBound(t *testing.T) {
	t.Parallel()

	records := make([]player.Record, 0, 200)
	for i := 0; i < 200; i++ {
		record := player.Record{
			"id":    json.Number(fmt.Sprint(i + 1)),
			"name":  fmt.Sprintf("Player %d", i+1),
			"stats": map[string]any{"goals": json.Number("1")},
		}
		if i == 149 {
			record["shirtSponsor"] = "late field"
			record["stats"] = map[string]any{"goals": json.Number("1"), "saves": json.Number("3")}
		}
		records = append(records, record)
	}

	analyzer := NewSchemaAnalyzer(memory.NewStore(), DefaultSampleSize, logging.NewNop())
	req := analyzer.Requirements(records)

	assert.False(t, req.Set(schema.TablePlayers).Has("shirtsponsor"))
	assert.False(t, req.Set(schema.TableStatistics).Has("saves"))
	assert.True(t, req.Set(schema.TableStatistics).Has("goals"))

	wide := NewSchemaAnalyzer(memory.NewStore(), 500, logging.NewNop())
	assert.True(t, wide.Requirements(records).Set(schema.TablePlayers).Has("shirtsponsor"))
}

func TestSchemaAnalyzer_ExistingColumns_ToleratesFailures(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := schemamock.NewRepository(t)
	repo.On("Columns", mock.Anything, schema.TablePlayers).
		Return(nil, errors.New("relation lookup failed")).
		Once()
	repo.On("Columns", mock.Anything, schema.TableProfiles).
		Return(schema.NewColumnSet("player_id", "name"), nil).
		Once()
	repo.On("Columns", mock.Anything, schema.TableStatistics).
		Return(nil, nil).
		Once()

	existing := NewSchemaAnalyzer(repo, 0, logging.NewNop()).ExistingColumns(ctx)

	require.Len(t, existing, len(schema.AllTables))
	assert.Equal(t, 0, existing[schema.TablePlayers].Len())
	assert.Equal(t, []string{"player_id", "name"}, existing[schema.TableProfiles].Names())
	assert.NotNil(t, existing[schema.TableStatistics])
	assert.Equal(t, 0, existing[schema.TableStatistics].Len())
}

func TestSchemaAnalyzer_Analyze_Missing(t *testing.T) {
	t.Parallel()

	plan := NewSchemaAnalyzer(memory.NewStore(), 0, logging.NewNop()).
		Analyze(context.Background(), []player.Record{sampleRecord()})

	missing := plan.Missing(schema.TableStatistics)
	names := make([]string, 0, len(missing))
	for _, col := range missing {
		names = append(names, col.Name)
	}
	assert.ElementsMatch(t, []string{"goals", "yellow_cards"}, names)
	assert.Empty(t, plan.Missing(schema.Table("coaches")))
}
