package usecase

import (
	"context"

	"github.com/riskibarqy/player-ingest/internal/domain/player"
	"github.com/riskibarqy/player-ingest/internal/domain/schema"
	"github.com/riskibarqy/player-ingest/internal/platform/logging"
)

// DefaultSampleSize is how many leading records schema discovery examines.
const DefaultSampleSize = 100

type columnInspector interface {
	Columns(ctx context.Context, table schema.Table) (*schema.ColumnSet, error)
}

// SchemaPlan pairs the live columns with the columns the batch requires.
type SchemaPlan struct {
	Existing map[schema.Table]*schema.ColumnSet
	Required *schema.Requirements
}

// Missing lists required columns of table that do not exist yet.
func (p SchemaPlan) Missing(table schema.Table) []schema.Column {
	return p.Required.Missing(table, p.Existing[table])
}

type SchemaAnalyzer struct {
	inspector  columnInspector
	sampleSize int
	logger     *logging.Logger
}

func NewSchemaAnalyzer(inspector columnInspector, sampleSize int, logger *logging.Logger) *SchemaAnalyzer {
	if sampleSize <= 0 {
		sampleSize = DefaultSampleSize
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &SchemaAnalyzer{
		inspector:  inspector,
		sampleSize: sampleSize,
		logger:     logger,
	}
}

func (a *SchemaAnalyzer) Analyze(ctx context.Context, records []player.Record) SchemaPlan {
	ctx, span := startUsecaseSpan(ctx, "usecase.SchemaAnalyzer.Analyze")
	defer span.End()

	return SchemaPlan{
		Existing: a.ExistingColumns(ctx),
		Required: a.Requirements(records),
	}
}

// ExistingColumns reads the live columns of every table. A failed read is
// logged and treated like a missing table.
func (a *SchemaAnalyzer) ExistingColumns(ctx context.Context) map[schema.Table]*schema.ColumnSet {
	out := make(map[schema.Table]*schema.ColumnSet, len(schema.AllTables))
	for _, table := range schema.AllTables {
		cols, err := a.inspector.Columns(ctx, table)
		if err != nil {
			a.logger.WarnContext(ctx, "inspect table columns failed", "table", table.String(), "error", err)
			cols = schema.NewColumnSet()
		}
		if cols == nil {
			cols = schema.NewColumnSet()
		}
		out[table] = cols
	}
	return out
}

// Requirements walks the sampled prefix of records and accumulates the
// required columns per table, starting from each table's base columns.
func (a *SchemaAnalyzer) Requirements(records []player.Record) *schema.Requirements {
	req := schema.NewRequirements()

	limit := min(len(records), a.sampleSize)
	for _, record := range records[:limit] {
		collectRecordColumns(req, record)
	}

	return req
}

func collectRecordColumns(req *schema.Requirements, record player.Record) {
	for _, key := range record.Keys() {
		req.Add(schema.ClassifyField(key).Table(), schema.SanitizeColumnName(key), record[key])
	}

	if stats, ok := record.Nested(player.KeyStats); ok {
		for _, key := range player.SortedKeys(stats) {
			req.Add(schema.TableStatistics, schema.SanitizeColumnName(key), stats[key])
		}
	}

	if attributes, ok := record.Nested(player.KeyAttributes); ok {
		for _, key := range player.SortedKeys(attributes) {
			req.Add(schema.TableProfiles, schema.SanitizeColumnName(key), attributes[key])
		}
	}
}
