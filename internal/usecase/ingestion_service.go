package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/player-ingest/internal/domain/player"
	"github.com/riskibarqy/player-ingest/internal/domain/schema"
	"github.com/riskibarqy/player-ingest/internal/platform/logging"
)

type IngestionConfig struct {
	SampleSize int
	Season     string
}

// BatchReport summarizes one ingestion run.
type BatchReport struct {
	Records    int
	Processed  int
	Skipped    int
	Written    map[schema.Table]int
	Failed     map[schema.Table]int
	Reconciled []ReconcileResult
}

func newBatchReport(records int) BatchReport {
	return BatchReport{
		Records: records,
		Written: make(map[schema.Table]int, len(schema.AllTables)),
		Failed:  make(map[schema.Table]int, len(schema.AllTables)),
	}
}

func (r BatchReport) ColumnsAdded() int {
	total := 0
	for _, item := range r.Reconciled {
		total += len(item.Added)
	}
	return total
}

func (r BatchReport) FailedWrites() int {
	total := 0
	for _, n := range r.Failed {
		total += n
	}
	return total
}

// IngestionService drives one batch: schema discovery, additive migrations,
// then one record at a time mapped and upserted into every table.
type IngestionService struct {
	repo       schema.Repository
	analyzer   *SchemaAnalyzer
	reconciler *SchemaReconciler
	mapper     *RecordMapper
	logger     *logging.Logger
}

func NewIngestionService(repo schema.Repository, cfg IngestionConfig, logger *logging.Logger) *IngestionService {
	if logger == nil {
		logger = logging.Default()
	}
	return &IngestionService{
		repo:       repo,
		analyzer:   NewSchemaAnalyzer(repo, cfg.SampleSize, logger),
		reconciler: NewSchemaReconciler(repo, logger),
		mapper:     NewRecordMapper(cfg.Season),
		logger:     logger,
	}
}

// Run processes records in order. Per-column and per-record failures are
// logged and counted; only context cancellation stops the run early.
func (s *IngestionService) Run(ctx context.Context, records []player.Record) (BatchReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.Run")
	defer span.End()

	report := newBatchReport(len(records))
	if len(records) == 0 {
		s.logger.WarnContext(ctx, "empty batch, nothing to ingest")
		return report, nil
	}

	plan := s.analyzer.Analyze(ctx, records)
	for _, table := range schema.AllTables {
		result := s.reconciler.Reconcile(ctx, table, plan.Existing[table], plan.Required.Columns(table))
		report.Reconciled = append(report.Reconciled, result)
	}

	live := plan.Existing
	if report.ColumnsAdded() > 0 || anyAlreadyPresent(report.Reconciled) {
		live = s.analyzer.ExistingColumns(ctx)
	}

	for idx, record := range records {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("ingestion interrupted at record %d: %w", idx, err)
		}

		if record.ID() == "" {
			report.Skipped++
			s.logger.WarnContext(ctx, "skip record without id", "index", idx, "player", record.Name())
			continue
		}

		mapped, err := s.mapper.Map(record)
		if err != nil {
			report.Skipped++
			s.logger.WarnContext(ctx, "skip unmappable record", "index", idx, "player", record.Name(), "error", err)
			continue
		}

		for _, table := range schema.AllTables {
			if err := s.write(ctx, table, mapped.For(table), live[table]); err != nil {
				report.Failed[table]++
				s.logger.ErrorContext(ctx, "write record failed",
					"table", table.String(),
					"player", record.Name(),
					"error", err,
				)
				continue
			}
			report.Written[table]++
		}
		report.Processed++
	}

	return report, nil
}

// write upserts the columns of fields that exist in the live schema. Fields
// for columns that were never created are dropped, not treated as failures.
func (s *IngestionService) write(ctx context.Context, table schema.Table, fields *schema.FieldMap, live *schema.ColumnSet) error {
	if fields.Len() == 0 {
		return nil
	}

	if live.Len() > 0 {
		kept, dropped := fields.Filter(live.Has)
		if len(dropped) > 0 {
			s.logger.DebugContext(ctx, "dropping fields without a column", "table", table.String(), "columns", dropped)
		}
		fields = kept
	}
	if fields.Len() == 0 {
		return nil
	}

	if err := s.repo.Upsert(ctx, table, fields); err != nil {
		return fmt.Errorf("upsert %s: %w", table, err)
	}
	return nil
}

func anyAlreadyPresent(results []ReconcileResult) bool {
	for _, item := range results {
		if len(item.AlreadyPresent) > 0 {
			return true
		}
	}
	return false
}
