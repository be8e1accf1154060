package usecase

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/player-ingest/internal/domain/schema"
	"github.com/riskibarqy/player-ingest/internal/platform/logging"
)

type columnMigrator interface {
	AddColumn(ctx context.Context, table schema.Table, column string, typ schema.ColumnType) error
}

// ReconcileResult summarizes the alterations issued for one table.
type ReconcileResult struct {
	Table          schema.Table
	Added          []string
	AlreadyPresent []string
	Failed         []string
}

func (r ReconcileResult) Attempted() int {
	return len(r.Added) + len(r.AlreadyPresent) + len(r.Failed)
}

type SchemaReconciler struct {
	migrator columnMigrator
	logger   *logging.Logger
}

func NewSchemaReconciler(migrator columnMigrator, logger *logging.Logger) *SchemaReconciler {
	if logger == nil {
		logger = logging.Default()
	}
	return &SchemaReconciler{migrator: migrator, logger: logger}
}

// Reconcile adds every required column of table that existing lacks. The
// column type comes from the column name alone. A column that turns out to
// exist already is tolerated; any other failure skips that column only.
func (r *SchemaReconciler) Reconcile(ctx context.Context, table schema.Table, existing *schema.ColumnSet, required []schema.Column) ReconcileResult {
	ctx, span := startUsecaseSpan(ctx, "usecase.SchemaReconciler.Reconcile")
	defer span.End()

	result := ReconcileResult{Table: table}
	for _, col := range required {
		if existing.Has(col.Name) {
			continue
		}

		typ := schema.ColumnTypeForName(col.Name)
		if col.Inferred != "" && col.Inferred != typ {
			r.logger.DebugContext(ctx, "column type from name differs from sampled value",
				"table", table.String(),
				"column", col.Name,
				"name_type", string(typ),
				"sampled_type", string(col.Inferred),
			)
		}

		err := r.migrator.AddColumn(ctx, table, col.Name, typ)
		switch {
		case err == nil:
			result.Added = append(result.Added, col.Name)
			r.logger.InfoContext(ctx, "column added", "table", table.String(), "column", col.Name, "type", string(typ))
		case crerr.Is(err, schema.ErrColumnExists):
			result.AlreadyPresent = append(result.AlreadyPresent, col.Name)
			r.logger.DebugContext(ctx, "column already exists", "table", table.String(), "column", col.Name)
		default:
			result.Failed = append(result.Failed, col.Name)
			r.logger.WarnContext(ctx, "add column failed", "table", table.String(), "column", col.Name, "error", err)
		}
	}

	return result
}
