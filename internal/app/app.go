package app

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/player-ingest/external/playerfeed"
	"github.com/riskibarqy/player-ingest/internal/config"
	"github.com/riskibarqy/player-ingest/internal/domain/schema"
	"github.com/riskibarqy/player-ingest/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/player-ingest/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/player-ingest/internal/platform/logging"
	"github.com/riskibarqy/player-ingest/internal/usecase"
)

// Ingestion wires the loader, the schema repository and the batch driver
// for one run.
type Ingestion struct {
	cfg     config.Config
	logger  *logging.Logger
	loader  *playerfeed.Loader
	service *usecase.IngestionService

	db    *sqlx.DB
	store *memory.Store
}

// NewIngestion connects to Postgres, or builds an in-memory store when
// cfg.DryRun is set. A database that cannot be reached is fatal.
func NewIngestion(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Ingestion, error) {
	if logger == nil {
		logger = logging.Default()
	}

	a := &Ingestion{
		cfg:    cfg,
		logger: logger,
		loader: playerfeed.NewLoader(logger.Named("playerfeed")),
	}

	var repo schema.Repository
	if cfg.DryRun {
		a.store = memory.NewStore()
		repo = a.store
		logger.Info("dry run, writing to in-memory store")
	} else {
		db, err := OpenDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		a.db = db
		repo = postgres.NewTableRepository(db)
		logger.Info("postgres connected", "database", dbNameFromURL(cfg.DBURL))
	}

	a.service = usecase.NewIngestionService(repo, usecase.IngestionConfig{
		SampleSize: cfg.SampleSize,
		Season:     cfg.Season,
	}, logger.Named("ingest"))

	return a, nil
}

// Run loads the configured input file and ingests it.
func (a *Ingestion) Run(ctx context.Context) (usecase.BatchReport, error) {
	records, err := a.loader.Load(ctx, a.cfg.InputPath)
	if err != nil {
		return usecase.BatchReport{}, err
	}

	report, err := a.service.Run(ctx, records)
	if err != nil {
		return report, err
	}

	if a.store != nil {
		a.logDryRunState(ctx)
	}
	return report, nil
}

// Store returns the in-memory store of a dry run, nil otherwise.
func (a *Ingestion) Store() *memory.Store {
	return a.store
}

func (a *Ingestion) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *Ingestion) logDryRunState(ctx context.Context) {
	for _, table := range schema.AllTables {
		cols, err := a.store.Columns(ctx, table)
		if err != nil {
			continue
		}
		a.logger.InfoContext(ctx, "dry run table state",
			"table", table.String(),
			"columns", cols.Names(),
			"rows", len(a.store.Rows(table)),
		)
	}
}
