package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/riskibarqy/player-ingest/internal/app"
	"github.com/riskibarqy/player-ingest/internal/config"
	"github.com/riskibarqy/player-ingest/internal/observability"
	"github.com/riskibarqy/player-ingest/internal/platform/logging"
	"github.com/riskibarqy/player-ingest/internal/usecase"
)

const (
	exitOK      = 0
	exitFatal   = 1
	exitUsage   = 2
	exitTimeout = 10 * time.Second
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load(args...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		printUsage()
		return exitUsage
	}

	logger := logging.NewJSON(cfg.LogLevel).With(
		"service", cfg.ServiceName,
		"version", cfg.ServiceVersion,
		"env", cfg.AppEnv,
	)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		return exitFatal
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), exitTimeout)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Warn("shutdown uptrace", "error", err)
		}
	}()

	stopProfiling, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		logger.Error("init pyroscope", "error", err)
		return exitFatal
	}
	defer func() {
		if err := stopProfiling(); err != nil {
			logger.Warn("stop pyroscope", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ingestion, err := app.NewIngestion(ctx, cfg, logger)
	if err != nil {
		logger.Error("build ingestion", "error", err)
		return exitFatal
	}
	defer func() {
		if err := ingestion.Close(); err != nil {
			logger.Warn("close database", "error", err)
		}
	}()

	started := time.Now()
	report, err := ingestion.Run(ctx)
	if err != nil {
		logger.Error("ingestion failed", "error", err, "input", cfg.InputPath)
		return exitFatal
	}

	logReport(logger, report, time.Since(started))
	return exitOK
}

func logReport(logger *logging.Logger, report usecase.BatchReport, elapsed time.Duration) {
	for _, result := range report.Reconciled {
		if result.Attempted() == 0 {
			continue
		}
		logger.Info("schema reconciled",
			"table", result.Table.String(),
			"added", result.Added,
			"already_present", result.AlreadyPresent,
			"failed", result.Failed,
		)
	}

	written := make(map[string]int, len(report.Written))
	for table, n := range report.Written {
		written[table.String()] = n
	}
	failed := make(map[string]int, len(report.Failed))
	for table, n := range report.Failed {
		failed[table.String()] = n
	}

	logger.Info("ingestion finished",
		"records", report.Records,
		"processed", report.Processed,
		"skipped", report.Skipped,
		"columns_added", report.ColumnsAdded(),
		"written", written,
		"failed", failed,
		"elapsed", elapsed.String(),
	)
}

func printUsage() {
	name := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "usage: %s [players.json]\n", name)
	fmt.Fprintln(os.Stderr, "environment:")
	fmt.Fprintln(os.Stderr, "  DB_URL              postgres connection url (not needed with INGEST_DRY_RUN=true)")
	fmt.Fprintln(os.Stderr, "  INGEST_INPUT_PATH   input file, overridden by the first argument")
	fmt.Fprintln(os.Stderr, "  INGEST_SAMPLE_SIZE  records examined for schema discovery (default 100)")
	fmt.Fprintln(os.Stderr, "  INGEST_SEASON       season stamped on statistics rows (default 2024-25)")
	fmt.Fprintln(os.Stderr, "  INGEST_DRY_RUN      run against an in-memory store")
}
