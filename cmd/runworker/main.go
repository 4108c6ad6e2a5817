package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	gcs "cloud.google.com/go/storage"

	"github.com/docledger/docledger/internal/common"
	"github.com/docledger/docledger/internal/fx"
	"github.com/docledger/docledger/internal/ocr"
	"github.com/docledger/docledger/internal/queue"
	"github.com/docledger/docledger/internal/repository"
	"github.com/docledger/docledger/internal/storage"
)

// runworker drains the extraction queue once and exits, for cron or manual
// runs against the same database the daemon uses.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("database open failed", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, 3*time.Second); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	gcsClient, err := gcs.NewClient(ctx)
	if err != nil {
		logger.Error("object storage client failed", "error", err)
		os.Exit(1)
	}
	defer gcsClient.Close()
	store := storage.NewGCSStore(gcsClient, cfg.Storage.Bucket, logger)

	docs := repository.NewDocumentRepository(entc, logger)
	jobs := repository.NewJobRepository(entc, logger)

	vision := ocr.NewVisionClient(ocr.VisionConfig{
		APIKey:        cfg.Vision.APIKey,
		Bucket:        cfg.Storage.Bucket,
		ScratchPrefix: cfg.Vision.ScratchPrefix,
		PDFMaxPages:   cfg.Vision.PDFMaxPages,
		PollTimeout:   cfg.Vision.PollTimeout,
	}, gcsClient, logger)
	extractor := ocr.NewExtractor(vision, logger)
	rates := fx.NewRates(fx.Config{
		RateURL:      cfg.FX.RateURL,
		FallbackRate: cfg.FX.FallbackRate,
		FetchTimeout: cfg.FX.FetchTimeout,
		TTL:          cfg.FX.TTL,
	}, logger)

	worker := queue.NewWorker(queue.Config{
		BatchLimit:    cfg.Worker.BatchLimit,
		BatchDeadline: cfg.Worker.BatchDeadline,
		StaleRunning:  cfg.Worker.StaleRunning,
	}, jobs, docs, store, extractor, rates, logger)

	n, err := worker.Drain(ctx)
	if err != nil {
		logger.Error("drain failed", "processed", n, "error", err)
		os.Exit(1)
	}
	logger.Info("drain complete", "processed", n)
}
