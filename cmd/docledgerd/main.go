package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	docledgerpb "github.com/docledger/docledger/gen/docledger/v1"

	"github.com/docledger/docledger/internal/common"
	"github.com/docledger/docledger/internal/fx"
	"github.com/docledger/docledger/internal/ocr"
	"github.com/docledger/docledger/internal/queue"
	"github.com/docledger/docledger/internal/repository"
	"github.com/docledger/docledger/internal/server"
	"github.com/docledger/docledger/internal/storage"
	"github.com/docledger/docledger/internal/webhook"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

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
	logger.Info("database health ok")

	gcsClient, err := gcs.NewClient(ctx)
	if err != nil {
		logger.Error("object storage client failed", "error", err)
		os.Exit(1)
	}
	defer gcsClient.Close()
	store := storage.NewGCSStore(gcsClient, cfg.Storage.Bucket, logger)

	// Repositories
	docs := repository.NewDocumentRepository(entc, logger)
	jobs := repository.NewJobRepository(entc, logger)
	users := repository.NewUserRepository(entc, logger)
	cats := repository.NewCategoryRepository(entc, logger)
	txs := repository.NewTransactionRepository(entc, logger)

	// Extraction pipeline
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
		TickInterval:  cfg.Worker.TickInterval,
		BatchLimit:    cfg.Worker.BatchLimit,
		BatchDeadline: cfg.Worker.BatchDeadline,
		StaleRunning:  cfg.Worker.StaleRunning,
	}, jobs, docs, store, extractor, rates, logger)
	go worker.Run(ctx)

	// gRPC server
	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	svc := server.NewDocumentsService(docs, jobs, store, worker, logger)
	docledgerpb.RegisterDocumentsServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("grpc listen failed", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	go func() {
		logger.Info("grpc serving", "addr", cfg.Server.GRPCAddr)
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	// Webhook HTTP server
	router := webhook.NewRouter(users, docs, jobs, cats, txs, store, &webhook.TwilioFetcher{
		AccountSID: cfg.Twilio.AccountSID,
		AuthToken:  cfg.Twilio.AuthToken,
	}, logger)
	httpServer := &http.Server{
		Addr:              cfg.Server.WebhookAddr,
		Handler:           router.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("webhook serving", "addr", cfg.Server.WebhookAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("webhook serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("webhook shutdown failed", "error", err)
	}
	grpcServer.GracefulStop()
	logger.Info("stopped")
}
