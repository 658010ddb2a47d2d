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

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/seyi-ajadi/invoiceflow/gen/ent"
	invoicespb "github.com/seyi-ajadi/invoiceflow/gen/proto/invoices/v1"
	"github.com/seyi-ajadi/invoiceflow/internal/billing"
	"github.com/seyi-ajadi/invoiceflow/internal/cache"
	"github.com/seyi-ajadi/invoiceflow/internal/common"
	"github.com/seyi-ajadi/invoiceflow/internal/export"
	"github.com/seyi-ajadi/invoiceflow/internal/extract/openai"
	"github.com/seyi-ajadi/invoiceflow/internal/ingest"
	"github.com/seyi-ajadi/invoiceflow/internal/mapping"
	"github.com/seyi-ajadi/invoiceflow/internal/merge"
	repo "github.com/seyi-ajadi/invoiceflow/internal/repository"
	svc "github.com/seyi-ajadi/invoiceflow/internal/server"
	"github.com/seyi-ajadi/invoiceflow/internal/storage"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		entc *ent.Client
		pool *pgxpool.Pool
		err  error
	)
	if repo.IsSQLiteDSN(cfg.Database.DSN) {
		// embedded dev database, no pool and no migrations
		entc, err = repo.OpenSQLite(ctx, repo.SQLitePath(cfg.Database.DSN), logger)
		if err != nil {
			logger.Error("failed to open database", "error", err)
			os.Exit(1)
		}
	} else {
		entc, pool, err = repo.Open(ctx, repo.Config{
			DSN:              cfg.Database.DSN,
			MaxConns:         cfg.Database.MaxConns,
			MinConns:         cfg.Database.MinConns,
			MaxConnLifetime:  cfg.Database.MaxConnLifetime,
			MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
			DialTimeout:      cfg.Database.DialTimeout,
			StatementTimeout: cfg.Database.StatementTimeout,
		}, logger)
		if err != nil {
			logger.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
			logger.Error("failed to ping database", "error", err)
			os.Exit(1)
		}
	}
	defer repo.Close(entc, pool, logger)

	store, err := storage.NewMinioStore(cfg.Storage, logger)
	if err != nil {
		logger.Error("failed to create object store client", "error", err)
		os.Exit(1)
	}
	if err := store.EnsureBucket(ctx); err != nil {
		logger.Error("failed to ensure bucket", "bucket", cfg.Storage.Bucket, "error", err)
		os.Exit(1)
	}

	// Repositories
	profilesRepo := repo.NewProfileRepository(entc, logger)
	mappingsRepo := repo.NewFieldMappingRepository(entc, logger)
	invoicesRepo := repo.NewInvoiceRepository(entc, logger)
	historyRepo := repo.NewExportHistoryRepository(entc, logger)
	subsRepo := repo.NewSubscriptionRepository(entc, logger)
	tiersRepo := repo.NewTierRepository(entc, logger)

	// Services
	mappingSvc := mapping.NewService(mappingsRepo, cache.New(), logger)
	billingSvc := billing.NewService(profilesRepo, subsRepo, tiersRepo, cfg.Billing.ProPriceID, logger)
	exportSvc := export.NewService(invoicesRepo, store, historyRepo, logger)

	extractor := openai.NewClient(openai.Config{
		Model:       cfg.LLM.Model,
		APIKey:      cfg.LLM.APIKey,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)
	pipe := ingest.NewPipeline(store, extractor, mappingSvc, invoicesRepo, logger)

	mergeEngine := merge.NewEngine(
		invoicesRepo,
		store,
		store,
		historyRepo,
		merge.NewPDFMerger(),
		cfg.Merge.FetchTimeout,
		logger,
	)

	// gRPC server
	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()
	invoicespb.RegisterProfilesServiceServer(grpcServer, svc.NewProfilesService(profilesRepo, logger))
	invoicespb.RegisterMappingsServiceServer(grpcServer, svc.NewMappingsService(mappingSvc, logger))
	invoicespb.RegisterInvoicesServiceServer(grpcServer, svc.NewInvoicesService(pipe, invoicesRepo, logger))
	invoicespb.RegisterExportsServiceServer(grpcServer, svc.NewExportsService(mergeEngine, exportSvc, billingSvc, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("invoiceflow listening", "grpc_addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	// Billing webhook listener
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	billing.NewWebhook(billingSvc, logger).Register(router)
	webhookServer := &http.Server{Addr: cfg.Server.WebhookAddr, Handler: router}

	logger.Info("billing webhook listening", "addr", cfg.Server.WebhookAddr)
	go func() {
		if err := webhookServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("webhook serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = webhookServer.Shutdown(shutdownCtx)
	grpcServer.GracefulStop()
}
