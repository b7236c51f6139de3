package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/adewale-s/po-intake/internal/attach"
	"github.com/adewale-s/po-intake/internal/common"
	"github.com/adewale-s/po-intake/internal/extract"
	"github.com/adewale-s/po-intake/internal/mailsrc"
	"github.com/adewale-s/po-intake/internal/ner"
	"github.com/adewale-s/po-intake/internal/pipeline"
	"github.com/adewale-s/po-intake/internal/repository"
)

func main() {
	// Logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	log := logger.Sugar()

	// Env
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	// Context with signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// DB
	db, cleanup, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, nil)
	if err != nil {
		log.Fatalf("opening database: %v", err)
	}
	defer cleanup()

	// Healthcheck DB on startup
	if err := repository.HealthCheck(ctx, db, 3*time.Second, nil); err != nil {
		log.Fatalf("DB health failed: %v", err)
	}
	log.Infow("DB health OK")

	if err := repository.Migrate(ctx, db); err != nil {
		log.Fatalf("migrating: %v", err)
	}

	// Wiring
	orders := repository.NewOrderRepository(db, nil)
	extractor := extract.New(ner.NewProseRecognizer(), cfg.Extract.MinNameTokens, nil)
	att := attach.NewExtractor(cfg.Extract.TesseractBin, nil)
	source := mailsrc.NewDirSource(cfg.Scan.SourceDir, att, nil)
	pipe := pipeline.New(source, orders, extractor, nil)
	sched := pipeline.NewScheduler(pipe, cfg.Scan.Interval, nil)

	if err := sched.Start(ctx); err != nil {
		log.Fatalf("starting scan loop: %v", err)
	}
	defer sched.Stop()

	// Metrics endpoint
	metricsSrv := &http.Server{Addr: cfg.Server.MetricsAddr, Handler: promhttp.Handler()}
	go func() {
		log.Infof("metrics serving on %s", cfg.Server.MetricsAddr)
		if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("metrics serve: %v", err)
		}
	}()

	// gRPC server
	grpcServer := grpc.NewServer()
	// Health service
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	// Reflection for grpcurl
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		log.Fatalf("listen: %v", err)
	}
	log.Infof("gRPC serving on %s", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("grpc serve: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	grpcServer.GracefulStop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = metricsSrv.Shutdown(shutdownCtx)
	fmt.Println("stopped.")
}
