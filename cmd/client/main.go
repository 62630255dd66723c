package main

import (
	"context"
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"restbucks/internal/client"
	"restbucks/internal/pkg/grpcclient"
	"restbucks/internal/pkg/grpcserver"
	"restbucks/pkg/logger"
	"restbucks/pkg/logger/zap_adapter"
)

func main() {
	var (
		baseURL      = flag.String("base-url", "http://localhost:8080", "Root URI of the ordering service")
		scenario     = flag.String("scenario", client.ScenarioProcessNewOrder, "One of: "+strings.Join(client.Scenarios(), ", "))
		pollInterval = flag.Duration("poll-interval", client.DefaultPollInterval, "Delay between order polls")
		timeout      = flag.Duration("timeout", 2*time.Minute, "Overall scenario deadline")
		grpcAddr     = flag.String("grpc-addr", "", "Wait for the gRPC health service at this address first")
		logLevel     = flag.String("log-level", "info", "Log level")
	)
	flag.Parse()

	zapLogger, err := zap_adapter.NewZapAdapter(*logLevel)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	if err := run(ctx, appLogger, *baseURL, *scenario, *pollInterval, *grpcAddr); err != nil {
		appLogger.Error("scenario failed",
			logger.NewField("scenario", *scenario),
			logger.NewField("error", err),
		)
		cancel()
		_ = zapLogger.Sync()
		os.Exit(1)
	}
	appLogger.Info("scenario passed", logger.NewField("scenario", *scenario))
}

func run(ctx context.Context, log logger.Logger, baseURL, scenario string, pollInterval time.Duration, grpcAddr string) error {
	if grpcAddr != "" {
		conn, err := grpcclient.WaitForService(ctx, log, grpcAddr, grpcserver.ServiceName)
		if err != nil {
			return fmt.Errorf("service not ready: %w", err)
		}
		if err := conn.Close(); err != nil {
			log.Warn("failed to close gRPC connection", logger.NewField("error", err))
		}
	}

	c := client.New(baseURL, log.With(logger.NewField("scenario", scenario)), client.WithPollInterval(pollInterval))
	return c.Run(ctx, scenario)
}
