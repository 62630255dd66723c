package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "restbucks/internal/app"
	"restbucks/internal/handlers/rest/drink_get"
	"restbucks/internal/handlers/rest/drinks_by_name_get"
	"restbucks/internal/handlers/rest/drinks_get"
	"restbucks/internal/handlers/rest/healthcheck_head"
	"restbucks/internal/handlers/rest/order_delete"
	"restbucks/internal/handlers/rest/order_get"
	"restbucks/internal/handlers/rest/order_patch"
	"restbucks/internal/handlers/rest/orders_get"
	"restbucks/internal/handlers/rest/orders_post"
	"restbucks/internal/handlers/rest/payment_put"
	"restbucks/internal/handlers/rest/ping_get"
	"restbucks/internal/handlers/rest/receipt_delete"
	"restbucks/internal/handlers/rest/receipt_get"
	"restbucks/internal/handlers/rest/root_get"
	"restbucks/internal/pkg/config"
	"restbucks/internal/pkg/dotenv"
	"restbucks/internal/pkg/grpcserver"
	"restbucks/internal/pkg/kafka"
	metrics_system "restbucks/internal/pkg/metrics"
	"restbucks/internal/pkg/middlewares/graceful_shutdown"
	"restbucks/internal/pkg/middlewares/metrics"
	"restbucks/internal/pkg/middlewares/rate_limiter"
	"restbucks/internal/pkg/middlewares/timeout"
	"restbucks/internal/pkg/postgres"
	"restbucks/internal/repository/memory"
	paymentService "restbucks/internal/service/payment"
	"restbucks/pkg/logger"
	"restbucks/pkg/logger/zap_adapter"
	"restbucks/pkg/token_bucket"
)

func main() {
	if err := dotenv.Load(); err != nil {
		stdlog.Fatalf("failed to load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(cfg.Logger.Level)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting restbucks application",
		logger.NewField("storage", cfg.Storage.Driver),
		logger.NewField("kafka", cfg.Kafka.Enabled),
	)

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // shutdown contexts derive from context.Background on purpose
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	publisher, closePublisher, err := newPublisher(ctx, log, cfg)
	if err != nil {
		return fmt.Errorf("event publisher: %w", err)
	}
	defer closePublisher()

	// workersCtx outlives the signal so in-flight preparation runs finish before Stop.
	workersCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	var businessApp *application.Application
	if cfg.UsesPostgres() {
		pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
		if err != nil {
			return fmt.Errorf("database: %w", err)
		}
		defer pool.Close()

		if err := postgres.Migrate(ctx, log, pool); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}

		businessApp, err = application.InitializeApplication(workersCtx, log, pool, pgxv5.DefaultCtxGetter, publisher, cfg)
		if err != nil {
			return fmt.Errorf("business logic: %w", err)
		}
	} else {
		store := memory.NewSeededStore(time.Now().UTC())
		businessApp, err = application.InitializeInMemoryApplication(workersCtx, log, store, publisher, cfg)
		if err != nil {
			return fmt.Errorf("business logic: %w", err)
		}
	}
	defer businessApp.BackgroundWorkers.Stop()

	metrics_system.StartSystemMetricsCollector(ctx, metrics_system.DefaultCollectInterval)

	// ongoingCtx is the BaseContext of every connection and must survive SIGTERM; it is
	// cancelled only after server.Shutdown so in-flight requests complete.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	var grpcServer *grpcserver.Server
	var grpcServerErr chan error
	if cfg.GRPC.Port != "" {
		grpcServer = grpcserver.New(log)
		grpcServerErr = make(chan error, 1)
		go func() {
			defer close(grpcServerErr)
			if err := grpcServer.ListenAndServe(cfg.GRPC.Port); err != nil {
				grpcServerErr <- err
			}
		}()
	}

	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				pprofServerErr <- err
			}
		}()
	}

	// a nil channel blocks forever, so disabled servers never win the select
	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-grpcServerErr:
		return fmt.Errorf("grpc server: %w", err)
	case err := <-pprofServerErr:
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)
	if grpcServer != nil {
		grpcServer.Shutdown()
	}

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx is independent of ctx, which is already cancelled here.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}
	if grpcServer != nil {
		grpcServer.Stop()
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

// newPublisher returns the Kafka publisher when KAFKA_ENABLED, a logging one otherwise.
func newPublisher(ctx context.Context, log logger.Logger, cfg *config.Config) (paymentService.EventPublisher, func(), error) {
	if !cfg.Kafka.Enabled {
		return kafka.NewLogPublisher(log), func() {}, nil
	}

	publisher, err := kafka.NewOrderPaidPublisher(ctx, log, &cfg.Kafka)
	if err != nil {
		return nil, nil, err
	}
	return publisher, func() {
		if err := publisher.Close(); err != nil {
			log.Error("failed to close kafka producer", logger.NewField("error", err))
		}
	}, nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	router.Handle("/", root_get.New(log)).Methods("GET")

	// /drinks/by-name has to win over /drinks/{id}
	router.Handle("/drinks/by-name", drinks_by_name_get.New(log, app.ServiceDrink)).Methods("GET")
	router.Handle("/drinks/{id}", drink_get.New(log, app.ServiceDrink)).Methods("GET")
	router.Handle("/drinks", drinks_get.New(log, app.ServiceDrink)).Methods("GET")

	router.Handle("/orders", orders_get.New(log, app.ServiceOrder)).Methods("GET")
	router.Handle("/orders", orders_post.New(log, app.ServiceOrder)).Methods("POST")
	router.Handle("/orders/{id}", order_get.New(log, app.ServiceOrder)).Methods("GET")
	router.Handle("/orders/{id}", order_patch.New(log, app.ServiceOrder)).Methods("PATCH")
	router.Handle("/orders/{id}", order_delete.New(log, app.ServiceOrder)).Methods("DELETE")

	router.Handle("/orders/{id}/payment", payment_put.New(log, app.ServicePayment)).Methods("PUT")
	router.Handle("/orders/{id}/receipt", receipt_get.New(log, app.ServicePayment)).Methods("GET")
	router.Handle("/orders/{id}/receipt", receipt_delete.New(log, app.ServicePayment)).Methods("DELETE")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
