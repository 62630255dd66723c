package grpcclient

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"restbucks/pkg/logger"
	"restbucks/pkg/retrier"
	"restbucks/pkg/retrier/backoff_adapter"
)

const (
	KeepaliveTime                = 5 * time.Minute
	KeepaliveTimeout             = 3 * time.Second
	KeepalivePermitWithoutStream = false

	initialInterval = 500 * time.Millisecond
)

// WaitForService dials target and blocks until its health service reports SERVING for
// service, retrying with backoff. The caller owns the returned connection.
func WaitForService(ctx context.Context, log logger.Logger, target, service string) (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(
		target,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                KeepaliveTime,
			Timeout:             KeepaliveTimeout,
			PermitWithoutStream: KeepalivePermitWithoutStream,
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC client: %w", err)
	}

	grpcLog := log.With(
		logger.NewField("component", "grpc-client"),
		logger.NewField("target", target),
	)

	err = pingHealth(ctx, grpcLog, conn, service)
	if err != nil {
		connCloseErr := conn.Close()
		if connCloseErr != nil {
			return nil, fmt.Errorf("gRPC connection: %w (failed to close: %v)", err, connCloseErr)
		}
		return nil, fmt.Errorf("gRPC connection: %w", err)
	}

	return conn, nil
}

func pingHealth(ctx context.Context, log logger.Logger, conn *grpc.ClientConn, service string) error {
	client := healthpb.NewHealthClient(conn)

	policy := retrier.ConnectConfig(initialInterval)
	policy.OnRetry = func(err error, wait time.Duration) {
		log.With(
			logger.NewField("error", err),
			logger.NewField("retry_in", wait.String()),
		).Warn("preparation service not ready")
	}
	r := backoff_adapter.New(policy)

	var attempt uint64
	err := r.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		log.With(
			logger.NewField("attempt", attempt),
		).Info("attempting gRPC health check")

		resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: service})
		if err != nil {
			return err
		}
		if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
			return fmt.Errorf("service %q is %s", service, resp.GetStatus())
		}
		return nil
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("gRPC health check failed after retries")
		return fmt.Errorf("failed to establish gRPC connection: %w", err)
	}

	log.With(
		logger.NewField("attempts", attempt),
	).Info("gRPC service is serving")
	return nil
}
