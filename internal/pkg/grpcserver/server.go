package grpcserver

import (
	"fmt"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"restbucks/pkg/logger"
)

// ServiceName is the health service key for the ordering API; the empty key reports the
// process as a whole.
const ServiceName = "restbucks.Orders"

// Server exposes grpc.health.v1 so orchestrators can probe the service without going
// through the HTTP rate limiter.
type Server struct {
	log    logger.Logger
	server *grpc.Server
	health *health.Server
}

func New(log logger.Logger) *Server {
	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	server := grpc.NewServer()
	healthpb.RegisterHealthServer(server, healthServer)
	reflection.Register(server)

	return &Server{
		log:    log.With(logger.NewField("component", "grpc-server")),
		server: server,
		health: healthServer,
	}
}

// ListenAndServe blocks until Stop is called.
func (s *Server) ListenAndServe(port string) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%s", port))
	if err != nil {
		return fmt.Errorf("listen grpc: %w", err)
	}
	return s.Serve(lis)
}

func (s *Server) Serve(lis net.Listener) error {
	s.log.Info("grpc health server starting", logger.NewField("addr", lis.Addr().String()))
	if err := s.server.Serve(lis); err != nil {
		return fmt.Errorf("serve grpc: %w", err)
	}
	return nil
}

// Shutdown flips every service to NOT_SERVING; probes see it during the readiness drain.
func (s *Server) Shutdown() {
	s.health.Shutdown()
}

func (s *Server) Stop() {
	s.server.GracefulStop()
	s.log.Info("grpc health server stopped")
}
