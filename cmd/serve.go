package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

const shutdownTimeout = 10 * time.Second

// Serve runs the service until ctx is cancelled or SIGINT/SIGTERM arrives.
func Serve(ctx context.Context, cfg Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sqlDB, gormDB, err := OpenDatabase(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()

	schemaVersion, err := Migrate(ctx, sqlDB)
	if err != nil {
		return err
	}
	logger.InfoContext(ctx, "Database ready", "schema_version", schemaVersion)

	app, err := NewCompositionRoot(cfg, gormDB, logger)
	if err != nil {
		return fmt.Errorf("building application: %w", err)
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			logger.WarnContext(context.Background(), "Failed to close adapters", "error", closeErr)
		}
	}()

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	router, err := app.CreateHTTPRouter()
	if err != nil {
		return fmt.Errorf("building http router: %w", err)
	}

	errCh := make(chan error, 2)

	// The gRPC listener is bound first so that a bind failure returns before
	// the HTTP server is running.
	var grpcServer *grpc.Server
	if cfg.GRPCPort != "" {
		grpcServer, err = startHealthServer(ctx, cfg.GRPCPort, logger, errCh)
		if err != nil {
			return err
		}
	}

	go func() {
		addr := fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort)
		logger.InfoContext(ctx, "HTTP server listening", "addr", addr)
		if startErr := router.Start(addr); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", startErr)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutting down")
	case err = <-errCh:
		logger.Error("Server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if grpcServer != nil {
		grpcServer.GracefulStop()
	}
	if shutdownErr := router.Shutdown(shutdownCtx); shutdownErr != nil {
		logger.Warn("HTTP shutdown failed", "error", shutdownErr)
	}

	return err
}

func startHealthServer(ctx context.Context, port string, logger *slog.Logger, errCh chan<- error) (*grpc.Server, error) {
	lis, err := net.Listen("tcp", fmt.Sprintf("0.0.0.0:%s", port))
	if err != nil {
		return nil, fmt.Errorf("grpc listen: %w", err)
	}

	server := grpc.NewServer()
	healthServer := health.NewServer()
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	grpc_health_v1.RegisterHealthServer(server, healthServer)

	go func() {
		logger.InfoContext(ctx, "gRPC health server listening", "addr", lis.Addr().String())
		if serveErr := server.Serve(lis); serveErr != nil && !errors.Is(serveErr, grpc.ErrServerStopped) {
			errCh <- fmt.Errorf("grpc server: %w", serveErr)
		}
	}()

	return server, nil
}
