package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	catalogue "catalogue-service/internal/catalogueService"
	"catalogue-service/internal/config"
	"catalogue-service/internal/repository"
	"catalogue-service/internal/repository/gormstore"
	"catalogue-service/internal/repository/sqlite"
	"catalogue-service/internal/server"
	"catalogue-service/services/catalogue/rpc"
	"catalogue-service/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("failed to load configuration", map[string]any{"error": err.Error()})
	}
	if err := utils.SetLevel(cfg.LogLevel); err != nil {
		utils.Fatal("failed to set log level", map[string]any{"error": err.Error()})
	}
	gin.SetMode(gin.ReleaseMode)

	repo, closeRepo, err := openStore(cfg)
	if err != nil {
		utils.Fatal("failed to open store", map[string]any{"store": cfg.Store, "error": err.Error()})
	}
	defer func() {
		if err := closeRepo(); err != nil {
			utils.Error("failed to close store", map[string]any{"error": err.Error()})
		}
	}()

	catalogueSvc := catalogue.NewCatalogueService(repo)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sweeper := catalogue.NewSweeper(repo, cfg.SweepInterval)
	sweepDone := sweeper.Start(ctx)

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: server.SetupRouter(catalogueSvc, cfg.IdentityHeader),
	}
	grpcServer := rpc.NewGRPCServer(catalogueSvc)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		utils.Fatal("failed to listen for gRPC", map[string]any{"addr": cfg.GRPCAddr, "error": err.Error()})
	}

	errs := make(chan error, 2)
	go func() {
		utils.Info("Starting catalogue REST server", map[string]any{"addr": cfg.HTTPAddr})
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- fmt.Errorf("http server: %w", err)
		}
	}()
	go func() {
		utils.Info("Starting catalogue gRPC server", map[string]any{"addr": cfg.GRPCAddr})
		if err := grpcServer.Serve(lis); err != nil {
			errs <- fmt.Errorf("grpc server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		utils.Info("shutdown signal received", nil)
	case err := <-errs:
		utils.Error("server failed", map[string]any{"error": err.Error()})
	}
	stop()
	// the store is closed on return; let an in-flight sweep finish first
	<-sweepDone

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		utils.Error("http server shutdown failed", map[string]any{"error": err.Error()})
	}
	stopGRPC(shutdownCtx, grpcServer)
	utils.Info("catalogue service stopped", nil)
}

// openStore returns the configured CatalogueDB and a function that releases it
func openStore(cfg *config.Config) (repository.CatalogueDB, func() error, error) {
	switch cfg.Store {
	case config.StoreMemory:
		return repository.NewMemoryRepo(), func() error { return nil }, nil
	case config.StoreSQLite:
		store, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		utils.Info("using sqlite store", map[string]any{"path": cfg.SQLitePath})
		return store, store.Close, nil
	case config.StoreMySQL:
		store, err := gormstore.Open(cfg.MySQLDSN)
		if err != nil {
			return nil, nil, err
		}
		utils.Info("using mysql store", nil)
		return store, store.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}

// stopGRPC drains in-flight calls, forcing a stop once ctx expires
func stopGRPC(ctx context.Context, s interface {
	GracefulStop()
	Stop()
}) {
	done := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		utils.Warn("gRPC graceful stop timed out, forcing stop", nil)
		s.Stop()
	}
}
