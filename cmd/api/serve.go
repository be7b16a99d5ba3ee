package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"job-alerts-backend/config"
	_ "job-alerts-backend/docs" // Important for Swagger
	v1 "job-alerts-backend/internal/delivery/http/v1"
	"job-alerts-backend/internal/matching"
	"job-alerts-backend/internal/repository/memory"
	"job-alerts-backend/internal/usecase"
	"job-alerts-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Port = port
			}
			return serve(cfg)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides PORT)")
	return cmd
}

func serve(cfg *config.Config) error {
	// 1. Setup Logger
	if err := logger.Init(cfg.LogLevel, cfg.LogFormat); err != nil {
		return err
	}
	defer logger.Sync()
	logger.Log.Infow("Starting job alerts backend", "port", cfg.Port, "version", version)

	gin.SetMode(cfg.GinMode)

	// 2. Setup Repositories
	alertRepo := memory.NewAlertRepository()
	matchRepo := memory.NewMatchRepository()

	// 3. Setup Match Source
	source := matching.NewStaticSource(matching.WithBatchSize(cfg.MatchBatchSize))
	if source.BatchSize() != cfg.MatchBatchSize {
		logger.Log.Warnw("MATCH_BATCH_SIZE out of range, clamped", "requested", cfg.MatchBatchSize, "using", source.BatchSize())
	}

	// 4. Setup UseCases
	alertUC := usecase.NewAlertUsecase(alertRepo, matchRepo, source)
	healthUC := usecase.NewHealthUsecase(alertRepo, matchRepo, version)

	// 5. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AlertUC:  alertUC,
		HealthUC: healthUC,
		Config:   cfg,
	})

	// 6. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		logger.Log.Errorw("Listen failed", "error", err)
		return err
	case <-quit:
	}
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Errorw("Server forced to shutdown", "error", err)
		return err
	}

	logger.Log.Info("Server exiting")
	return nil
}
