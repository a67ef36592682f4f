package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Gunal77/web-hackathon/api/handlers"
	"github.com/Gunal77/web-hackathon/api/scheduler"
	"github.com/Gunal77/web-hackathon/config"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	a := handlers.App{Config: *cfg}
	if err := a.Initialize(); err != nil {
		zap.S().Fatalw("failed to initialize app", "error", err)
	}

	s := scheduler.NewScheduler(a.DB, a.Metrics)
	if err := s.Start(cfg.DigestSchedule); err != nil {
		zap.S().Fatalw("failed to start scheduler", "error", err)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%v", cfg.Port),
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		zap.S().Infow("manu-api is up and running",
			"port", cfg.Port,
			"url", cfg.BaseURL,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		s.Stop()
		zap.S().Fatalw("server error", "error", err)
	case sig := <-shutdown:
		zap.S().Infow("shutdown signal received", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			zap.S().Errorw("graceful shutdown failed", "error", err)
		}
		s.Stop()
		zap.S().Info("server stopped gracefully")
	}
	_ = zap.L().Sync()
}
