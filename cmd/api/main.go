package main

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/dev-isidore/hhplus-tdd/internal/api"
	"github.com/dev-isidore/hhplus-tdd/internal/config"
	"github.com/dev-isidore/hhplus-tdd/internal/lock"
	"github.com/dev-isidore/hhplus-tdd/internal/logger"
	"github.com/dev-isidore/hhplus-tdd/internal/metrics"
	"github.com/dev-isidore/hhplus-tdd/internal/repository/memory"
	"github.com/dev-isidore/hhplus-tdd/internal/services"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos := memory.NewRepositories()
	userSvc := services.NewUserService(repos.Users)
	pointSvc := services.NewPointService(repos.Users, repos.UserPoints, repos.PointHistories, lock.NewRegistry())

	metrics.Init()
	r := api.NewRouter(cfg, userSvc, pointSvc)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
