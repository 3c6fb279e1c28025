package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hoteldomar/reservation-admin/internal/api"
	"github.com/hoteldomar/reservation-admin/internal/infrastructure/config"
	redisinfra "github.com/hoteldomar/reservation-admin/internal/infrastructure/db/redis"
	"github.com/hoteldomar/reservation-admin/internal/infrastructure/gateway"
	"github.com/hoteldomar/reservation-admin/pkg/logger"
)

// @title        Hotel do Mar Reservation Admin API
// @version      1.0
// @description  Admin backoffice for the hotel reservation gateway.
// @BasePath     /
func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(cfg.LogLevel, cfg.Env == "development")

	rdb, err := redisinfra.Connect(ctx, redisinfra.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	gw := gateway.New(cfg.Gateway.BaseURL, cfg.Gateway.Timeout, logger.With("gateway"))

	e := api.NewRouter(gw, rdb, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("gateway", cfg.Gateway.BaseURL).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
