package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopgrid/admin-api/internal/api"
	"github.com/shopgrid/admin-api/internal/core/service"
	"github.com/shopgrid/admin-api/internal/infrastructure/config"
	sweeper "github.com/shopgrid/admin-api/internal/infrastructure/cron"
	mongodb "github.com/shopgrid/admin-api/internal/infrastructure/db/mongo"
	redisdb "github.com/shopgrid/admin-api/internal/infrastructure/db/redis"
	"github.com/shopgrid/admin-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	couponService := service.NewCouponService(mongodb.NewCouponRepository(db), log)

	e := api.NewRouter(cfg, db, rdb, couponService, log)

	sweep := sweeper.NewSweeper(couponService, log)
	if err := sweep.Start(cfg.CouponSweepSpec); err != nil {
		log.Fatal().Err(err).Str("spec", cfg.CouponSweepSpec).Msg("coupon sweeper failed to start")
	}
	defer sweep.Stop()

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
