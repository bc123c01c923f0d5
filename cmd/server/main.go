package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gridlight/simonsays/internal/anticheat"
	"github.com/gridlight/simonsays/internal/common/clock"
	"github.com/gridlight/simonsays/internal/config"
	"github.com/gridlight/simonsays/internal/handlers/httpapi"
	ledgerRepo "github.com/gridlight/simonsays/internal/repositories/ledger"
	ledgerService "github.com/gridlight/simonsays/internal/services/ledger"
	"github.com/gridlight/simonsays/internal/services/payout"
	roundService "github.com/gridlight/simonsays/internal/services/round"
)

func main() {
	// A missing .env is fine in production; the environment is already set
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	logger := log.With().Str("component", "server").Logger()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	repo, err := ledgerRepo.NewRedis(&ledgerRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	clk := clock.New()

	ledgerSvc, err := ledgerService.New(&ledgerService.Config{
		OperatorID:        cfg.OperatorID,
		BaseRewardPerStep: cfg.BaseRewardPerStep,
		DailyMaxAttempts:  cfg.DailyMaxAttempts,
		LeaderboardPool:   cfg.LeaderboardPool,
		Repo:              repo,
		Clock:             clk,
		Logger:            log.With().Str("component", "ledger").Logger(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create ledger service")
	}

	payoutSvc, err := payout.New(&payout.Config{
		OperatorID: cfg.OperatorID,
		Ledger:     ledgerSvc,
		Logger:     log.With().Str("component", "payout").Logger(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create payout job")
	}

	roundSvc, err := roundService.New(&roundService.Config{
		OperatorID: cfg.OperatorID,
		Ledger:     ledgerSvc,
		Verifier:   anticheat.New(&anticheat.Config{Enabled: cfg.AntiCheatEnabled, MinMeanIntervalMs: 120}),
		Scoreboard: payoutSvc,
		Clock:      clk,
		Logger:     log.With().Str("component", "rounds").Logger(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create round engine")
	}

	server, err := httpapi.NewServer(&httpapi.Config{
		Rounds: roundSvc,
		Ledger: ledgerSvc,
		Logger: log.With().Str("component", "http").Logger(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create http server")
	}

	scheduler := cron.New()
	_, err = scheduler.AddFunc(cfg.PayoutCron, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if _, err := payoutSvc.Trigger(ctx); err != nil {
			logger.Error().Err(err).Msg("scheduled payout failed")
		}
	})
	if err != nil {
		log.Fatal().Err(err).Str("cron", cfg.PayoutCron).Msg("invalid payout schedule")
	}
	_, err = scheduler.AddFunc("@every "+cfg.SweepInterval.String(), func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if _, err := roundSvc.Sweep(ctx, &roundService.SweepInput{MaxIdle: cfg.SweepMaxIdle}); err != nil {
			logger.Error().Err(err).Msg("round sweep failed")
		}
	})
	if err != nil {
		log.Fatal().Err(err).Msg("invalid sweep schedule")
	}
	scheduler.Start()

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: server.Routes(),
	}

	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("http shutdown failed")
	}

	stopCtx := scheduler.Stop()
	<-stopCtx.Done()

	if err := redisClient.Close(); err != nil {
		logger.Error().Err(err).Msg("redis close failed")
	}

	logger.Info().Msg("server has been shut down")
}
