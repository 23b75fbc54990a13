package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/matt-dz/foodgram/internal/api"
	"github.com/matt-dz/foodgram/internal/api/middleware"
	"github.com/matt-dz/foodgram/internal/config"
	"github.com/matt-dz/foodgram/internal/env"
	"github.com/matt-dz/foodgram/internal/http"
	"github.com/matt-dz/foodgram/internal/log"
	"github.com/matt-dz/foodgram/internal/setup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	const setupTime = 30 * time.Second
	setupCtx, cancel := context.WithTimeout(ctx, setupTime)
	defer cancel()

	logger := log.New(os.Stderr, slog.LevelInfo)

	conf, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	level, err := log.ParseLevel(conf.LogLevel)
	if err != nil {
		logger.Error("failed to parse log level", slog.Any("error", err))
		os.Exit(1)
	}
	logger = log.New(os.Stderr, level)

	http := http.New(http.DefaultConfig(logger))

	fs, err := setup.FileStore(setupCtx, conf, http, logger)
	if err != nil {
		logger.Error("failed to setup file store", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := setup.Database(setupCtx, conf)
	if err != nil {
		logger.Error("failed to setup database", slog.Any("error", err))
		os.Exit(1)
	}

	env := &env.Env{
		Logger:    logger,
		FileStore: fs,
		Database:  db,
		Config:    conf,
	}

	logger.DebugContext(ctx, "setting up admin")
	if err := setup.Admin(setupCtx, env); err != nil {
		logger.Error("failed to setup admin", slog.Any("error", err))
		os.Exit(1)
	}

	limiter := middleware.NewRateLimiter(conf.RateLimit.LoginRequests, conf.RateLimit.LoginWindow)
	go limiter.Run(ctx)

	if err := api.Start(ctx, env, limiter); err != nil {
		env.Logger.Error("API Failed", slog.Any("error", err))
		os.Exit(1)
	}
}
