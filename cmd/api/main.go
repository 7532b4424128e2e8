package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"daily-planner/config"
	_ "daily-planner/docs" // Swagger docs
	"daily-planner/internal/assistant"
	"daily-planner/internal/httpserver"
	"daily-planner/internal/planner"
	scheduleRepo "daily-planner/internal/schedule/repository/sqlite"
	"daily-planner/pkg/llmprovider"
	"daily-planner/pkg/log"
)

// @title       Daily Planner API
// @description Daily task scheduler with an assistant that drafts plans, comments on progress and chats.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Daily Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. State store
	db, err := scheduleRepo.Open(ctx, cfg.Storage.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open state store: ", err)
		return
	}
	defer db.Close()
	logger.Infof(ctx, "State store: %s", cfg.Storage.Path)

	// 4. LLM providers (optional; the assistant falls back without them)
	if err := cfg.LLM.Validate(); err != nil {
		logger.Warnf(ctx, "LLM config: %v", err)
	}
	var gen assistant.Generator
	providers, err := llmprovider.InitializeProviders(ctx, cfg.LLM, logger)
	if err != nil {
		logger.Warnf(ctx, "No LLM provider available, running on fallbacks only: %v", err)
	} else {
		manager := llmprovider.NewManager(providers, llmprovider.Config{
			FallbackEnabled: cfg.LLM.FallbackEnabled,
			RetryAttempts:   cfg.LLM.RetryAttempts,
			RetryDelay:      cfg.LLM.RetryDelay,
			MaxTotalTimeout: cfg.LLM.MaxTotalTimeout,
		}, logger)
		logger.Infof(ctx, "LLM providers: %v", manager.Providers())
		gen = manager
	}

	// 5. Assistant
	asst := assistant.New(gen, logger, cfg.LLM.RequestTimeout)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		DB:              db,
		Assistant:       asst,
		Policy: planner.Policy{
			BreakInterval: cfg.Schedule.BreakInterval,
			BreakDuration: cfg.Schedule.BreakDuration,
		},
		StreamInterval:  cfg.Stream.Interval,
		RateLimitPerMin: cfg.RateLimit.PerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
