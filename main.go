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

	"github.com/BlueSkyGuardian/tabibapp/assistant"
	"github.com/BlueSkyGuardian/tabibapp/catalog"
	"github.com/BlueSkyGuardian/tabibapp/config"
	"github.com/BlueSkyGuardian/tabibapp/health"
	"github.com/BlueSkyGuardian/tabibapp/llm"
	"github.com/BlueSkyGuardian/tabibapp/logging"
	"github.com/BlueSkyGuardian/tabibapp/scheduler"
	"github.com/BlueSkyGuardian/tabibapp/search"
	"github.com/BlueSkyGuardian/tabibapp/server"
)

// Model parameters for the consultation assistant.
const (
	assistantMaxTokens   = 2000
	assistantTemperature = 0.7
)

func main() {
	// .env is optional, real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		logging.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.InitLoggerWithRetention("logs", cfg.LogRetentionWeeks)

	store := catalog.NewStore(cfg.MedicinesFile)

	sched := scheduler.NewScheduler(store)
	if err := sched.Start(); err != nil {
		logging.Error("Failed to start scheduler", "error", err)
		os.Exit(1)
	}
	defer sched.Stop()

	provider := llm.NewOpenAIProvider(cfg.OpenAIKey, cfg.OpenAIModel, assistantMaxTokens, assistantTemperature)
	engine := search.NewEngine(store)
	responder := assistant.New(provider, engine)
	checker := health.NewHealthChecker(store, cfg.OpenAIModel)

	srv := server.NewServer(cfg, responder, engine, checker)

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Error("Shutdown failed", "error", err)
		os.Exit(1)
	}
}
