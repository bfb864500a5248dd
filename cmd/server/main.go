// Package main starts the console API server and wires dependencies.
package main

// File: cmd/server/main.go
// Purpose: Process entrypoint for the route-planning console API.
// Key responsibilities:
// - Load config from environment.
// - Connect the optional MySQL audit store and RabbitMQ event stream.
// - Register HTTP routes and start the server.
// Key entrypoints: main()

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpx "rpo-console-api/internal/http"

	"rpo-console-api/internal/config"
	"rpo-console-api/internal/db"
	"rpo-console-api/internal/eventlog"
	"rpo-console-api/internal/handlers"
	"rpo-console-api/internal/mq"
	"rpo-console-api/internal/services"
	"rpo-console-api/internal/webhook"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	sessionLog := eventlog.New(logger)

	var store *db.Store
	if cfg.AuditEnabled() {
		store, err = db.New(cfg.DSN())
		if err != nil {
			log.Fatalf("connect db: %v", err)
		}
		defer store.Close()
	}

	var publisher *mq.Publisher
	if cfg.EventsEnabled() {
		publisher, err = mq.NewPublisher(cfg.RabbitURL(), cfg.ExchangeName)
		if err != nil {
			log.Fatalf("connect rabbitmq: %v", err)
		}
		defer publisher.Close()
	}

	client := webhook.NewClient(cfg)
	analysis := services.NewAnalysisService(client, sessionLog, store, publisher)
	mappings := services.NewMappingService(client, sessionLog, store, publisher)
	h := handlers.New(analysis, mappings, sessionLog, store)

	router := httpx.NewRouter(h.Register, logger)
	server := &http.Server{
		Addr:        ":" + intToString(cfg.Port),
		Handler:     router,
		ReadTimeout: 10 * time.Second,
		// Responses can only finish after the slowest upstream fetch.
		WriteTimeout: cfg.FetchTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("console-api listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownCh

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func intToString(v int) string {
	return fmt.Sprintf("%d", v)
}
