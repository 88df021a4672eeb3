package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"event-dispatch/internal/common/logging"
	"event-dispatch/internal/config"
	"event-dispatch/internal/events"
	"event-dispatch/internal/events/schedule"
	"event-dispatch/internal/events/webhook"
	"event-dispatch/internal/handlers"
	"event-dispatch/internal/hub"
	"event-dispatch/internal/storage/memory"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	os.Setenv("LOG_LEVEL", cfg.LogLevel)
	logging.InitGlobalLogger()
	defer logging.MustSync()

	store := memory.New()
	eventHub := hub.NewAsyncHub(hub.NewLogHub(), cfg.HubQueueSize)
	defer eventHub.Close()

	registry := events.NewRegistry()
	matchOpt := events.WithMaxParallel(cfg.MatchParallelism)
	registry.Register(webhook.NewDescriptor(store, eventHub, matchOpt))
	registry.Register(schedule.NewDescriptor(store, eventHub, matchOpt))

	router := mux.NewRouter()
	api := router.PathPrefix("/api").Subrouter()
	handlers.NewFlavorHandlers(registry).RegisterRoutes(api)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logging.Info("Flavor introspection API listening",
			logging.String("addr", server.Addr),
			logging.Int("flavors", registry.Count()),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Error("HTTP server failed", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logging.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logging.Error("Shutdown failed", err)
	}
}
