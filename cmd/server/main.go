package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"reeyo/internal/api"
	"reeyo/internal/app"
	"reeyo/internal/config"
	"reeyo/internal/telemetry"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize tracing
	shutdownTracing, err := telemetry.Setup(ctx, cfg.Tracing)
	if err != nil {
		log.Fatalf("Failed to set up tracing: %v", err)
	}

	// Initialize stores and services
	dashboard, err := app.New(cfg)
	if err != nil {
		log.Fatalf("Failed to build dashboard: %v", err)
	}
	defer dashboard.Close()

	// A collection that fails to load stays empty and can be retried
	// through its reload endpoint.
	if err := dashboard.LoadAll(ctx); err != nil {
		log.Printf("Initial load incomplete: %v", err)
	}

	// Setup router
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())
	api.NewRouter(dashboard).Setup(engine)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Printf("Starting Reeyo admin server on %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Printf("Tracing shutdown: %v", err)
	}
}
