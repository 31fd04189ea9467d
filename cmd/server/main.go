package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vitaforge/internal/api/routes"
	"vitaforge/internal/config"
	"vitaforge/internal/llm"
	"vitaforge/internal/logging"
	"vitaforge/internal/resume"
	"vitaforge/internal/store"

	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logging
	if err := logging.Initialize(cfg.Logging); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	logger := logging.GetGlobalLogger()
	logger.Info("Starting Vitaforge Resume Engine")

	ctx := context.Background()

	// Settings store: Redis when configured, a local state file otherwise
	kv := openStore(ctx, cfg)
	defer kv.Close()

	// Build providers from configured credentials
	factory := llm.NewFactory(cfg)
	providers, err := factory.CreateProviders(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize AI providers", map[string]interface{}{"error": err.Error()})
	}

	registry, err := llm.NewRegistry(providers, kv, cfg.LLM.DefaultProvider)
	if err != nil {
		logger.Fatal("Failed to build provider registry", map[string]interface{}{"error": err.Error()})
	}

	dispatcher := llm.NewDispatcher(registry, cfg.LLM.RatePerMinute, cfg.LLM.Timeout)
	svc := resume.NewService(registry, dispatcher, llm.DefaultRetryPolicy())

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Setup routes
	routes.SetupRoutes(e, cfg, registry, svc, kv)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", map[string]interface{}{"error": err.Error()})
		}

		if err := kv.Close(); err != nil {
			logger.Error("Error closing settings store", map[string]interface{}{"error": err.Error()})
		}

		logger.Info("Server shutdown complete")
		logging.Shutdown()
	}()

	// Start server
	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", map[string]interface{}{"address": address})

	if err := e.Start(address); err != nil {
		logger.Fatal("Server failed to start", map[string]interface{}{"error": err.Error()})
	}
}

// openStore picks the persistence backend for the provider selection.
// Redis outages at startup fall back to the state file so the service
// still comes up.
func openStore(ctx context.Context, cfg *config.Config) store.KV {
	logger := logging.GetGlobalLogger()

	if cfg.Redis.URL != "" {
		kv, err := store.NewRedisStore(ctx, cfg.Redis.URL, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.Timeout)
		if err == nil {
			logger.Info("Using Redis settings store", map[string]interface{}{"url": cfg.Redis.URL})
			return kv
		}
		logger.Warn("Redis unavailable, falling back to file store", map[string]interface{}{
			"error": err.Error(),
		})
	}

	kv, err := store.NewFileStore(cfg.Storage.StatePath)
	if err != nil {
		logger.Warn("File store unavailable, settings will not persist", map[string]interface{}{
			"path":  cfg.Storage.StatePath,
			"error": err.Error(),
		})
		return store.NewMemoryStore()
	}

	logger.Info("Using file settings store", map[string]interface{}{"path": cfg.Storage.StatePath})
	return kv
}
