package routes

import (
	"net/http"
	"time"

	"vitaforge/internal/api/handlers"
	"vitaforge/internal/api/middleware"
	"vitaforge/internal/config"
	"vitaforge/internal/llm"
	"vitaforge/internal/resume"
	"vitaforge/internal/store"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, registry *llm.Registry, svc *resume.Service, kv store.KV) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation())
	// Selective timeout: 30s for most endpoints, 2 minutes for AI-backed ones
	e.Use(middleware.SelectiveTimeoutConfig(cfg.Server.ReadTimeout, 2*time.Minute))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(registry, kv))
		health.GET("/live", handlers.LivenessHandler)
	}

	// Status route
	e.GET("/status", handlers.StatusHandler(registry))

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		// Provider selection routes
		providers := v1.Group("/providers")
		{
			providers.GET("", handlers.ListProvidersHandler(registry))
			providers.GET("/active", handlers.GetActiveProviderHandler(registry))
			providers.PUT("/active", handlers.SetActiveProviderHandler(registry))
		}

		// Resume pipeline routes
		res := v1.Group("/resume")
		{
			res.POST("/parse", handlers.ParseResumeHandler(svc))
			res.POST("/improve", handlers.ImproveResumeHandler(svc))
			res.POST("/styles", handlers.ReviseStylesHandler(svc))
		}
	}

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"service": "Vitaforge Resume Engine",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}
