package handlers

import (
	"errors"
	"net/http"
	"time"

	"vitaforge/internal/llm"
	"vitaforge/internal/logging"
	"vitaforge/internal/store"
	"vitaforge/pkg/models"
	"vitaforge/pkg/utils"

	"github.com/labstack/echo/v4"
)

var startTime = time.Now()

// HealthHandler handles health check requests
func HealthHandler(c echo.Context) error {
	requestID := utils.GenerateRequestID()
	logger := logging.GetGlobalLogger()

	logger.Debug("Health check requested", map[string]interface{}{"request_id": requestID})

	response := models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Uptime:    time.Since(startTime),
		Checks: map[string]string{
			"api": "ok",
		},
	}

	return c.JSON(http.StatusOK, response)
}

// ReadinessHandler reports whether the service can actually serve AI
// requests: at least one provider registered and the settings store
// reachable.
func ReadinessHandler(registry *llm.Registry, kv store.KV) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger()

		logger.Debug("Readiness check requested", map[string]interface{}{"request_id": requestID})

		checks := map[string]string{"api": "ok"}
		status := "ready"
		httpStatus := http.StatusOK

		if len(registry.Available()) == 0 {
			checks["providers"] = "none configured"
			status = "not_ready"
			httpStatus = http.StatusServiceUnavailable
		} else {
			checks["providers"] = "ok"
		}

		if _, err := kv.Get(c.Request().Context(), "readiness_probe"); err != nil && !errors.Is(err, store.ErrNotFound) {
			checks["store"] = err.Error()
			status = "not_ready"
			httpStatus = http.StatusServiceUnavailable
		} else {
			checks["store"] = "ok"
		}

		return c.JSON(httpStatus, models.HealthResponse{
			Status:    status,
			Timestamp: time.Now(),
			Version:   "1.0.0",
			Uptime:    time.Since(startTime),
			Checks:    checks,
		})
	}
}

// LivenessHandler handles liveness probe requests
func LivenessHandler(c echo.Context) error {
	requestID := utils.GenerateRequestID()
	logger := logging.GetGlobalLogger()

	logger.Debug("Liveness check requested", map[string]interface{}{"request_id": requestID})

	response := models.HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Uptime:    time.Since(startTime),
	}

	return c.JSON(http.StatusOK, response)
}

// StatusHandler provides detailed service status
func StatusHandler(registry *llm.Registry) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger()

		logger.Debug("Status check requested", map[string]interface{}{"request_id": requestID})

		ctx := c.Request().Context()
		checks := map[string]string{
			"api":             "operational",
			"active_provider": registry.ActiveProvider(ctx),
			"active_model":    registry.ActiveModel(ctx),
		}

		return c.JSON(http.StatusOK, models.HealthResponse{
			Status:    "operational",
			Timestamp: time.Now(),
			Version:   "1.0.0",
			Uptime:    time.Since(startTime),
			Checks:    checks,
		})
	}
}
