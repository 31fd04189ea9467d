package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"vitaforge/internal/api/validation"
	"vitaforge/internal/llm"
	"vitaforge/internal/logging"
	"vitaforge/pkg/models"
	"vitaforge/pkg/utils"
)

var providerValidator = validator.New()

func init() {
	validation.RegisterProviderValidators(providerValidator)
}

// ListProvidersHandler handles GET /api/v1/providers. Providers with
// missing credentials never make it into the registry, so everything
// listed here is selectable.
func ListProvidersHandler(registry *llm.Registry) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, models.ProvidersResponse{
			Providers: registry.Available(),
		})
	}
}

// GetActiveProviderHandler handles GET /api/v1/providers/active.
func GetActiveProviderHandler(registry *llm.Registry) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		return c.JSON(http.StatusOK, models.ActiveProviderResponse{
			Provider: registry.ActiveProvider(ctx),
			Model:    registry.ActiveModel(ctx),
		})
	}
}

// SetActiveProviderHandler handles PUT /api/v1/providers/active. The
// change takes effect for the next dispatch; in-flight requests finish
// on the provider they started with.
func SetActiveProviderHandler(registry *llm.Registry) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger()

		var req models.SetProviderRequest
		if err := c.Bind(&req); err != nil {
			return writeValidationError(c, requestID, "Invalid request body: "+err.Error())
		}

		if err := providerValidator.Struct(&req); err != nil {
			return writeValidationError(c, requestID, "Request validation failed: "+err.Error())
		}

		provider, model, err := registry.SetActive(c.Request().Context(), req.Provider, req.Model)
		if err != nil {
			logger.Warn("Provider switch rejected", map[string]interface{}{
				"request_id": requestID,
				"provider":   req.Provider,
				"error":      err.Error(),
			})
			return writeValidationError(c, requestID, err.Error())
		}

		logger.Info("Active provider switched", map[string]interface{}{
			"request_id": requestID,
			"provider":   provider,
			"model":      model,
		})

		return c.JSON(http.StatusOK, models.ActiveProviderResponse{
			Provider: provider,
			Model:    model,
		})
	}
}
