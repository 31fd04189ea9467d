package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"vitaforge/internal/logging"
	"vitaforge/internal/resume"
	"vitaforge/pkg/models"
	"vitaforge/pkg/utils"
)

// ParseResumeHandler handles the POST /api/v1/resume/parse endpoint
func ParseResumeHandler(svc *resume.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger()
		c.Set("request_id", requestID)

		logger.Info("Processing resume parse request", map[string]interface{}{
			"request_id": requestID,
			"endpoint":   "/api/v1/resume/parse",
			"method":     "POST",
		})

		var req models.ParseResumeRequest
		if err := c.Bind(&req); err != nil {
			return writeValidationError(c, requestID, "Invalid request body: "+err.Error())
		}
		if err := providerValidator.Struct(&req); err != nil {
			return writeValidationError(c, requestID, "Request validation failed: "+err.Error())
		}

		ctx := c.Request().Context()
		start := time.Now()

		doc, err := svc.Extract(ctx, req.Text)
		if err != nil {
			logger.Error("Resume parse failed", map[string]interface{}{
				"request_id": requestID,
				"error":      err.Error(),
			})
			return writeError(c, requestID, err)
		}

		provider, model := svc.ActiveSelection(ctx)
		return c.JSON(http.StatusOK, models.ParseResumeResponse{
			Success:        true,
			Resume:         doc,
			Provider:       provider,
			Model:          model,
			ProcessingTime: time.Since(start),
			RequestID:      requestID,
		})
	}
}

// ImproveResumeHandler handles the POST /api/v1/resume/improve endpoint.
// A model failure here is not a request failure: the response still
// carries a usable document (the caller's own, unchanged) with Changed
// false and the reason in Warning.
func ImproveResumeHandler(svc *resume.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger()
		c.Set("request_id", requestID)

		var req models.ImproveResumeRequest
		if err := c.Bind(&req); err != nil {
			return writeValidationError(c, requestID, "Invalid request body: "+err.Error())
		}
		if err := providerValidator.Struct(&req); err != nil {
			return writeValidationError(c, requestID, "Request validation failed: "+err.Error())
		}

		ctx := c.Request().Context()
		start := time.Now()
		provider, model := svc.ActiveSelection(ctx)

		doc, err := svc.ReviseContent(ctx, &req.Resume, req.Instructions)
		if err != nil {
			logger.Warn("Resume revision soft-failed", map[string]interface{}{
				"request_id": requestID,
				"provider":   provider,
				"error":      err.Error(),
			})
			return c.JSON(http.StatusOK, models.ImproveResumeResponse{
				Success:        true,
				Resume:         doc,
				Changed:        false,
				Warning:        "Content was left unchanged: " + err.Error(),
				Provider:       provider,
				Model:          model,
				ProcessingTime: time.Since(start),
				RequestID:      requestID,
			})
		}

		return c.JSON(http.StatusOK, models.ImproveResumeResponse{
			Success:        true,
			Resume:         doc,
			Changed:        true,
			Provider:       provider,
			Model:          model,
			ProcessingTime: time.Since(start),
			RequestID:      requestID,
		})
	}
}

// ReviseStylesHandler handles the POST /api/v1/resume/styles endpoint
func ReviseStylesHandler(svc *resume.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger()
		c.Set("request_id", requestID)

		var req models.ReviseStylesRequest
		if err := c.Bind(&req); err != nil {
			return writeValidationError(c, requestID, "Invalid request body: "+err.Error())
		}
		if err := providerValidator.Struct(&req); err != nil {
			return writeValidationError(c, requestID, "Request validation failed: "+err.Error())
		}

		ctx := c.Request().Context()
		start := time.Now()
		provider, model := svc.ActiveSelection(ctx)

		styles, err := svc.ReviseStyles(ctx, req.Styles, req.Preferences)
		if err != nil {
			logger.Error("Style revision failed", map[string]interface{}{
				"request_id": requestID,
				"provider":   provider,
				"error":      err.Error(),
			})
			return writeError(c, requestID, err)
		}

		return c.JSON(http.StatusOK, models.ReviseStylesResponse{
			Success:        true,
			Styles:         styles,
			Provider:       provider,
			Model:          model,
			ProcessingTime: time.Since(start),
			RequestID:      requestID,
		})
	}
}
