package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"vitaforge/pkg/models"
	"vitaforge/pkg/utils"
)

// writeError maps a pipeline error onto the JSON error envelope. The
// HTTP status rides on the AppError itself: configuration failures are
// 503, provider-attributable failures are 502.
func writeError(c echo.Context, requestID string, err error) error {
	status := http.StatusInternalServerError
	code := "internal_error"
	provider := ""

	var appErr *utils.AppError
	if errors.As(err, &appErr) {
		status = appErr.Code
		code = string(appErr.Kind)
		provider = appErr.Provider
	}

	return c.JSON(status, models.ErrorResponse{
		Error:     code,
		Message:   err.Error(),
		Provider:  provider,
		RequestID: requestID,
		Timestamp: time.Now(),
	})
}

func writeValidationError(c echo.Context, requestID, message string) error {
	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:     "validation_failed",
		Message:   message,
		RequestID: requestID,
		Timestamp: time.Now(),
	})
}
