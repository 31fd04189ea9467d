package middleware

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// TimeoutConfig returns timeout middleware configuration
func TimeoutConfig(timeout time.Duration) echo.MiddlewareFunc {
	return middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: timeout,
	})
}

// SelectiveTimeoutConfig applies a longer timeout to the AI-backed
// resume endpoints and the default timeout everywhere else.
func SelectiveTimeoutConfig(defaultTimeout, aiTimeout time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			timeout := defaultTimeout
			if strings.HasPrefix(c.Path(), "/api/v1/resume/") {
				timeout = aiTimeout
			}
			handler := middleware.TimeoutWithConfig(middleware.TimeoutConfig{
				Timeout: timeout,
			})(next)
			return handler(c)
		}
	}
}
