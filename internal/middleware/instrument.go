package middleware

import (
	"strconv"
	"time"

	"shift-scheduler/internal/metrics"

	"github.com/labstack/echo/v4"
)

// Instrument records request latency by route template, never by raw path.
// Errors are rendered here through e.HTTPErrorHandler so the recorded status
// is the one the client receives.
func Instrument() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			if err := next(c); err != nil {
				// 交給全域 error handler 決定狀態碼，再讀取實際寫出的值
				c.Error(err)
			}

			status := c.Response().Status
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}

			metrics.HTTPRequestDuration.
				WithLabelValues(c.Request().Method, route, strconv.Itoa(status)).
				Observe(time.Since(start).Seconds())
			return nil
		}
	}
}
