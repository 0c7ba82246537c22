package handler

import (
	"errors"
	"fmt"
	"net/http"

	"shift-scheduler/internal/api"
	"shift-scheduler/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type errorMapping struct {
	target error
	status int
	code   string
}

// 依序比對，第一個 errors.Is 命中者勝出
var domainErrors = []errorMapping{
	{service.ErrUnauthenticated, http.StatusUnauthorized, "unauthenticated"},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials"},
	{service.ErrForbidden, http.StatusForbidden, "forbidden"},
	{service.ErrMissingFields, http.StatusBadRequest, "missing_fields"},
	{service.ErrDuplicateEmail, http.StatusBadRequest, "duplicate_email"},
	{service.ErrPasswordTooLong, http.StatusBadRequest, "password_too_long"},
	{service.ErrShiftTooShort, http.StatusBadRequest, "duration"},
	{service.ErrShiftOverlap, http.StatusBadRequest, "overlap"},
	{service.ErrInvalidShift, http.StatusBadRequest, "invalid_shift"},
	{service.ErrEmployeeNotFound, http.StatusBadRequest, "unknown_employee"},
	{service.ErrTooManyAttempts, http.StatusTooManyRequests, "too_many_attempts"},
}

// NewHTTPErrorHandler renders every error as {"error": msg, "code": code}.
// Unknown errors are logged with their cause and reach the client only as
// "internal server error".
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, api.HTTPError) {
	for _, m := range domainErrors {
		if errors.Is(err, m.target) {
			return m.status, api.HTTPError{Error: err.Error(), Code: m.code}
		}
	}

	// bind 失敗、路由 404/405 等 echo 自身錯誤
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Internal != nil {
			log.Warn().Err(he.Internal).Int("status", he.Code).Str("path", c.Path()).Msg("request failed")
		}
		if he.Code == http.StatusInternalServerError {
			return he.Code, api.HTTPError{Error: "internal server error", Code: "internal"}
		}
		return he.Code, api.HTTPError{Error: fmt.Sprintf("%v", he.Message), Code: "invalid_request"}
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, api.HTTPError{Error: "internal server error", Code: "internal"}
}
