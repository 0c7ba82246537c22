package handler

import (
	"net/http"

	"shift-scheduler/internal/cache"
	"shift-scheduler/internal/database"

	"github.com/labstack/echo/v4"
)

// PingResponse 健康檢查回應模型
// swagger:model PingResponse
type PingResponse struct {
	// 回應訊息
	Message string `json:"message" example:"pong"`
}

// PingHandler 健康檢查
// @Summary     Readiness check
// @Description 檢查 Postgres 與 Redis 連線，皆正常時回傳 pong
// @Tags        health
// @Produce     json
// @Success     200 {object} PingResponse
// @Failure     503 {object} api.HTTPError
// @Router      /ping [get]
func PingHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx); err != nil {
			return echo.NewHTTPError(http.StatusServiceUnavailable, "database unhealthy").SetInternal(err)
		}
		if err := cch.Ping(ctx).Err(); err != nil {
			return echo.NewHTTPError(http.StatusServiceUnavailable, "cache unhealthy").SetInternal(err)
		}
		return c.JSON(http.StatusOK, PingResponse{Message: "pong"})
	}
}
