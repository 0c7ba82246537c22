package router

import (
	"shift-scheduler/internal/cache"
	"shift-scheduler/internal/database"
	"shift-scheduler/internal/handler"
	"shift-scheduler/internal/handler/auth"
	"shift-scheduler/internal/handler/employees"
	"shift-scheduler/internal/handler/shifts"
	"shift-scheduler/internal/middleware"
	"shift-scheduler/internal/model"
	"shift-scheduler/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Deps 路由所需的共用依賴，於 run() 建立一次
type Deps struct {
	DB       database.DB
	Cache    cache.Cache
	Issuer   *service.TokenIssuer
	Throttle *service.LoginThrottle
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, d Deps) {
	api := e.Group("/api")

	// 健康檢查
	api.GET("/ping", handler.PingHandler(d.DB, d.Cache))

	// 登入與註冊
	api.POST("/login", auth.LoginHandler(d.DB, d.Issuer, d.Throttle))
	api.POST("/signup", auth.SignupHandler(d.DB))

	requireAuth := middleware.RequireAuth(d.Issuer)
	adminOnly := middleware.RequireRole(model.RoleAdmin)

	// 班次：登入即可查詢，指派限 admin
	api.GET("/shifts", shifts.ListHandler(d.DB), requireAuth)
	api.POST("/shifts", shifts.CreateHandler(d.DB), requireAuth, adminOnly)

	api.GET("/employees", employees.ListHandler(d.DB), requireAuth, adminOnly)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
