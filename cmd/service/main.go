// @title        Shift Scheduler API
// @version      1.0
// @description  員工排班系統後端 API：登入、註冊、班次指派與查詢
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description 格式為 "Bearer <token>"
package main

import "shift-scheduler/internal/logger"

func main() {
	if err := run(); err != nil {
		// run 在設定載入前失敗時 logger 尚未初始化，這裡以預設值補上
		log := logger.Init(logger.Options{})
		log.Error().Err(err).Msg("service stopped")
		exitFunc(1)
	}
}
