package api

// HTTPError 全域錯誤響應模型
// swagger:model api.HTTPError
type HTTPError struct {
	// 錯誤描述
	Error string `json:"error" example:"shift overlaps with existing one"`
	// 機器可讀的錯誤代碼
	Code string `json:"code" example:"overlap"`
}
