package api

import "time"

// PrincipalResponse 登入者身分
// swagger:model api.PrincipalResponse
type PrincipalResponse struct {
	ID   int    `json:"id" example:"1"`
	Name string `json:"name" example:"Alice"`
	Role string `json:"role" example:"admin"`
}

// swagger:model api.LoginResponse
type LoginResponse struct {
	Token     string            `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt time.Time         `json:"expires_at" example:"2025-05-01T23:04:05Z"`
	User      PrincipalResponse `json:"user"`
}
