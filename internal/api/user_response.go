package api

// swagger:model api.UserResponse
type UserResponse struct {
	ID    int    `json:"id" example:"2"`
	Name  string `json:"name" example:"Bob"`
	Email string `json:"email" example:"bob@example.com"`
	Role  string `json:"role" example:"user"`
}

// swagger:model api.SignupResponse
type SignupResponse struct {
	User UserResponse `json:"user"`
}
