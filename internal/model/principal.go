package model

// Principal 是從已驗證的 token 還原出的身分，只存在於單一請求內
type Principal struct {
	ID   int
	Role Role
	Name string
}

func (p Principal) IsAdmin() bool { return p.Role == RoleAdmin }
