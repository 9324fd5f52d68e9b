package dto

// LoginRequest 员工登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token   string       `json:"token"`
	Trainer *TrainerInfo `json:"trainer"`
}

// TrainerInfo 员工信息
type TrainerInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
