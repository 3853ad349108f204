package request

// RegisterRequest 注册请求
type RegisterRequest struct {
	Name     string `json:"name" binding:"required" example:"John Doe"`
	Email    string `json:"email" binding:"required,email" example:"john@example.com"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest 登录请求（第一步，下发 OTP）
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"john@example.com"`
	Password string `json:"password" binding:"required"`
}

// VerifyOTPRequest OTP 核验请求（第二步，签发 token）
type VerifyOTPRequest struct {
	Email    string `json:"email" binding:"required,email" example:"john@example.com"`
	Password string `json:"password" binding:"required"`
	OTP      string `json:"otp" binding:"required" example:"482913"`
}

// CartItemRequest 购物车加购/减购请求
type CartItemRequest struct {
	ItemID string `json:"itemId" binding:"required" example:"pizza-margherita"`
}
