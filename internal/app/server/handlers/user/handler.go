package user

import (
	"github.com/gin-gonic/gin"

	"fooddel/backend/internal/app/domains/apimodel/request"
	"fooddel/backend/internal/app/domains/services/svuser"
	"fooddel/backend/internal/app/pkg/errorx"
	"fooddel/backend/internal/app/pkg/ginx"
	"fooddel/backend/internal/app/pkg/logger"
)

// UserHandler 用户 HTTP 处理器
type UserHandler struct {
	userService *svuser.UserService
	logger      logger.Logger
}

// NewUserHandler 创建用户处理器实例
func NewUserHandler(userService *svuser.UserService, logger logger.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// Register 注册接口
// POST /api/user/register
func (h *UserHandler) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	if err := h.userService.Register(c.Request.Context(), req.Name, req.Email, req.Password); err != nil {
		h.logger.Errorf(c.Request.Context(), "register failed: %s", errorx.Detail(err))
		ginx.FromError(c, err)
		return
	}

	ginx.SuccessMessage(c, "OTP sent to your email.")
}

// Login 登录接口（第一步，下发 OTP）
// POST /api/user/login
func (h *UserHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	if err := h.userService.Login(c.Request.Context(), req.Email, req.Password); err != nil {
		h.logger.Errorf(c.Request.Context(), "login failed: %s", errorx.Detail(err))
		ginx.FromError(c, err)
		return
	}

	ginx.SuccessMessage(c, "OTP sent to your email.")
}

// VerifyOTP OTP 核验接口（第二步，签发 token）
// POST /api/user/otp
func (h *UserHandler) VerifyOTP(c *gin.Context) {
	var req request.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	token, err := h.userService.VerifyOTP(c.Request.Context(), req.Email, req.Password, req.OTP)
	if err != nil {
		h.logger.Errorf(c.Request.Context(), "verify otp failed: %s", errorx.Detail(err))
		ginx.FromError(c, err)
		return
	}

	ginx.SuccessToken(c, "Login successful.", token)
}
