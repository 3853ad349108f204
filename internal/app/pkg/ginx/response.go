package ginx

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"fooddel/backend/internal/app/pkg/errorx"
)

// Response 统一响应结构
// 对齐前端约定：success 标志 + 可读 message + 可选 data
type Response struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Data    interface{}   `json:"data,omitempty"`
	OrderID string        `json:"orderId,omitempty"`
	Token   string        `json:"userToken,omitempty"`
	Details []ErrorDetail `json:"details,omitempty"`
}

// ErrorDetail 错误详情
type ErrorDetail struct {
	Path string `json:"path" example:"email"`
	Info string `json:"info" example:"email is required"`
}

// Success 成功响应（200），携带 data
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// SuccessMessage 成功响应（200），仅携带提示信息
func SuccessMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
	})
}

// SuccessOrder 下单成功响应，orderId 置于顶层
func SuccessOrder(c *gin.Context, message string, orderID string) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
		OrderID: orderID,
	})
}

// SuccessToken 登录/OTP 核验成功响应，返回用户 token
func SuccessToken(c *gin.Context, message string, token string) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
		Token:   token,
	})
}

// Error 错误响应（400/404/500）
func Error(c *gin.Context, httpCode int, message string) {
	c.JSON(httpCode, Response{
		Success: false,
		Message: message,
	})
}

// ErrorWithDetails 带详情的错误响应
func ErrorWithDetails(c *gin.Context, httpCode int, message string, details []ErrorDetail) {
	c.JSON(httpCode, Response{
		Success: false,
		Message: message,
		Details: details,
	})
}

// FromError 业务错误响应，按 errorx 分类映射状态码
func FromError(c *gin.Context, err error) {
	Error(c, errorx.HTTPStatus(err), err.Error())
}

// BadRequest 400 错误
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// BadRequestWithValidation 400 错误（带验证详情）
func BadRequestWithValidation(c *gin.Context, err error) {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		details := make([]ErrorDetail, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			details = append(details, ErrorDetail{
				Path: fieldErr.Field(),
				Info: getValidationErrorMessage(fieldErr),
			})
		}
		ErrorWithDetails(c, http.StatusBadRequest, "Missing parameters.", details)
		return
	}

	BadRequest(c, err.Error())
}

// getValidationErrorMessage 根据验证错误类型返回友好的错误消息
func getValidationErrorMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fieldErr.Field() + " is required"
	case "email":
		return fieldErr.Field() + " must be a valid email address"
	case "min":
		return fieldErr.Field() + " must be at least " + fieldErr.Param()
	case "max":
		return fieldErr.Field() + " must be at most " + fieldErr.Param()
	case "gt":
		return fieldErr.Field() + " must be greater than " + fieldErr.Param()
	default:
		return fieldErr.Field() + " is invalid"
	}
}
