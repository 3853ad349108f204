package errorx

import (
	"errors"
	"net/http"
)

// 定义业务错误（预留）
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrOrderNotFound  = errors.New("order not found")
	ErrDuplicateEmail = errors.New("email already exists")
	ErrInvalidOTP     = errors.New("invalid otp")
	ErrWrongPassword  = errors.New("wrong password")
)

// Kind 错误分类
// 错误分类决定 HTTP 状态码映射：
// Validation/Conflict -> 400, NotFound -> 404, Fault -> 500
type Kind int

const (
	KindValidation Kind = iota + 1 // 参数缺失或非法
	KindNotFound                   // 资源不存在
	KindConflict                   // 业务状态冲突（如重复核验）
	KindFault                      // 持久化或运行时故障
)

// BusinessError 业务错误结构
type BusinessError struct {
	Kind    Kind
	Message string
	cause   error
}

// Error 实现 error 接口
func (e *BusinessError) Error() string {
	return e.Message
}

// Unwrap 返回底层错误（支持 errors.Is/As 链式判断）
func (e *BusinessError) Unwrap() error {
	return e.cause
}

// Validation 创建参数校验错误
func Validation(message string) *BusinessError {
	return &BusinessError{Kind: KindValidation, Message: message}
}

// NotFound 创建资源不存在错误
func NotFound(message string) *BusinessError {
	return &BusinessError{Kind: KindNotFound, Message: message}
}

// Conflict 创建业务冲突错误
func Conflict(message string) *BusinessError {
	return &BusinessError{Kind: KindConflict, Message: message}
}

// Fault 包装底层故障，message 为对外的粗粒度描述，cause 仅保留在服务端日志
func Fault(message string, cause error) *BusinessError {
	return &BusinessError{Kind: KindFault, Message: message, cause: cause}
}

// Detail 提取服务端日志用的错误详情（含底层 cause），对外响应不携带
func Detail(err error) string {
	var be *BusinessError
	if errors.As(err, &be) && be.cause != nil {
		return be.Message + ": " + be.cause.Error()
	}
	return err.Error()
}

// KindOf 提取错误分类，非业务错误一律按 Fault 处理
func KindOf(err error) Kind {
	var be *BusinessError
	if errors.As(err, &be) {
		return be.Kind
	}
	return KindFault
}

// HTTPStatus 错误分类到 HTTP 状态码的映射
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
