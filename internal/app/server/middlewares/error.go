package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fooddel/backend/internal/app/pkg/ginx"
)

// ErrorHandler 统一错误处理中间件
// 捕获 panic，对外只返回粗粒度 message，细节留在服务端日志
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				ginx.Error(c, http.StatusInternalServerError, "Internal server error")
				c.Abort()
			}
		}()

		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			err := c.Errors.Last()
			ginx.Error(c, http.StatusInternalServerError, err.Error())
		}
	}
}
