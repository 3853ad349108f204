package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"

	"fooddel/backend/internal/app/pkg/ginx"
)

// 认证后写入 gin.Context 的键
const userIDKey = "auth_user_id"

// Auth 认证中间件：校验 Bearer JWT 并注入用户ID
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := parseBearer(c.GetHeader("Authorization"), secret)
		if err != nil {
			ginx.Error(c, http.StatusUnauthorized, "Not authorized. Please login again.")
			c.Abort()
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserIDFromContext 提取认证用户ID
func UserIDFromContext(c *gin.Context) (int64, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	userID, ok := v.(int64)
	return userID, ok
}

// parseBearer 解析并校验 Bearer JWT，返回 user_id claim
func parseBearer(header, secret string) (int64, error) {
	if secret == "" {
		return 0, errors.New("jwt secret is empty")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return 0, errors.New("invalid authorization header")
	}

	tok, err := jwt.Parse(strings.TrimSpace(parts[1]), func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		if err == nil {
			err = errors.New("invalid token")
		}
		return 0, err
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid claims")
	}
	// JSON 数值统一解码为 float64
	raw, ok := claims["user_id"].(float64)
	if !ok || raw <= 0 {
		return 0, errors.New("invalid user_id claim")
	}
	return int64(raw), nil
}
