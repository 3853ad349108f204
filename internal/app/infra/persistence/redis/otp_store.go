package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrOTPNotFound OTP 不存在或已过期
var ErrOTPNotFound = errors.New("otp not found or expired")

// OTPStore 基于 Redis 的一次性验证码存储
// 验证码按邮箱维度存储并携带 TTL，核验成功后立即删除
type OTPStore struct {
	rdb *redis.Client
}

// NewOTPStore 创建 OTP 存储实例，支持密码认证
func NewOTPStore(addr, password string, db int) (*OTPStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &OTPStore{rdb: rdb}, nil
}

// otpKey 验证码键命名规则
func otpKey(email string) string {
	return "otp:" + email
}

// Set 写入验证码，ttl 到期后自动失效
func (s *OTPStore) Set(ctx context.Context, email, code string, ttl time.Duration) error {
	return s.rdb.Set(ctx, otpKey(email), code, ttl).Err()
}

// Get 读取验证码
func (s *OTPStore) Get(ctx context.Context, email string) (string, error) {
	code, err := s.rdb.Get(ctx, otpKey(email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrOTPNotFound
		}
		return "", err
	}
	return code, nil
}

// Delete 删除验证码（核验成功后调用，保证一次性）
func (s *OTPStore) Delete(ctx context.Context, email string) error {
	return s.rdb.Del(ctx, otpKey(email)).Err()
}

// Close 关闭连接
func (s *OTPStore) Close() error {
	return s.rdb.Close()
}
