package svuser

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"fooddel/backend/internal/app/domains/entity/etuser"
	"fooddel/backend/internal/app/domains/modules/mduser"
	"fooddel/backend/internal/app/infra/persistence/redis"
	"fooddel/backend/internal/app/pkg/errorx"
	"fooddel/backend/internal/app/pkg/idgen"
	"fooddel/backend/internal/app/pkg/logger"
)

// OTP 校验规则：至少6位纯数字
var otpPattern = regexp.MustCompile(`^[0-9]{6,}$`)

// OTPStore 一次性验证码存储接口
// 生产实现为 Redis（infra/persistence/redis），测试注入内存实现
type OTPStore interface {
	Set(ctx context.Context, email, code string, ttl time.Duration) error
	Get(ctx context.Context, email string) (string, error)
	Delete(ctx context.Context, email string) error
}

// UserService 用户服务，负责注册/登录/OTP 核验编排
type UserService struct {
	userModule *mduser.UserModule
	otpStore   OTPStore
	logger     logger.Logger

	jwtSecret []byte
	tokenTTL  time.Duration
	otpTTL    time.Duration
}

// NewUserService 创建用户服务实例
func NewUserService(
	userModule *mduser.UserModule,
	otpStore OTPStore,
	logger logger.Logger,
	jwtSecret string,
	tokenTTL, otpTTL time.Duration,
) *UserService {
	return &UserService{
		userModule: userModule,
		otpStore:   otpStore,
		logger:     logger,
		jwtSecret:  []byte(jwtSecret),
		tokenTTL:   tokenTTL,
		otpTTL:     otpTTL,
	}
}

// Register 注册用户（完整业务流程）
// 1. 检查邮箱是否重复
// 2. bcrypt 加密密码，生成分布式ID
// 3. 落库并下发 OTP
func (s *UserService) Register(ctx context.Context, name, email, password string) error {
	existing, err := s.userModule.GetUserByEmail(ctx, email)
	if err != nil {
		return errorx.Fault("Error registering user", err)
	}
	if existing != nil {
		return errorx.Conflict("Email already registered.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errorx.Fault("Error registering user", err)
	}

	user, err := etuser.NewUser(idgen.GenerateID(), name, email, string(hash))
	if err != nil {
		return errorx.Validation(err.Error())
	}

	if err := s.userModule.CreateUser(ctx, user); err != nil {
		return errorx.Fault("Error registering user", err)
	}

	return s.issueOTP(ctx, email)
}

// Login 登录第一步：校验密码并下发 OTP
func (s *UserService) Login(ctx context.Context, email, password string) error {
	user, err := s.authenticate(ctx, email, password)
	if err != nil {
		return err
	}

	s.logger.Infof(ctx, "login otp requested: user_id=%d", user.ID)
	return s.issueOTP(ctx, email)
}

// VerifyOTP 登录第二步：核验 OTP 并签发用户 token
// OTP 核验成功后立即删除，保证一次性
func (s *UserService) VerifyOTP(ctx context.Context, email, password, otp string) (string, error) {
	if !otpPattern.MatchString(otp) {
		return "", errorx.Validation("Enter a Valid OTP")
	}

	user, err := s.authenticate(ctx, email, password)
	if err != nil {
		return "", err
	}

	stored, err := s.otpStore.Get(ctx, email)
	if err != nil {
		if errors.Is(err, redis.ErrOTPNotFound) {
			return "", errorx.Validation("OTP expired, please request a new one.")
		}
		return "", errorx.Fault("Error verifying OTP", err)
	}
	if stored != otp {
		return "", errorx.Validation("Incorrect OTP.")
	}

	if err := s.otpStore.Delete(ctx, email); err != nil {
		return "", errorx.Fault("Error verifying OTP", err)
	}

	token, err := s.signToken(user)
	if err != nil {
		return "", errorx.Fault("Error verifying OTP", err)
	}

	s.logger.Infof(ctx, "user logged in: user_id=%d", user.ID)
	return token, nil
}

// authenticate 按邮箱+密码认证用户
func (s *UserService) authenticate(ctx context.Context, email, password string) (*etuser.User, error) {
	user, err := s.userModule.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, errorx.Fault("Error logging in", err)
	}
	if user == nil {
		return nil, errorx.NotFound("User not found.")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errorx.Validation("Invalid credentials.")
	}
	return user, nil
}

// issueOTP 生成6位验证码写入 Redis
// 验证码的投递渠道（邮件/短信）不在本子系统范围内，仅记录日志
func (s *UserService) issueOTP(ctx context.Context, email string) error {
	code, err := generateOTP()
	if err != nil {
		return errorx.Fault("Error sending OTP", err)
	}
	if err := s.otpStore.Set(ctx, email, code, s.otpTTL); err != nil {
		return errorx.Fault("Error sending OTP", err)
	}
	s.logger.Infof(ctx, "otp issued: email=%s ttl=%s", email, s.otpTTL)
	return nil
}

// signToken 签发 HS256 JWT
func (s *UserService) signToken(user *etuser.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// generateOTP 生成6位随机数字验证码
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
