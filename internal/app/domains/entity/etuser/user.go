package etuser

import (
	"errors"
	"time"
)

// 错误定义
var (
	ErrInvalidUserID = errors.New("invalid user ID")
	ErrInvalidName   = errors.New("user name cannot be empty")
	ErrInvalidEmail  = errors.New("invalid email format")
)

// User 用户实体
// CartData 为商品ID到数量的映射，下单成功后整体清空
type User struct {
	ID           int64          // 用户ID
	Name         string         // 用户名称
	Email        string         // 邮箱
	PasswordHash string         // bcrypt 密码哈希
	CartData     map[string]int // 购物车数据
	CreatedAt    time.Time      // 创建时间
}

// NewUser 创建用户（工厂方法）
func NewUser(id int64, name, email, passwordHash string) (*User, error) {
	// 业务规则校验
	if id <= 0 {
		return nil, ErrInvalidUserID
	}
	if name == "" {
		return nil, ErrInvalidName
	}
	if email == "" {
		return nil, ErrInvalidEmail
	}

	return &User{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CartData:     map[string]int{},
		CreatedAt:    time.Now(),
	}, nil
}

// AddToCart 购物车加购（领域行为）
func (u *User) AddToCart(itemID string) {
	if u.CartData == nil {
		u.CartData = map[string]int{}
	}
	u.CartData[itemID]++
}

// RemoveFromCart 购物车减购（领域行为），数量归零后移除键
func (u *User) RemoveFromCart(itemID string) {
	if u.CartData == nil {
		return
	}
	if u.CartData[itemID] > 1 {
		u.CartData[itemID]--
	} else {
		delete(u.CartData, itemID)
	}
}
