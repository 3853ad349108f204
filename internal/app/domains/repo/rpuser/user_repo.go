package rpuser

import (
	"context"

	"fooddel/backend/internal/app/domains/entity/etuser"
)

// UserRepository 用户仓储接口（只定义，不实现）
// 实现在 user_repo_impl.go（MySQL）
type UserRepository interface {
	// Create 创建用户
	Create(ctx context.Context, user *etuser.User) error

	// GetByID 根据ID查询用户
	GetByID(ctx context.Context, userID int64) (*etuser.User, error)

	// GetByEmail 根据邮箱查询用户（用于检查重复），不存在时返回 (nil, nil)
	GetByEmail(ctx context.Context, email string) (*etuser.User, error)

	// Exists 检查用户是否存在
	Exists(ctx context.Context, userID int64) (bool, error)

	// UpdateCart 整体覆盖购物车数据
	UpdateCart(ctx context.Context, userID int64, cart map[string]int) error

	// ClearCart 清空购物车
	ClearCart(ctx context.Context, userID int64) error
}
