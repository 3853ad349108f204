package rporder

import (
	"context"

	"fooddel/backend/internal/app/domains/entity/etorder"
)

// OrderRepository 订单仓储接口（只定义，不实现）
// 实现在 order_repo_impl.go（MySQL）
type OrderRepository interface {
	// Create 创建订单
	Create(ctx context.Context, order *etorder.Order) error

	// GetByID 根据ID查询订单
	GetByID(ctx context.Context, orderID string) (*etorder.Order, error)

	// List 查询全量订单（不保证顺序，排序由调用方负责）
	List(ctx context.Context) ([]*etorder.Order, error)

	// ListByUser 查询指定用户的订单
	ListByUser(ctx context.Context, userID int64) ([]*etorder.Order, error)

	// UpdateStatus 更新配送状态
	UpdateStatus(ctx context.Context, orderID string, status etorder.Status) error

	// FinalizePayment 终结支付核验状态，仅 pending 状态可被写入
	// 返回写入是否命中（未命中说明已被其他调用终结）
	FinalizePayment(ctx context.Context, orderID string, payment etorder.PaymentStatus) (bool, error)
}
