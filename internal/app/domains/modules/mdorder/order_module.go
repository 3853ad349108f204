package mdorder

import (
	"context"

	"gorm.io/gorm"

	"fooddel/backend/internal/app/domains/entity/etorder"
	"fooddel/backend/internal/app/domains/repo/rporder"
	"fooddel/backend/internal/app/domains/repo/rpuser"
)

// OrderModule 订单模块（数据编排层）
type OrderModule struct {
	db        *gorm.DB
	orderRepo rporder.OrderRepository
	userRepo  rpuser.UserRepository
}

// NewOrderModule 创建订单模块
func NewOrderModule(
	db *gorm.DB,
	orderRepo rporder.OrderRepository,
	userRepo rpuser.UserRepository,
) *OrderModule {
	return &OrderModule{
		db:        db,
		orderRepo: orderRepo,
		userRepo:  userRepo,
	}
}

// CreateOrderAndClearCart 落库订单并清空用户购物车
// 两个写操作在同一事务内完成：订单已下单 => 购物车必为空
func (m *OrderModule) CreateOrderAndClearCart(ctx context.Context, order *etorder.Order) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txOrderRepo := rporder.NewOrderRepository(tx)
		txUserRepo := rpuser.NewUserRepository(tx)

		if err := txOrderRepo.Create(ctx, order); err != nil {
			return err
		}
		return txUserRepo.ClearCart(ctx, order.UserID)
	})
}

// GetOrder 查询订单
func (m *OrderModule) GetOrder(ctx context.Context, orderID string) (*etorder.Order, error) {
	return m.orderRepo.GetByID(ctx, orderID)
}

// ListOrders 查询全量订单
func (m *OrderModule) ListOrders(ctx context.Context) ([]*etorder.Order, error) {
	return m.orderRepo.List(ctx)
}

// ListUserOrders 查询指定用户的订单
func (m *OrderModule) ListUserOrders(ctx context.Context, userID int64) ([]*etorder.Order, error) {
	return m.orderRepo.ListByUser(ctx, userID)
}

// UpdateStatus 更新配送状态
func (m *OrderModule) UpdateStatus(ctx context.Context, orderID string, status etorder.Status) error {
	return m.orderRepo.UpdateStatus(ctx, orderID, status)
}

// FinalizePayment 终结支付核验状态（条件写入，返回是否命中）
func (m *OrderModule) FinalizePayment(ctx context.Context, orderID string, payment etorder.PaymentStatus) (bool, error) {
	return m.orderRepo.FinalizePayment(ctx, orderID, payment)
}

// UserExists 检查用户是否存在
func (m *OrderModule) UserExists(ctx context.Context, userID int64) (bool, error) {
	return m.userRepo.Exists(ctx, userID)
}
