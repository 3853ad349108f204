package svorder

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"fooddel/backend/internal/app/domains/entity/etorder"
	"fooddel/backend/internal/app/domains/modules/mdorder"
	"fooddel/backend/internal/app/pkg/errorx"
	"fooddel/backend/internal/app/pkg/logger"
)

// OrderService 订单服务，负责订单业务编排
type OrderService struct {
	orderModule *mdorder.OrderModule
	logger      logger.Logger
}

// NewOrderService 创建订单服务实例
func NewOrderService(orderModule *mdorder.OrderModule, logger logger.Logger) *OrderService {
	return &OrderService{
		orderModule: orderModule,
		logger:      logger,
	}
}

// PlaceOrder 下单（完整业务流程）
// 1. 验证用户存在
// 2. 创建订单实体（初始配送状态 Food Processing）
// 3. 订单落库并清空购物车（同一事务）
func (s *OrderService) PlaceOrder(ctx context.Context, userID int64, items []*etorder.Item, amount decimal.Decimal, address *etorder.Address) (*etorder.Order, error) {
	exists, err := s.orderModule.UserExists(ctx, userID)
	if err != nil {
		return nil, errorx.Fault("Error placing the order", err)
	}
	if !exists {
		return nil, errorx.NotFound("User not found.")
	}

	order, err := etorder.NewOrder(uuid.New().String(), userID, items, amount, address)
	if err != nil {
		return nil, errorx.Validation(err.Error())
	}

	if err := s.orderModule.CreateOrderAndClearCart(ctx, order); err != nil {
		return nil, errorx.Fault("Error placing the order", err)
	}

	s.logger.Infof(ctx, "order placed: order_id=%s user_id=%d amount=%s", order.ID, userID, amount.String())
	return order, nil
}

// ListOrders 查询全量订单
// 不保证顺序，排序由管理端负责
func (s *OrderService) ListOrders(ctx context.Context) ([]*etorder.Order, error) {
	orders, err := s.orderModule.ListOrders(ctx)
	if err != nil {
		return nil, errorx.Fault("Error fetching orders", err)
	}
	return orders, nil
}

// ListUserOrders 查询指定用户的订单
func (s *OrderService) ListUserOrders(ctx context.Context, userID int64) ([]*etorder.Order, error) {
	orders, err := s.orderModule.ListUserOrders(ctx, userID)
	if err != nil {
		return nil, errorx.Fault("Error fetching orders", err)
	}
	return orders, nil
}

// UpdateStatus 更新配送状态
// 状态取值在服务边界做封闭集合校验；通过校验后无条件覆盖，
// 不限制转移方向（并发管理端之间为 last-write-wins）
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, status string) error {
	if orderID == "" || status == "" {
		return errorx.Validation("Missing parameters.")
	}

	parsed, err := etorder.ParseStatus(status)
	if err != nil {
		return errorx.Validation(err.Error())
	}

	order, err := s.orderModule.GetOrder(ctx, orderID)
	if err != nil {
		return errorx.Fault("Error updating status", err)
	}
	if order == nil {
		return errorx.NotFound("Order not found.")
	}

	if err := s.orderModule.UpdateStatus(ctx, orderID, parsed); err != nil {
		return errorx.Fault("Error updating status", err)
	}

	s.logger.Infof(ctx, "order status updated: order_id=%s status=%q", orderID, parsed)
	return nil
}

// VerifyOrder 支付核验（幂等保护）
// 核验结果只允许记录一次：支付状态已终结的订单再次核验返回冲突。
// 终结写入是数据库层的条件更新（仅 pending 可写），并发核验同一订单时
// 只有一次调用命中，落败方同样收到冲突，不会覆盖已终结的结果
func (s *OrderService) VerifyOrder(ctx context.Context, orderID string, success bool) error {
	if orderID == "" {
		return errorx.Validation("Missing parameters.")
	}

	order, err := s.orderModule.GetOrder(ctx, orderID)
	if err != nil {
		return errorx.Fault("Error verifying the order", err)
	}
	if order == nil {
		return errorx.NotFound("Order not found.")
	}

	if order.Payment.Finalized() {
		return errorx.Conflict("Order already verified.")
	}

	if err := order.RecordPayment(success); err != nil {
		return errorx.Conflict("Order already verified.")
	}
	finalized, err := s.orderModule.FinalizePayment(ctx, orderID, order.Payment)
	if err != nil {
		return errorx.Fault("Error verifying the order", err)
	}
	if !finalized {
		return errorx.Conflict("Order already verified.")
	}

	s.logger.Infof(ctx, "order payment verified: order_id=%s payment=%s", orderID, order.Payment)
	return nil
}
