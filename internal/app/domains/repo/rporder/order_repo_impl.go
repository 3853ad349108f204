package rporder

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fooddel/backend/internal/app/domains/entity/etorder"
	"fooddel/backend/internal/app/infra/persistence/entity"
)

// OrderRepositoryImpl 订单仓储实现（MySQL）
type OrderRepositoryImpl struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储实例
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &OrderRepositoryImpl{db: db}
}

// Create 创建订单，将领域对象转换为 GORM 模型后存储
func (r *OrderRepositoryImpl) Create(ctx context.Context, order *etorder.Order) error {
	po, err := r.toGormModel(order)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(po).Error
}

// GetByID 根据ID查询订单，不存在时返回 (nil, nil)
func (r *OrderRepositoryImpl) GetByID(ctx context.Context, orderID string) (*etorder.Order, error) {
	var po entity.Order
	err := r.db.WithContext(ctx).Where("id = ?", orderID).First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.toDomainModel(&po)
}

// List 查询全量订单
func (r *OrderRepositoryImpl) List(ctx context.Context) ([]*etorder.Order, error) {
	var pos []entity.Order
	if err := r.db.WithContext(ctx).Find(&pos).Error; err != nil {
		return nil, err
	}

	orders := make([]*etorder.Order, 0, len(pos))
	for i := range pos {
		order, err := r.toDomainModel(&pos[i])
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// ListByUser 查询指定用户的订单
func (r *OrderRepositoryImpl) ListByUser(ctx context.Context, userID int64) ([]*etorder.Order, error) {
	var pos []entity.Order
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&pos).Error; err != nil {
		return nil, err
	}

	orders := make([]*etorder.Order, 0, len(pos))
	for i := range pos {
		order, err := r.toDomainModel(&pos[i])
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// UpdateStatus 更新配送状态（无条件覆盖，store 层 last-write-wins）
func (r *OrderRepositoryImpl) UpdateStatus(ctx context.Context, orderID string, status etorder.Status) error {
	return r.db.WithContext(ctx).
		Model(&entity.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now(),
		}).Error
}

// FinalizePayment 终结支付核验状态（条件写入）
// 仅当当前状态仍为 pending 时写入，返回是否命中；
// 并发核验下同一订单只有一次写入能命中
func (r *OrderRepositoryImpl) FinalizePayment(ctx context.Context, orderID string, payment etorder.PaymentStatus) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&entity.Order{}).
		Where("id = ? AND payment = ?", orderID, string(etorder.PaymentPending)).
		Updates(map[string]interface{}{
			"payment":    string(payment),
			"updated_at": time.Now(),
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// toGormModel 领域对象转换为 GORM 模型
func (r *OrderRepositoryImpl) toGormModel(order *etorder.Order) (*entity.Order, error) {
	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return nil, err
	}
	addressJSON, err := json.Marshal(order.Address)
	if err != nil {
		return nil, err
	}

	return &entity.Order{
		ID:        order.ID,
		UserID:    order.UserID,
		Items:     itemsJSON,
		Amount:    order.Amount.String(),
		Address:   addressJSON,
		Status:    string(order.Status),
		Payment:   string(order.Payment),
		CreatedAt: order.CreatedAt,
		UpdatedAt: order.UpdatedAt,
	}, nil
}

// toDomainModel GORM 模型转换为领域对象
func (r *OrderRepositoryImpl) toDomainModel(po *entity.Order) (*etorder.Order, error) {
	var items []*etorder.Item
	if err := json.Unmarshal(po.Items, &items); err != nil {
		return nil, err
	}

	var address etorder.Address
	if err := json.Unmarshal(po.Address, &address); err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(po.Amount)
	if err != nil {
		return nil, err
	}

	return &etorder.Order{
		ID:        po.ID,
		UserID:    po.UserID,
		Items:     items,
		Amount:    amount,
		Address:   &address,
		Status:    etorder.Status(po.Status),
		Payment:   etorder.PaymentStatus(po.Payment),
		CreatedAt: po.CreatedAt,
		UpdatedAt: po.UpdatedAt,
	}, nil
}
