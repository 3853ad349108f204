package etorder

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// 错误定义
var (
	ErrInvalidOrderID  = errors.New("order ID cannot be empty")
	ErrInvalidUserID   = errors.New("invalid user ID")
	ErrEmptyItems      = errors.New("order items cannot be empty")
	ErrInvalidQuantity = errors.New("item quantity must be positive")
	ErrInvalidAddress  = errors.New("invalid address data")
)

// Status 配送状态
// 配送状态是封闭集合，只能通过 ParseStatus 校验后写入
type Status string

const (
	StatusFoodProcessing Status = "Food Processing"
	StatusOutForDelivery Status = "Out for delivery"
	StatusDelivered      Status = "Delivered"
	StatusCancelled      Status = "Cancelled"
)

// ParseStatus 校验配送状态取值，未知值返回错误
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusFoodProcessing, StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown order status: %q", s)
}

// PaymentStatus 支付核验状态
// 与配送状态是相互独立的值空间：核验不改变配送进度
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentVerified PaymentStatus = "verified"
	PaymentFailed   PaymentStatus = "failed"
)

// Finalized 支付核验是否已终结（终结后再次核验视为冲突）
func (p PaymentStatus) Finalized() bool {
	return p == PaymentVerified || p == PaymentFailed
}

// Order 订单聚合根（领域对象）
// 身份、items、amount、address、date 创建后不可变，仅状态字段可变
type Order struct {
	ID        string          // 订单ID (UUID)
	UserID    int64           // 下单用户ID
	Items     []*Item         // 商品明细
	Amount    decimal.Decimal // 订单总额
	Address   *Address        // 收货地址
	Status    Status          // 配送状态
	Payment   PaymentStatus   // 支付核验状态
	CreatedAt time.Time       // 下单时间（排序与分组主键）
	UpdatedAt time.Time       // 更新时间
}

// Item 商品明细（值对象）
type Item struct {
	Name     string
	Quantity int
}

// Address 收货地址（值对象）
type Address struct {
	FirstName string
	LastName  string
	Street    string
	City      string
	State     string
	Country   string
	Zipcode   string
	Phone     string
}

// NewOrder 创建订单（工厂方法）
// 新订单配送状态固定为 Food Processing，支付核验状态为 pending
func NewOrder(id string, userID int64, items []*Item, amount decimal.Decimal, address *Address) (*Order, error) {
	// 业务规则校验
	if id == "" {
		return nil, ErrInvalidOrderID
	}
	if userID <= 0 {
		return nil, ErrInvalidUserID
	}
	if len(items) == 0 {
		return nil, ErrEmptyItems
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
	}
	if address == nil {
		return nil, ErrInvalidAddress
	}

	now := time.Now()
	return &Order{
		ID:        id,
		UserID:    userID,
		Items:     items,
		Amount:    amount,
		Address:   address,
		Status:    StatusFoodProcessing,
		Payment:   PaymentPending,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// SetStatus 更新配送状态（领域行为）
// 不限制转移方向，任何合法取值间的转移都被接受
func (o *Order) SetStatus(status Status) {
	o.Status = status
	o.UpdatedAt = time.Now()
}

// RecordPayment 记录支付核验结果（领域行为）
// 仅允许从 pending 终结一次
func (o *Order) RecordPayment(success bool) error {
	if o.Payment.Finalized() {
		return errors.New("payment already finalized")
	}
	if success {
		o.Payment = PaymentVerified
	} else {
		o.Payment = PaymentFailed
	}
	o.UpdatedAt = time.Now()
	return nil
}
