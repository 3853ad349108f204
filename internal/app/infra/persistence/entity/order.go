package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Order 订单持久化实体
type Order struct {
	// 基础字段
	ID     string `gorm:"column:id;primaryKey;type:varchar(64)"`
	UserID int64  `gorm:"column:user_id;not null;index:idx_user_id"`

	// 订单数据（创建后不可变）
	Items   datatypes.JSON `gorm:"column:items;type:json;not null"`
	Amount  string         `gorm:"column:amount;type:decimal(10,2);not null"`
	Address datatypes.JSON `gorm:"column:address;type:json;not null"`

	// 可变状态
	Status  string `gorm:"column:status;type:varchar(32);not null;default:'Food Processing'"`
	Payment string `gorm:"column:payment;type:varchar(16);not null;default:'pending'"`

	// 时间戳
	CreatedAt time.Time `gorm:"column:created_at;not null;index:idx_created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
