package entity

import (
	"time"

	"gorm.io/datatypes"
)

// User 用户持久化实体
type User struct {
	ID           int64          `gorm:"column:id;primaryKey"`
	Name         string         `gorm:"column:name;type:varchar(255);not null"`
	Email        string         `gorm:"column:email;type:varchar(255);uniqueIndex:uk_email;not null"`
	PasswordHash string         `gorm:"column:password_hash;type:varchar(255);not null"`
	CartData     datatypes.JSON `gorm:"column:cart_data;type:json"`
	CreatedAt    time.Time      `gorm:"column:created_at;not null"`
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
