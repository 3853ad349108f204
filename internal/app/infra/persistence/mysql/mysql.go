package mysql

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"fooddel/backend/internal/app/infra/persistence/entity"
)

// Open 建立 MySQL 连接并执行表结构迁移
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open mysql failed: %w", err)
	}

	if err := db.AutoMigrate(&entity.Order{}, &entity.User{}); err != nil {
		return nil, fmt.Errorf("migrate schema failed: %w", err)
	}

	return db, nil
}
