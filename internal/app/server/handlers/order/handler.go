package order

import (
	"fooddel/backend/internal/app/domains/services/svorder"
	"fooddel/backend/internal/app/pkg/logger"
)

// OrderHandler 订单 HTTP 处理器
type OrderHandler struct {
	orderService *svorder.OrderService
	logger       logger.Logger
}

// NewOrderHandler 创建订单处理器实例
func NewOrderHandler(orderService *svorder.OrderService, logger logger.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		logger:       logger,
	}
}
