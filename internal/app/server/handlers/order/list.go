package order

import (
	"github.com/gin-gonic/gin"

	"fooddel/backend/internal/app/domains/apimodel/response"
	"fooddel/backend/internal/app/pkg/errorx"
	"fooddel/backend/internal/app/pkg/ginx"
)

// List 全量订单列表接口（管理端）
// GET /api/order/list
// 不做服务端排序，排序与分组由管理端视图负责
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orderService.ListOrders(c.Request.Context())
	if err != nil {
		h.logger.Errorf(c.Request.Context(), "list orders failed: %s", errorx.Detail(err))
		ginx.FromError(c, err)
		return
	}

	ginx.Success(c, response.FromOrderEntities(orders))
}
