package order

import (
	"github.com/gin-gonic/gin"

	"fooddel/backend/internal/app/domains/apimodel/response"
	"fooddel/backend/internal/app/pkg/errorx"
	"fooddel/backend/internal/app/pkg/ginx"
	"fooddel/backend/internal/app/server/middlewares"
)

// UserOrders 当前用户订单列表接口
// GET /api/order/userorders（需要认证）
func (h *OrderHandler) UserOrders(c *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(c)
	if !ok {
		ginx.BadRequest(c, "Missing parameters.")
		return
	}

	orders, err := h.orderService.ListUserOrders(c.Request.Context(), userID)
	if err != nil {
		h.logger.Errorf(c.Request.Context(), "list user orders failed: user_id=%d %s", userID, errorx.Detail(err))
		ginx.FromError(c, err)
		return
	}

	ginx.Success(c, response.FromOrderEntities(orders))
}
