package order

import (
	"github.com/gin-gonic/gin"

	"fooddel/backend/internal/app/domains/apimodel/request"
	"fooddel/backend/internal/app/pkg/errorx"
	"fooddel/backend/internal/app/pkg/ginx"
)

// Verify 支付核验接口
// POST /api/order/verify
func (h *OrderHandler) Verify(c *gin.Context) {
	var req request.VerifyOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	if err := h.orderService.VerifyOrder(c.Request.Context(), req.OrderID, *req.Success); err != nil {
		h.logger.Errorf(c.Request.Context(), "verify order failed: order_id=%s %s", req.OrderID, errorx.Detail(err))
		ginx.FromError(c, err)
		return
	}

	ginx.SuccessMessage(c, "Order verification successful.")
}
