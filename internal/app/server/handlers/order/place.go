package order

import (
	"github.com/gin-gonic/gin"

	"fooddel/backend/internal/app/domains/apimodel/request"
	"fooddel/backend/internal/app/pkg/errorx"
	"fooddel/backend/internal/app/pkg/ginx"
)

// Place 下单接口
// POST /api/order/place
func (h *OrderHandler) Place(c *gin.Context) {
	var req request.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	order, err := h.orderService.PlaceOrder(
		c.Request.Context(),
		req.UserID,
		req.ToItemEntities(),
		req.ToAmount(),
		req.ToAddressEntity(),
	)
	if err != nil {
		h.logger.Errorf(c.Request.Context(), "place order failed: %s", errorx.Detail(err))
		ginx.FromError(c, err)
		return
	}

	ginx.SuccessOrder(c, "Order placed successfully", order.ID)
}
