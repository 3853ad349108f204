package order

import (
	"github.com/gin-gonic/gin"

	"fooddel/backend/internal/app/domains/apimodel/request"
	"fooddel/backend/internal/app/pkg/errorx"
	"fooddel/backend/internal/app/pkg/ginx"
)

// UpdateStatus 配送状态变更接口（管理端）
// POST /api/order/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	if err := h.orderService.UpdateStatus(c.Request.Context(), req.OrderID, req.Status); err != nil {
		h.logger.Errorf(c.Request.Context(), "update status failed: order_id=%s %s", req.OrderID, errorx.Detail(err))
		ginx.FromError(c, err)
		return
	}

	ginx.SuccessMessage(c, "Status updated")
}
