package cart

import (
	"github.com/gin-gonic/gin"

	"fooddel/backend/internal/app/domains/apimodel/request"
	"fooddel/backend/internal/app/domains/services/svcart"
	"fooddel/backend/internal/app/pkg/errorx"
	"fooddel/backend/internal/app/pkg/ginx"
	"fooddel/backend/internal/app/pkg/logger"
	"fooddel/backend/internal/app/server/middlewares"
)

// CartHandler 购物车 HTTP 处理器
type CartHandler struct {
	cartService *svcart.CartService
	logger      logger.Logger
}

// NewCartHandler 创建购物车处理器实例
func NewCartHandler(cartService *svcart.CartService, logger logger.Logger) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		logger:      logger,
	}
}

// Add 加购接口
// POST /api/cart/add（需要认证）
func (h *CartHandler) Add(c *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(c)
	if !ok {
		ginx.BadRequest(c, "Missing parameters.")
		return
	}

	var req request.CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	if err := h.cartService.AddToCart(c.Request.Context(), userID, req.ItemID); err != nil {
		h.logger.Errorf(c.Request.Context(), "add to cart failed: user_id=%d %s", userID, errorx.Detail(err))
		ginx.FromError(c, err)
		return
	}

	ginx.SuccessMessage(c, "Added to cart")
}

// Remove 减购接口
// POST /api/cart/remove（需要认证）
func (h *CartHandler) Remove(c *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(c)
	if !ok {
		ginx.BadRequest(c, "Missing parameters.")
		return
	}

	var req request.CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	if err := h.cartService.RemoveFromCart(c.Request.Context(), userID, req.ItemID); err != nil {
		h.logger.Errorf(c.Request.Context(), "remove from cart failed: user_id=%d %s", userID, errorx.Detail(err))
		ginx.FromError(c, err)
		return
	}

	ginx.SuccessMessage(c, "Removed from cart")
}

// Get 购物车查询接口
// GET /api/cart/get（需要认证）
func (h *CartHandler) Get(c *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(c)
	if !ok {
		ginx.BadRequest(c, "Missing parameters.")
		return
	}

	cartData, err := h.cartService.GetCart(c.Request.Context(), userID)
	if err != nil {
		h.logger.Errorf(c.Request.Context(), "get cart failed: user_id=%d %s", userID, errorx.Detail(err))
		ginx.FromError(c, err)
		return
	}

	ginx.Success(c, gin.H{"cartData": cartData})
}
