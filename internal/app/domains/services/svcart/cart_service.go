package svcart

import (
	"context"

	"fooddel/backend/internal/app/domains/modules/mduser"
	"fooddel/backend/internal/app/pkg/errorx"
)

// CartService 购物车服务
// 购物车数据挂在用户记录下，下单成功后由订单事务整体清空
type CartService struct {
	userModule *mduser.UserModule
}

// NewCartService 创建购物车服务实例
func NewCartService(userModule *mduser.UserModule) *CartService {
	return &CartService{
		userModule: userModule,
	}
}

// AddToCart 加购一件商品
func (s *CartService) AddToCart(ctx context.Context, userID int64, itemID string) error {
	if itemID == "" {
		return errorx.Validation("Missing parameters.")
	}

	user, err := s.userModule.GetUser(ctx, userID)
	if err != nil {
		return errorx.Fault("Error adding to cart", err)
	}
	if user == nil {
		return errorx.NotFound("User not found.")
	}

	user.AddToCart(itemID)
	if err := s.userModule.UpdateCart(ctx, userID, user.CartData); err != nil {
		return errorx.Fault("Error adding to cart", err)
	}
	return nil
}

// RemoveFromCart 减购一件商品
func (s *CartService) RemoveFromCart(ctx context.Context, userID int64, itemID string) error {
	if itemID == "" {
		return errorx.Validation("Missing parameters.")
	}

	user, err := s.userModule.GetUser(ctx, userID)
	if err != nil {
		return errorx.Fault("Error removing from cart", err)
	}
	if user == nil {
		return errorx.NotFound("User not found.")
	}

	user.RemoveFromCart(itemID)
	if err := s.userModule.UpdateCart(ctx, userID, user.CartData); err != nil {
		return errorx.Fault("Error removing from cart", err)
	}
	return nil
}

// GetCart 查询购物车
func (s *CartService) GetCart(ctx context.Context, userID int64) (map[string]int, error) {
	user, err := s.userModule.GetUser(ctx, userID)
	if err != nil {
		return nil, errorx.Fault("Error fetching cart", err)
	}
	if user == nil {
		return nil, errorx.NotFound("User not found.")
	}
	if user.CartData == nil {
		return map[string]int{}, nil
	}
	return user.CartData, nil
}
