package request

import (
	"github.com/shopspring/decimal"

	"fooddel/backend/internal/app/domains/entity/etorder"
)

// ToItemEntities 请求 DTO 转换为商品明细领域对象
func (r *PlaceOrderRequest) ToItemEntities() []*etorder.Item {
	items := make([]*etorder.Item, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, &etorder.Item{
			Name:     item.Name,
			Quantity: item.Quantity,
		})
	}
	return items
}

// ToAddressEntity 请求 DTO 转换为地址领域对象
func (r *PlaceOrderRequest) ToAddressEntity() *etorder.Address {
	if r.Address == nil {
		return nil
	}
	return &etorder.Address{
		FirstName: r.Address.FirstName,
		LastName:  r.Address.LastName,
		Street:    r.Address.Street,
		City:      r.Address.City,
		State:     r.Address.State,
		Country:   r.Address.Country,
		Zipcode:   r.Address.Zipcode,
		Phone:     r.Address.Phone,
	}
}

// ToAmount 请求金额转换为 decimal
func (r *PlaceOrderRequest) ToAmount() decimal.Decimal {
	return decimal.NewFromFloat(r.Amount)
}
