package response

import (
	"fooddel/backend/internal/app/domains/entity/etorder"
)

// FromOrderEntity 从领域对象转换为响应 DTO
func FromOrderEntity(order *etorder.Order) *OrderResponse {
	items := make([]*ItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, &ItemResponse{
			Name:     item.Name,
			Quantity: item.Quantity,
		})
	}

	amount, _ := order.Amount.Float64()

	resp := &OrderResponse{
		ID:        order.ID,
		UserID:    order.UserID,
		Items:     items,
		Amount:    amount,
		Status:    string(order.Status),
		Payment:   string(order.Payment),
		Date:      order.CreatedAt,
		UpdatedAt: order.UpdatedAt,
	}

	if order.Address != nil {
		resp.Address = &AddressDTO{
			FirstName: order.Address.FirstName,
			LastName:  order.Address.LastName,
			Street:    order.Address.Street,
			City:      order.Address.City,
			State:     order.Address.State,
			Country:   order.Address.Country,
			Zipcode:   order.Address.Zipcode,
			Phone:     order.Address.Phone,
		}
	}

	return resp
}

// FromOrderEntities 批量转换
func FromOrderEntities(orders []*etorder.Order) []*OrderResponse {
	resps := make([]*OrderResponse, 0, len(orders))
	for _, order := range orders {
		resps = append(resps, FromOrderEntity(order))
	}
	return resps
}
