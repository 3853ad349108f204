package response

import "time"

// OrderResponse 订单响应（DTO）
// date/updatedAt 供管理端排序、分组与缓存失效判断使用
type OrderResponse struct {
	ID        string          `json:"_id"`
	UserID    int64           `json:"userId"`
	Items     []*ItemResponse `json:"items"`
	Amount    float64         `json:"amount"`
	Address   *AddressDTO     `json:"address"`
	Status    string          `json:"status"`
	Payment   string          `json:"payment"`
	Date      time.Time       `json:"date"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// ItemResponse 商品明细（DTO）
type ItemResponse struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// AddressDTO 地址（DTO）
type AddressDTO struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	Country   string `json:"country"`
	Zipcode   string `json:"zipcode"`
	Phone     string `json:"phone"`
}
