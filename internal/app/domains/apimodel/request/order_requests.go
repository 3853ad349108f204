package request

// PlaceOrderRequest 下单请求
type PlaceOrderRequest struct {
	UserID  int64    `json:"userId" binding:"required" example:"175010001001"`
	Items   []*Item  `json:"items" binding:"required,min=1,dive"`
	Amount  float64  `json:"amount" binding:"required,gt=0" example:"42"`
	Address *Address `json:"address" binding:"required"`
}

// Item 商品明细
type Item struct {
	Name     string `json:"name" binding:"required" example:"Pizza"`
	Quantity int    `json:"quantity" binding:"required,gt=0" example:"2"`
}

// Address 收货地址
type Address struct {
	FirstName string `json:"firstName" binding:"required" example:"John"`
	LastName  string `json:"lastName" example:"Doe"`
	Street    string `json:"street" binding:"required" example:"123 Main St"`
	City      string `json:"city" binding:"required" example:"San Francisco"`
	State     string `json:"state" example:"CA"`
	Country   string `json:"country" binding:"required" example:"USA"`
	Zipcode   string `json:"zipcode" binding:"required" example:"94102"`
	Phone     string `json:"phone" example:"+1-415-555-0100"`
}

// UpdateStatusRequest 配送状态变更请求
type UpdateStatusRequest struct {
	OrderID string `json:"orderId" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	Status  string `json:"status" binding:"required" example:"Out for delivery"`
}

// VerifyOrderRequest 支付核验请求
// Success 使用指针以区分 false 与字段缺失
type VerifyOrderRequest struct {
	OrderID string `json:"orderId" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	Success *bool  `json:"success" binding:"required" example:"true"`
}
