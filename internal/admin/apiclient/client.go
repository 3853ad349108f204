package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Order 服务端返回的订单记录
type Order struct {
	ID        string    `json:"_id"`
	UserID    int64     `json:"userId"`
	Items     []Item    `json:"items"`
	Amount    float64   `json:"amount"`
	Address   Address   `json:"address"`
	Status    string    `json:"status"`
	Payment   string    `json:"payment"`
	Date      time.Time `json:"date"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Item 商品明细
type Item struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Address 收货地址
type Address struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	Country   string `json:"country"`
	Zipcode   string `json:"zipcode"`
	Phone     string `json:"phone"`
}

// envelope 服务端统一响应结构
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Client 订单服务 HTTP 客户端（管理端）
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient 创建客户端
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// ListOrders 拉取全量订单列表
// GET /api/order/list
func (c *Client) ListOrders(ctx context.Context) ([]*Order, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/order/list", nil)
	if err != nil {
		return nil, err
	}

	var orders []*Order
	if err := json.Unmarshal(env.Data, &orders); err != nil {
		return nil, fmt.Errorf("decode order list failed: %w", err)
	}
	return orders, nil
}

// UpdateStatus 变更订单配送状态
// POST /api/order/status
func (c *Client) UpdateStatus(ctx context.Context, orderID, status string) error {
	body := map[string]interface{}{
		"orderId": orderID,
		"status":  status,
	}
	_, err := c.do(ctx, http.MethodPost, "/api/order/status", body)
	return err
}

// VerifyOrder 支付核验
// POST /api/order/verify
func (c *Client) VerifyOrder(ctx context.Context, orderID string, success bool) error {
	body := map[string]interface{}{
		"orderId": orderID,
		"success": success,
	}
	_, err := c.do(ctx, http.MethodPost, "/api/order/verify", body)
	return err
}

// do 执行请求并解包统一响应；success=false 或非 2xx 均视为错误
func (c *Client) do(ctx context.Context, method, path string, body interface{}) (*envelope, error) {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode response failed: status=%d %w", resp.StatusCode, err)
	}

	if !env.Success {
		if env.Message == "" {
			return nil, fmt.Errorf("request failed: status=%d", resp.StatusCode)
		}
		return nil, fmt.Errorf("request failed: %s", env.Message)
	}

	return &env, nil
}
