package routers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"fooddel/backend/internal/app/domains/modules/mdorder"
	"fooddel/backend/internal/app/domains/modules/mduser"
	"fooddel/backend/internal/app/domains/repo/rporder"
	"fooddel/backend/internal/app/domains/repo/rpuser"
	"fooddel/backend/internal/app/domains/services/svcart"
	"fooddel/backend/internal/app/domains/services/svorder"
	"fooddel/backend/internal/app/domains/services/svuser"
	"fooddel/backend/internal/app/pkg/logger"
	"fooddel/backend/internal/app/pkg/testutil"
	"fooddel/backend/internal/app/server/handlers/cart"
	"fooddel/backend/internal/app/server/handlers/order"
	"fooddel/backend/internal/app/server/handlers/user"
)

const testSecret = "router-test-secret"

type testEnv struct {
	engine   *gin.Engine
	otpStore *testutil.FakeOTPStore
}

func newTestEnv(t *testing.T, name string) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.OpenInMemoryDB(t, name)
	orderRepo := rporder.NewOrderRepository(db)
	userRepo := rpuser.NewUserRepository(db)
	orderModule := mdorder.NewOrderModule(db, orderRepo, userRepo)
	userModule := mduser.NewUserModule(userRepo)

	log := logger.NopLogger{}
	otpStore := testutil.NewFakeOTPStore()

	orderHandler := order.NewOrderHandler(svorder.NewOrderService(orderModule, log), log)
	userHandler := user.NewUserHandler(
		svuser.NewUserService(userModule, otpStore, log, testSecret, time.Hour, 5*time.Minute), log)
	cartHandler := cart.NewCartHandler(svcart.NewCartService(userModule), log)

	return &testEnv{
		engine:   SetupRoutes(orderHandler, userHandler, cartHandler, log, testSecret),
		otpStore: otpStore,
	}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)

	var parsed map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return w.Code, parsed
}

func placeOrderBody(userID int64) map[string]interface{} {
	return map[string]interface{}{
		"userId": userID,
		"items":  []map[string]interface{}{{"name": "Pizza", "quantity": 2}},
		"amount": 42,
		"address": map[string]interface{}{
			"firstName": "John",
			"street":    "123 Main St",
			"city":      "San Francisco",
			"country":   "USA",
			"zipcode":   "94102",
		},
	}
}

func TestPlaceOrderEndpoint(t *testing.T) {
	env := newTestEnv(t, "rt_place")
	db := testutil.OpenInMemoryDB(t, "rt_place")
	u := testutil.CreateTestUser(t, db, "router", "rt-place@example.com")

	code, resp := env.do(t, http.MethodPost, "/api/order/place", "", placeOrderBody(u.ID))
	if code != http.StatusOK {
		t.Fatalf("status = %d, body = %v", code, resp)
	}
	if resp["success"] != true || resp["message"] != "Order placed successfully" {
		t.Errorf("resp = %v", resp)
	}
	orderID, _ := resp["orderId"].(string)
	if orderID == "" {
		t.Fatal("missing orderId in response")
	}

	// 列表接口能看到刚下的单，字段名与前端约定一致
	code, resp = env.do(t, http.MethodGet, "/api/order/list", "", nil)
	if code != http.StatusOK {
		t.Fatalf("list status = %d", code)
	}
	data, _ := resp["data"].([]interface{})
	if len(data) != 1 {
		t.Fatalf("list data = %v", resp)
	}
	record := data[0].(map[string]interface{})
	if record["_id"] != orderID || record["status"] != "Food Processing" {
		t.Errorf("record = %v", record)
	}
}

func TestPlaceOrderMissingParameters(t *testing.T) {
	env := newTestEnv(t, "rt_place_bad")

	code, resp := env.do(t, http.MethodPost, "/api/order/place", "", map[string]interface{}{
		"userId": 1,
	})
	if code != http.StatusBadRequest {
		t.Fatalf("status = %d", code)
	}
	if resp["success"] != false || resp["message"] != "Missing parameters." {
		t.Errorf("resp = %v", resp)
	}
}

func TestUpdateStatusEndpoint(t *testing.T) {
	env := newTestEnv(t, "rt_status")
	db := testutil.OpenInMemoryDB(t, "rt_status")
	u := testutil.CreateTestUser(t, db, "router", "rt-status@example.com")

	_, resp := env.do(t, http.MethodPost, "/api/order/place", "", placeOrderBody(u.ID))
	orderID := resp["orderId"].(string)

	code, resp := env.do(t, http.MethodPost, "/api/order/status", "", map[string]interface{}{
		"orderId": orderID,
		"status":  "Out for delivery",
	})
	if code != http.StatusOK || resp["message"] != "Status updated" {
		t.Fatalf("status = %d, resp = %v", code, resp)
	}

	// 未知状态值被拒绝
	code, _ = env.do(t, http.MethodPost, "/api/order/status", "", map[string]interface{}{
		"orderId": orderID,
		"status":  "Teleported",
	})
	if code != http.StatusBadRequest {
		t.Errorf("unknown status code = %d", code)
	}

	// 未知订单
	code, resp = env.do(t, http.MethodPost, "/api/order/status", "", map[string]interface{}{
		"orderId": "no-such-order",
		"status":  "Delivered",
	})
	if code != http.StatusNotFound || resp["message"] != "Order not found." {
		t.Errorf("unknown order: code = %d, resp = %v", code, resp)
	}
}

func TestVerifyOrderEndpoint(t *testing.T) {
	env := newTestEnv(t, "rt_verify")
	db := testutil.OpenInMemoryDB(t, "rt_verify")
	u := testutil.CreateTestUser(t, db, "router", "rt-verify@example.com")

	_, resp := env.do(t, http.MethodPost, "/api/order/place", "", placeOrderBody(u.ID))
	orderID := resp["orderId"].(string)

	code, resp := env.do(t, http.MethodPost, "/api/order/verify", "", map[string]interface{}{
		"orderId": orderID,
		"success": true,
	})
	if code != http.StatusOK || resp["message"] != "Order verification successful." {
		t.Fatalf("verify: code = %d, resp = %v", code, resp)
	}

	// 幂等保护：重复核验被拒
	code, resp = env.do(t, http.MethodPost, "/api/order/verify", "", map[string]interface{}{
		"orderId": orderID,
		"success": true,
	})
	if code != http.StatusBadRequest || resp["message"] != "Order already verified." {
		t.Errorf("re-verify: code = %d, resp = %v", code, resp)
	}

	// success 字段缺失视为参数错误
	code, resp = env.do(t, http.MethodPost, "/api/order/verify", "", map[string]interface{}{
		"orderId": orderID,
	})
	if code != http.StatusBadRequest || resp["message"] != "Missing parameters." {
		t.Errorf("missing success: code = %d, resp = %v", code, resp)
	}
}

func TestAuthFlowAndCart(t *testing.T) {
	env := newTestEnv(t, "rt_auth")

	// 未带 token 的购物车请求被拒
	code, resp := env.do(t, http.MethodGet, "/api/cart/get", "", nil)
	if code != http.StatusUnauthorized || resp["message"] != "Not authorized. Please login again." {
		t.Fatalf("unauthenticated: code = %d, resp = %v", code, resp)
	}

	email := "rt-auth@example.com"
	code, _ = env.do(t, http.MethodPost, "/api/user/register", "", map[string]interface{}{
		"name":     "Router Tester",
		"email":    email,
		"password": "s3cret-pass",
	})
	if code != http.StatusOK {
		t.Fatalf("register code = %d", code)
	}

	code, resp = env.do(t, http.MethodPost, "/api/user/otp", "", map[string]interface{}{
		"email":    email,
		"password": "s3cret-pass",
		"otp":      env.otpStore.Codes[email],
	})
	if code != http.StatusOK {
		t.Fatalf("otp code = %d, resp = %v", code, resp)
	}
	token, _ := resp["userToken"].(string)
	if token == "" {
		t.Fatal("missing userToken")
	}

	// 加购两次同一商品后查询
	for i := 0; i < 2; i++ {
		code, resp = env.do(t, http.MethodPost, "/api/cart/add", token, map[string]interface{}{
			"itemId": "pizza-margherita",
		})
		if code != http.StatusOK {
			t.Fatalf("add #%d: code = %d, resp = %v", i, code, resp)
		}
	}

	code, resp = env.do(t, http.MethodGet, "/api/cart/get", token, nil)
	if code != http.StatusOK {
		t.Fatalf("get cart code = %d", code)
	}
	data := resp["data"].(map[string]interface{})
	cartData := data["cartData"].(map[string]interface{})
	if fmt.Sprint(cartData["pizza-margherita"]) != "2" {
		t.Errorf("cartData = %v", cartData)
	}
}

func TestHealthEndpoint(t *testing.T) {
	env := newTestEnv(t, "rt_health")

	code, resp := env.do(t, http.MethodGet, "/health", "", nil)
	if code != http.StatusOK || resp["status"] != "ok" {
		t.Errorf("health: code = %d, resp = %v", code, resp)
	}
}
