package svorder

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fooddel/backend/internal/app/domains/entity/etorder"
	"fooddel/backend/internal/app/domains/modules/mdorder"
	"fooddel/backend/internal/app/domains/repo/rporder"
	"fooddel/backend/internal/app/domains/repo/rpuser"
	"fooddel/backend/internal/app/pkg/errorx"
	"fooddel/backend/internal/app/pkg/logger"
	"fooddel/backend/internal/app/pkg/testutil"
)

func newTestService(t *testing.T, name string) (*OrderService, *mdorder.OrderModule, rpuser.UserRepository, *gorm.DB) {
	t.Helper()

	db := testutil.OpenInMemoryDB(t, name)
	orderRepo := rporder.NewOrderRepository(db)
	userRepo := rpuser.NewUserRepository(db)
	orderModule := mdorder.NewOrderModule(db, orderRepo, userRepo)
	return NewOrderService(orderModule, logger.NopLogger{}), orderModule, userRepo, db
}

func testAddress() *etorder.Address {
	return &etorder.Address{
		FirstName: "John",
		LastName:  "Doe",
		Street:    "123 Main St",
		City:      "San Francisco",
		State:     "CA",
		Country:   "USA",
		Zipcode:   "94102",
		Phone:     "+1-415-555-0100",
	}
}

func TestPlaceOrderClearsCartAndDefaultsStatus(t *testing.T) {
	svc, _, userRepo, db := newTestService(t, "place_order")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user := testutil.CreateTestUser(t, db, "testuser", "place@example.com")

	// 预置非空购物车
	if err := userRepo.UpdateCart(ctx, user.ID, map[string]int{"pizza-margherita": 2}); err != nil {
		t.Fatalf("seed cart: %v", err)
	}

	items := []*etorder.Item{{Name: "Pizza", Quantity: 2}}
	order, err := svc.PlaceOrder(ctx, user.ID, items, decimal.NewFromInt(42), testAddress())
	if err != nil {
		t.Fatalf("place order: %v", err)
	}

	if order.ID == "" {
		t.Fatal("expected non-empty order id")
	}
	if order.Status != etorder.StatusFoodProcessing {
		t.Errorf("new order status = %q, want %q", order.Status, etorder.StatusFoodProcessing)
	}
	if order.Payment != etorder.PaymentPending {
		t.Errorf("new order payment = %q, want %q", order.Payment, etorder.PaymentPending)
	}

	// 下单成功后购物车必为空
	stored, err := userRepo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if len(stored.CartData) != 0 {
		t.Errorf("cart not cleared after place order: %v", stored.CartData)
	}

	// 列表中能查到该订单
	orders, err := svc.ListOrders(ctx)
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	found := false
	for _, o := range orders {
		if o.ID == order.ID {
			found = true
			if o.Status != etorder.StatusFoodProcessing {
				t.Errorf("listed status = %q, want Food Processing", o.Status)
			}
			if !o.Amount.Equal(decimal.NewFromInt(42)) {
				t.Errorf("listed amount = %s, want 42", o.Amount)
			}
		}
	}
	if !found {
		t.Errorf("placed order %s not in list", order.ID)
	}
}

func TestPlaceOrderUnknownUser(t *testing.T) {
	svc, _, _, _ := newTestService(t, "place_unknown_user")
	ctx := context.Background()

	items := []*etorder.Item{{Name: "Pizza", Quantity: 1}}
	_, err := svc.PlaceOrder(ctx, 999999, items, decimal.NewFromInt(10), testAddress())
	if err == nil {
		t.Fatal("expected error for unknown user")
	}
	if errorx.KindOf(err) != errorx.KindNotFound {
		t.Errorf("error kind = %v, want KindNotFound", errorx.KindOf(err))
	}
}

func TestPlaceOrderInvalidQuantity(t *testing.T) {
	svc, _, _, db := newTestService(t, "place_bad_quantity")
	ctx := context.Background()

	user := testutil.CreateTestUser(t, db, "testuser", "qty@example.com")

	items := []*etorder.Item{{Name: "Pizza", Quantity: 0}}
	_, err := svc.PlaceOrder(ctx, user.ID, items, decimal.NewFromInt(10), testAddress())
	if err == nil {
		t.Fatal("expected error for zero quantity")
	}
	if errorx.KindOf(err) != errorx.KindValidation {
		t.Errorf("error kind = %v, want KindValidation", errorx.KindOf(err))
	}
}

func placeTestOrder(t *testing.T, svc *OrderService, userID int64) *etorder.Order {
	t.Helper()
	items := []*etorder.Item{{Name: "Pizza", Quantity: 2}}
	order, err := svc.PlaceOrder(context.Background(), userID, items, decimal.NewFromInt(42), testAddress())
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	return order
}

func TestUpdateStatusIdempotentAndUnrestricted(t *testing.T) {
	svc, orderModule, _, db := newTestService(t, "update_status")
	ctx := context.Background()

	user := testutil.CreateTestUser(t, db, "testuser", "status@example.com")
	order := placeTestOrder(t, svc, user.ID)

	// 同一取值重复提交，两次均成功
	for i := 0; i < 2; i++ {
		if err := svc.UpdateStatus(ctx, order.ID, "Out for delivery"); err != nil {
			t.Fatalf("update status attempt %d: %v", i+1, err)
		}
	}
	got, _ := orderModule.GetOrder(ctx, order.ID)
	if got.Status != etorder.StatusOutForDelivery {
		t.Errorf("status = %q, want Out for delivery", got.Status)
	}

	// 继续转移到 Cancelled，最终以最后一次写入为准
	if err := svc.UpdateStatus(ctx, order.ID, "Cancelled"); err != nil {
		t.Fatalf("update to Cancelled: %v", err)
	}
	// 逆向转移同样被接受
	if err := svc.UpdateStatus(ctx, order.ID, "Food Processing"); err != nil {
		t.Fatalf("backward transition: %v", err)
	}
	got, _ = orderModule.GetOrder(ctx, order.ID)
	if got.Status != etorder.StatusFoodProcessing {
		t.Errorf("status = %q, want Food Processing after backward transition", got.Status)
	}
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	svc, orderModule, _, db := newTestService(t, "update_status_unknown")
	ctx := context.Background()

	user := testutil.CreateTestUser(t, db, "testuser", "unknown@example.com")
	order := placeTestOrder(t, svc, user.ID)

	err := svc.UpdateStatus(ctx, order.ID, "Teleported")
	if err == nil {
		t.Fatal("expected validation error for unknown status")
	}
	if errorx.KindOf(err) != errorx.KindValidation {
		t.Errorf("error kind = %v, want KindValidation", errorx.KindOf(err))
	}

	// 非法取值不落库
	got, _ := orderModule.GetOrder(ctx, order.ID)
	if got.Status != etorder.StatusFoodProcessing {
		t.Errorf("status mutated to %q by rejected update", got.Status)
	}
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	svc, _, _, _ := newTestService(t, "update_status_missing")

	err := svc.UpdateStatus(context.Background(), "no-such-order", "Delivered")
	if err == nil {
		t.Fatal("expected error for unknown order")
	}
	if errorx.KindOf(err) != errorx.KindNotFound {
		t.Errorf("error kind = %v, want KindNotFound", errorx.KindOf(err))
	}
}

func TestVerifyOrderIdempotencyGuard(t *testing.T) {
	svc, orderModule, _, db := newTestService(t, "verify_order")
	ctx := context.Background()

	user := testutil.CreateTestUser(t, db, "testuser", "verify@example.com")
	order := placeTestOrder(t, svc, user.ID)

	// 缺参
	if err := svc.VerifyOrder(ctx, "", true); errorx.KindOf(err) != errorx.KindValidation {
		t.Errorf("missing order id: kind = %v, want KindValidation", errorx.KindOf(err))
	}
	// 未知订单
	if err := svc.VerifyOrder(ctx, "no-such-order", true); errorx.KindOf(err) != errorx.KindNotFound {
		t.Errorf("unknown order: kind = %v, want KindNotFound", errorx.KindOf(err))
	}

	// 首次核验成功并记录结果
	if err := svc.VerifyOrder(ctx, order.ID, true); err != nil {
		t.Fatalf("first verify: %v", err)
	}
	got, _ := orderModule.GetOrder(ctx, order.ID)
	if got.Payment != etorder.PaymentVerified {
		t.Errorf("payment = %q, want verified", got.Payment)
	}

	// 再次核验冲突，结果不被重复施加
	err := svc.VerifyOrder(ctx, order.ID, false)
	if err == nil {
		t.Fatal("expected conflict on re-verify")
	}
	if errorx.KindOf(err) != errorx.KindConflict {
		t.Errorf("re-verify kind = %v, want KindConflict", errorx.KindOf(err))
	}
	got, _ = orderModule.GetOrder(ctx, order.ID)
	if got.Payment != etorder.PaymentVerified {
		t.Errorf("payment mutated to %q by conflicting verify", got.Payment)
	}
}

func TestVerifyOrderInterleavedWritersSingleWinner(t *testing.T) {
	svc, orderModule, _, db := newTestService(t, "verify_interleaved")
	ctx := context.Background()

	user := testutil.CreateTestUser(t, db, "testuser", "interleave@example.com")
	order := placeTestOrder(t, svc, user.ID)

	// 模拟两个管理端同时核验：双方都读到 pending 后先后落盘。
	// 条件写入保证只有第一笔命中，第二笔不得覆盖已终结的结果
	winner, err := orderModule.FinalizePayment(ctx, order.ID, etorder.PaymentVerified)
	if err != nil {
		t.Fatalf("first finalize: %v", err)
	}
	if !winner {
		t.Fatal("first finalize did not hit the pending row")
	}

	loser, err := orderModule.FinalizePayment(ctx, order.ID, etorder.PaymentFailed)
	if err != nil {
		t.Fatalf("second finalize: %v", err)
	}
	if loser {
		t.Error("second finalize overwrote a finalized payment")
	}

	got, _ := orderModule.GetOrder(ctx, order.ID)
	if got.Payment != etorder.PaymentVerified {
		t.Errorf("payment = %q, want verified to survive the race", got.Payment)
	}
}

func TestVerifyOrderIndependentOfDeliveryStatus(t *testing.T) {
	svc, _, _, db := newTestService(t, "verify_independent")
	ctx := context.Background()

	user := testutil.CreateTestUser(t, db, "testuser", "independent@example.com")
	order := placeTestOrder(t, svc, user.ID)

	// 走遍配送状态全集，均不影响支付核验
	for _, status := range []string{"Out for delivery", "Delivered", "Cancelled", "Food Processing"} {
		if err := svc.UpdateStatus(ctx, order.ID, status); err != nil {
			t.Fatalf("update status %q: %v", status, err)
		}
	}

	if err := svc.VerifyOrder(ctx, order.ID, true); err != nil {
		t.Errorf("verify after delivery transitions: %v", err)
	}
}

func TestVerifyOrderRecordsFailure(t *testing.T) {
	svc, orderModule, _, db := newTestService(t, "verify_failure")
	ctx := context.Background()

	user := testutil.CreateTestUser(t, db, "testuser", "failure@example.com")
	order := placeTestOrder(t, svc, user.ID)

	if err := svc.VerifyOrder(ctx, order.ID, false); err != nil {
		t.Fatalf("verify with failure: %v", err)
	}
	got, _ := orderModule.GetOrder(ctx, order.ID)
	if got.Payment != etorder.PaymentFailed {
		t.Errorf("payment = %q, want failed", got.Payment)
	}

	// 失败同样是终结态
	if err := svc.VerifyOrder(ctx, order.ID, true); errorx.KindOf(err) != errorx.KindConflict {
		t.Errorf("verify after failure: kind = %v, want KindConflict", errorx.KindOf(err))
	}
}

func TestListUserOrders(t *testing.T) {
	svc, _, _, db := newTestService(t, "list_user_orders")
	ctx := context.Background()

	alice := testutil.CreateTestUser(t, db, "alice", "alice@example.com")
	bob := testutil.CreateTestUser(t, db, "bob", "bob@example.com")

	placeTestOrder(t, svc, alice.ID)
	placeTestOrder(t, svc, alice.ID)
	placeTestOrder(t, svc, bob.ID)

	orders, err := svc.ListUserOrders(ctx, alice.ID)
	if err != nil {
		t.Fatalf("list user orders: %v", err)
	}
	if len(orders) != 2 {
		t.Errorf("alice order count = %d, want 2", len(orders))
	}
	for _, o := range orders {
		if o.UserID != alice.ID {
			t.Errorf("foreign order %s in alice's list", o.ID)
		}
	}
}
