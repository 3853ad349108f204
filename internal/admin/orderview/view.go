package orderview

import (
	"context"
	"sort"
	"time"

	"fooddel/backend/internal/admin/apiclient"
	"fooddel/backend/internal/admin/statuscache"
)

// 展示用的默认配送状态
const defaultStatus = "Food Processing"

// 日期分组与时刻展示格式（日粒度分组键丢弃时刻信息）
const (
	dateFormat = "January 2, 2006"
	timeFormat = "3:04:05 PM"
)

// OrderAPI 订单服务访问接口
type OrderAPI interface {
	ListOrders(ctx context.Context) ([]*apiclient.Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) error
}

// Notifier 一次性非阻塞通知（toast 语义）
type Notifier interface {
	Success(message string)
	Error(message string)
}

// DisplayOrder 合并缓存后的展示记录
type DisplayOrder struct {
	Order     *apiclient.Order
	Displayed string // 合并后的展示状态
	TimeOfDay string // 下单时刻（独立于日期分组键）
}

// DateGroup 按日聚合的订单组
type DateGroup struct {
	Date   string
	Orders []*DisplayOrder
}

// View 管理端订单视图
// 组合订单服务输出与本地状态覆盖缓存，产出排序、分组后的展示序列
type View struct {
	api      OrderAPI
	cache    statuscache.Store
	notifier Notifier

	orders []*DisplayOrder
}

// NewView 创建视图实例，缓存以显式依赖注入
func NewView(api OrderAPI, cache statuscache.Store, notifier Notifier) *View {
	return &View{
		api:      api,
		cache:    cache,
		notifier: notifier,
	}
}

// Refresh 拉取并合并订单列表
// 1. 按下单时间降序稳定排序（同时刻保持服务端返回的相对顺序）
// 2. 展示状态优先级：未过期的缓存条目 > 服务端状态 > 默认值
// 3. 缓存条目早于服务端记录时作废并以服务端值回填（最近写入者生效）
// 4. 首次见到的订单ID以服务端值播种缓存
func (v *View) Refresh(ctx context.Context) error {
	orders, err := v.api.ListOrders(ctx)
	if err != nil {
		v.notifier.Error("Error fetching orders")
		return err
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].Date.After(orders[j].Date)
	})

	merged := make([]*DisplayOrder, 0, len(orders))
	for _, order := range orders {
		displayed, err := v.resolveStatus(order)
		if err != nil {
			v.notifier.Error("Error fetching orders")
			return err
		}
		merged = append(merged, &DisplayOrder{
			Order:     order,
			Displayed: displayed,
			TimeOfDay: order.Date.Format(timeFormat),
		})
	}

	v.orders = merged
	return nil
}

// resolveStatus 单条订单的状态合并
func (v *View) resolveStatus(order *apiclient.Order) (string, error) {
	serverStatus := order.Status
	if serverStatus == "" {
		serverStatus = defaultStatus
	}

	entry, ok := v.cache.Get(order.ID)
	if ok && !order.UpdatedAt.After(entry.SeenAt) {
		// 缓存条目不早于服务端记录，展示覆盖值
		return entry.Status, nil
	}

	// 未见过的ID播种缓存；过期条目以服务端值回填
	if err := v.cache.Put(order.ID, statuscache.Entry{
		Status: serverStatus,
		SeenAt: order.UpdatedAt,
	}); err != nil {
		return "", err
	}
	return serverStatus, nil
}

// Orders 当前持有的展示序列（时间降序）
func (v *View) Orders() []*DisplayOrder {
	return v.orders
}

// ChangeStatus 变更订单配送状态
// 不做乐观更新：仅在服务端确认成功后写缓存并刷新展示值；
// 失败时保留原展示状态，只发一次失败通知，不自动重试
func (v *View) ChangeStatus(ctx context.Context, orderID, status string) error {
	if err := v.api.UpdateStatus(ctx, orderID, status); err != nil {
		v.notifier.Error("Error updating status")
		return err
	}

	if err := v.cache.Put(orderID, statuscache.Entry{
		Status: status,
		SeenAt: time.Now(),
	}); err != nil {
		v.notifier.Error("Error updating status")
		return err
	}

	for _, o := range v.orders {
		if o.Order.ID == orderID {
			o.Displayed = status
			break
		}
	}

	v.notifier.Success("Order status updated")
	return nil
}

// GroupByDate 按日分组
// 分组键为日粒度格式化日期；组的顺序跟随排序序列中的首次出现（最近日期在前），
// 组内保持排序序列的相对顺序
func (v *View) GroupByDate() []*DateGroup {
	groups := make([]*DateGroup, 0)
	index := map[string]*DateGroup{}

	for _, o := range v.orders {
		key := o.Order.Date.Format(dateFormat)
		group, ok := index[key]
		if !ok {
			group = &DateGroup{Date: key}
			index[key] = group
			groups = append(groups, group)
		}
		group.Orders = append(group.Orders, o)
	}

	return groups
}
