package statuscache

import "time"

// Entry 单条状态覆盖记录
// SeenAt 为写入时观察到的服务端 updated_at：合并时服务端记录更新则该条目作废，
// 覆盖策略为"最近写入者生效"而非"缓存恒生效"
type Entry struct {
	Status string    `json:"status"`
	SeenAt time.Time `json:"seen_at"`
}

// Store 按订单ID索引的状态覆盖存储
// 以显式依赖注入，便于在测试中替换和重置
type Store interface {
	// Get 读取缓存条目
	Get(orderID string) (Entry, bool)

	// Put 写入缓存条目并持久化
	Put(orderID string, entry Entry) error

	// Delete 删除缓存条目
	Delete(orderID string) error
}
