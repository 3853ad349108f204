package idgen

import (
	"sync"
	"time"
)

// SnowflakeIDGenerator 简化的雪花ID生成器，用于用户ID
// ID格式: 时间戳(10位) + 节点ID(2位) + 序列号(3位) = 15位数字
// 秒级时间戳足够覆盖注册场景，节点ID区分多实例部署
type SnowflakeIDGenerator struct {
	mu       sync.Mutex
	epoch    int64 // 起始时间戳 (2025-01-01 00:00:00)
	nodeID   int64 // 节点ID (0-99)
	sequence int64 // 序列号 (0-999)
	lastTime int64 // 上次生成ID的时间戳
}

const (
	maxNodeID   = 99  // 最大节点ID，支持100个服务实例
	maxSequence = 999 // 最大序列号，每节点每秒1000次注册
)

// NewSnowflakeIDGenerator 创建ID生成器
// nodeID: 节点ID，范围 0-99，越界时归零
func NewSnowflakeIDGenerator(nodeID int64) *SnowflakeIDGenerator {
	if nodeID < 0 || nodeID > maxNodeID {
		nodeID = 0
	}

	// 起始时间取服务上线年份，压缩时间戳段长度
	epoch := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).Unix()

	return &SnowflakeIDGenerator{
		epoch:    epoch,
		nodeID:   nodeID,
		sequence: 0,
		lastTime: 0,
	}
}

// NextID 生成下一个ID
func (g *SnowflakeIDGenerator) NextID() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := time.Now().Unix()

	if now == g.lastTime {
		g.sequence = (g.sequence + 1) % (maxSequence + 1)
		if g.sequence == 0 {
			// 当前秒的序列号用尽，自旋到下一秒
			for now <= g.lastTime {
				now = time.Now().Unix()
			}
		}
	} else {
		g.sequence = 0
	}

	g.lastTime = now

	timestamp := now - g.epoch

	// 十进制拼接，ID在日志里可读：秒偏移|节点|序列
	id := timestamp*100000 + g.nodeID*1000 + g.sequence

	return id
}

// 全局默认ID生成器（节点ID为1）
var defaultGenerator = NewSnowflakeIDGenerator(1)

// GenerateID 生成用户ID（使用默认生成器）
func GenerateID() int64 {
	return defaultGenerator.NextID()
}
