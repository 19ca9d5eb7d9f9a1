package domain

import "context"

// BloomRepository 维护已创建帖子 ID 的布隆过滤器
type BloomRepository interface {
	// Add 将新帖子 ID 加入过滤器
	Add(ctx context.Context, id int64) error

	// Exists 检查帖子 ID 是否可能存在
	// 返回 true: 可能存在 (需要进一步查 Cache/DB)
	// 返回 false: 绝对不存在 (直接返回 404)
	Exists(ctx context.Context, id int64) (bool, error)

	// BulkAdd 启动时批量导入已有的帖子 ID
	BulkAdd(ctx context.Context, ids []int64) error
}
