package inventory

import (
	"context"

	"github.com/google/uuid"
)

// Repository 库存流水仓储接口
type Repository interface {
	// Create 追加流水,在库存更新的同一事务中调用
	Create(ctx context.Context, entry *LedgerEntry) error

	// ListByItem 按时间倒序分页查询
	ListByItem(ctx context.Context, itemID uuid.UUID, offset, limit int) ([]*LedgerEntry, int64, error)
}
