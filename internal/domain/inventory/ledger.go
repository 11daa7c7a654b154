package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/xiebiao/catalogstore/internal/domain/catalog"
)

// DefaultMaxRetries 条件更新失败后的默认重试次数
const DefaultMaxRetries = 3

// Result 库存调整结果
type Result struct {
	Item     *catalog.Item
	Entry    *LedgerEntry
	Attempts int

	// EnteredLowStock 本次调整使商品从正常进入低库存
	EnteredLowStock bool
}

// Ledger 库存账本
// 并发控制(防止库存被扣成负数):
// 1. 事务内SELECT ... FOR UPDATE锁定商品行
// 2. UPDATE ... WHERE stock_quantity = 读取值(条件更新兜底)
// 3. 条件更新未命中时整个事务重试,次数用尽返回冲突
// 4. 库存更新与流水写入在同一事务中,要么都成功要么都回滚
type Ledger struct {
	items      catalog.Repository
	entries    Repository
	tx         catalog.Transactor
	maxRetries int
	now        func() time.Time
}

// NewLedger 创建库存账本
func NewLedger(items catalog.Repository, entries Repository, tx catalog.Transactor, maxRetries int) *Ledger {
	if maxRetries < 0 {
		maxRetries = DefaultMaxRetries
	}
	return &Ledger{
		items:      items,
		entries:    entries,
		tx:         tx,
		maxRetries: maxRetries,
		now:        time.Now,
	}
}

// AdjustStock 调整库存并记录流水
func (l *Ledger) AdjustStock(ctx context.Context, scope catalog.Scope, itemID uuid.UUID, adj StockAdjustment) (*Result, error) {
	if err := adj.Validate(); err != nil {
		return nil, err
	}
	adj.Operation, _ = ParseOperation(string(adj.Operation))

	for attempt := 1; ; attempt++ {
		res, err := l.adjustOnce(ctx, scope, itemID, adj)
		if err == nil {
			res.Attempts = attempt
			return res, nil
		}
		if !errors.Is(err, catalog.ErrStockChanged) {
			return nil, err
		}
		if attempt > l.maxRetries {
			return nil, ErrConcurrentUpdate.WithCause(err)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
	}
}

func (l *Ledger) adjustOnce(ctx context.Context, scope catalog.Scope, itemID uuid.UUID, adj StockAdjustment) (*Result, error) {
	var res *Result

	err := l.tx.Transaction(ctx, func(ctx context.Context) error {
		// 1. 锁定商品行(已删除视为不存在)
		item, err := l.items.LockByID(ctx, scope, itemID)
		if err != nil {
			return err
		}
		wasLow := item.IsLowStock()

		// 2. 计算新库存,扣减不足直接拒绝
		now := l.now()
		entry, err := adj.Apply(item.ID, item.StockQuantity, catalog.MaxStockQuantity, now)
		if err != nil {
			return err
		}

		// 3. 条件更新库存
		expected := item.StockQuantity
		item.SetStock(entry.NewStock, now)
		if err := l.items.UpdateStock(ctx, item, expected); err != nil {
			return err
		}

		// 4. 同一事务写入流水
		if err := l.entries.Create(ctx, entry); err != nil {
			return err
		}

		res = &Result{
			Item:            item,
			Entry:           entry,
			EnteredLowStock: !wasLow && item.IsLowStock(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

// LowStock 低库存商品
// threshold为nil时按各商品自己的低库存阈值比较
func (l *Ledger) LowStock(ctx context.Context, scope catalog.Scope, threshold *int) ([]*catalog.Item, error) {
	if threshold != nil && *threshold < 0 {
		return nil, ErrInvalidThreshold
	}
	return l.items.FindLowStock(ctx, scope, threshold)
}

// History 商品的库存流水,最新的在前
func (l *Ledger) History(ctx context.Context, scope catalog.Scope, itemID uuid.UUID, page, limit int) (*catalog.Page[*LedgerEntry], error) {
	if _, err := l.items.FindByID(ctx, scope, itemID); err != nil {
		return nil, err
	}

	if page < 1 {
		page = catalog.DefaultPage
	}
	switch {
	case limit < 1:
		limit = catalog.DefaultLimit
	case limit > catalog.MaxLimit:
		limit = catalog.MaxLimit
	}

	entries, total, err := l.entries.ListByItem(ctx, itemID, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*LedgerEntry{}
	}

	return &catalog.Page[*LedgerEntry]{
		Items:      entries,
		Pagination: catalog.NewPagination(page, limit, total),
	}, nil
}
