package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/xiebiao/catalogstore/internal/domain/inventory"
)

type ledgerRepository struct {
	s *Store
}

// NewLedgerRepository 创建库存流水仓储(内存)
func NewLedgerRepository(s *Store) inventory.Repository {
	return &ledgerRepository{s: s}
}

func (r *ledgerRepository) Create(ctx context.Context, entry *inventory.LedgerEntry) error {
	cp := *entry
	return r.s.write(ctx, func() error {
		r.s.entries = append(r.s.entries, &cp)
		return nil
	})
}

// ListByItem 追加顺序即时间顺序,倒序遍历得到最新的在前
func (r *ledgerRepository) ListByItem(ctx context.Context, itemID uuid.UUID, offset, limit int) ([]*inventory.LedgerEntry, int64, error) {
	var matched []*inventory.LedgerEntry
	r.s.read(func() {
		for i := len(r.s.entries) - 1; i >= 0; i-- {
			if e := r.s.entries[i]; e.ItemID == itemID {
				cp := *e
				matched = append(matched, &cp)
			}
		}
	})

	total := int64(len(matched))
	if offset >= len(matched) {
		return []*inventory.LedgerEntry{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}
