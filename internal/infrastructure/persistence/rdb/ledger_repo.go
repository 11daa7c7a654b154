package rdb

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/xiebiao/catalogstore/internal/domain/inventory"
	apperrors "github.com/xiebiao/catalogstore/pkg/errors"
)

// ledgerRepository 库存流水仓储(只插入,不更新不删除)
type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository 创建库存流水仓储
func NewLedgerRepository(db *gorm.DB) inventory.Repository {
	return &ledgerRepository{db: db}
}

// Create 写入流水,与库存更新在同一事务中调用
func (r *ledgerRepository) Create(ctx context.Context, entry *inventory.LedgerEntry) error {
	if err := getDB(ctx, r.db).Create(toEntryModel(entry)).Error; err != nil {
		return apperrors.WrapStore(err, "写入库存流水失败")
	}
	return nil
}

// ListByItem 商品流水分页,最新的在前
func (r *ledgerRepository) ListByItem(ctx context.Context, itemID uuid.UUID, offset, limit int) ([]*inventory.LedgerEntry, int64, error) {
	db := getDB(ctx, r.db).Model(&LedgerEntryModel{}).Where("item_id = ?", itemID)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, apperrors.WrapStore(err, "统计库存流水失败")
	}

	var models []LedgerEntryModel
	err := db.Order("created_at DESC").Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.WrapStore(err, "查询库存流水失败")
	}

	entries := make([]*inventory.LedgerEntry, len(models))
	for i := range models {
		entries[i] = toEntryEntity(&models[i])
	}
	return entries, total, nil
}
