package rdb

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/catalogstore/internal/domain/catalog"
	apperrors "github.com/xiebiao/catalogstore/pkg/errors"
)

// itemRepository 商品仓储实现(GORM)
// 设计说明:
// 1. 实现domain/catalog/repository.go定义的接口
// 2. 负责领域实体与GORM模型之间的转换
// 3. 唯一索引冲突转换为业务错误,其他数据库错误包装为store错误
type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository 创建商品仓储
func NewItemRepository(db *gorm.DB) catalog.Repository {
	return &itemRepository{db: db}
}

// SlugExists 包含已软删除的记录(Unscoped),与唯一索引idx_scope_slug一致
func (r *itemRepository) SlugExists(ctx context.Context, scope catalog.Scope, slug string, excludeID uuid.UUID) (bool, error) {
	var count int64
	err := getDB(ctx, r.db).Unscoped().Model(&ItemModel{}).
		Scopes(scopeOf(scope)).
		Where("slug = ? AND id <> ?", slug, excludeID).
		Count(&count).Error
	if err != nil {
		return false, apperrors.WrapStore(err, "查询slug失败")
	}
	return count > 0, nil
}

// FindByID 根据ID查找商品
func (r *itemRepository) FindByID(ctx context.Context, scope catalog.Scope, id uuid.UUID) (*catalog.Item, error) {
	var model ItemModel
	err := getDB(ctx, r.db).Scopes(scopeOf(scope)).Where("id = ?", id).First(&model).Error
	if err != nil {
		if isNotFound(err) {
			return nil, catalog.ErrItemNotFound
		}
		return nil, apperrors.WrapStore(err, "查询商品失败")
	}
	return toItemEntity(&model), nil
}

// FindByField 根据slug或编码查找
func (r *itemRepository) FindByField(ctx context.Context, scope catalog.Scope, field catalog.LookupField, value string) (*catalog.Item, error) {
	column := "slug"
	if field == catalog.FieldUniqueCode {
		column = "unique_code"
	}

	var model ItemModel
	err := getDB(ctx, r.db).Scopes(scopeOf(scope)).
		Where(clause.Eq{Column: clause.Column{Name: column}, Value: value}).
		First(&model).Error
	if err != nil {
		if isNotFound(err) {
			return nil, catalog.ErrItemNotFound
		}
		return nil, apperrors.WrapStore(err, "查询商品失败")
	}
	return toItemEntity(&model), nil
}

// FindByIDs 批量查找
func (r *itemRepository) FindByIDs(ctx context.Context, scope catalog.Scope, ids []uuid.UUID) ([]*catalog.Item, error) {
	if len(ids) == 0 {
		return []*catalog.Item{}, nil
	}

	var models []ItemModel
	err := getDB(ctx, r.db).Scopes(scopeOf(scope)).Where("id IN ?", ids).Find(&models).Error
	if err != nil {
		return nil, apperrors.WrapStore(err, "批量查询商品失败")
	}
	return toItemEntities(models), nil
}

// FindMany 分页查询
func (r *itemRepository) FindMany(ctx context.Context, q *catalog.Query) ([]*catalog.Item, error) {
	var models []ItemModel
	err := getDB(ctx, r.db).Model(&ItemModel{}).
		Scopes(withCriteria(&q.Criteria), withSort(q.Sort), paginate(q)).
		Find(&models).Error
	if err != nil {
		return nil, apperrors.WrapStore(err, "查询商品列表失败")
	}
	return toItemEntities(models), nil
}

// Count 计数(与FindMany使用相同条件)
func (r *itemRepository) Count(ctx context.Context, q *catalog.Query) (int64, error) {
	var total int64
	err := getDB(ctx, r.db).Model(&ItemModel{}).
		Scopes(withCriteria(&q.Criteria)).
		Count(&total).Error
	if err != nil {
		return 0, apperrors.WrapStore(err, "统计商品数量失败")
	}
	return total, nil
}

// CodeExists 只检查未删除的商品
func (r *itemRepository) CodeExists(ctx context.Context, scope catalog.Scope, code string, excludeID uuid.UUID) (bool, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&ItemModel{}).
		Scopes(scopeOf(scope)).
		Where("unique_code = ? AND id <> ?", code, excludeID).
		Count(&count).Error
	if err != nil {
		return false, apperrors.WrapStore(err, "查询商品编码失败")
	}
	return count > 0, nil
}

// Create 创建商品
func (r *itemRepository) Create(ctx context.Context, item *catalog.Item) error {
	model := toItemModel(item)
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		// slug并发冲突:探测之后、插入之前被其他事务占用
		if isDuplicateError(err) {
			return catalog.ErrSlugConflict
		}
		return apperrors.WrapStore(err, "创建商品失败")
	}
	return nil
}

// Update 全量更新可编辑字段
// 范围、创建时间不可修改;库存只由UpdateStock写入
func (r *itemRepository) Update(ctx context.Context, item *catalog.Item) error {
	model := toItemModel(item)
	result := getDB(ctx, r.db).Model(&ItemModel{}).
		Scopes(scopeOf(item.Scope())).
		Where("id = ?", item.ID).
		Select("*").
		Omit("id", "catalog", "store_id", "stock_quantity", "created_at", "deleted_at").
		Updates(model)
	if result.Error != nil {
		if isDuplicateError(result.Error) {
			return catalog.ErrSlugConflict
		}
		return apperrors.WrapStore(result.Error, "更新商品失败")
	}
	if result.RowsAffected == 0 {
		return catalog.ErrItemNotFound
	}
	return nil
}

// SoftDelete 软删除并下架
func (r *itemRepository) SoftDelete(ctx context.Context, scope catalog.Scope, id uuid.UUID) error {
	affected, err := r.softDelete(ctx, scope, []uuid.UUID{id})
	if err != nil {
		return err
	}
	if affected == 0 {
		return catalog.ErrItemNotFound
	}
	return nil
}

// BulkSoftDelete 批量软删除
func (r *itemRepository) BulkSoftDelete(ctx context.Context, scope catalog.Scope, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	return r.softDelete(ctx, scope, ids)
}

// softDelete 一条UPDATE同时设置deleted_at、is_active、status
// 普通Delete只会设置deleted_at
func (r *itemRepository) softDelete(ctx context.Context, scope catalog.Scope, ids []uuid.UUID) (int64, error) {
	now := time.Now()
	result := getDB(ctx, r.db).Model(&ItemModel{}).
		Scopes(scopeOf(scope)).
		Where("id IN ?", ids).
		Updates(map[string]any{
			"deleted_at": now,
			"is_active":  false,
			"status":     string(catalog.StatusInactive),
			"updated_at": now,
		})
	if result.Error != nil {
		return 0, apperrors.WrapStore(result.Error, "删除商品失败")
	}
	return result.RowsAffected, nil
}

// LockByID 悲观锁查询
// SQL: SELECT * FROM catalog_items WHERE ... FOR UPDATE
// 必须在事务中调用,否则锁会立即释放
func (r *itemRepository) LockByID(ctx context.Context, scope catalog.Scope, id uuid.UUID) (*catalog.Item, error) {
	var model ItemModel
	err := getDB(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(scopeOf(scope)).
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		if isNotFound(err) {
			return nil, catalog.ErrItemNotFound
		}
		return nil, apperrors.WrapStore(err, "锁定商品失败")
	}
	return toItemEntity(&model), nil
}

// UpdateStock 条件更新库存
// SQL: UPDATE catalog_items SET stock_quantity=?, status=?, updated_at=?
//
//	WHERE id=? AND stock_quantity=? AND deleted_at IS NULL
//
// 行锁之外的第二道保护:读取之后库存被改过则不更新
func (r *itemRepository) UpdateStock(ctx context.Context, item *catalog.Item, expected int) error {
	result := getDB(ctx, r.db).Model(&ItemModel{}).
		Scopes(scopeOf(item.Scope())).
		Where("id = ? AND stock_quantity = ?", item.ID, expected).
		Updates(map[string]any{
			"stock_quantity": item.StockQuantity,
			"status":         string(item.Status),
			"updated_at":     item.UpdatedAt,
		})
	if result.Error != nil {
		return apperrors.WrapStore(result.Error, "更新库存失败")
	}
	if result.RowsAffected == 0 {
		return catalog.ErrStockChanged
	}
	return nil
}

// FindLowStock 低库存商品,按库存升序
func (r *itemRepository) FindLowStock(ctx context.Context, scope catalog.Scope, threshold *int) ([]*catalog.Item, error) {
	db := getDB(ctx, r.db).Model(&ItemModel{}).
		Scopes(scopeOf(scope)).
		Where("is_active = ?", true)
	if threshold != nil {
		db = db.Where("stock_quantity <= ?", *threshold)
	} else {
		db = db.Where("stock_quantity <= low_stock_threshold")
	}

	var models []ItemModel
	if err := db.Order("stock_quantity ASC").Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.WrapStore(err, "查询低库存商品失败")
	}
	return toItemEntities(models), nil
}
