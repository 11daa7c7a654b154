package catalog

import (
	"context"

	"github.com/google/uuid"
)

// LookupField 唯一字段查询
type LookupField string

const (
	FieldSlug       LookupField = "slug"
	FieldUniqueCode LookupField = "unique_code"
)

// Repository 商品仓储接口
// 设计说明:
// 1. 除SlugExists外,所有查询都排除已软删除的记录
// 2. 所有方法都从context感知事务(由Transactor注入)
// 3. 存储层错误统一包装为store类错误
type Repository interface {
	SlugProber

	// FindByID 根据ID查找,不存在或已删除返回ErrItemNotFound
	FindByID(ctx context.Context, scope Scope, id uuid.UUID) (*Item, error)

	// FindByField 根据slug或编码查找
	FindByField(ctx context.Context, scope Scope, field LookupField, value string) (*Item, error)

	// FindByIDs 批量查找(只返回范围内未删除的)
	FindByIDs(ctx context.Context, scope Scope, ids []uuid.UUID) ([]*Item, error)

	// FindMany 按查询对象分页查找
	FindMany(ctx context.Context, q *Query) ([]*Item, error)

	// Count 按查询对象计数(忽略分页)
	Count(ctx context.Context, q *Query) (int64, error)

	// CodeExists 范围内未删除商品中是否已有该编码
	CodeExists(ctx context.Context, scope Scope, code string, excludeID uuid.UUID) (bool, error)

	Create(ctx context.Context, item *Item) error
	Update(ctx context.Context, item *Item) error

	// SoftDelete 设置deleted_at并下架
	SoftDelete(ctx context.Context, scope Scope, id uuid.UUID) error

	// BulkSoftDelete 批量软删除,返回影响行数
	BulkSoftDelete(ctx context.Context, scope Scope, ids []uuid.UUID) (int64, error)

	// LockByID 悲观锁查询(SELECT ... FOR UPDATE),必须在事务中调用
	LockByID(ctx context.Context, scope Scope, id uuid.UUID) (*Item, error)

	// UpdateStock 条件更新库存: WHERE id=? AND stock_quantity=expected
	// 没有行被更新时返回ErrStockChanged
	UpdateStock(ctx context.Context, item *Item, expected int) error

	// FindLowStock 低库存商品,threshold为nil时按各自的low_stock_threshold比较
	FindLowStock(ctx context.Context, scope Scope, threshold *int) ([]*Item, error)
}

// Transactor 事务管理
// fn内通过ctx调用的仓储方法都在同一事务中执行,fn返回error时回滚
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}
