package reference

import (
	"context"

	"github.com/google/uuid"
)

// Repository 关联实体仓储接口
type Repository interface {
	Create(ctx context.Context, ref *Reference) error

	// FindByID 不存在返回ErrReferenceNotFound
	FindByID(ctx context.Context, kind Kind, id uuid.UUID) (*Reference, error)

	// FindByName 同类型下按名称查找(大小写不敏感)
	FindByName(ctx context.Context, kind Kind, name string) (*Reference, error)

	// List 按名称排序
	List(ctx context.Context, kind Kind) ([]*Reference, error)
}
