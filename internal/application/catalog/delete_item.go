package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/catalogstore/internal/domain/catalog"
)

// DeleteItemUseCase 软删除
// 记录保留在数据库中,之后的查询、低库存、详情都看不到它
type DeleteItemUseCase struct {
	registry *catalog.Registry
	service  catalog.Service
	cache    ItemCache
	log      *zap.Logger
}

// NewDeleteItemUseCase 创建删除用例
func NewDeleteItemUseCase(registry *catalog.Registry, service catalog.Service, cache ItemCache, log *zap.Logger) *DeleteItemUseCase {
	return &DeleteItemUseCase{registry: registry, service: service, cache: cache, log: log}
}

// DeleteItemRequest 删除请求
type DeleteItemRequest struct {
	ScopeRequest
	ID string
}

// Execute 执行删除
func (uc *DeleteItemUseCase) Execute(ctx context.Context, req DeleteItemRequest) error {
	scope, _, err := uc.registry.Resolve(req.Catalog, req.StoreID)
	if err != nil {
		return err
	}
	id, err := parseID(req.ID)
	if err != nil {
		return err
	}

	if err := uc.service.Delete(ctx, scope, id); err != nil {
		return err
	}
	uc.cache.Invalidate(ctx, scope, id)

	uc.log.Info("商品已删除", zap.String("scope", scope.String()), zap.String("id", id.String()))
	return nil
}
