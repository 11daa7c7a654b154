package catalog

import (
	"context"

	"github.com/xiebiao/catalogstore/internal/domain/catalog"
)

// GetItemUseCase 商品详情查询
// 按ID查询走缓存(Cache-Aside),按slug/编码查询直接查库
type GetItemUseCase struct {
	registry *catalog.Registry
	service  catalog.Service
	cache    ItemCache
}

// NewGetItemUseCase 创建详情查询用例
func NewGetItemUseCase(registry *catalog.Registry, service catalog.Service, cache ItemCache) *GetItemUseCase {
	return &GetItemUseCase{registry: registry, service: service, cache: cache}
}

// GetItemRequest ID、Slug、Code三选一
type GetItemRequest struct {
	ScopeRequest
	ID   string
	Slug string
	Code string
}

// Execute 执行详情查询
func (uc *GetItemUseCase) Execute(ctx context.Context, req GetItemRequest) (*ItemResponse, error) {
	scope, _, err := uc.registry.Resolve(req.Catalog, req.StoreID)
	if err != nil {
		return nil, err
	}

	var item *catalog.Item
	switch {
	case req.Slug != "":
		item, err = uc.service.GetByField(ctx, scope, catalog.FieldSlug, req.Slug)
	case req.Code != "":
		item, err = uc.service.GetByField(ctx, scope, catalog.FieldUniqueCode, req.Code)
	default:
		item, err = uc.getByID(ctx, scope, req.ID)
	}
	if err != nil {
		return nil, err
	}

	resp := ToItemResponse(item)
	return &resp, nil
}

func (uc *GetItemUseCase) getByID(ctx context.Context, scope catalog.Scope, rawID string) (*catalog.Item, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}

	// 1. 先查缓存
	if item, ok := uc.cache.Get(ctx, scope, id); ok {
		return item, nil
	}

	// 2. 未命中查库并回填
	item, err := uc.service.Get(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	uc.cache.Set(ctx, item)
	return item, nil
}
