package catalog

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/xiebiao/catalogstore/internal/domain/catalog"
	"github.com/xiebiao/catalogstore/pkg/tracing"
)

// UpdateItemUseCase 商品部分更新用例
// 库存不能通过此用例修改,见AdjustStockUseCase
type UpdateItemUseCase struct {
	registry *catalog.Registry
	service  catalog.Service
	cache    ItemCache
	log      *zap.Logger
}

// NewUpdateItemUseCase 创建更新用例
func NewUpdateItemUseCase(registry *catalog.Registry, service catalog.Service, cache ItemCache, log *zap.Logger) *UpdateItemUseCase {
	return &UpdateItemUseCase{registry: registry, service: service, cache: cache, log: log}
}

// UpdateItemRequest 更新请求,Patch中为nil的字段不修改
type UpdateItemRequest struct {
	ScopeRequest
	ID    string
	Patch catalog.Patch
}

// Execute 执行更新
func (uc *UpdateItemUseCase) Execute(ctx context.Context, req UpdateItemRequest) (resp *ItemResponse, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "UpdateItem",
		attribute.String("catalog", req.Catalog),
		attribute.String("item.id", req.ID),
	)
	defer func() { tracing.EndSpan(span, err) }()

	scope, _, err := uc.registry.Resolve(req.Catalog, req.StoreID)
	if err != nil {
		return nil, err
	}
	id, err := parseID(req.ID)
	if err != nil {
		return nil, err
	}

	item, err := uc.service.Update(ctx, scope, id, &req.Patch)
	if err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, scope, id)

	uc.log.Info("商品已更新", zap.String("scope", scope.String()), zap.String("id", id.String()))

	out := ToItemResponse(item)
	return &out, nil
}

// UpdateStatusUseCase 修改销售状态
type UpdateStatusUseCase struct {
	registry *catalog.Registry
	service  catalog.Service
	cache    ItemCache
}

// NewUpdateStatusUseCase 创建状态修改用例
func NewUpdateStatusUseCase(registry *catalog.Registry, service catalog.Service, cache ItemCache) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{registry: registry, service: service, cache: cache}
}

// UpdateStatusRequest 状态修改请求
type UpdateStatusRequest struct {
	ScopeRequest
	ID     string
	Status string
}

// Execute 执行状态修改
func (uc *UpdateStatusUseCase) Execute(ctx context.Context, req UpdateStatusRequest) (*ItemResponse, error) {
	scope, _, err := uc.registry.Resolve(req.Catalog, req.StoreID)
	if err != nil {
		return nil, err
	}
	id, err := parseID(req.ID)
	if err != nil {
		return nil, err
	}
	status, err := catalog.ParseStatus(req.Status)
	if err != nil {
		return nil, err
	}

	item, err := uc.service.UpdateStatus(ctx, scope, id, status)
	if err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, scope, id)

	out := ToItemResponse(item)
	return &out, nil
}
