package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/xiebiao/catalogstore/internal/domain/catalog"
	"github.com/xiebiao/catalogstore/pkg/tracing"
)

// parseIDs 解析批量ID,格式错误的全部列在details中
func parseIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	details := map[string]string{}
	for i, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			details[fmt.Sprintf("ids[%d]", i)] = "必须是UUID"
			continue
		}
		ids = append(ids, id)
	}
	if len(details) > 0 {
		return nil, catalog.ErrInvalidID.WithDetails(details)
	}
	return ids, nil
}

// BulkUpdateUseCase 批量更新
// 1. 所有ID必须属于该范围且未删除,否则整体失败(事务内检查,先于任何写入)
// 2. 每个商品修改后重新按Schema校验
type BulkUpdateUseCase struct {
	registry *catalog.Registry
	service  catalog.Service
	cache    ItemCache
	log      *zap.Logger
}

// NewBulkUpdateUseCase 创建批量更新用例
func NewBulkUpdateUseCase(registry *catalog.Registry, service catalog.Service, cache ItemCache, log *zap.Logger) *BulkUpdateUseCase {
	return &BulkUpdateUseCase{registry: registry, service: service, cache: cache, log: log}
}

// BulkUpdateRequest 批量更新请求
type BulkUpdateRequest struct {
	ScopeRequest
	IDs   []string
	Patch catalog.BulkPatch
}

// BulkUpdateResponse 批量更新响应
type BulkUpdateResponse struct {
	Updated int            `json:"updated"`
	Items   []ItemResponse `json:"items"`
}

// Execute 执行批量更新
func (uc *BulkUpdateUseCase) Execute(ctx context.Context, req BulkUpdateRequest) (resp *BulkUpdateResponse, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "BulkUpdate",
		attribute.String("catalog", req.Catalog),
		attribute.Int("ids", len(req.IDs)),
	)
	defer func() { tracing.EndSpan(span, err) }()

	scope, _, err := uc.registry.Resolve(req.Catalog, req.StoreID)
	if err != nil {
		return nil, err
	}
	ids, err := parseIDs(req.IDs)
	if err != nil {
		return nil, err
	}

	items, err := uc.service.BulkUpdate(ctx, scope, ids, &req.Patch)
	if err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, scope, ids...)

	uc.log.Info("批量更新完成", zap.String("scope", scope.String()), zap.Int("count", len(items)))

	return &BulkUpdateResponse{
		Updated: len(items),
		Items:   ToItemResponses(items),
	}, nil
}

// BulkDeleteUseCase 批量软删除,规则同批量更新
type BulkDeleteUseCase struct {
	registry *catalog.Registry
	service  catalog.Service
	cache    ItemCache
	log      *zap.Logger
}

// NewBulkDeleteUseCase 创建批量删除用例
func NewBulkDeleteUseCase(registry *catalog.Registry, service catalog.Service, cache ItemCache, log *zap.Logger) *BulkDeleteUseCase {
	return &BulkDeleteUseCase{registry: registry, service: service, cache: cache, log: log}
}

// BulkDeleteRequest 批量删除请求
type BulkDeleteRequest struct {
	ScopeRequest
	IDs []string
}

// BulkDeleteResponse 批量删除响应
type BulkDeleteResponse struct {
	Deleted int64 `json:"deleted"`
}

// Execute 执行批量删除
func (uc *BulkDeleteUseCase) Execute(ctx context.Context, req BulkDeleteRequest) (resp *BulkDeleteResponse, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "BulkDelete",
		attribute.String("catalog", req.Catalog),
		attribute.Int("ids", len(req.IDs)),
	)
	defer func() { tracing.EndSpan(span, err) }()

	scope, _, err := uc.registry.Resolve(req.Catalog, req.StoreID)
	if err != nil {
		return nil, err
	}
	ids, err := parseIDs(req.IDs)
	if err != nil {
		return nil, err
	}

	deleted, err := uc.service.BulkDelete(ctx, scope, ids)
	if err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, scope, ids...)

	uc.log.Info("批量删除完成", zap.String("scope", scope.String()), zap.Int64("count", deleted))
	return &BulkDeleteResponse{Deleted: deleted}, nil
}
