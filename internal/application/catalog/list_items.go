package catalog

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/catalogstore/internal/domain/catalog"
	"github.com/xiebiao/catalogstore/pkg/metrics"
	"github.com/xiebiao/catalogstore/pkg/tracing"
)

// ListItemsUseCase 商品列表查询用例
// 设计说明:
// 1. 原始参数由QueryBuilder转换为类型化查询,非法参数返回校验错误
// 2. 计数与分页查询并发执行(见catalog.QueryService)
// 3. 结果封装为{items, pagination}
type ListItemsUseCase struct {
	registry *catalog.Registry
	queries  *catalog.QueryService
}

// NewListItemsUseCase 创建列表查询用例
func NewListItemsUseCase(registry *catalog.Registry, queries *catalog.QueryService) *ListItemsUseCase {
	return &ListItemsUseCase{registry: registry, queries: queries}
}

// ListItemsRequest 列表查询请求
type ListItemsRequest struct {
	ScopeRequest
	Filter catalog.ListFilter
}

// ListItemsResponse 列表查询响应
type ListItemsResponse = catalog.Page[ItemResponse]

// Execute 执行列表查询
func (uc *ListItemsUseCase) Execute(ctx context.Context, req ListItemsRequest) (resp *ListItemsResponse, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "ListItems",
		attribute.String("catalog", req.Catalog),
		attribute.String("search", req.Filter.Search),
	)
	defer func() { tracing.EndSpan(span, err) }()

	scope, _, err := uc.registry.Resolve(req.Catalog, req.StoreID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	page, err := uc.queries.Execute(ctx, scope, req.Filter)
	metrics.ObserveCatalogQuery(scope.Catalog, time.Since(start))
	if err != nil {
		return nil, err
	}

	return catalog.MapPage(page, ToItemResponse), nil
}
