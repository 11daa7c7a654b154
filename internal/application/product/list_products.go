package product

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/catalogstore/internal/domain/catalog"
	"github.com/xiebiao/catalogstore/pkg/metrics"
	"github.com/xiebiao/catalogstore/pkg/tracing"
)

// ListProductsUseCase 跨目录商品聚合查询
// 设计说明:
// 1. 不限定店铺,catalog参数为空时覆盖全部目录
// 2. 默认只返回isActive=true的商品,可通过isActive参数覆盖
// 3. 返回精简的商品摘要,不含目录特有字段
type ListProductsUseCase struct {
	registry *catalog.Registry
	queries  *catalog.QueryService
}

// NewListProductsUseCase 创建聚合查询用例
func NewListProductsUseCase(registry *catalog.Registry, queries *catalog.QueryService) *ListProductsUseCase {
	return &ListProductsUseCase{registry: registry, queries: queries}
}

// ListProductsRequest 聚合查询请求
type ListProductsRequest struct {
	Catalog string
	Filter  catalog.ListFilter
}

// ProductSummary 商品摘要
type ProductSummary struct {
	ID             string          `json:"id"`
	Catalog        string          `json:"catalog"`
	StoreID        string          `json:"storeId,omitempty"`
	Title          string          `json:"title"`
	Slug           string          `json:"slug"`
	Price          decimal.Decimal `json:"price"`
	EffectivePrice decimal.Decimal `json:"effectivePrice"`
	InStock        bool            `json:"inStock"`
}

// ListProductsResponse 摘要分页
type ListProductsResponse = catalog.Page[ProductSummary]

// Execute 执行聚合查询
func (uc *ListProductsUseCase) Execute(ctx context.Context, req ListProductsRequest) (resp *ListProductsResponse, err error) {
	ctx, span := tracing.StartSpan(ctx, "catalogstore/application/product", "ListProducts",
		attribute.String("catalog", req.Catalog),
	)
	defer func() { tracing.EndSpan(span, err) }()

	if req.Catalog != "" {
		if _, err := uc.registry.Lookup(req.Catalog); err != nil {
			return nil, err
		}
	}
	if req.Filter.IsActive == "" {
		req.Filter.IsActive = "true"
	}

	q, err := uc.queries.Builder().BuildGlobal(req.Catalog, req.Filter)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	page, err := uc.queries.Run(ctx, q)
	metrics.ObserveCatalogQuery("products", time.Since(start))
	if err != nil {
		return nil, err
	}

	return catalog.MapPage(page, toSummary), nil
}

func toSummary(it *catalog.Item) ProductSummary {
	s := ProductSummary{
		ID:             it.ID.String(),
		Catalog:        it.Catalog,
		Title:          it.Title,
		Slug:           it.Slug,
		Price:          it.Price,
		EffectivePrice: it.EffectivePrice(),
		InStock:        it.StockQuantity > 0,
	}
	if it.StoreID != uuid.Nil {
		s.StoreID = it.StoreID.String()
	}
	return s
}
