package catalog

import (
	"context"
	"strconv"

	"github.com/xiebiao/catalogstore/internal/domain/catalog"
)

// HighlightsUseCase 精选/推荐/最新版本列表
// 只返回上架中(ACTIVE且isActive)的商品,按创建时间倒序
type HighlightsUseCase struct {
	registry *catalog.Registry
	service  catalog.Service
}

// NewHighlightsUseCase 创建推荐列表用例
func NewHighlightsUseCase(registry *catalog.Registry, service catalog.Service) *HighlightsUseCase {
	return &HighlightsUseCase{registry: registry, service: service}
}

// HighlightsRequest limit默认10,最大50
type HighlightsRequest struct {
	ScopeRequest
	Kind  catalog.Highlight
	Limit string
}

// Execute 执行查询
func (uc *HighlightsUseCase) Execute(ctx context.Context, req HighlightsRequest) ([]ItemResponse, error) {
	scope, _, err := uc.registry.Resolve(req.Catalog, req.StoreID)
	if err != nil {
		return nil, err
	}

	limit, _ := strconv.Atoi(req.Limit)
	items, err := uc.service.Highlights(ctx, scope, req.Kind, limit)
	if err != nil {
		return nil, err
	}
	return ToItemResponses(items), nil
}
