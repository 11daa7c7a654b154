package catalog

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/xiebiao/catalogstore/internal/domain/catalog"
	"github.com/xiebiao/catalogstore/pkg/tracing"
)

// CreateItemUseCase 商品上架用例
// 设计说明:
// 1. 应用层只做编排: 解析范围 → 调用领域服务 → 转换DTO
// 2. 字段校验、关联检查、编码唯一性、slug生成都在领域服务中完成
type CreateItemUseCase struct {
	registry *catalog.Registry
	service  catalog.Service
	log      *zap.Logger
}

// NewCreateItemUseCase 创建上架用例
func NewCreateItemUseCase(registry *catalog.Registry, service catalog.Service, log *zap.Logger) *CreateItemUseCase {
	return &CreateItemUseCase{registry: registry, service: service, log: log}
}

// CreateItemRequest 上架请求
type CreateItemRequest struct {
	ScopeRequest
	Draft catalog.Draft
}

// Execute 执行上架
func (uc *CreateItemUseCase) Execute(ctx context.Context, req CreateItemRequest) (resp *ItemResponse, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "CreateItem", attribute.String("catalog", req.Catalog))
	defer func() { tracing.EndSpan(span, err) }()

	scope, _, err := uc.registry.Resolve(req.Catalog, req.StoreID)
	if err != nil {
		return nil, err
	}

	item, err := uc.service.Create(ctx, scope, &req.Draft)
	if err != nil {
		return nil, err
	}

	uc.log.Info("商品已创建",
		zap.String("scope", scope.String()),
		zap.String("id", item.ID.String()),
		zap.String("slug", item.Slug),
	)

	out := ToItemResponse(item)
	return &out, nil
}
