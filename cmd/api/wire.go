//go:build wireinject
// +build wireinject

// Wire依赖注入配置
// 修改后运行 `wire gen ./cmd/api` 重新生成wire_gen.go

package main

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	appcatalog "github.com/xiebiao/catalogstore/internal/application/catalog"
	appproduct "github.com/xiebiao/catalogstore/internal/application/product"
	appref "github.com/xiebiao/catalogstore/internal/application/reference"
	"github.com/xiebiao/catalogstore/internal/domain/catalog"
	"github.com/xiebiao/catalogstore/internal/domain/reference"
	"github.com/xiebiao/catalogstore/internal/infrastructure/config"
	"github.com/xiebiao/catalogstore/internal/interface/http/handler"
	"github.com/xiebiao/catalogstore/internal/interface/http/middleware"
	"github.com/xiebiao/catalogstore/internal/interface/http/router"
)

// infrastructureSet 存储、缓存、事件
var infrastructureSet = wire.NewSet(
	provideStorage,
	provideItemRepository,
	provideLedgerRepository,
	provideReferenceRepository,
	provideTransactor,
	provideRedis,
	provideItemCache,
	providePublisher,
)

// domainSet 领域服务
var domainSet = wire.NewSet(
	provideRegistry,
	reference.NewService,
	provideReferenceResolver,
	catalog.NewService,
	catalog.NewQueryBuilder,
	catalog.NewQueryService,
	provideLedger,
)

// applicationSet 用例
var applicationSet = wire.NewSet(
	appcatalog.NewListItemsUseCase,
	appcatalog.NewGetItemUseCase,
	appcatalog.NewCreateItemUseCase,
	appcatalog.NewUpdateItemUseCase,
	appcatalog.NewUpdateStatusUseCase,
	appcatalog.NewDeleteItemUseCase,
	appcatalog.NewBulkUpdateUseCase,
	appcatalog.NewBulkDeleteUseCase,
	appcatalog.NewHighlightsUseCase,
	appcatalog.NewAdjustStockUseCase,
	appcatalog.NewLowStockUseCase,
	appcatalog.NewStockHistoryUseCase,
	appcatalog.NewListCatalogsUseCase,
	appproduct.NewListProductsUseCase,
	appref.NewListReferencesUseCase,
	appref.NewCreateReferenceUseCase,
)

// middlewareSet 认证与限流
var middlewareSet = wire.NewSet(
	provideJWTManager,
	provideRevocations,
	middleware.NewAuthMiddleware,
	provideRateLimiter,
)

// handlerSet HTTP处理器与路由
var handlerSet = wire.NewSet(
	handler.NewItemHandler,
	handler.NewInventoryHandler,
	handler.NewProductHandler,
	handler.NewReferenceHandler,
	provideTokenRevoker,
	handler.NewTokenHandler,
	wire.Struct(new(router.Handlers), "*"),
	provideRouterOptions,
	router.New,
)

// InitializeApp 组装应用
// 返回的cleanup按创建的逆序关闭限流器、事件发布器、Redis和数据库
func InitializeApp(cfg *config.Config, log *zap.Logger) (*App, func(), error) {
	wire.Build(
		infrastructureSet,
		domainSet,
		applicationSet,
		middlewareSet,
		handlerSet,
		wire.Struct(new(App), "*"),
	)
	return nil, nil, nil
}
