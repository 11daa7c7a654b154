// Package router 注册HTTP路由
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/xiebiao/catalogstore/internal/interface/http/handler"
	"github.com/xiebiao/catalogstore/internal/interface/http/middleware"
	"github.com/xiebiao/catalogstore/pkg/response"
	"github.com/xiebiao/catalogstore/pkg/validator"
)

// Options 路由开关
type Options struct {
	Mode        string // debug | release | test
	MetricsPath string // 为空时不暴露/metrics
	Swagger     bool
	Tracing     bool
}

// Handlers 所有HTTP处理器
type Handlers struct {
	Items      *handler.ItemHandler
	Inventory  *handler.InventoryHandler
	Products   *handler.ProductHandler
	References *handler.ReferenceHandler
	Tokens     *handler.TokenHandler
}

// New 创建Gin引擎并注册路由
// limiter为nil时不限流
func New(opts Options, log *zap.Logger, auth *middleware.AuthMiddleware, limiter *middleware.RateLimiter, h Handlers) (*gin.Engine, error) {
	if opts.Mode != "" {
		gin.SetMode(opts.Mode)
	}
	// 自定义binding规则(price2dp、uniquecode)
	if err := validator.Register(); err != nil {
		return nil, err
	}

	r := gin.New()

	// 中间件顺序:追踪 → 日志 → 恢复 → 指标 → 限流
	if opts.Tracing {
		r.Use(middleware.Tracing())
	}
	r.Use(middleware.RequestLogger(log), middleware.Recovery())
	if opts.MetricsPath != "" {
		r.Use(middleware.Metrics())
		r.GET(opts.MetricsPath, gin.WrapH(promhttp.Handler()))
	}
	if limiter != nil {
		r.Use(limiter.Handler())
	}

	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, "pong", gin.H{"status": "healthy"})
	})

	// Swagger文档: http://localhost:8080/swagger/index.html
	if opts.Swagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := r.Group("/api/v1")
	{
		v1.GET("/products", h.Products.List)
		v1.GET("/catalogs", h.Products.Catalogs)
		v1.POST("/auth/revoke", auth.RequireAuth(), h.Tokens.Revoke)

		refs := v1.Group("/references")
		{
			refs.GET("/:kind", h.References.List)
			refs.POST("/:kind", auth.RequireAuth(), h.References.Create)
		}

		// 单店铺目录与多店铺目录共用同一套处理器
		registerItems(v1.Group("/catalogs/:catalog/items"), auth, h)
		registerItems(v1.Group("/catalogs/:catalog/stores/:storeId/items"), auth, h)
	}

	return r, nil
}

// registerItems 商品路由
// 静态段(low-stock、featured、bulk等)与/:id并存,gin优先匹配静态段
func registerItems(items *gin.RouterGroup, auth *middleware.AuthMiddleware, h Handlers) {
	requireAuth := auth.RequireAuth()

	// 公开查询
	items.GET("", h.Items.List)
	items.GET("/low-stock", h.Inventory.LowStock)
	items.GET("/featured", h.Items.Featured)
	items.GET("/recommendations", h.Items.Recommendations)
	items.GET("/latest-editions", h.Items.LatestEditions)
	items.GET("/slug/:slug", h.Items.GetBySlug)
	items.GET("/code/:code", h.Items.GetByCode)
	items.GET("/:id", h.Items.Get)
	items.GET("/:id/inventory-logs", h.Inventory.History)

	// 写操作需要认证
	items.POST("", requireAuth, h.Items.Create)
	items.PUT("/bulk/update", requireAuth, h.Items.BulkUpdate)
	items.DELETE("/bulk/delete", requireAuth, h.Items.BulkDelete)
	items.PUT("/:id", requireAuth, h.Items.Update)
	items.DELETE("/:id", requireAuth, h.Items.Delete)
	items.PATCH("/:id/stock", requireAuth, h.Inventory.AdjustStock)
	items.PATCH("/:id/status", requireAuth, h.Items.UpdateStatus)
}
