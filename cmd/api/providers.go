package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	appcatalog "github.com/xiebiao/catalogstore/internal/application/catalog"
	"github.com/xiebiao/catalogstore/internal/domain/catalog"
	"github.com/xiebiao/catalogstore/internal/domain/inventory"
	"github.com/xiebiao/catalogstore/internal/domain/reference"
	"github.com/xiebiao/catalogstore/internal/infrastructure/config"
	"github.com/xiebiao/catalogstore/internal/infrastructure/messaging"
	"github.com/xiebiao/catalogstore/internal/infrastructure/persistence/memory"
	"github.com/xiebiao/catalogstore/internal/infrastructure/persistence/rdb"
	"github.com/xiebiao/catalogstore/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/catalogstore/internal/interface/http/handler"
	"github.com/xiebiao/catalogstore/internal/interface/http/middleware"
	"github.com/xiebiao/catalogstore/internal/interface/http/router"
	"github.com/xiebiao/catalogstore/pkg/circuitbreaker"
	"github.com/xiebiao/catalogstore/pkg/jwt"
)

// App 组装完成的应用
type App struct {
	Engine *gin.Engine
}

// storage 按database.driver选择的一组仓储
type storage struct {
	items   catalog.Repository
	entries inventory.Repository
	refs    reference.Repository
	tx      catalog.Transactor
}

// provideStorage mysql/postgres走GORM,memory使用进程内存储
func provideStorage(cfg *config.Config, log *zap.Logger) (storage, func(), error) {
	if cfg.Database.Driver == config.DriverMemory {
		log.Warn("使用内存存储,进程退出后数据丢失")
		s := memory.NewStore()
		return storage{
			items:   memory.NewItemRepository(s),
			entries: memory.NewLedgerRepository(s),
			refs:    memory.NewReferenceRepository(s),
			tx:      s,
		}, func() {}, nil
	}

	db, err := rdb.NewDB(cfg.Database, log)
	if err != nil {
		return storage{}, nil, err
	}
	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return storage{
		items:   rdb.NewItemRepository(db),
		entries: rdb.NewLedgerRepository(db),
		refs:    rdb.NewReferenceRepository(db),
		tx:      rdb.NewTxManager(db),
	}, cleanup, nil
}

func provideItemRepository(s storage) catalog.Repository {
	return s.items
}

func provideLedgerRepository(s storage) inventory.Repository {
	return s.entries
}

func provideReferenceRepository(s storage) reference.Repository {
	return s.refs
}

func provideTransactor(s storage) catalog.Transactor {
	return s.tx
}

// provideReferenceResolver 商品服务只需要Resolve
func provideReferenceResolver(s reference.Service) catalog.ReferenceResolver {
	return s
}

// provideRegistry 只注册catalog.enabled中的目录类型
func provideRegistry(cfg *config.Config) (*catalog.Registry, error) {
	return catalog.DefaultRegistry().Only(cfg.Catalog.Enabled...)
}

func provideLedger(cfg *config.Config, items catalog.Repository, entries inventory.Repository, tx catalog.Transactor) *inventory.Ledger {
	return inventory.NewLedger(items, entries, tx, cfg.Inventory.MaxRetries)
}

// provideRedis 未启用时返回nil,缓存与黑名单随之降级
func provideRedis(cfg *config.Config, log *zap.Logger) (*goredis.Client, func(), error) {
	if !cfg.Redis.Enabled {
		return nil, func() {}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := redis.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		return nil, nil, err
	}
	return client, func() { _ = client.Close() }, nil
}

func provideItemCache(cfg *config.Config, client *goredis.Client, log *zap.Logger) appcatalog.ItemCache {
	if client == nil {
		return appcatalog.NopCache{}
	}
	breaker := circuitbreaker.New("redis", cfg.Breaker.Config(), logStateChange(log))
	return redis.NewItemCache(client, breaker, cfg.Cache.ItemTTL, log)
}

func provideRevocations(client *goredis.Client) middleware.Revocations {
	if client == nil {
		return nil
	}
	return redis.NewTokenBlacklist(client)
}

func providePublisher(cfg *config.Config, log *zap.Logger) (inventory.Publisher, func(), error) {
	breaker := circuitbreaker.New("events", cfg.Breaker.Config(), logStateChange(log))
	pub, err := messaging.NewPublisher(cfg.Events, breaker, log)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := pub.Close(); err != nil {
			log.Warn("关闭事件发布器失败", zap.Error(err))
		}
	}
	return pub, cleanup, nil
}

func logStateChange(log *zap.Logger) func(name string, from, to circuitbreaker.State) {
	return func(name string, from, to circuitbreaker.State) {
		log.Warn("熔断器状态变化",
			zap.String("breaker", name),
			zap.String("from", from.String()),
			zap.String("to", to.String()),
		)
	}
}

// provideTokenRevoker 未启用Redis时返回nil,注销接口随之返回400
func provideTokenRevoker(client *goredis.Client) handler.TokenRevoker {
	if client == nil {
		return nil
	}
	return redis.NewTokenBlacklist(client)
}

func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.AccessTokenExpire)
}

// provideRateLimiter 未启用时返回nil
func provideRateLimiter(cfg *config.Config) (*middleware.RateLimiter, func()) {
	if !cfg.RateLimit.Enabled {
		return nil, func() {}
	}
	l := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	return l, l.Close
}

func provideRouterOptions(cfg *config.Config) router.Options {
	opts := router.Options{
		Mode:    cfg.Server.Mode,
		Swagger: cfg.Server.Mode != gin.ReleaseMode,
		Tracing: cfg.Tracing.Enabled,
	}
	if cfg.Metrics.Enabled {
		opts.MetricsPath = cfg.Metrics.Path
	}
	return opts
}
