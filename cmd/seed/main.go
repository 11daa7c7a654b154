// Command seed 向数据库写入演示数据
//
// 重复执行是安全的: 关联实体按名称复用,编码已存在的商品直接跳过。
// 初始库存通过库存台账以add写入,每件商品都会留下一条PURCHASE流水。
package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/xiebiao/catalogstore/internal/domain/catalog"
	"github.com/xiebiao/catalogstore/internal/domain/inventory"
	"github.com/xiebiao/catalogstore/internal/domain/reference"
	"github.com/xiebiao/catalogstore/internal/infrastructure/config"
	"github.com/xiebiao/catalogstore/internal/infrastructure/persistence/rdb"
	"github.com/xiebiao/catalogstore/pkg/logger"
)

func main() {
	storeFlag := flag.String("store", "", "教材目录使用的店铺ID,为空时随机生成")
	flag.Parse()

	// 1. 配置与日志
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}
	zlog, err := logger.New(cfg.Log.Options())
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	if cfg.Database.Driver == config.DriverMemory {
		zlog.Fatal("memory驱动不持久化数据,无需seed")
	}

	storeID := uuid.New()
	if *storeFlag != "" {
		if storeID, err = uuid.Parse(*storeFlag); err != nil {
			zlog.Fatal("店铺ID格式不正确", zap.String("store", *storeFlag))
		}
	}

	// 2. 连接数据库(按配置自动迁移)
	db, err := rdb.NewDB(cfg.Database, zlog)
	if err != nil {
		zlog.Fatal("连接数据库失败", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	// 3. 组装领域服务
	registry, err := catalog.DefaultRegistry().Only(cfg.Catalog.Enabled...)
	if err != nil {
		zlog.Fatal("目录配置错误", zap.Error(err))
	}
	items := rdb.NewItemRepository(db)
	tx := rdb.NewTxManager(db)
	refs := reference.NewService(rdb.NewReferenceRepository(db))

	s := &seeder{
		registry: registry,
		items:    catalog.NewService(registry, items, tx, refs),
		refs:     refs,
		ledger:   inventory.NewLedger(items, rdb.NewLedgerRepository(db), tx, cfg.Inventory.MaxRetries),
		log:      zlog,
	}

	// 4. 写入数据
	if err := s.run(context.Background(), storeID); err != nil {
		zlog.Fatal("seed失败", zap.Error(err))
	}
	zlog.Info("seed完成", zap.String("store_id", storeID.String()))
}

type seeder struct {
	registry *catalog.Registry
	items    catalog.Service
	refs     reference.Service
	ledger   *inventory.Ledger
	log      *zap.Logger
}

// sample 一条演示商品,stock通过台账写入
type sample struct {
	catalog string
	draft   catalog.Draft
	stock   int
}

func (s *seeder) run(ctx context.Context, storeID uuid.UUID) error {
	samples, err := s.samples(ctx)
	if err != nil {
		return err
	}

	for _, smp := range samples {
		if _, err := s.registry.Lookup(smp.catalog); err != nil {
			s.log.Info("目录未启用,跳过", zap.String("catalog", smp.catalog))
			continue
		}

		scope := catalog.Scope{Catalog: smp.catalog}
		if smp.catalog == catalog.CatalogAcademicBook {
			scope.StoreID = storeID
		}

		item, err := s.items.Create(ctx, scope, &smp.draft)
		if errors.Is(err, catalog.ErrCodeDuplicate) {
			s.log.Info("商品已存在,跳过", zap.String("code", smp.draft.UniqueCode))
			continue
		}
		if err != nil {
			return err
		}

		if smp.stock > 0 {
			_, err := s.ledger.AdjustStock(ctx, scope, item.ID, inventory.StockAdjustment{
				Quantity:  smp.stock,
				Operation: inventory.OperationAdd,
				Reason:    "初始入库",
			})
			if err != nil {
				return err
			}
		}
		s.log.Info("商品已写入",
			zap.String("scope", scope.String()),
			zap.String("slug", item.Slug),
			zap.Int("stock", smp.stock),
		)
	}
	return nil
}

func (s *seeder) samples(ctx context.Context) ([]sample, error) {
	author, err := s.refs.Ensure(ctx, reference.KindAuthor, "James Stewart")
	if err != nil {
		return nil, err
	}
	publisher, err := s.refs.Ensure(ctx, reference.KindPublisher, "Cengage Learning")
	if err != nil {
		return nil, err
	}
	category, err := s.refs.Ensure(ctx, reference.KindCategory, "Mathematics")
	if err != nil {
		return nil, err
	}

	year := 2020
	threshold := 5
	discount := decimal.RequireFromString("39.90")

	return []sample{
		{
			catalog: catalog.CatalogBook,
			draft: catalog.Draft{
				Title:         "The Pragmatic Programmer",
				UniqueCode:    "9780135957059",
				Price:         decimal.RequireFromString("49.99"),
				DiscountPrice: &discount,
				CreatorName:   "David Thomas",
				Subject:       "Software",
				Format:        "PAPERBACK",
				IsFeatured:    true,
			},
			stock: 40,
		},
		{
			catalog: catalog.CatalogBook,
			draft: catalog.Draft{
				Title:             "Designing Data-Intensive Applications",
				UniqueCode:        "9781449373320",
				Price:             decimal.RequireFromString("59.99"),
				CreatorName:       "Martin Kleppmann",
				Subject:           "Software",
				Format:            "PAPERBACK",
				LowStockThreshold: &threshold,
				IsRecommended:     true,
			},
			stock: 3,
		},
		{
			catalog: catalog.CatalogAcademicBook,
			draft: catalog.Draft{
				Title:           "Calculus: Early Transcendentals",
				UniqueCode:      "9781285741550",
				Price:           decimal.RequireFromString("89.50"),
				AuthorID:        &author.ID,
				PublisherID:     &publisher.ID,
				CategoryID:      &category.ID,
				Classification:  "UNDERGRADUATE",
				Subject:         "Mathematics",
				Format:          "HARDCOVER",
				PublicationYear: &year,
				IsLatestEdition: true,
				Attributes:      map[string]any{"edition": "8th"},
			},
			stock: 25,
		},
		{
			catalog: catalog.CatalogStationery,
			draft: catalog.Draft{
				Title:          "Gel Pen 0.5mm",
				UniqueCode:     "PEN-GEL-05",
				Price:          decimal.RequireFromString("1.20"),
				CreatorName:    "Pilot",
				Classification: "PENS",
				Attributes:     map[string]any{"color": "black", "packSize": 12},
			},
			stock: 200,
		},
	}, nil
}
