package rdb

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/catalogstore/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架，按配置选择MySQL或PostgreSQL驱动
// 2. TranslateError把各驱动的唯一索引冲突统一为gorm.ErrDuplicatedKey
// 3. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 4. SQL日志写入zap，慢查询按阈值告警
// 5. 自动迁移表结构（AutoMigrate）
func NewDB(cfg config.DatabaseConfig, log *zap.Logger) (*gorm.DB, error) {
	// 1. 选择驱动
	dialector, err := openDialector(cfg)
	if err != nil {
		return nil, err
	}

	// 2. 连接数据库
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         newGormLogger(cfg, log),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	// 3. 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	// 4. 测试连接
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Info("数据库连接成功", zap.String("driver", cfg.Driver), zap.String("host", cfg.Host), zap.String("db", cfg.DBName))

	// 5. 自动迁移表结构
	// 注意：生产环境应使用版本化的迁移脚本
	if cfg.AutoMigrate {
		if err := AutoMigrate(db); err != nil {
			return nil, fmt.Errorf("数据库迁移失败: %w", err)
		}
	}

	return db, nil
}

func openDialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverMySQL:
		return mysql.Open(cfg.DSN()), nil
	case config.DriverPostgres:
		return postgres.Open(cfg.DSN()), nil
	default:
		return nil, fmt.Errorf("不支持的数据库驱动: %s", cfg.Driver)
	}
}

// newGormLogger SQL日志输出到zap
func newGormLogger(cfg config.DatabaseConfig, log *zap.Logger) logger.Interface {
	level := logger.Warn
	switch strings.ToLower(cfg.LogLevel) {
	case "silent":
		level = logger.Silent
	case "error":
		level = logger.Error
	case "info":
		level = logger.Info
	}

	return logger.New(zap.NewStdLog(log.Named("gorm")), logger.Config{
		SlowThreshold:             cfg.SlowThreshold,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
	})
}

// AutoMigrate 自动迁移表结构
// AutoMigrate只会创建表、添加字段和索引，不会删除或修改现有字段
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&ItemModel{},
		&LedgerEntryModel{},
		&ReferenceModel{},
	)
}
