package rdb

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/xiebiao/catalogstore/internal/domain/catalog"
	"github.com/xiebiao/catalogstore/internal/domain/inventory"
	"github.com/xiebiao/catalogstore/internal/domain/reference"
)

// ItemModel GORM商品模型
// 设计说明:
// 1. 三种目录共用一张表,catalog + store_id 构成范围
// 2. slug唯一索引包含已软删除的行,生成slug时探测也包含它们
// 3. unique_code只建普通索引,唯一性只在未删除商品中检查(由领域服务保证)
// 4. 价格用decimal(10,2)存储,避免浮点误差
// 5. 目录特有字段存JSON列(attributes)
type ItemModel struct {
	ID      uuid.UUID `gorm:"type:varchar(36);primaryKey"`
	Catalog string    `gorm:"size:32;not null;uniqueIndex:idx_scope_slug,priority:1;index:idx_scope_code,priority:1;index:idx_scope_list,priority:1;comment:目录类型"`
	StoreID uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_scope_slug,priority:2;index:idx_scope_code,priority:2;index:idx_scope_list,priority:2;comment:店铺ID"`

	Title       string `gorm:"size:255;not null;comment:标题"`
	Slug        string `gorm:"size:300;not null;uniqueIndex:idx_scope_slug,priority:3;comment:URL标识"`
	UniqueCode  string `gorm:"size:64;index:idx_scope_code,priority:3;comment:ISBN/SKU"`
	Description string `gorm:"type:text;comment:描述"`

	Price         decimal.Decimal  `gorm:"type:decimal(10,2);not null;comment:价格"`
	DiscountPrice *decimal.Decimal `gorm:"type:decimal(10,2);comment:折扣价"`

	StockQuantity     int `gorm:"not null;default:0;comment:库存"`
	LowStockThreshold int `gorm:"not null;default:5;comment:低库存阈值"`

	Status          string `gorm:"size:20;not null;index;comment:ACTIVE/INACTIVE/OUT_OF_STOCK/DISCONTINUED"`
	IsActive        bool   `gorm:"not null;default:true"`
	IsFeatured      bool   `gorm:"not null;default:false"`
	IsRecommended   bool   `gorm:"not null;default:false"`
	IsLatestEdition bool   `gorm:"not null;default:false"`

	AuthorID    *uuid.UUID `gorm:"type:varchar(36);index"`
	PublisherID *uuid.UUID `gorm:"type:varchar(36);index"`
	CategoryID  *uuid.UUID `gorm:"type:varchar(36);index"`

	CreatorName     string `gorm:"size:100;comment:作者名/品牌"`
	Classification  string `gorm:"size:100;comment:学段/品类"`
	Subject         string `gorm:"size:100;comment:学科/子品类"`
	Format          string `gorm:"size:32"`
	Condition       string `gorm:"column:item_condition;size:32"` // condition是MySQL保留字
	Language        string `gorm:"size:50"`
	PublicationYear *int

	CoverImage string                      `gorm:"size:500"`
	Tags       datatypes.JSONSlice[string] `gorm:"comment:标签"`
	Images     datatypes.JSONSlice[string] `gorm:"comment:图片"`
	Attributes datatypes.JSONMap           `gorm:"comment:目录特有属性"`

	CreatedAt time.Time `gorm:"index:idx_scope_list,priority:3"`
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index;comment:删除时间(软删除)"`
}

// TableName 指定表名
func (ItemModel) TableName() string {
	return "catalog_items"
}

// LedgerEntryModel 库存流水模型(只插入)
type LedgerEntryModel struct {
	ID            uuid.UUID `gorm:"type:varchar(36);primaryKey"`
	ItemID        uuid.UUID `gorm:"type:varchar(36);not null;index:idx_item_time,priority:1;comment:商品ID"`
	Type          string    `gorm:"size:20;not null;comment:PURCHASE/SALE/ADJUSTMENT"`
	Quantity      int       `gorm:"not null;comment:带符号变化量"`
	PreviousStock int       `gorm:"not null"`
	NewStock      int       `gorm:"not null"`
	Reason        string    `gorm:"size:255"`
	CreatedAt     time.Time `gorm:"index:idx_item_time,priority:2"`
}

// TableName 指定表名
func (LedgerEntryModel) TableName() string {
	return "inventory_logs"
}

// ReferenceModel 作者/出版社/分类
type ReferenceModel struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primaryKey"`
	Kind      string    `gorm:"size:20;not null;uniqueIndex:idx_kind_name,priority:1"`
	Name      string    `gorm:"size:100;not null;uniqueIndex:idx_kind_name,priority:2"`
	CreatedAt time.Time
}

// TableName 指定表名
func (ReferenceModel) TableName() string {
	return "catalog_references"
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toItemModel 领域实体 → GORM模型
func toItemModel(it *catalog.Item) *ItemModel {
	m := &ItemModel{
		ID:                it.ID,
		Catalog:           it.Catalog,
		StoreID:           it.StoreID,
		Title:             it.Title,
		Slug:              it.Slug,
		UniqueCode:        it.UniqueCode,
		Description:       it.Description,
		Price:             it.Price,
		DiscountPrice:     it.DiscountPrice,
		StockQuantity:     it.StockQuantity,
		LowStockThreshold: it.LowStockThreshold,
		Status:            string(it.Status),
		IsActive:          it.IsActive,
		IsFeatured:        it.IsFeatured,
		IsRecommended:     it.IsRecommended,
		IsLatestEdition:   it.IsLatestEdition,
		AuthorID:          it.AuthorID,
		PublisherID:       it.PublisherID,
		CategoryID:        it.CategoryID,
		CreatorName:       it.CreatorName,
		Classification:    it.Classification,
		Subject:           it.Subject,
		Format:            it.Format,
		Condition:         it.Condition,
		Language:          it.Language,
		PublicationYear:   it.PublicationYear,
		CoverImage:        it.CoverImage,
		Tags:              datatypes.JSONSlice[string](nonNil(it.Tags)),
		Images:            datatypes.JSONSlice[string](nonNil(it.Images)),
		Attributes:        datatypes.JSONMap(it.Attributes),
		CreatedAt:         it.CreatedAt,
		UpdatedAt:         it.UpdatedAt,
	}
	if it.DeletedAt != nil {
		m.DeletedAt = gorm.DeletedAt{Time: *it.DeletedAt, Valid: true}
	}
	return m
}

// toItemEntity GORM模型 → 领域实体
func toItemEntity(m *ItemModel) *catalog.Item {
	it := &catalog.Item{
		ID:                m.ID,
		Catalog:           m.Catalog,
		StoreID:           m.StoreID,
		Title:             m.Title,
		Slug:              m.Slug,
		UniqueCode:        m.UniqueCode,
		Description:       m.Description,
		Price:             m.Price,
		DiscountPrice:     m.DiscountPrice,
		StockQuantity:     m.StockQuantity,
		LowStockThreshold: m.LowStockThreshold,
		Status:            catalog.Status(m.Status),
		IsActive:          m.IsActive,
		IsFeatured:        m.IsFeatured,
		IsRecommended:     m.IsRecommended,
		IsLatestEdition:   m.IsLatestEdition,
		AuthorID:          m.AuthorID,
		PublisherID:       m.PublisherID,
		CategoryID:        m.CategoryID,
		CreatorName:       m.CreatorName,
		Classification:    m.Classification,
		Subject:           m.Subject,
		Format:            m.Format,
		Condition:         m.Condition,
		Language:          m.Language,
		PublicationYear:   m.PublicationYear,
		CoverImage:        m.CoverImage,
		Tags:              []string(m.Tags),
		Images:            []string(m.Images),
		Attributes:        map[string]any(m.Attributes),
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
	if m.DeletedAt.Valid {
		deletedAt := m.DeletedAt.Time
		it.DeletedAt = &deletedAt
	}
	return it
}

func toItemEntities(models []ItemModel) []*catalog.Item {
	items := make([]*catalog.Item, len(models))
	for i := range models {
		items[i] = toItemEntity(&models[i])
	}
	return items
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func toEntryModel(e *inventory.LedgerEntry) *LedgerEntryModel {
	return &LedgerEntryModel{
		ID:            e.ID,
		ItemID:        e.ItemID,
		Type:          string(e.Type),
		Quantity:      e.Quantity,
		PreviousStock: e.PreviousStock,
		NewStock:      e.NewStock,
		Reason:        e.Reason,
		CreatedAt:     e.CreatedAt,
	}
}

func toEntryEntity(m *LedgerEntryModel) *inventory.LedgerEntry {
	return &inventory.LedgerEntry{
		ID:            m.ID,
		ItemID:        m.ItemID,
		Type:          inventory.MutationType(m.Type),
		Quantity:      m.Quantity,
		PreviousStock: m.PreviousStock,
		NewStock:      m.NewStock,
		Reason:        m.Reason,
		CreatedAt:     m.CreatedAt,
	}
}

func toReferenceEntity(m *ReferenceModel) *reference.Reference {
	return &reference.Reference{
		ID:        m.ID,
		Kind:      reference.Kind(m.Kind),
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
	}
}
