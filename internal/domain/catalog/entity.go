package catalog

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status 商品销售状态
type Status string

const (
	StatusActive       Status = "ACTIVE"
	StatusInactive     Status = "INACTIVE"
	StatusOutOfStock   Status = "OUT_OF_STOCK"
	StatusDiscontinued Status = "DISCONTINUED"
)

// ParseStatus 解析状态字符串
func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusActive, StatusInactive, StatusOutOfStock, StatusDiscontinued:
		return st, nil
	}
	return "", ErrInvalidStatus
}

const (
	// DefaultLowStockThreshold 默认低库存阈值
	DefaultLowStockThreshold = 5

	// MaxStockQuantity 库存上限(数据库int列)
	MaxStockQuantity = math.MaxInt32
)

// Item 目录商品(聚合根)
// DDD设计说明:
// 1. 图书、教材、文具共用一个实体,类型差异由Schema约束
// 2. 价格使用decimal,精确到分
// 3. Slug在(Catalog, StoreID)范围内唯一,随标题变化重新生成
// 4. DeletedAt非空表示软删除,默认查询全部排除
type Item struct {
	ID      uuid.UUID
	Catalog string    // 目录类型: book / academic-book / stationery
	StoreID uuid.UUID // 店铺范围,单店铺目录为uuid.Nil

	Title       string
	Slug        string
	UniqueCode  string // ISBN或SKU
	Description string

	Price         decimal.Decimal
	DiscountPrice *decimal.Decimal

	StockQuantity     int
	LowStockThreshold int

	Status          Status
	IsActive        bool
	IsFeatured      bool
	IsRecommended   bool
	IsLatestEdition bool

	AuthorID    *uuid.UUID
	PublisherID *uuid.UUID
	CategoryID  *uuid.UUID

	CreatorName     string // 作者名(图书) / 品牌(文具),参与搜索
	Classification  string // 学段(教材) / 品类(文具)
	Subject         string // 学科(教材) / 子品类(文具)
	Format          string
	Condition       string
	Language        string
	PublicationYear *int

	CoverImage string
	Tags       []string
	Images     []string
	Attributes map[string]any

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// Scope 商品所属范围
func (it *Item) Scope() Scope {
	return Scope{Catalog: it.Catalog, StoreID: it.StoreID}
}

// IsDeleted 是否已软删除
func (it *Item) IsDeleted() bool {
	return it.DeletedAt != nil
}

// IsLowStock 低库存判断: stock <= threshold,且商品在售未删除
func (it *Item) IsLowStock() bool {
	return it.IsActive && !it.IsDeleted() && it.StockQuantity <= it.LowStockThreshold
}

// EffectivePrice 实际售价(有折扣价时取折扣价)
func (it *Item) EffectivePrice() decimal.Decimal {
	if it.DiscountPrice != nil {
		return *it.DiscountPrice
	}
	return it.Price
}

// SetStock 更新库存并同步销售状态
// 业务规则:
// - 在售商品库存归零时转为OUT_OF_STOCK
// - OUT_OF_STOCK商品补货后恢复ACTIVE
// - INACTIVE/DISCONTINUED不受库存影响
func (it *Item) SetStock(quantity int, now time.Time) {
	it.StockQuantity = quantity
	switch {
	case quantity == 0 && it.Status == StatusActive:
		it.Status = StatusOutOfStock
	case quantity > 0 && it.Status == StatusOutOfStock:
		it.Status = StatusActive
	}
	it.UpdatedAt = now
}

// MarkDeleted 软删除:记录删除时间并下架
func (it *Item) MarkDeleted(now time.Time) {
	it.DeletedAt = &now
	it.IsActive = false
	it.Status = StatusInactive
	it.UpdatedAt = now
}

// Clone 深拷贝(内存仓储与缓存使用,避免共享可变状态)
func (it *Item) Clone() *Item {
	if it == nil {
		return nil
	}
	cp := *it
	cp.DiscountPrice = clonePtr(it.DiscountPrice)
	cp.AuthorID = clonePtr(it.AuthorID)
	cp.PublisherID = clonePtr(it.PublisherID)
	cp.CategoryID = clonePtr(it.CategoryID)
	cp.PublicationYear = clonePtr(it.PublicationYear)
	cp.DeletedAt = clonePtr(it.DeletedAt)
	cp.Tags = append([]string(nil), it.Tags...)
	cp.Images = append([]string(nil), it.Images...)
	if it.Attributes != nil {
		cp.Attributes = make(map[string]any, len(it.Attributes))
		for k, v := range it.Attributes {
			cp.Attributes[k] = v
		}
	}
	return &cp
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
