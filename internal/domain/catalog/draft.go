package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Draft 创建商品的输入
type Draft struct {
	Title         string
	UniqueCode    string
	Description   string
	Price         decimal.Decimal
	DiscountPrice *decimal.Decimal

	StockQuantity     int
	LowStockThreshold *int // nil使用默认阈值

	Status          Status
	IsActive        *bool // nil默认为true
	IsFeatured      bool
	IsRecommended   bool
	IsLatestEdition bool

	AuthorID    *uuid.UUID
	PublisherID *uuid.UUID
	CategoryID  *uuid.UUID

	CreatorName     string
	Classification  string
	Subject         string
	Format          string
	Condition       string
	Language        string
	PublicationYear *int

	CoverImage string
	Tags       []string
	Images     []string
	Attributes map[string]any
}

// NewItem 根据输入构建商品实体(尚未校验)
func (d *Draft) NewItem(scope Scope, now time.Time) *Item {
	it := &Item{
		ID:                uuid.New(),
		Catalog:           scope.Catalog,
		StoreID:           scope.StoreID,
		Title:             d.Title,
		UniqueCode:        d.UniqueCode,
		Description:       d.Description,
		Price:             d.Price,
		DiscountPrice:     clonePtr(d.DiscountPrice),
		StockQuantity:     d.StockQuantity,
		LowStockThreshold: DefaultLowStockThreshold,
		Status:            d.Status,
		IsActive:          true,
		IsFeatured:        d.IsFeatured,
		IsRecommended:     d.IsRecommended,
		IsLatestEdition:   d.IsLatestEdition,
		AuthorID:          clonePtr(d.AuthorID),
		PublisherID:       clonePtr(d.PublisherID),
		CategoryID:        clonePtr(d.CategoryID),
		CreatorName:       d.CreatorName,
		Classification:    d.Classification,
		Subject:           d.Subject,
		Format:            d.Format,
		Condition:         d.Condition,
		Language:          d.Language,
		PublicationYear:   clonePtr(d.PublicationYear),
		CoverImage:        d.CoverImage,
		Tags:              append([]string(nil), d.Tags...),
		Images:            append([]string(nil), d.Images...),
		Attributes:        d.Attributes,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if d.LowStockThreshold != nil {
		it.LowStockThreshold = *d.LowStockThreshold
	}
	if d.IsActive != nil {
		it.IsActive = *d.IsActive
	}
	// 初始库存为0的在售商品直接标记缺货
	if it.StockQuantity == 0 && (it.Status == "" || it.Status == StatusActive) {
		it.Status = StatusOutOfStock
	}
	return it
}

// Patch 部分更新,nil字段保持不变
// 库存不在此处修改,只能通过库存操作(保证每次变动都有流水)
type Patch struct {
	Title       *string
	UniqueCode  *string
	Description *string

	Price              *decimal.Decimal
	DiscountPrice      *decimal.Decimal
	ClearDiscountPrice bool

	LowStockThreshold *int
	Status            *Status
	IsActive          *bool
	IsFeatured        *bool
	IsRecommended     *bool
	IsLatestEdition   *bool

	AuthorID    *uuid.UUID
	PublisherID *uuid.UUID
	CategoryID  *uuid.UUID

	CreatorName     *string
	Classification  *string
	Subject         *string
	Format          *string
	Condition       *string
	Language        *string
	PublicationYear *int

	CoverImage *string
	Tags       *[]string
	Images     *[]string

	// Attributes 与现有属性合并,值为nil表示删除该属性
	Attributes map[string]any
}

// Empty 是否没有任何字段需要更新
func (p *Patch) Empty() bool {
	return p.Title == nil && p.UniqueCode == nil && p.Description == nil &&
		p.Price == nil && p.DiscountPrice == nil && !p.ClearDiscountPrice &&
		p.LowStockThreshold == nil && p.Status == nil &&
		p.IsActive == nil && p.IsFeatured == nil && p.IsRecommended == nil && p.IsLatestEdition == nil &&
		p.AuthorID == nil && p.PublisherID == nil && p.CategoryID == nil &&
		p.CreatorName == nil && p.Classification == nil && p.Subject == nil &&
		p.Format == nil && p.Condition == nil && p.Language == nil && p.PublicationYear == nil &&
		p.CoverImage == nil && p.Tags == nil && p.Images == nil && len(p.Attributes) == 0
}

// Apply 把变更写入商品,返回标题是否变化(需要重新生成slug)
func (p *Patch) Apply(it *Item, now time.Time) (titleChanged bool) {
	if p.Title != nil && *p.Title != it.Title {
		it.Title = *p.Title
		titleChanged = true
	}
	setIf(&it.UniqueCode, p.UniqueCode)
	setIf(&it.Description, p.Description)

	setIf(&it.Price, p.Price)
	if p.ClearDiscountPrice {
		it.DiscountPrice = nil
	} else if p.DiscountPrice != nil {
		it.DiscountPrice = clonePtr(p.DiscountPrice)
	}

	setIf(&it.LowStockThreshold, p.LowStockThreshold)
	setIf(&it.Status, p.Status)
	setIf(&it.IsActive, p.IsActive)
	setIf(&it.IsFeatured, p.IsFeatured)
	setIf(&it.IsRecommended, p.IsRecommended)
	setIf(&it.IsLatestEdition, p.IsLatestEdition)

	if p.AuthorID != nil {
		it.AuthorID = clonePtr(p.AuthorID)
	}
	if p.PublisherID != nil {
		it.PublisherID = clonePtr(p.PublisherID)
	}
	if p.CategoryID != nil {
		it.CategoryID = clonePtr(p.CategoryID)
	}

	setIf(&it.CreatorName, p.CreatorName)
	setIf(&it.Classification, p.Classification)
	setIf(&it.Subject, p.Subject)
	setIf(&it.Format, p.Format)
	setIf(&it.Condition, p.Condition)
	setIf(&it.Language, p.Language)
	if p.PublicationYear != nil {
		it.PublicationYear = clonePtr(p.PublicationYear)
	}

	setIf(&it.CoverImage, p.CoverImage)
	if p.Tags != nil {
		it.Tags = append([]string(nil), (*p.Tags)...)
	}
	if p.Images != nil {
		it.Images = append([]string(nil), (*p.Images)...)
	}

	if len(p.Attributes) > 0 {
		merged := make(map[string]any, len(it.Attributes)+len(p.Attributes))
		for k, v := range it.Attributes {
			merged[k] = v
		}
		for k, v := range p.Attributes {
			if v == nil {
				delete(merged, k)
				continue
			}
			merged[k] = v
		}
		it.Attributes = merged
	}

	it.UpdatedAt = now
	return titleChanged
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// BulkPatch 批量更新允许修改的字段
// 标题、编码等涉及唯一性的字段不允许批量修改
type BulkPatch struct {
	Price             *decimal.Decimal
	DiscountPrice     *decimal.Decimal
	Status            *Status
	IsActive          *bool
	IsFeatured        *bool
	IsRecommended     *bool
	CategoryID        *uuid.UUID
	LowStockThreshold *int
}

// Patch 转换为普通Patch
func (b *BulkPatch) Patch() *Patch {
	return &Patch{
		Price:             b.Price,
		DiscountPrice:     b.DiscountPrice,
		Status:            b.Status,
		IsActive:          b.IsActive,
		IsFeatured:        b.IsFeatured,
		IsRecommended:     b.IsRecommended,
		CategoryID:        b.CategoryID,
		LowStockThreshold: b.LowStockThreshold,
	}
}
