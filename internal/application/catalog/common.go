package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xiebiao/catalogstore/internal/domain/catalog"
)

const tracerName = "catalogstore/application/catalog"

// ItemCache 商品详情缓存(实现见infrastructure/persistence/redis)
type ItemCache interface {
	Get(ctx context.Context, scope catalog.Scope, id uuid.UUID) (*catalog.Item, bool)
	Set(ctx context.Context, item *catalog.Item)
	Invalidate(ctx context.Context, scope catalog.Scope, ids ...uuid.UUID)
}

// NopCache 不缓存(未启用Redis时使用)
type NopCache struct{}

func (NopCache) Get(context.Context, catalog.Scope, uuid.UUID) (*catalog.Item, bool) {
	return nil, false
}

func (NopCache) Set(context.Context, *catalog.Item) {}

func (NopCache) Invalidate(context.Context, catalog.Scope, ...uuid.UUID) {}

// ScopeRequest 所有用例共用的范围参数(来自URL)
type ScopeRequest struct {
	Catalog string // 目录类型
	StoreID string // 店铺ID,单店铺目录为空
}

// ItemResponse 商品响应DTO
type ItemResponse struct {
	ID             string           `json:"id"`
	Catalog        string           `json:"catalog"`
	StoreID        string           `json:"storeId,omitempty"`
	Title          string           `json:"title"`
	Slug           string           `json:"slug"`
	UniqueCode     string           `json:"uniqueCode,omitempty"`
	Description    string           `json:"description,omitempty"`
	Price          decimal.Decimal  `json:"price"`
	DiscountPrice  *decimal.Decimal `json:"discountPrice,omitempty"`
	EffectivePrice decimal.Decimal  `json:"effectivePrice"`

	StockQuantity     int  `json:"stockQuantity"`
	LowStockThreshold int  `json:"lowStockThreshold"`
	IsLowStock        bool `json:"isLowStock"`

	Status          string `json:"status"`
	IsActive        bool   `json:"isActive"`
	IsFeatured      bool   `json:"isFeatured"`
	IsRecommended   bool   `json:"isRecommended"`
	IsLatestEdition bool   `json:"isLatestEdition"`

	AuthorID    *uuid.UUID `json:"authorId,omitempty"`
	PublisherID *uuid.UUID `json:"publisherId,omitempty"`
	CategoryID  *uuid.UUID `json:"categoryId,omitempty"`

	CreatorName     string `json:"creatorName,omitempty"`
	Classification  string `json:"classification,omitempty"`
	Subject         string `json:"subject,omitempty"`
	Format          string `json:"format,omitempty"`
	Condition       string `json:"condition,omitempty"`
	Language        string `json:"language,omitempty"`
	PublicationYear *int   `json:"publicationYear,omitempty"`

	CoverImage string         `json:"coverImage,omitempty"`
	Tags       []string       `json:"tags"`
	Images     []string       `json:"images"`
	Attributes map[string]any `json:"attributes,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToItemResponse 领域实体 → 响应DTO
func ToItemResponse(it *catalog.Item) ItemResponse {
	resp := ItemResponse{
		ID:                it.ID.String(),
		Catalog:           it.Catalog,
		Title:             it.Title,
		Slug:              it.Slug,
		UniqueCode:        it.UniqueCode,
		Description:       it.Description,
		Price:             it.Price,
		DiscountPrice:     it.DiscountPrice,
		EffectivePrice:    it.EffectivePrice(),
		StockQuantity:     it.StockQuantity,
		LowStockThreshold: it.LowStockThreshold,
		IsLowStock:        it.IsLowStock(),
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
		Tags:              nonNil(it.Tags),
		Images:            nonNil(it.Images),
		Attributes:        it.Attributes,
		CreatedAt:         it.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         it.UpdatedAt.Format(time.RFC3339),
	}
	if it.StoreID != uuid.Nil {
		resp.StoreID = it.StoreID.String()
	}
	return resp
}

// ToItemResponses 批量转换
func ToItemResponses(items []*catalog.Item) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i, it := range items {
		out[i] = ToItemResponse(it)
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// parseID 解析URL中的商品ID
func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, catalog.ErrInvalidID.WithDetails(map[string]string{"id": "必须是UUID"})
	}
	return id, nil
}
