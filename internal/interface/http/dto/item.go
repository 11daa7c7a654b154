package dto

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xiebiao/catalogstore/internal/domain/catalog"
)

// CreateItemRequest HTTP上架请求
// validator tag说明:
// - price2dp: 金额最多两位小数(pkg/validator中注册)
// - uniquecode: ISBN/SKU格式粗校验,具体规则由目录schema决定
// - 必填字段随目录不同,由schema校验,这里只校验通用字段
type CreateItemRequest struct {
	Title         string           `json:"title" binding:"required,max=255" example:"Intro to Physics"`
	UniqueCode    string           `json:"uniqueCode" binding:"omitempty,uniquecode" example:"9780306406157"`
	Description   string           `json:"description" binding:"max=5000" example:"入门物理教材"`
	Price         decimal.Decimal  `json:"price" binding:"required,price2dp" swaggertype:"string" example:"59.90"`
	DiscountPrice *decimal.Decimal `json:"discountPrice" binding:"omitempty,price2dp" swaggertype:"string" example:"49.90"`

	StockQuantity     int  `json:"stockQuantity" binding:"min=0" example:"100"`
	LowStockThreshold *int `json:"lowStockThreshold" binding:"omitempty,min=0" example:"5"`

	Status          string `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE OUT_OF_STOCK DISCONTINUED" example:"ACTIVE"`
	IsActive        *bool  `json:"isActive" example:"true"`
	IsFeatured      bool   `json:"isFeatured"`
	IsRecommended   bool   `json:"isRecommended"`
	IsLatestEdition bool   `json:"isLatestEdition"`

	AuthorID    *uuid.UUID `json:"authorId" swaggertype:"string"`
	PublisherID *uuid.UUID `json:"publisherId" swaggertype:"string"`
	CategoryID  *uuid.UUID `json:"categoryId" swaggertype:"string"`

	CreatorName     string `json:"creatorName" binding:"max=255" example:"Jane Doe"`
	Classification  string `json:"classification" binding:"max=64" example:"UNDERGRADUATE"`
	Subject         string `json:"subject" binding:"max=128" example:"Physics"`
	Format          string `json:"format" binding:"max=32" example:"PAPERBACK"`
	Condition       string `json:"condition" binding:"max=32" example:"NEW"`
	Language        string `json:"language" binding:"max=64" example:"English"`
	PublicationYear *int   `json:"publicationYear" binding:"omitempty,min=1000,max=9999" example:"2024"`

	CoverImage string         `json:"coverImage" binding:"omitempty,url,max=500"`
	Tags       []string       `json:"tags" binding:"omitempty,max=20,dive,max=50"`
	Images     []string       `json:"images" binding:"omitempty,max=20,dive,url"`
	Attributes map[string]any `json:"attributes"`
}

// ToDraft 转换为领域输入
func (r *CreateItemRequest) ToDraft() catalog.Draft {
	return catalog.Draft{
		Title:             strings.TrimSpace(r.Title),
		UniqueCode:        strings.TrimSpace(r.UniqueCode),
		Description:       r.Description,
		Price:             r.Price,
		DiscountPrice:     r.DiscountPrice,
		StockQuantity:     r.StockQuantity,
		LowStockThreshold: r.LowStockThreshold,
		Status:            catalog.Status(r.Status),
		IsActive:          r.IsActive,
		IsFeatured:        r.IsFeatured,
		IsRecommended:     r.IsRecommended,
		IsLatestEdition:   r.IsLatestEdition,
		AuthorID:          r.AuthorID,
		PublisherID:       r.PublisherID,
		CategoryID:        r.CategoryID,
		CreatorName:       r.CreatorName,
		Classification:    r.Classification,
		Subject:           r.Subject,
		Format:            r.Format,
		Condition:         r.Condition,
		Language:          r.Language,
		PublicationYear:   r.PublicationYear,
		CoverImage:        r.CoverImage,
		Tags:              r.Tags,
		Images:            r.Images,
		Attributes:        r.Attributes,
	}
}

// UpdateItemRequest HTTP更新请求
// 所有字段可选,未出现的字段不修改;库存只能通过库存接口修改
type UpdateItemRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=255"`
	UniqueCode  *string `json:"uniqueCode" binding:"omitempty,uniquecode"`
	Description *string `json:"description" binding:"omitempty,max=5000"`

	Price              *decimal.Decimal `json:"price" binding:"omitempty,price2dp" swaggertype:"string"`
	DiscountPrice      *decimal.Decimal `json:"discountPrice" binding:"omitempty,price2dp" swaggertype:"string"`
	ClearDiscountPrice bool             `json:"clearDiscountPrice"` // true时移除折扣价

	LowStockThreshold *int    `json:"lowStockThreshold" binding:"omitempty,min=0"`
	Status            *string `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE OUT_OF_STOCK DISCONTINUED"`
	IsActive          *bool   `json:"isActive"`
	IsFeatured        *bool   `json:"isFeatured"`
	IsRecommended     *bool   `json:"isRecommended"`
	IsLatestEdition   *bool   `json:"isLatestEdition"`

	AuthorID    *uuid.UUID `json:"authorId" swaggertype:"string"`
	PublisherID *uuid.UUID `json:"publisherId" swaggertype:"string"`
	CategoryID  *uuid.UUID `json:"categoryId" swaggertype:"string"`

	CreatorName     *string `json:"creatorName" binding:"omitempty,max=255"`
	Classification  *string `json:"classification" binding:"omitempty,max=64"`
	Subject         *string `json:"subject" binding:"omitempty,max=128"`
	Format          *string `json:"format" binding:"omitempty,max=32"`
	Condition       *string `json:"condition" binding:"omitempty,max=32"`
	Language        *string `json:"language" binding:"omitempty,max=64"`
	PublicationYear *int    `json:"publicationYear" binding:"omitempty,min=1000,max=9999"`

	CoverImage *string        `json:"coverImage" binding:"omitempty,max=500"`
	Tags       *[]string      `json:"tags" binding:"omitempty,max=20,dive,max=50"`
	Images     *[]string      `json:"images" binding:"omitempty,max=20,dive,url"`
	Attributes map[string]any `json:"attributes"` // 合并到现有属性,值为null表示删除
}

// ToPatch 转换为领域Patch
func (r *UpdateItemRequest) ToPatch() catalog.Patch {
	p := catalog.Patch{
		Title:              trimPtr(r.Title),
		UniqueCode:         trimPtr(r.UniqueCode),
		Description:        r.Description,
		Price:              r.Price,
		DiscountPrice:      r.DiscountPrice,
		ClearDiscountPrice: r.ClearDiscountPrice,
		LowStockThreshold:  r.LowStockThreshold,
		IsActive:           r.IsActive,
		IsFeatured:         r.IsFeatured,
		IsRecommended:      r.IsRecommended,
		IsLatestEdition:    r.IsLatestEdition,
		AuthorID:           r.AuthorID,
		PublisherID:        r.PublisherID,
		CategoryID:         r.CategoryID,
		CreatorName:        r.CreatorName,
		Classification:     r.Classification,
		Subject:            r.Subject,
		Format:             r.Format,
		Condition:          r.Condition,
		Language:           r.Language,
		PublicationYear:    r.PublicationYear,
		CoverImage:         r.CoverImage,
		Tags:               r.Tags,
		Images:             r.Images,
		Attributes:         r.Attributes,
	}
	if r.Status != nil {
		st := catalog.Status(*r.Status)
		p.Status = &st
	}
	return p
}

// UpdateStatusRequest 修改销售状态
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=ACTIVE INACTIVE OUT_OF_STOCK DISCONTINUED" example:"INACTIVE"`
}

// AdjustStockRequest 库存调整请求
// quantity允许为0(set为0即清空库存),operation非法时由领域层返回400
type AdjustStockRequest struct {
	Quantity  *int   `json:"quantity" binding:"required,min=0" example:"10"`
	Operation string `json:"operation" binding:"required" example:"subtract"` // add | subtract | set
	Reason    string `json:"reason" binding:"max=255" example:"门店盘点"`
}

// BulkUpdateRequest 批量更新请求
type BulkUpdateRequest struct {
	IDs  []string       `json:"ids" binding:"required,min=1,max=100"`
	Data *BulkPatchData `json:"data" binding:"required"`
}

// BulkPatchData 批量更新允许修改的字段
type BulkPatchData struct {
	Price             *decimal.Decimal `json:"price" binding:"omitempty,price2dp" swaggertype:"string"`
	DiscountPrice     *decimal.Decimal `json:"discountPrice" binding:"omitempty,price2dp" swaggertype:"string"`
	Status            *string          `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE OUT_OF_STOCK DISCONTINUED"`
	IsActive          *bool            `json:"isActive"`
	IsFeatured        *bool            `json:"isFeatured"`
	IsRecommended     *bool            `json:"isRecommended"`
	CategoryID        *uuid.UUID       `json:"categoryId" swaggertype:"string"`
	LowStockThreshold *int             `json:"lowStockThreshold" binding:"omitempty,min=0"`
}

// ToBulkPatch 转换为领域BulkPatch
func (d *BulkPatchData) ToBulkPatch() catalog.BulkPatch {
	b := catalog.BulkPatch{
		Price:             d.Price,
		DiscountPrice:     d.DiscountPrice,
		IsActive:          d.IsActive,
		IsFeatured:        d.IsFeatured,
		IsRecommended:     d.IsRecommended,
		CategoryID:        d.CategoryID,
		LowStockThreshold: d.LowStockThreshold,
	}
	if d.Status != nil {
		st := catalog.Status(*d.Status)
		b.Status = &st
	}
	return b
}

// BulkDeleteRequest 批量删除请求
type BulkDeleteRequest struct {
	IDs []string `json:"ids" binding:"required,min=1,max=100"`
}

// ListItemsQuery 列表查询参数
// 全部按字符串接收,非法的分页参数回退默认值,非法排序字段返回400
type ListItemsQuery struct {
	Search         string `form:"search"`
	CategoryID     string `form:"categoryId"`
	AuthorID       string `form:"authorId"`
	PublisherID    string `form:"publisherId"`
	Classification string `form:"classification"`
	AcademicLevel  string `form:"academicLevel"`
	Category       string `form:"category"`
	Subject        string `form:"subject"`
	MinPrice       string `form:"minPrice"`
	MaxPrice       string `form:"maxPrice"`
	Format         string `form:"format"`
	Condition      string `form:"condition"`
	Language       string `form:"language"`
	IsFeatured     string `form:"isFeatured"`
	IsActive       string `form:"isActive"`
	Status         string `form:"status"`
	SortBy         string `form:"sortBy"`
	SortOrder      string `form:"sortOrder"`
	Page           string `form:"page"`
	Limit          string `form:"limit"`
}

// ToFilter 转换为领域过滤参数
// academicLevel(教材)和category(文具)是classification的别名
func (q *ListItemsQuery) ToFilter() catalog.ListFilter {
	classification := q.Classification
	for _, alias := range []string{q.AcademicLevel, q.Category} {
		if classification == "" {
			classification = alias
		}
	}
	return catalog.ListFilter{
		Search:         q.Search,
		CategoryID:     q.CategoryID,
		AuthorID:       q.AuthorID,
		PublisherID:    q.PublisherID,
		Classification: classification,
		Subject:        q.Subject,
		MinPrice:       q.MinPrice,
		MaxPrice:       q.MaxPrice,
		Format:         q.Format,
		Condition:      q.Condition,
		Language:       q.Language,
		IsFeatured:     q.IsFeatured,
		IsActive:       q.IsActive,
		Status:         q.Status,
		SortBy:         q.SortBy,
		SortOrder:      q.SortOrder,
		Page:           q.Page,
		Limit:          q.Limit,
	}
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
