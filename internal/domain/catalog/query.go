package catalog

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/xiebiao/catalogstore/pkg/errors"
)

// 分页参数
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// ListFilter 列表查询的原始参数(来自query string,全部可选)
type ListFilter struct {
	Search         string
	CategoryID     string
	AuthorID       string
	PublisherID    string
	Classification string // academicLevel / category 的统一名称
	Subject        string
	MinPrice       string
	MaxPrice       string
	Format         string
	Condition      string
	Language       string
	IsFeatured     string
	IsActive       string
	Status         string
	SortBy         string
	SortOrder      string
	Page           string
	Limit          string
}

// Criteria 类型化的过滤条件,各字段之间是AND关系
type Criteria struct {
	Scope       Scope
	AllCatalogs bool // 跨目录聚合查询,忽略Scope(Scope.Catalog非空时仍按目录过滤)

	Search         string
	CategoryID     *uuid.UUID
	AuthorID       *uuid.UUID
	PublisherID    *uuid.UUID
	Classification string
	Subject        string
	Format         string
	Condition      string
	Language       string
	MinPrice       *decimal.Decimal
	MaxPrice       *decimal.Decimal

	IsFeatured      *bool
	IsActive        *bool
	IsRecommended   *bool
	IsLatestEdition *bool
	InStock         *bool
	Status          Status
}

// SortField 可排序字段(白名单)
type SortField string

const (
	SortByTitle           SortField = "title"
	SortByPrice           SortField = "price"
	SortByCreatedAt       SortField = "createdAt"
	SortByPublicationYear SortField = "publicationYear"
	SortByStockQuantity   SortField = "stockQuantity"
)

// sortFields 请求参数 → 排序字段,同时接受camelCase和snake_case
var sortFields = map[string]SortField{
	"title":            SortByTitle,
	"price":            SortByPrice,
	"createdAt":        SortByCreatedAt,
	"created_at":       SortByCreatedAt,
	"publicationYear":  SortByPublicationYear,
	"publication_year": SortByPublicationYear,
	"stockQuantity":    SortByStockQuantity,
	"stock_quantity":   SortByStockQuantity,
}

// SortFields 返回全部可排序字段
func SortFields() []SortField {
	return []SortField{SortByTitle, SortByPrice, SortByCreatedAt, SortByPublicationYear, SortByStockQuantity}
}

// Sort 排序
type Sort struct {
	Field SortField
	Desc  bool
}

// Query 构建完成的查询对象
type Query struct {
	Criteria
	Sort  Sort
	Page  int
	Limit int
}

// Offset 跳过的记录数
func (q *Query) Offset() int {
	return (q.Page - 1) * q.Limit
}

// =========================================
// 查询构建
// =========================================

// QueryBuilder 把原始参数转换为类型化的Query
type QueryBuilder struct {
	registry *Registry
}

// NewQueryBuilder 创建查询构建器
func NewQueryBuilder(registry *Registry) *QueryBuilder {
	return &QueryBuilder{registry: registry}
}

// Build 构建范围内的查询
// 规则:
// 1. page<1或非数字按1处理,limit限制在[1,100],默认10
// 2. sortBy必须在白名单中,默认createdAt desc
// 3. 数值/布尔/UUID格式错误返回校验错误,字段详情在Details中
// 4. 目录未注册或范围与目录类型不符时直接拒绝
func (b *QueryBuilder) Build(scope Scope, f ListFilter) (*Query, error) {
	schema, err := b.registry.Lookup(scope.Catalog)
	if err != nil {
		return nil, err
	}
	if err := schema.Check(scope); err != nil {
		return nil, err
	}
	q, err := b.build(f)
	if err != nil {
		return nil, err
	}
	q.Scope = scope
	return q, nil
}

// BuildGlobal 构建跨目录查询(商品聚合),catalog为空表示全部目录
func (b *QueryBuilder) BuildGlobal(catalog string, f ListFilter) (*Query, error) {
	q, err := b.build(f)
	if err != nil {
		return nil, err
	}
	q.AllCatalogs = true
	q.Scope = Scope{Catalog: catalog}
	return q, nil
}

func (b *QueryBuilder) build(f ListFilter) (*Query, error) {
	v := NewValidator()
	q := &Query{
		Page:  clampPage(f.Page),
		Limit: clampLimit(f.Limit),
		Sort:  Sort{Field: SortByCreatedAt, Desc: true},
	}

	q.Search = strings.TrimSpace(f.Search)
	q.Classification = strings.TrimSpace(f.Classification)
	q.Subject = strings.TrimSpace(f.Subject)
	q.Format = strings.ToUpper(strings.TrimSpace(f.Format))
	q.Condition = strings.ToUpper(strings.TrimSpace(f.Condition))
	q.Language = strings.TrimSpace(f.Language)

	q.CategoryID = parseUUID(f.CategoryID, "categoryId", v)
	q.AuthorID = parseUUID(f.AuthorID, "authorId", v)
	q.PublisherID = parseUUID(f.PublisherID, "publisherId", v)
	q.MinPrice = parseDecimal(f.MinPrice, "minPrice", v)
	q.MaxPrice = parseDecimal(f.MaxPrice, "maxPrice", v)
	if q.MinPrice != nil && q.MaxPrice != nil {
		v.Check(q.MinPrice.LessThanOrEqual(*q.MaxPrice), "maxPrice", "最高价不能低于最低价")
	}
	q.IsFeatured = parseBool(f.IsFeatured, "isFeatured", v)
	q.IsActive = parseBool(f.IsActive, "isActive", v)

	if s := strings.TrimSpace(f.Status); s != "" {
		status, err := ParseStatus(strings.ToUpper(s))
		v.Check(err == nil, "status", ErrInvalidStatus.Message)
		q.Status = status
	}

	if err := v.Err(); err != nil {
		return nil, err
	}

	if by := strings.TrimSpace(f.SortBy); by != "" {
		field, ok := sortFields[by]
		if !ok {
			return nil, ErrInvalidSort.WithDetails(map[string]string{"sortBy": by})
		}
		q.Sort.Field = field
	}

	switch strings.ToLower(strings.TrimSpace(f.SortOrder)) {
	case "", "desc":
		q.Sort.Desc = true
	case "asc":
		q.Sort.Desc = false
	default:
		return nil, ErrInvalidSortOrder
	}

	return q, nil
}

func clampPage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 1 {
		return DefaultPage
	}
	return page
}

func clampLimit(raw string) int {
	limit, err := strconv.Atoi(strings.TrimSpace(raw))
	switch {
	case err != nil:
		return DefaultLimit
	case limit < 1:
		return 1
	case limit > MaxLimit:
		return MaxLimit
	}
	return limit
}

func parseUUID(raw, key string, v *Validator) *uuid.UUID {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		v.AddError(key, "必须是合法的UUID")
		return nil
	}
	return &id
}

func parseDecimal(raw, key string, v *Validator) *decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		v.AddError(key, "必须是非负数字")
		return nil
	}
	return &d
}

func parseBool(raw, key string, v *Validator) *bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		v.AddError(key, "必须是true或false")
		return nil
	}
	return &b
}

// =========================================
// 内存匹配(内存仓储使用,与SQL实现语义一致)
// =========================================

// Matches 判断商品是否满足条件(已删除的商品永远不匹配)
func (c *Criteria) Matches(it *Item) bool {
	if it.IsDeleted() {
		return false
	}
	if !c.AllCatalogs || c.Scope.Catalog != "" {
		if it.Catalog != c.Scope.Catalog {
			return false
		}
	}
	if !c.AllCatalogs && it.StoreID != c.Scope.StoreID {
		return false
	}

	if c.Search != "" && !matchesSearch(it, c.Search) {
		return false
	}
	if !equalID(c.CategoryID, it.CategoryID) || !equalID(c.AuthorID, it.AuthorID) || !equalID(c.PublisherID, it.PublisherID) {
		return false
	}
	if c.Classification != "" && !strings.EqualFold(c.Classification, it.Classification) {
		return false
	}
	if c.Subject != "" && !strings.EqualFold(c.Subject, it.Subject) {
		return false
	}
	if c.Format != "" && c.Format != it.Format {
		return false
	}
	if c.Condition != "" && c.Condition != it.Condition {
		return false
	}
	if c.Language != "" && !strings.EqualFold(c.Language, it.Language) {
		return false
	}
	if c.MinPrice != nil && it.Price.LessThan(*c.MinPrice) {
		return false
	}
	if c.MaxPrice != nil && it.Price.GreaterThan(*c.MaxPrice) {
		return false
	}
	if !equalBool(c.IsFeatured, it.IsFeatured) || !equalBool(c.IsActive, it.IsActive) ||
		!equalBool(c.IsRecommended, it.IsRecommended) || !equalBool(c.IsLatestEdition, it.IsLatestEdition) {
		return false
	}
	if c.InStock != nil && (it.StockQuantity > 0) != *c.InStock {
		return false
	}
	if c.Status != "" && c.Status != it.Status {
		return false
	}
	return true
}

func matchesSearch(it *Item, search string) bool {
	needle := strings.ToLower(search)
	for _, field := range []string{it.Title, it.UniqueCode, it.Subject, it.Classification, it.Description, it.CreatorName} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func equalID(want, got *uuid.UUID) bool {
	if want == nil {
		return true
	}
	return got != nil && *got == *want
}

func equalBool(want *bool, got bool) bool {
	return want == nil || *want == got
}

// SortItems 按Sort对商品排序(内存仓储使用),相同值按ID稳定排序
func SortItems(items []*Item, s Sort) {
	less := func(a, b *Item) int {
		switch s.Field {
		case SortByTitle:
			return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		case SortByPrice:
			return a.Price.Cmp(b.Price)
		case SortByPublicationYear:
			return compareYear(a.PublicationYear, b.PublicationYear)
		case SortByStockQuantity:
			return a.StockQuantity - b.StockQuantity
		default:
			return a.CreatedAt.Compare(b.CreatedAt)
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		c := less(items[i], items[j])
		if c == 0 {
			return items[i].ID.String() < items[j].ID.String()
		}
		if s.Desc {
			return c > 0
		}
		return c < 0
	})
}

func compareYear(a, b *int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return *a - *b
}

// =========================================
// 分页结果
// =========================================

// Pagination 分页信息
type Pagination struct {
	CurrentPage     int   `json:"currentPage"`
	TotalPages      int   `json:"totalPages"`
	TotalItems      int64 `json:"totalItems"`
	ItemsPerPage    int   `json:"itemsPerPage"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

// NewPagination totalPages = ceil(total/limit)
func NewPagination(page, limit int, total int64) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return Pagination{
		CurrentPage:     page,
		TotalPages:      totalPages,
		TotalItems:      total,
		ItemsPerPage:    limit,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}
}

// Page 分页结果
type Page[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// MapPage 转换分页结果中的元素
func MapPage[T, R any](p *Page[T], fn func(T) R) *Page[R] {
	out := make([]R, len(p.Items))
	for i, item := range p.Items {
		out[i] = fn(item)
	}
	return &Page[R]{Items: out, Pagination: p.Pagination}
}

// =========================================
// 查询执行
// =========================================

// QueryService 执行目录查询
type QueryService struct {
	repo    Repository
	builder *QueryBuilder
}

// NewQueryService 创建查询服务
func NewQueryService(repo Repository, builder *QueryBuilder) *QueryService {
	return &QueryService{repo: repo, builder: builder}
}

// Builder 查询构建器
func (s *QueryService) Builder() *QueryBuilder {
	return s.builder
}

// Execute 构建并执行范围内的列表查询
func (s *QueryService) Execute(ctx context.Context, scope Scope, f ListFilter) (*Page[*Item], error) {
	q, err := s.builder.Build(scope, f)
	if err != nil {
		return nil, err
	}
	return s.Run(ctx, q)
}

// Run 并发执行count与find
// 两次读取之间允许轻微不一致(期间有写入时total与items可能相差一两条)
func (s *QueryService) Run(ctx context.Context, q *Query) (*Page[*Item], error) {
	var (
		items []*Item
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = s.repo.Count(gctx, q)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = s.repo.FindMany(gctx, q)
		return err
	})
	if err := g.Wait(); err != nil {
		if apperrors.IsAppError(err) {
			return nil, err
		}
		return nil, apperrors.WrapStore(err, "查询商品列表失败")
	}

	if items == nil {
		items = []*Item{}
	}
	return &Page[*Item]{Items: items, Pagination: NewPagination(q.Page, q.Limit, total)}, nil
}
