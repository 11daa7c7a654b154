package catalog

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	apperrors "github.com/xiebiao/catalogstore/pkg/errors"
)

func TestQueryBuilderDefaults(t *testing.T) {
	q, err := NewQueryBuilder(DefaultRegistry()).Build(Scope{Catalog: CatalogBook}, ListFilter{})
	require.NoError(t, err)

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.Limit)
	assert.Equal(t, 0, q.Offset())
	assert.Equal(t, Sort{Field: SortByCreatedAt, Desc: true}, q.Sort)
	assert.False(t, q.AllCatalogs)
}

func TestQueryBuilderPaging(t *testing.T) {
	cases := []struct {
		name        string
		page, limit string
		wantPage    int
		wantLimit   int
	}{
		{"正常值", "3", "20", 3, 20},
		{"页码为0", "0", "10", 1, 10},
		{"页码非数字", "abc", "10", 1, 10},
		{"limit超过上限", "1", "1000", 1, 100},
		{"limit为0", "1", "0", 1, 1},
		{"limit非数字", "2", "x", 2, 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := NewQueryBuilder(DefaultRegistry()).Build(Scope{Catalog: CatalogBook}, ListFilter{Page: tc.page, Limit: tc.limit})
			require.NoError(t, err)
			assert.Equal(t, tc.wantPage, q.Page)
			assert.Equal(t, tc.wantLimit, q.Limit)
			assert.Equal(t, (tc.wantPage-1)*tc.wantLimit, q.Offset())
		})
	}
}

func TestQueryBuilderFilters(t *testing.T) {
	categoryID := uuid.New()
	q, err := NewQueryBuilder(DefaultRegistry()).Build(Scope{Catalog: CatalogAcademicBook, StoreID: uuid.New()}, ListFilter{
		Search:     "  physics ",
		CategoryID: categoryID.String(),
		MinPrice:   "10",
		MaxPrice:   "25.50",
		Format:     "paperback",
		IsFeatured: "true",
		Status:     "active",
		SortBy:     "publication_year",
		SortOrder:  "ASC",
	})
	require.NoError(t, err)

	assert.Equal(t, "physics", q.Search)
	require.NotNil(t, q.CategoryID)
	assert.Equal(t, categoryID, *q.CategoryID)
	assert.True(t, q.MinPrice.Equal(decimal.NewFromInt(10)))
	assert.True(t, q.MaxPrice.Equal(decimal.RequireFromString("25.5")))
	assert.Equal(t, "PAPERBACK", q.Format)
	require.NotNil(t, q.IsFeatured)
	assert.True(t, *q.IsFeatured)
	assert.Equal(t, StatusActive, q.Status)
	assert.Equal(t, Sort{Field: SortByPublicationYear, Desc: false}, q.Sort)
}

func TestQueryBuilderRejectsMalformedInput(t *testing.T) {
	scope := Scope{Catalog: CatalogBook}
	cases := []struct {
		name   string
		filter ListFilter
		code   int
		field  string
	}{
		{"排序字段不在白名单", ListFilter{SortBy: "password"}, apperrors.ErrCodeInvalidSort, ""},
		{"排序方向错误", ListFilter{SortOrder: "sideways"}, apperrors.ErrCodeInvalidSort, ""},
		{"UUID格式错误", ListFilter{AuthorID: "not-a-uuid"}, apperrors.ErrCodeInvalidParams, "authorId"},
		{"价格不是数字", ListFilter{MinPrice: "cheap"}, apperrors.ErrCodeInvalidParams, "minPrice"},
		{"价格区间颠倒", ListFilter{MinPrice: "30", MaxPrice: "10"}, apperrors.ErrCodeInvalidParams, "maxPrice"},
		{"布尔值错误", ListFilter{IsActive: "maybe"}, apperrors.ErrCodeInvalidParams, "isActive"},
		{"状态错误", ListFilter{Status: "SOLD"}, apperrors.ErrCodeInvalidParams, "status"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewQueryBuilder(DefaultRegistry()).Build(scope, tc.filter)
			require.Error(t, err)

			appErr := apperrors.GetAppError(err)
			assert.Equal(t, apperrors.KindValidation, appErr.Kind)
			assert.Equal(t, tc.code, appErr.Code)
			if tc.field != "" {
				assert.Contains(t, appErr.Details, tc.field)
			}
		})
	}
}

func TestQueryBuilderChecksScope(t *testing.T) {
	b := NewQueryBuilder(DefaultRegistry())

	_, err := b.Build(Scope{Catalog: CatalogAcademicBook}, ListFilter{})
	assert.ErrorIs(t, err, ErrScopeRequired)

	_, err = b.Build(Scope{Catalog: CatalogStationery, StoreID: uuid.New()}, ListFilter{})
	assert.ErrorIs(t, err, ErrScopeNotSupported)

	_, err = b.Build(Scope{Catalog: "furniture"}, ListFilter{})
	assert.ErrorIs(t, err, ErrCatalogNotFound)

	only, err := DefaultRegistry().Only(CatalogBook)
	require.NoError(t, err)
	_, err = NewQueryBuilder(only).Build(Scope{Catalog: CatalogStationery}, ListFilter{})
	assert.ErrorIs(t, err, ErrCatalogNotFound, "未启用的目录")
}

func TestCriteriaMatches(t *testing.T) {
	storeA, storeB := uuid.New(), uuid.New()
	authorID := uuid.New()
	item := &Item{
		ID:          uuid.New(),
		Catalog:     CatalogAcademicBook,
		StoreID:     storeA,
		Title:       "Intro to Physics",
		UniqueCode:  "9780131495081",
		CreatorName: "Halliday",
		Subject:     "Physics",
		Language:    "English",
		Format:      "PAPERBACK",
		Price:       decimal.RequireFromString("25.00"),
		IsActive:    true,
		Status:      StatusActive,
		AuthorID:    &authorID,
	}
	scope := Scope{Catalog: CatalogAcademicBook, StoreID: storeA}
	price := func(s string) *decimal.Decimal { d := decimal.RequireFromString(s); return &d }
	other := uuid.New()

	cases := []struct {
		name string
		c    Criteria
		want bool
	}{
		{"只有范围", Criteria{Scope: scope}, true},
		{"其他店铺", Criteria{Scope: Scope{Catalog: CatalogAcademicBook, StoreID: storeB}}, false},
		{"搜索标题大小写不敏感", Criteria{Scope: scope, Search: "PHYSICS"}, true},
		{"搜索作者名", Criteria{Scope: scope, Search: "halli"}, true},
		{"搜索编码", Criteria{Scope: scope, Search: "0131495"}, true},
		{"搜索不命中", Criteria{Scope: scope, Search: "chemistry"}, false},
		{"价格区间包含边界", Criteria{Scope: scope, MinPrice: price("25"), MaxPrice: price("25.00")}, true},
		{"低于最低价", Criteria{Scope: scope, MinPrice: price("25.01")}, false},
		{"语言大小写不敏感", Criteria{Scope: scope, Language: "english"}, true},
		{"作者匹配", Criteria{Scope: scope, AuthorID: &authorID}, true},
		{"作者不匹配", Criteria{Scope: scope, AuthorID: &other}, false},
		{"全目录查询", Criteria{AllCatalogs: true}, true},
		{"全目录按目录过滤", Criteria{AllCatalogs: true, Scope: Scope{Catalog: CatalogBook}}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.c.Matches(item))
		})
	}

	t.Run("已删除的商品永远不匹配", func(t *testing.T) {
		deleted := item.Clone()
		deleted.MarkDeleted(time.Now())
		assert.False(t, (&Criteria{Scope: scope}).Matches(deleted))
		assert.False(t, (&Criteria{AllCatalogs: true}).Matches(deleted))
	})
}

func TestSortItems(t *testing.T) {
	now := time.Now()
	year := func(y int) *int { return &y }
	a := &Item{ID: uuid.New(), Title: "b", Price: decimal.NewFromInt(3), CreatedAt: now, PublicationYear: year(2001)}
	b := &Item{ID: uuid.New(), Title: "A", Price: decimal.NewFromInt(1), CreatedAt: now.Add(time.Minute)}
	c := &Item{ID: uuid.New(), Title: "c", Price: decimal.NewFromInt(2), CreatedAt: now.Add(-time.Minute), PublicationYear: year(1999)}

	items := []*Item{a, b, c}
	SortItems(items, Sort{Field: SortByCreatedAt, Desc: true})
	assert.Equal(t, []*Item{b, a, c}, items)

	SortItems(items, Sort{Field: SortByPrice})
	assert.Equal(t, []*Item{b, c, a}, items)

	SortItems(items, Sort{Field: SortByTitle})
	assert.Equal(t, []*Item{b, a, c}, items, "标题排序大小写不敏感")

	SortItems(items, Sort{Field: SortByPublicationYear, Desc: true})
	assert.Equal(t, []*Item{a, c, b}, items, "没有出版年份的排在最后")
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 10, 25)
	assert.Equal(t, Pagination{
		CurrentPage:     2,
		TotalPages:      3,
		TotalItems:      25,
		ItemsPerPage:    10,
		HasNextPage:     true,
		HasPreviousPage: true,
	}, p)

	empty := NewPagination(1, 10, 0)
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNextPage)
	assert.False(t, empty.HasPreviousPage)
}

func TestPaginationProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		total := rapid.Int64Range(0, 10_000).Draw(t, "total")
		limit := rapid.IntRange(1, MaxLimit).Draw(t, "limit")
		page := rapid.IntRange(1, 200).Draw(t, "page")

		p := NewPagination(page, limit, total)

		if int64(p.TotalPages-1)*int64(limit) >= total && total > 0 {
			t.Fatalf("totalPages=%d 过大 (total=%d limit=%d)", p.TotalPages, total, limit)
		}
		if int64(p.TotalPages)*int64(limit) < total {
			t.Fatalf("totalPages=%d 过小 (total=%d limit=%d)", p.TotalPages, total, limit)
		}
		if p.HasNextPage != (page < p.TotalPages) {
			t.Fatalf("hasNextPage=%v page=%d totalPages=%d", p.HasNextPage, page, p.TotalPages)
		}
		if p.HasPreviousPage != (page > 1) {
			t.Fatalf("hasPreviousPage=%v page=%d", p.HasPreviousPage, page)
		}
	})
}
