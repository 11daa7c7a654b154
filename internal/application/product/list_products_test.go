package product_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/catalogstore/internal/application/product"
	"github.com/xiebiao/catalogstore/internal/domain/catalog"
	"github.com/xiebiao/catalogstore/internal/domain/reference"
	"github.com/xiebiao/catalogstore/internal/infrastructure/persistence/memory"
	apperrors "github.com/xiebiao/catalogstore/pkg/errors"
)

func TestListProducts(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	items := memory.NewItemRepository(store)
	registry := catalog.DefaultRegistry()
	svc := catalog.NewService(registry, items, store, reference.NewService(memory.NewReferenceRepository(store)))

	discount := decimal.RequireFromString("9.00")
	_, err := svc.Create(ctx, catalog.Scope{Catalog: catalog.CatalogBook}, &catalog.Draft{
		Title:         "Blue Notebook Stories",
		CreatorName:   "Writer",
		Price:         decimal.RequireFromString("12.00"),
		DiscountPrice: &discount,
		StockQuantity: 4,
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, catalog.Scope{Catalog: catalog.CatalogStationery}, &catalog.Draft{
		Title:          "Blue Notebook",
		Classification: "Notebooks",
		Price:          decimal.RequireFromString("3.50"),
	})
	require.NoError(t, err)
	inactive := false
	_, err = svc.Create(ctx, catalog.Scope{Catalog: catalog.CatalogStationery}, &catalog.Draft{
		Title:          "Blue Pen",
		Classification: "Pens",
		Price:          decimal.RequireFromString("1.00"),
		StockQuantity:  5,
		IsActive:       &inactive,
	})
	require.NoError(t, err)

	uc := product.NewListProductsUseCase(registry, catalog.NewQueryService(items, catalog.NewQueryBuilder(registry)))

	t.Run("跨目录搜索", func(t *testing.T) {
		page, err := uc.Execute(ctx, product.ListProductsRequest{Filter: catalog.ListFilter{Search: "notebook", SortBy: "price", SortOrder: "asc"}})
		require.NoError(t, err)
		require.Len(t, page.Items, 2)

		assert.Equal(t, catalog.CatalogStationery, page.Items[0].Catalog)
		assert.False(t, page.Items[0].InStock)
		assert.Equal(t, catalog.CatalogBook, page.Items[1].Catalog)
		assert.True(t, page.Items[1].EffectivePrice.Equal(discount), "有折扣价时使用折扣价")
	})

	t.Run("默认排除未上架", func(t *testing.T) {
		page, err := uc.Execute(ctx, product.ListProductsRequest{Catalog: catalog.CatalogStationery})
		require.NoError(t, err)
		assert.Equal(t, int64(1), page.Pagination.TotalItems)

		page, err = uc.Execute(ctx, product.ListProductsRequest{Catalog: catalog.CatalogStationery, Filter: catalog.ListFilter{IsActive: "false"}})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "Blue Pen", page.Items[0].Title)
	})

	t.Run("目录不存在", func(t *testing.T) {
		_, err := uc.Execute(ctx, product.ListProductsRequest{Catalog: "furniture"})
		assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	})
}
