package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/catalogstore/internal/domain/catalog"
	"github.com/xiebiao/catalogstore/internal/domain/inventory"
)

func newItem(slug string, stock int) *catalog.Item {
	now := time.Now()
	return &catalog.Item{
		ID:                uuid.New(),
		Catalog:           catalog.CatalogBook,
		Title:             slug,
		Slug:              slug,
		Price:             decimal.NewFromInt(10),
		StockQuantity:     stock,
		LowStockThreshold: 5,
		Status:            catalog.StatusActive,
		IsActive:          true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func TestTransactionRollback(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	items := NewItemRepository(store)
	entries := NewLedgerRepository(store)
	it := newItem("kept", 3)
	require.NoError(t, items.Create(ctx, it))

	boom := errors.New("boom")
	err := store.Transaction(ctx, func(ctx context.Context) error {
		require.NoError(t, items.Create(ctx, newItem("discarded", 1)))
		require.NoError(t, entries.Create(ctx, &inventory.LedgerEntry{ID: uuid.New(), ItemID: it.ID}))

		changed := it.Clone()
		changed.SetStock(9, time.Now())
		require.NoError(t, items.UpdateStock(ctx, changed, 3))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	scope := catalog.Scope{Catalog: catalog.CatalogBook}
	exists, err := items.SlugExists(ctx, scope, "discarded", uuid.Nil)
	require.NoError(t, err)
	assert.False(t, exists, "回滚后新建的商品不存在")

	stored, err := items.FindByID(ctx, scope, it.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.StockQuantity, "回滚后库存恢复")

	_, total, err := entries.ListByItem(ctx, it.ID, 0, 10)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestItemRepositoryIsolation(t *testing.T) {
	ctx := context.Background()
	items := NewItemRepository(NewStore())
	it := newItem("isolated", 3)
	require.NoError(t, items.Create(ctx, it))

	it.Title = "mutated after create"
	scope := catalog.Scope{Catalog: catalog.CatalogBook}
	stored, err := items.FindByID(ctx, scope, it.ID)
	require.NoError(t, err)
	assert.Equal(t, "isolated", stored.Title, "仓储保存的是副本")

	stored.Title = "mutated after read"
	again, err := items.FindByID(ctx, scope, it.ID)
	require.NoError(t, err)
	assert.Equal(t, "isolated", again.Title)
}

func TestUpdateStockConditional(t *testing.T) {
	ctx := context.Background()
	items := NewItemRepository(NewStore())
	it := newItem("conditional", 3)
	require.NoError(t, items.Create(ctx, it))

	it.SetStock(1, time.Now())
	assert.ErrorIs(t, items.UpdateStock(ctx, it, 2), catalog.ErrStockChanged)
	assert.NoError(t, items.UpdateStock(ctx, it, 3))
}

func TestSlugUniqueAcrossDeleted(t *testing.T) {
	ctx := context.Background()
	items := NewItemRepository(NewStore())
	scope := catalog.Scope{Catalog: catalog.CatalogBook}

	it := newItem("algebra", 1)
	require.NoError(t, items.Create(ctx, it))
	require.NoError(t, items.SoftDelete(ctx, scope, it.ID))

	exists, err := items.SlugExists(ctx, scope, "algebra", uuid.Nil)
	require.NoError(t, err)
	assert.True(t, exists, "已删除的记录仍占用slug")
	assert.ErrorIs(t, items.Create(ctx, newItem("algebra", 1)), catalog.ErrSlugConflict)
}

func TestUpdateKeepsStoredStock(t *testing.T) {
	ctx := context.Background()
	items := NewItemRepository(NewStore())
	it := newItem("stale", 10)
	require.NoError(t, items.Create(ctx, it))

	stale := it.Clone()
	sold := it.Clone()
	sold.SetStock(5, time.Now())
	require.NoError(t, items.UpdateStock(ctx, sold, 10))

	stale.Title = "renamed"
	require.NoError(t, items.Update(ctx, stale))

	stored, err := items.FindByID(ctx, catalog.Scope{Catalog: catalog.CatalogBook}, it.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", stored.Title)
	assert.Equal(t, 5, stored.StockQuantity, "普通更新不能覆盖库存")
}
