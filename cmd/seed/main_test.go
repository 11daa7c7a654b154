package main

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xiebiao/catalogstore/internal/domain/catalog"
	"github.com/xiebiao/catalogstore/internal/domain/inventory"
	"github.com/xiebiao/catalogstore/internal/domain/reference"
	"github.com/xiebiao/catalogstore/internal/infrastructure/persistence/memory"
)

func newMemorySeeder(t *testing.T, registry *catalog.Registry) *seeder {
	t.Helper()
	store := memory.NewStore()
	items := memory.NewItemRepository(store)
	refs := reference.NewService(memory.NewReferenceRepository(store))
	return &seeder{
		registry: registry,
		items:    catalog.NewService(registry, items, store, refs),
		refs:     refs,
		ledger:   inventory.NewLedger(items, memory.NewLedgerRepository(store), store, inventory.DefaultMaxRetries),
		log:      zap.NewNop(),
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newMemorySeeder(t, catalog.DefaultRegistry())
	storeID := uuid.New()

	require.NoError(t, s.run(ctx, storeID))
	require.NoError(t, s.run(ctx, storeID))

	book, err := s.items.GetByField(ctx, catalog.Scope{Catalog: catalog.CatalogBook}, catalog.FieldUniqueCode, "9780135957059")
	require.NoError(t, err)
	assert.Equal(t, 40, book.StockQuantity)
	assert.Equal(t, "the-pragmatic-programmer", book.Slug)

	history, err := s.ledger.History(ctx, catalog.Scope{Catalog: catalog.CatalogBook}, book.ID, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, history.Pagination.TotalItems)
	require.Len(t, history.Items, 1)
	assert.Equal(t, inventory.MutationPurchase, history.Items[0].Type)
	assert.Equal(t, 40, history.Items[0].NewStock)
}

func TestSeedSkipsDisabledCatalogs(t *testing.T) {
	ctx := context.Background()
	registry, err := catalog.DefaultRegistry().Only(catalog.CatalogStationery)
	require.NoError(t, err)
	s := newMemorySeeder(t, registry)

	require.NoError(t, s.run(ctx, uuid.New()))

	pen, err := s.items.GetByField(ctx, catalog.Scope{Catalog: catalog.CatalogStationery}, catalog.FieldUniqueCode, "PEN-GEL-05")
	require.NoError(t, err)
	assert.Equal(t, 200, pen.StockQuantity)
}
