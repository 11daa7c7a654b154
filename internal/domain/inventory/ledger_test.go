package inventory_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/xiebiao/catalogstore/internal/domain/catalog"
	"github.com/xiebiao/catalogstore/internal/domain/inventory"
	"github.com/xiebiao/catalogstore/internal/domain/reference"
	"github.com/xiebiao/catalogstore/internal/infrastructure/persistence/memory"
	apperrors "github.com/xiebiao/catalogstore/pkg/errors"
)

var scope = catalog.Scope{Catalog: catalog.CatalogBook}

type env struct {
	store   *memory.Store
	items   catalog.Repository
	entries inventory.Repository
	catalog catalog.Service
	ledger  *inventory.Ledger
}

func newEnv(items catalog.Repository, store *memory.Store) *env {
	entries := memory.NewLedgerRepository(store)
	refs := reference.NewService(memory.NewReferenceRepository(store))
	return &env{
		store:   store,
		items:   items,
		entries: entries,
		catalog: catalog.NewService(catalog.DefaultRegistry(), items, store, refs),
		ledger:  inventory.NewLedger(items, entries, store, inventory.DefaultMaxRetries),
	}
}

func newMemoryEnv() *env {
	store := memory.NewStore()
	return newEnv(memory.NewItemRepository(store), store)
}

func (e *env) createItem(t *testing.T, title string, stock, threshold int) *catalog.Item {
	t.Helper()
	it, err := e.catalog.Create(context.Background(), scope, &catalog.Draft{
		Title:             title,
		CreatorName:       "Author",
		Price:             decimal.RequireFromString("25.00"),
		StockQuantity:     stock,
		LowStockThreshold: &threshold,
	})
	require.NoError(t, err)
	return it
}

func (e *env) history(t *testing.T, itemID uuid.UUID) []*inventory.LedgerEntry {
	t.Helper()
	page, err := e.ledger.History(context.Background(), scope, itemID, 1, catalog.MaxLimit)
	require.NoError(t, err)
	return page.Items
}

func TestLowStockRestockScenario(t *testing.T) {
	ctx := context.Background()
	e := newMemoryEnv()
	physics := e.createItem(t, "Intro to Physics", 3, 5)
	e.createItem(t, "Well Stocked", 50, 5)

	low, err := e.ledger.LowStock(ctx, scope, nil)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, physics.ID, low[0].ID)

	res, err := e.ledger.AdjustStock(ctx, scope, physics.ID, inventory.StockAdjustment{Quantity: 10, Operation: inventory.OperationAdd})
	require.NoError(t, err)
	assert.Equal(t, 13, res.Item.StockQuantity)
	assert.Equal(t, 1, res.Attempts)
	assert.False(t, res.EnteredLowStock)

	assert.Equal(t, inventory.MutationPurchase, res.Entry.Type)
	assert.Equal(t, 10, res.Entry.Quantity)
	assert.Equal(t, 3, res.Entry.PreviousStock)
	assert.Equal(t, 13, res.Entry.NewStock)
	assert.Equal(t, "Stock add", res.Entry.Reason)

	low, err = e.ledger.LowStock(ctx, scope, nil)
	require.NoError(t, err)
	assert.Empty(t, low, "补货后不再是低库存")

	stored, err := e.items.FindByID(ctx, scope, physics.ID)
	require.NoError(t, err)
	assert.Equal(t, 13, stored.StockQuantity)
	assert.Len(t, e.history(t, physics.ID), 1)
}

func TestLowStockQuery(t *testing.T) {
	ctx := context.Background()
	e := newMemoryEnv()
	a := e.createItem(t, "A", 2, 5)
	b := e.createItem(t, "B", 0, 5)
	c := e.createItem(t, "C", 8, 10)
	deleted := e.createItem(t, "D", 1, 5)
	require.NoError(t, e.catalog.Delete(ctx, scope, deleted.ID))
	inactive := e.createItem(t, "E", 1, 5)
	off := false
	_, err := e.catalog.Update(ctx, scope, inactive.ID, &catalog.Patch{IsActive: &off})
	require.NoError(t, err)

	low, err := e.ledger.LowStock(ctx, scope, nil)
	require.NoError(t, err)
	ids := []uuid.UUID{}
	for _, it := range low {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []uuid.UUID{b.ID, a.ID, c.ID}, ids, "按库存升序,排除已删除和下架商品")

	three := 3
	low, err = e.ledger.LowStock(ctx, scope, &three)
	require.NoError(t, err)
	assert.Len(t, low, 2, "指定阈值时忽略各自的阈值")

	negative := -1
	_, err = e.ledger.LowStock(ctx, scope, &negative)
	assert.ErrorIs(t, err, inventory.ErrInvalidThreshold)
}

func TestSubtractBelowZeroRejected(t *testing.T) {
	ctx := context.Background()
	e := newMemoryEnv()
	it := e.createItem(t, "Scarce", 2, 1)

	_, err := e.ledger.AdjustStock(ctx, scope, it.ID, inventory.StockAdjustment{Quantity: 3, Operation: inventory.OperationSubtract})
	require.ErrorIs(t, err, inventory.ErrInsufficientStock)
	assert.Equal(t, apperrors.KindInvalidOperation, apperrors.KindOf(err))

	stored, err := e.items.FindByID(ctx, scope, it.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.StockQuantity, "库存保持不变")
	assert.Empty(t, e.history(t, it.ID), "失败的操作不写流水")
}

func TestAdjustStockStatusFollowsStock(t *testing.T) {
	ctx := context.Background()
	e := newMemoryEnv()
	it := e.createItem(t, "Seasonal", 2, 0)

	res, err := e.ledger.AdjustStock(ctx, scope, it.ID, inventory.StockAdjustment{Quantity: 2, Operation: inventory.OperationSubtract})
	require.NoError(t, err)
	assert.Equal(t, catalog.StatusOutOfStock, res.Item.Status)
	assert.True(t, res.EnteredLowStock)

	res, err = e.ledger.AdjustStock(ctx, scope, it.ID, inventory.StockAdjustment{Quantity: 5, Operation: inventory.OperationSet, Reason: "stocktake"})
	require.NoError(t, err)
	assert.Equal(t, catalog.StatusActive, res.Item.Status)

	entries := e.history(t, it.ID)
	require.Len(t, entries, 2)
	assert.Equal(t, "stocktake", entries[0].Reason, "最新的流水在前")
	assert.Equal(t, inventory.MutationAdjustment, entries[0].Type)
	assert.Equal(t, 5, entries[0].Quantity)
}

func TestAdjustStockMissingItem(t *testing.T) {
	ctx := context.Background()
	e := newMemoryEnv()
	it := e.createItem(t, "Gone", 5, 1)
	require.NoError(t, e.catalog.Delete(ctx, scope, it.ID))

	_, err := e.ledger.AdjustStock(ctx, scope, it.ID, inventory.StockAdjustment{Quantity: 1, Operation: inventory.OperationAdd})
	assert.ErrorIs(t, err, catalog.ErrItemNotFound)

	_, err = e.ledger.AdjustStock(ctx, scope, uuid.New(), inventory.StockAdjustment{Quantity: 1, Operation: inventory.OperationAdd})
	assert.ErrorIs(t, err, catalog.ErrItemNotFound)

	_, err = e.ledger.History(ctx, scope, it.ID, 1, 10)
	assert.ErrorIs(t, err, catalog.ErrItemNotFound)
}

func TestConcurrentSubtractsNeverNegative(t *testing.T) {
	ctx := context.Background()
	e := newMemoryEnv()
	it := e.createItem(t, "Hot Seller", 10, 2)

	const workers = 25
	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
		rejected  atomic.Int32
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := e.ledger.AdjustStock(ctx, scope, it.ID, inventory.StockAdjustment{Quantity: 1, Operation: inventory.OperationSubtract})
			switch {
			case err == nil:
				succeeded.Add(1)
			case apperrors.KindOf(err) == apperrors.KindInvalidOperation:
				rejected.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	stored, err := e.items.FindByID(ctx, scope, it.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.StockQuantity)
	assert.EqualValues(t, 10, succeeded.Load(), "只有10次扣减成功")
	assert.EqualValues(t, workers-10, rejected.Load())
	assert.Len(t, e.history(t, it.ID), 10, "每次成功扣减一条流水")
}

// flakyItems 前n次条件更新模拟被其他请求抢先修改
type flakyItems struct {
	catalog.Repository
	failures atomic.Int32
}

func (f *flakyItems) UpdateStock(ctx context.Context, item *catalog.Item, expected int) error {
	if f.failures.Add(-1) >= 0 {
		return catalog.ErrStockChanged
	}
	return f.Repository.UpdateStock(ctx, item, expected)
}

func TestAdjustStockRetriesOnConflict(t *testing.T) {
	ctx := context.Background()

	t.Run("重试后成功", func(t *testing.T) {
		store := memory.NewStore()
		flaky := &flakyItems{Repository: memory.NewItemRepository(store)}
		e := newEnv(flaky, store)
		it := e.createItem(t, "Contended", 5, 1)

		flaky.failures.Store(2)
		res, err := e.ledger.AdjustStock(ctx, scope, it.ID, inventory.StockAdjustment{Quantity: 1, Operation: inventory.OperationSubtract})
		require.NoError(t, err)
		assert.Equal(t, 3, res.Attempts)
		assert.Equal(t, 4, res.Item.StockQuantity)
		assert.Len(t, e.history(t, it.ID), 1, "失败的尝试已回滚")
	})

	t.Run("重试次数用尽返回冲突", func(t *testing.T) {
		store := memory.NewStore()
		flaky := &flakyItems{Repository: memory.NewItemRepository(store)}
		e := newEnv(flaky, store)
		it := e.createItem(t, "Contended", 5, 1)

		flaky.failures.Store(100)
		_, err := e.ledger.AdjustStock(ctx, scope, it.ID, inventory.StockAdjustment{Quantity: 1, Operation: inventory.OperationAdd})
		assert.ErrorIs(t, err, inventory.ErrConcurrentUpdate)
		assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
		assert.Empty(t, e.history(t, it.ID))
	})
}

// TestLedgerReconciles 随机操作序列下库存永不为负,且流水与库存一致
func TestLedgerReconciles(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		ctx := context.Background()
		e := newMemoryEnv()
		initial := rapid.IntRange(0, 50).Draw(rt, "initial")
		threshold := 5
		it, err := e.catalog.Create(ctx, scope, &catalog.Draft{
			Title:             "Random Walk",
			CreatorName:       "Author",
			Price:             decimal.NewFromInt(1),
			StockQuantity:     initial,
			LowStockThreshold: &threshold,
		})
		if err != nil {
			rt.Fatalf("create: %v", err)
		}

		expected := initial
		successes := 0
		ops := []inventory.Operation{inventory.OperationAdd, inventory.OperationSubtract, inventory.OperationSet}
		steps := rapid.IntRange(1, 30).Draw(rt, "steps")

		for i := 0; i < steps; i++ {
			op := rapid.SampledFrom(ops).Draw(rt, "op")
			qty := rapid.IntRange(0, 40).Draw(rt, "qty")

			res, err := e.ledger.AdjustStock(ctx, scope, it.ID, inventory.StockAdjustment{Quantity: qty, Operation: op})
			if op == inventory.OperationSubtract && qty > expected {
				if !apperrors.IsAppError(err) || apperrors.KindOf(err) != apperrors.KindInvalidOperation {
					rt.Fatalf("扣减 %d (库存 %d) 应被拒绝, got %v", qty, expected, err)
				}
				continue
			}
			if err != nil {
				rt.Fatalf("adjust %s %d: %v", op, qty, err)
			}

			switch op {
			case inventory.OperationAdd:
				expected += qty
			case inventory.OperationSubtract:
				expected -= qty
			case inventory.OperationSet:
				expected = qty
			}
			successes++

			if res.Entry.NewStock-res.Entry.PreviousStock != res.Entry.Quantity {
				rt.Fatalf("流水不平: %+v", res.Entry)
			}
			stored, err := e.items.FindByID(ctx, scope, it.ID)
			if err != nil {
				rt.Fatalf("find: %v", err)
			}
			if stored.StockQuantity != res.Entry.NewStock || stored.StockQuantity != expected {
				rt.Fatalf("库存 %d, 流水 %d, 期望 %d", stored.StockQuantity, res.Entry.NewStock, expected)
			}
			if stored.StockQuantity < 0 {
				rt.Fatalf("库存为负: %d", stored.StockQuantity)
			}
		}

		page, err := e.ledger.History(ctx, scope, it.ID, 1, catalog.MaxLimit)
		if err != nil {
			rt.Fatalf("history: %v", err)
		}
		if len(page.Items) != successes {
			rt.Fatalf("流水 %d 条, 成功操作 %d 次", len(page.Items), successes)
		}
	})
}
