package catalog_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/catalogstore/internal/domain/catalog"
	"github.com/xiebiao/catalogstore/internal/domain/reference"
	"github.com/xiebiao/catalogstore/internal/infrastructure/persistence/memory"
	apperrors "github.com/xiebiao/catalogstore/pkg/errors"
)

type fixture struct {
	svc   catalog.Service
	query *catalog.QueryService
	refs  reference.Service
}

func newFixture() *fixture {
	store := memory.NewStore()
	items := memory.NewItemRepository(store)
	refs := reference.NewService(memory.NewReferenceRepository(store))
	registry := catalog.DefaultRegistry()
	return &fixture{
		svc:   catalog.NewService(registry, items, store, refs),
		query: catalog.NewQueryService(items, catalog.NewQueryBuilder(registry)),
		refs:  refs,
	}
}

var bookScope = catalog.Scope{Catalog: catalog.CatalogBook}

func bookDraft(title string) *catalog.Draft {
	return &catalog.Draft{
		Title:         title,
		CreatorName:   "Test Author",
		Price:         decimal.RequireFromString("19.99"),
		StockQuantity: 10,
	}
}

func mustCreate(t *testing.T, f *fixture, scope catalog.Scope, d *catalog.Draft) *catalog.Item {
	t.Helper()
	it, err := f.svc.Create(context.Background(), scope, d)
	require.NoError(t, err)
	return it
}

func TestServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("同名商品生成不同slug", func(t *testing.T) {
		f := newFixture()
		first := mustCreate(t, f, bookScope, bookDraft("Algebra"))
		second := mustCreate(t, f, bookScope, bookDraft("Algebra"))

		assert.Equal(t, "algebra", first.Slug)
		assert.Equal(t, "algebra-1", second.Slug)
	})

	t.Run("不同范围互不影响", func(t *testing.T) {
		f := newFixture()
		mustCreate(t, f, bookScope, bookDraft("Algebra"))
		stationery := mustCreate(t, f, catalog.Scope{Catalog: catalog.CatalogStationery}, &catalog.Draft{
			Title:          "Algebra",
			Classification: "Notebooks",
			Price:          decimal.NewFromInt(3),
			StockQuantity:  1,
		})
		assert.Equal(t, "algebra", stationery.Slug)
	})

	t.Run("编码重复返回冲突", func(t *testing.T) {
		f := newFixture()
		d := bookDraft("Go in Action")
		d.UniqueCode = "9781617291784"
		mustCreate(t, f, bookScope, d)

		_, err := f.svc.Create(ctx, bookScope, d)
		assert.ErrorIs(t, err, catalog.ErrCodeDuplicate)
		assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
	})

	t.Run("已删除商品的编码可以复用", func(t *testing.T) {
		f := newFixture()
		d := bookDraft("Go in Action")
		d.UniqueCode = "9781617291784"
		old := mustCreate(t, f, bookScope, d)
		require.NoError(t, f.svc.Delete(ctx, bookScope, old.ID))

		again := mustCreate(t, f, bookScope, d)
		assert.Equal(t, "go-in-action-1", again.Slug, "已删除记录仍占用slug")
	})

	t.Run("关联不存在", func(t *testing.T) {
		f := newFixture()
		d := bookDraft("Orphan")
		missing := uuid.New()
		d.AuthorID = &missing

		_, err := f.svc.Create(ctx, bookScope, d)
		assert.ErrorIs(t, err, reference.ErrReferenceNotFound)
	})

	t.Run("作者名取自关联作者", func(t *testing.T) {
		f := newFixture()
		author, err := f.refs.Create(ctx, reference.KindAuthor, "Richard Feynman")
		require.NoError(t, err)

		d := bookDraft("Lectures on Physics")
		d.CreatorName = ""
		d.AuthorID = &author.ID
		it := mustCreate(t, f, bookScope, d)
		assert.Equal(t, "Richard Feynman", it.CreatorName)
	})

	t.Run("初始库存为0标记缺货", func(t *testing.T) {
		f := newFixture()
		d := bookDraft("Empty Shelf")
		d.StockQuantity = 0
		it := mustCreate(t, f, bookScope, d)
		assert.Equal(t, catalog.StatusOutOfStock, it.Status)
	})
}

func TestServiceUpdate(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	mustCreate(t, f, bookScope, bookDraft("Geometry"))
	it := mustCreate(t, f, bookScope, bookDraft("Algebra"))

	t.Run("标题变化重新生成slug", func(t *testing.T) {
		title := "Geometry"
		updated, err := f.svc.Update(ctx, bookScope, it.ID, &catalog.Patch{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, "geometry-1", updated.Slug)

		found, err := f.svc.GetByField(ctx, bookScope, catalog.FieldSlug, "geometry-1")
		require.NoError(t, err)
		assert.Equal(t, it.ID, found.ID)
	})

	t.Run("标题不变slug不变", func(t *testing.T) {
		price := decimal.RequireFromString("9.50")
		updated, err := f.svc.Update(ctx, bookScope, it.ID, &catalog.Patch{Price: &price})
		require.NoError(t, err)
		assert.Equal(t, "geometry-1", updated.Slug)
		assert.True(t, updated.Price.Equal(price))
	})

	t.Run("折扣价必须低于原价", func(t *testing.T) {
		discount := decimal.RequireFromString("99")
		_, err := f.svc.Update(ctx, bookScope, it.ID, &catalog.Patch{DiscountPrice: &discount})
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

		stored, err := f.svc.Get(ctx, bookScope, it.ID)
		require.NoError(t, err)
		assert.Nil(t, stored.DiscountPrice, "校验失败不应写入")
	})

	t.Run("空更新", func(t *testing.T) {
		_, err := f.svc.Update(ctx, bookScope, it.ID, &catalog.Patch{})
		assert.ErrorIs(t, err, catalog.ErrEmptyPatch)
	})

	t.Run("修改状态", func(t *testing.T) {
		updated, err := f.svc.UpdateStatus(ctx, bookScope, it.ID, catalog.StatusDiscontinued)
		require.NoError(t, err)
		assert.Equal(t, catalog.StatusDiscontinued, updated.Status)

		_, err = f.svc.UpdateStatus(ctx, bookScope, it.ID, "SOLD")
		assert.ErrorIs(t, err, catalog.ErrInvalidStatus)
	})
}

func TestServiceSoftDelete(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	it := mustCreate(t, f, bookScope, bookDraft("Intro to Physics"))

	require.NoError(t, f.svc.Delete(ctx, bookScope, it.ID))

	_, err := f.svc.Get(ctx, bookScope, it.ID)
	assert.ErrorIs(t, err, catalog.ErrItemNotFound)

	_, err = f.svc.GetByField(ctx, bookScope, catalog.FieldSlug, it.Slug)
	assert.ErrorIs(t, err, catalog.ErrItemNotFound)

	page, err := f.query.Execute(ctx, bookScope, catalog.ListFilter{Search: "physics"})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.EqualValues(t, 0, page.Pagination.TotalItems)

	assert.ErrorIs(t, f.svc.Delete(ctx, bookScope, it.ID), catalog.ErrItemNotFound, "重复删除返回不存在")
}

func TestServiceBulk(t *testing.T) {
	ctx := context.Background()

	t.Run("包含其他范围的ID时整体失败", func(t *testing.T) {
		f := newFixture()
		id1 := mustCreate(t, f, bookScope, bookDraft("First")).ID
		id2 := mustCreate(t, f, catalog.Scope{Catalog: catalog.CatalogStationery}, &catalog.Draft{
			Title: "Stapler", Classification: "Office", Price: decimal.NewFromInt(5), StockQuantity: 2,
		}).ID

		_, err := f.svc.BulkDelete(ctx, bookScope, []uuid.UUID{id1, id2})
		require.ErrorIs(t, err, catalog.ErrBulkMembership)
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
		assert.Contains(t, apperrors.GetAppError(err).Details, id2.String())

		_, err = f.svc.Get(ctx, bookScope, id1)
		assert.NoError(t, err, "第一个商品不应被删除")
	})

	t.Run("批量删除", func(t *testing.T) {
		f := newFixture()
		var ids []uuid.UUID
		for i := 0; i < 3; i++ {
			ids = append(ids, mustCreate(t, f, bookScope, bookDraft(fmt.Sprintf("Book %d", i))).ID)
		}

		n, err := f.svc.BulkDelete(ctx, bookScope, append(ids, ids[0]))
		require.NoError(t, err)
		assert.EqualValues(t, 3, n, "重复ID只计一次")

		_, err = f.svc.BulkDelete(ctx, bookScope, ids[:1])
		assert.ErrorIs(t, err, catalog.ErrBulkMembership, "已删除的ID不能再次批量删除")
	})

	t.Run("批量更新全部成功或全部回滚", func(t *testing.T) {
		f := newFixture()
		cheap := bookDraft("Cheap")
		cheap.Price = decimal.NewFromInt(5)
		discounted := bookDraft("Discounted")
		discounted.Price = decimal.NewFromInt(20)
		d := decimal.NewFromInt(15)
		discounted.DiscountPrice = &d

		a := mustCreate(t, f, bookScope, cheap)
		b := mustCreate(t, f, bookScope, discounted)

		// 新价格低于b的折扣价,b校验失败,a也不能被修改
		price := decimal.NewFromInt(10)
		_, err := f.svc.BulkUpdate(ctx, bookScope, []uuid.UUID{a.ID, b.ID}, &catalog.BulkPatch{Price: &price})
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

		stored, err := f.svc.Get(ctx, bookScope, a.ID)
		require.NoError(t, err)
		assert.True(t, stored.Price.Equal(decimal.NewFromInt(5)))

		featured := true
		updated, err := f.svc.BulkUpdate(ctx, bookScope, []uuid.UUID{a.ID, b.ID}, &catalog.BulkPatch{IsFeatured: &featured})
		require.NoError(t, err)
		assert.Len(t, updated, 2)

		list, err := f.svc.Highlights(ctx, bookScope, catalog.HighlightFeatured, 0)
		require.NoError(t, err)
		assert.Len(t, list, 2)
	})

	t.Run("参数校验", func(t *testing.T) {
		f := newFixture()
		_, err := f.svc.BulkDelete(ctx, bookScope, nil)
		assert.ErrorIs(t, err, catalog.ErrEmptyIDs)

		ids := make([]uuid.UUID, catalog.MaxBulkIDs+1)
		for i := range ids {
			ids[i] = uuid.New()
		}
		_, err = f.svc.BulkDelete(ctx, bookScope, ids)
		assert.ErrorIs(t, err, catalog.ErrTooManyIDs)

		_, err = f.svc.BulkUpdate(ctx, bookScope, ids[:1], &catalog.BulkPatch{})
		assert.ErrorIs(t, err, catalog.ErrEmptyPatch)
	})
}

func TestQueryServicePaging(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	for i := 0; i < 25; i++ {
		d := bookDraft(fmt.Sprintf("Volume %02d", i))
		d.Price = decimal.NewFromInt(int64(i + 1))
		mustCreate(t, f, bookScope, d)
	}

	t.Run("第三页", func(t *testing.T) {
		page, err := f.query.Execute(ctx, bookScope, catalog.ListFilter{Page: "3", Limit: "10", SortBy: "price", SortOrder: "asc"})
		require.NoError(t, err)

		assert.Len(t, page.Items, 5)
		assert.Equal(t, "Volume 20", page.Items[0].Title)
		assert.Equal(t, catalog.Pagination{
			CurrentPage:     3,
			TotalPages:      3,
			TotalItems:      25,
			ItemsPerPage:    10,
			HasNextPage:     false,
			HasPreviousPage: true,
		}, page.Pagination)
	})

	t.Run("超出总页数返回空列表", func(t *testing.T) {
		page, err := f.query.Execute(ctx, bookScope, catalog.ListFilter{Page: "9"})
		require.NoError(t, err)
		assert.NotNil(t, page.Items)
		assert.Empty(t, page.Items)
		assert.EqualValues(t, 25, page.Pagination.TotalItems)
	})

	t.Run("价格区间", func(t *testing.T) {
		page, err := f.query.Execute(ctx, bookScope, catalog.ListFilter{MinPrice: "5", MaxPrice: "7"})
		require.NoError(t, err)
		assert.EqualValues(t, 3, page.Pagination.TotalItems, "区间包含两端")
	})

	t.Run("未知目录", func(t *testing.T) {
		_, err := f.query.Execute(ctx, catalog.Scope{}, catalog.ListFilter{})
		assert.ErrorIs(t, err, catalog.ErrCatalogNotFound)
	})
}

// recordingRepo 记录加锁读取;concurrentDelete非空时在批量删除前先删掉该商品
type recordingRepo struct {
	catalog.Repository
	locked           []uuid.UUID
	concurrentDelete *uuid.UUID
}

func (r *recordingRepo) LockByID(ctx context.Context, scope catalog.Scope, id uuid.UUID) (*catalog.Item, error) {
	r.locked = append(r.locked, id)
	return r.Repository.LockByID(ctx, scope, id)
}

func (r *recordingRepo) BulkSoftDelete(ctx context.Context, scope catalog.Scope, ids []uuid.UUID) (int64, error) {
	if r.concurrentDelete != nil {
		if err := r.Repository.SoftDelete(ctx, scope, *r.concurrentDelete); err != nil {
			return 0, err
		}
	}
	return r.Repository.BulkSoftDelete(ctx, scope, ids)
}

func TestServiceLocksBeforeWrite(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repo := &recordingRepo{Repository: memory.NewItemRepository(store)}
	svc := catalog.NewService(catalog.DefaultRegistry(), repo, store,
		reference.NewService(memory.NewReferenceRepository(store)))

	a, err := svc.Create(ctx, bookScope, bookDraft("Locked A"))
	require.NoError(t, err)
	b, err := svc.Create(ctx, bookScope, bookDraft("Locked B"))
	require.NoError(t, err)

	t.Run("单个更新加锁读取", func(t *testing.T) {
		repo.locked = nil
		title := "Locked A2"
		_, err := svc.Update(ctx, bookScope, a.ID, &catalog.Patch{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{a.ID}, repo.locked)
	})

	t.Run("批量更新锁定全部成员且保持传入顺序", func(t *testing.T) {
		repo.locked = nil
		featured := true
		updated, err := svc.BulkUpdate(ctx, bookScope, []uuid.UUID{b.ID, a.ID}, &catalog.BulkPatch{IsFeatured: &featured})
		require.NoError(t, err)
		assert.ElementsMatch(t, []uuid.UUID{a.ID, b.ID}, repo.locked)
		require.Len(t, updated, 2)
		assert.Equal(t, b.ID, updated[0].ID)
		assert.Equal(t, a.ID, updated[1].ID)
	})

	t.Run("批量删除时部分商品已被删除则整体回滚", func(t *testing.T) {
		repo.concurrentDelete = &a.ID
		defer func() { repo.concurrentDelete = nil }()

		_, err := svc.BulkDelete(ctx, bookScope, []uuid.UUID{a.ID, b.ID})
		require.ErrorIs(t, err, catalog.ErrBulkMembership)

		for _, id := range []uuid.UUID{a.ID, b.ID} {
			_, err := svc.Get(ctx, bookScope, id)
			assert.NoError(t, err, "回滚后商品仍然存在")
		}
	})
}

func TestServiceRejectsMismatchedScope(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	_, err := f.svc.Create(ctx, catalog.Scope{Catalog: catalog.CatalogAcademicBook}, bookDraft("No Store"))
	assert.ErrorIs(t, err, catalog.ErrScopeRequired)

	_, err = f.svc.Create(ctx, catalog.Scope{Catalog: catalog.CatalogBook, StoreID: uuid.New()}, bookDraft("Stray Store"))
	assert.ErrorIs(t, err, catalog.ErrScopeNotSupported)

	_, err = f.query.Execute(ctx, catalog.Scope{Catalog: catalog.CatalogAcademicBook}, catalog.ListFilter{})
	assert.ErrorIs(t, err, catalog.ErrScopeRequired)
}
