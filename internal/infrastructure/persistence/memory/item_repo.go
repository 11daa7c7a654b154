package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/xiebiao/catalogstore/internal/domain/catalog"
)

type itemRepository struct {
	s *Store
}

// NewItemRepository 创建商品仓储(内存)
func NewItemRepository(s *Store) catalog.Repository {
	return &itemRepository{s: s}
}

func inScope(it *catalog.Item, scope catalog.Scope) bool {
	return it.Catalog == scope.Catalog && it.StoreID == scope.StoreID
}

// live 范围内未删除的商品,调用方持有锁
func (r *itemRepository) live(scope catalog.Scope, id uuid.UUID) (*catalog.Item, bool) {
	it, ok := r.s.items[id]
	if !ok || it.IsDeleted() || !inScope(it, scope) {
		return nil, false
	}
	return it, true
}

func (r *itemRepository) SlugExists(ctx context.Context, scope catalog.Scope, slug string, excludeID uuid.UUID) (bool, error) {
	var exists bool
	r.s.read(func() {
		exists = r.slugTaken(scope, slug, excludeID)
	})
	return exists, nil
}

// slugTaken 包含已删除记录,与数据库唯一索引一致
func (r *itemRepository) slugTaken(scope catalog.Scope, slug string, excludeID uuid.UUID) bool {
	for _, it := range r.s.items {
		if it.ID != excludeID && inScope(it, scope) && it.Slug == slug {
			return true
		}
	}
	return false
}

func (r *itemRepository) FindByID(ctx context.Context, scope catalog.Scope, id uuid.UUID) (*catalog.Item, error) {
	var found *catalog.Item
	r.s.read(func() {
		if it, ok := r.live(scope, id); ok {
			found = it.Clone()
		}
	})
	if found == nil {
		return nil, catalog.ErrItemNotFound
	}
	return found, nil
}

func (r *itemRepository) FindByField(ctx context.Context, scope catalog.Scope, field catalog.LookupField, value string) (*catalog.Item, error) {
	var found *catalog.Item
	r.s.read(func() {
		for _, it := range r.s.items {
			if it.IsDeleted() || !inScope(it, scope) {
				continue
			}
			if (field == catalog.FieldSlug && it.Slug == value) ||
				(field == catalog.FieldUniqueCode && it.UniqueCode == value) {
				found = it.Clone()
				return
			}
		}
	})
	if found == nil {
		return nil, catalog.ErrItemNotFound
	}
	return found, nil
}

func (r *itemRepository) FindByIDs(ctx context.Context, scope catalog.Scope, ids []uuid.UUID) ([]*catalog.Item, error) {
	items := make([]*catalog.Item, 0, len(ids))
	r.s.read(func() {
		for _, id := range ids {
			if it, ok := r.live(scope, id); ok {
				items = append(items, it.Clone())
			}
		}
	})
	return items, nil
}

func (r *itemRepository) matching(q *catalog.Query) []*catalog.Item {
	var items []*catalog.Item
	r.s.read(func() {
		for _, it := range r.s.items {
			if q.Matches(it) {
				items = append(items, it.Clone())
			}
		}
	})
	return items
}

func (r *itemRepository) FindMany(ctx context.Context, q *catalog.Query) ([]*catalog.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	items := r.matching(q)
	catalog.SortItems(items, q.Sort)

	offset := q.Offset()
	if offset >= len(items) {
		return []*catalog.Item{}, nil
	}
	end := offset + q.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end], nil
}

func (r *itemRepository) Count(ctx context.Context, q *catalog.Query) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return int64(len(r.matching(q))), nil
}

func (r *itemRepository) CodeExists(ctx context.Context, scope catalog.Scope, code string, excludeID uuid.UUID) (bool, error) {
	var exists bool
	r.s.read(func() {
		for _, it := range r.s.items {
			if it.ID != excludeID && !it.IsDeleted() && inScope(it, scope) && it.UniqueCode == code {
				exists = true
				return
			}
		}
	})
	return exists, nil
}

func (r *itemRepository) Create(ctx context.Context, item *catalog.Item) error {
	return r.s.write(ctx, func() error {
		if r.slugTaken(item.Scope(), item.Slug, item.ID) {
			return catalog.ErrSlugConflict
		}
		r.s.items[item.ID] = item.Clone()
		return nil
	})
}

func (r *itemRepository) Update(ctx context.Context, item *catalog.Item) error {
	return r.s.write(ctx, func() error {
		stored, ok := r.live(item.Scope(), item.ID)
		if !ok {
			return catalog.ErrItemNotFound
		}
		if r.slugTaken(item.Scope(), item.Slug, item.ID) {
			return catalog.ErrSlugConflict
		}
		next := item.Clone()
		next.StockQuantity = stored.StockQuantity
		r.s.items[item.ID] = next
		return nil
	})
}

func (r *itemRepository) SoftDelete(ctx context.Context, scope catalog.Scope, id uuid.UUID) error {
	return r.s.write(ctx, func() error {
		it, ok := r.live(scope, id)
		if !ok {
			return catalog.ErrItemNotFound
		}
		it.MarkDeleted(time.Now())
		return nil
	})
}

func (r *itemRepository) BulkSoftDelete(ctx context.Context, scope catalog.Scope, ids []uuid.UUID) (int64, error) {
	var affected int64
	err := r.s.write(ctx, func() error {
		now := time.Now()
		for _, id := range ids {
			if it, ok := r.live(scope, id); ok {
				it.MarkDeleted(now)
				affected++
			}
		}
		return nil
	})
	return affected, err
}

// LockByID 事务已串行化,等同FindByID
func (r *itemRepository) LockByID(ctx context.Context, scope catalog.Scope, id uuid.UUID) (*catalog.Item, error) {
	return r.FindByID(ctx, scope, id)
}

func (r *itemRepository) UpdateStock(ctx context.Context, item *catalog.Item, expected int) error {
	return r.s.write(ctx, func() error {
		stored, ok := r.live(item.Scope(), item.ID)
		if !ok || stored.StockQuantity != expected {
			return catalog.ErrStockChanged
		}
		stored.StockQuantity = item.StockQuantity
		stored.Status = item.Status
		stored.UpdatedAt = item.UpdatedAt
		return nil
	})
}

func (r *itemRepository) FindLowStock(ctx context.Context, scope catalog.Scope, threshold *int) ([]*catalog.Item, error) {
	items := []*catalog.Item{}
	r.s.read(func() {
		for _, it := range r.s.items {
			if !it.IsActive || it.IsDeleted() || !inScope(it, scope) {
				continue
			}
			limit := it.LowStockThreshold
			if threshold != nil {
				limit = *threshold
			}
			if it.StockQuantity <= limit {
				items = append(items, it.Clone())
			}
		}
	})

	sort.Slice(items, func(i, j int) bool {
		if items[i].StockQuantity != items[j].StockQuantity {
			return items[i].StockQuantity < items[j].StockQuantity
		}
		return items[i].ID.String() < items[j].ID.String()
	})
	return items, nil
}
