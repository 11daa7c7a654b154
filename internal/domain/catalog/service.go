package catalog

import (
	"bytes"
	"context"
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/xiebiao/catalogstore/internal/domain/reference"
)

const (
	// MaxBulkIDs 单次批量操作上限
	MaxBulkIDs = 100

	DefaultHighlightLimit = 10
	MaxHighlightLimit     = 50
)

// Highlight 首页推荐类列表
type Highlight string

const (
	HighlightFeatured       Highlight = "featured"
	HighlightRecommended    Highlight = "recommendations"
	HighlightLatestEditions Highlight = "latest-editions"
)

// ReferenceResolver 校验作者/出版社/分类是否存在
type ReferenceResolver interface {
	Resolve(ctx context.Context, kind reference.Kind, id uuid.UUID) (*reference.Reference, error)
}

// Service 目录领域服务接口
// 设计说明:
// 1. 三种目录共用一套逻辑,差异由Registry中的Schema决定
// 2. 所有写操作都在事务中完成唯一性检查与写入
// 3. 库存变动不在这里处理,见inventory.Ledger
type Service interface {
	// Create 创建商品
	// 业务规则:
	// - 字段按目录Schema校验
	// - 关联的作者/出版社/分类必须存在
	// - ISBN/SKU在范围内唯一,slug由标题生成
	Create(ctx context.Context, scope Scope, draft *Draft) (*Item, error)

	// Get 根据ID获取
	Get(ctx context.Context, scope Scope, id uuid.UUID) (*Item, error)

	// GetByField 根据slug或编码获取
	GetByField(ctx context.Context, scope Scope, field LookupField, value string) (*Item, error)

	// Update 部分更新,标题变化时重新生成slug
	Update(ctx context.Context, scope Scope, id uuid.UUID, patch *Patch) (*Item, error)

	// UpdateStatus 只修改销售状态
	UpdateStatus(ctx context.Context, scope Scope, id uuid.UUID, status Status) (*Item, error)

	// Delete 软删除
	Delete(ctx context.Context, scope Scope, id uuid.UUID) error

	// BulkUpdate 批量更新,任一ID无效则全部不生效
	BulkUpdate(ctx context.Context, scope Scope, ids []uuid.UUID, patch *BulkPatch) ([]*Item, error)

	// BulkDelete 批量软删除,任一ID无效则全部不生效
	BulkDelete(ctx context.Context, scope Scope, ids []uuid.UUID) (int64, error)

	// Highlights 推荐/精选/最新版本列表
	Highlights(ctx context.Context, scope Scope, kind Highlight, limit int) ([]*Item, error)
}

type service struct {
	registry *Registry
	repo     Repository
	tx       Transactor
	refs     ReferenceResolver
	slugs    *SlugGenerator
	now      func() time.Time
}

// NewService 创建目录领域服务
func NewService(registry *Registry, repo Repository, tx Transactor, refs ReferenceResolver) Service {
	return &service{
		registry: registry,
		repo:     repo,
		tx:       tx,
		refs:     refs,
		slugs:    NewSlugGenerator(repo),
		now:      time.Now,
	}
}

// Create 创建商品
func (s *service) Create(ctx context.Context, scope Scope, draft *Draft) (*Item, error) {
	schema, err := s.schemaFor(scope)
	if err != nil {
		return nil, err
	}

	now := s.now()
	item := draft.NewItem(scope, now)

	// 1. 关联校验(作者名用于搜索,未填写时取作者名称)
	if err := s.resolveRelations(ctx, item, item.AuthorID, item.PublisherID, item.CategoryID); err != nil {
		return nil, err
	}

	// 2. Schema校验
	if err := schema.Apply(item, now); err != nil {
		return nil, err
	}

	// 3. 唯一性检查 + slug + 写入
	err = s.tx.Transaction(ctx, func(ctx context.Context) error {
		if err := s.ensureUniqueCode(ctx, item); err != nil {
			return err
		}
		slug, err := s.slugs.Generate(ctx, scope, item.Title, item.ID)
		if err != nil {
			return err
		}
		item.Slug = slug
		return s.repo.Create(ctx, item)
	})
	if err != nil {
		return nil, err
	}

	return item, nil
}

// Get 根据ID获取商品
func (s *service) Get(ctx context.Context, scope Scope, id uuid.UUID) (*Item, error) {
	return s.repo.FindByID(ctx, scope, id)
}

// GetByField 根据slug或编码获取商品
func (s *service) GetByField(ctx context.Context, scope Scope, field LookupField, value string) (*Item, error) {
	if value == "" {
		return nil, ErrItemNotFound
	}
	return s.repo.FindByField(ctx, scope, field, value)
}

// Update 部分更新
func (s *service) Update(ctx context.Context, scope Scope, id uuid.UUID, patch *Patch) (*Item, error) {
	if patch.Empty() {
		return nil, ErrEmptyPatch
	}
	schema, err := s.schemaFor(scope)
	if err != nil {
		return nil, err
	}

	var updated *Item
	err = s.tx.Transaction(ctx, func(ctx context.Context) error {
		// 1. 加锁读取(已删除视为不存在),与库存调整互斥
		item, err := s.repo.LockByID(ctx, scope, id)
		if err != nil {
			return err
		}

		// 2. 应用变更并重新校验
		now := s.now()
		titleChanged := patch.Apply(item, now)
		if err := s.resolveRelations(ctx, item, patch.AuthorID, patch.PublisherID, patch.CategoryID); err != nil {
			return err
		}
		if err := schema.Apply(item, now); err != nil {
			return err
		}

		// 3. 编码变化时检查唯一性
		if patch.UniqueCode != nil {
			if err := s.ensureUniqueCode(ctx, item); err != nil {
				return err
			}
		}

		// 4. 标题变化时重新生成slug(排除自身)
		if titleChanged {
			slug, err := s.slugs.Generate(ctx, scope, item.Title, item.ID)
			if err != nil {
				return err
			}
			item.Slug = slug
		}

		if err := s.repo.Update(ctx, item); err != nil {
			return err
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// UpdateStatus 修改销售状态
func (s *service) UpdateStatus(ctx context.Context, scope Scope, id uuid.UUID, status Status) (*Item, error) {
	if _, err := ParseStatus(string(status)); err != nil {
		return nil, err
	}
	return s.Update(ctx, scope, id, &Patch{Status: &status})
}

// Delete 软删除
func (s *service) Delete(ctx context.Context, scope Scope, id uuid.UUID) error {
	return s.repo.SoftDelete(ctx, scope, id)
}

// BulkUpdate 批量更新
// 流程:
// 1. 事务内锁定全部ID,数量不一致说明有不属于该范围或已删除的商品
// 2. 逐个应用变更并按Schema校验,任一失败整体回滚
func (s *service) BulkUpdate(ctx context.Context, scope Scope, ids []uuid.UUID, patch *BulkPatch) ([]*Item, error) {
	ids, err := normalizeIDs(ids)
	if err != nil {
		return nil, err
	}
	p := patch.Patch()
	if p.Empty() {
		return nil, ErrEmptyPatch
	}
	if p.Status != nil {
		if _, err := ParseStatus(string(*p.Status)); err != nil {
			return nil, err
		}
	}
	schema, err := s.schemaFor(scope)
	if err != nil {
		return nil, err
	}

	var updated []*Item
	err = s.tx.Transaction(ctx, func(ctx context.Context) error {
		items, err := s.lockMembers(ctx, scope, ids)
		if err != nil {
			return err
		}
		if p.CategoryID != nil {
			if _, err := s.refs.Resolve(ctx, reference.KindCategory, *p.CategoryID); err != nil {
				return err
			}
		}

		now := s.now()
		for _, item := range items {
			p.Apply(item, now)
			if err := schema.Apply(item, now); err != nil {
				return err
			}
			if err := s.repo.Update(ctx, item); err != nil {
				return err
			}
		}
		updated = items
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// BulkDelete 批量软删除
func (s *service) BulkDelete(ctx context.Context, scope Scope, ids []uuid.UUID) (int64, error) {
	ids, err := normalizeIDs(ids)
	if err != nil {
		return 0, err
	}

	var affected int64
	err = s.tx.Transaction(ctx, func(ctx context.Context) error {
		if _, err := s.lockMembers(ctx, scope, ids); err != nil {
			return err
		}
		n, err := s.repo.BulkSoftDelete(ctx, scope, ids)
		if err != nil {
			return err
		}
		if n != int64(len(ids)) {
			return ErrBulkMembership
		}
		affected = n
		return nil
	})
	if err != nil {
		return 0, err
	}

	return affected, nil
}

// Highlights 推荐类列表:只返回在售商品,按创建时间倒序
func (s *service) Highlights(ctx context.Context, scope Scope, kind Highlight, limit int) ([]*Item, error) {
	switch {
	case limit <= 0:
		limit = DefaultHighlightLimit
	case limit > MaxHighlightLimit:
		limit = MaxHighlightLimit
	}

	yes := true
	q := &Query{
		Criteria: Criteria{Scope: scope, IsActive: &yes, Status: StatusActive},
		Sort:     Sort{Field: SortByCreatedAt, Desc: true},
		Page:     1,
		Limit:    limit,
	}
	switch kind {
	case HighlightFeatured:
		q.IsFeatured = &yes
	case HighlightRecommended:
		q.IsRecommended = &yes
	case HighlightLatestEditions:
		q.IsLatestEdition = &yes
	default:
		return nil, ErrCatalogNotFound
	}

	return s.repo.FindMany(ctx, q)
}

// members 校验ID全部是范围内未删除的商品
func (s *service) members(ctx context.Context, scope Scope, ids []uuid.UUID) ([]*Item, error) {
	items, err := s.repo.FindByIDs(ctx, scope, ids)
	if err != nil {
		return nil, err
	}
	if len(items) == len(ids) {
		return items, nil
	}

	found := make(map[uuid.UUID]struct{}, len(items))
	for _, it := range items {
		found[it.ID] = struct{}{}
	}
	details := make(map[string]string)
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			details[id.String()] = "不存在或已删除"
		}
	}
	return nil, ErrBulkMembership.WithDetails(details)
}

// lockMembers 校验成员后按ID顺序逐个加锁,结果保持传入顺序
// 固定加锁顺序,两个批量操作不会互相死锁
func (s *service) lockMembers(ctx context.Context, scope Scope, ids []uuid.UUID) ([]*Item, error) {
	if _, err := s.members(ctx, scope, ids); err != nil {
		return nil, err
	}

	sorted := slices.Clone(ids)
	slices.SortFunc(sorted, func(a, b uuid.UUID) int {
		return bytes.Compare(a[:], b[:])
	})

	locked := make(map[uuid.UUID]*Item, len(sorted))
	for _, id := range sorted {
		item, err := s.repo.LockByID(ctx, scope, id)
		if errors.Is(err, ErrItemNotFound) {
			return nil, ErrBulkMembership.WithDetails(map[string]string{id.String(): "不存在或已删除"})
		}
		if err != nil {
			return nil, err
		}
		locked[id] = item
	}

	items := make([]*Item, 0, len(ids))
	for _, id := range ids {
		items = append(items, locked[id])
	}
	return items, nil
}

// schemaFor 查找目录类型并校验范围
func (s *service) schemaFor(scope Scope) (*Schema, error) {
	schema, err := s.registry.Lookup(scope.Catalog)
	if err != nil {
		return nil, err
	}
	if err := schema.Check(scope); err != nil {
		return nil, err
	}
	return schema, nil
}

// normalizeIDs 去重并检查数量
func normalizeIDs(ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, ErrEmptyIDs
	}
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	if len(out) > MaxBulkIDs {
		return nil, ErrTooManyIDs
	}
	return out, nil
}

// ensureUniqueCode ISBN/SKU在范围内未删除商品中唯一
func (s *service) ensureUniqueCode(ctx context.Context, item *Item) error {
	if item.UniqueCode == "" {
		return nil
	}
	exists, err := s.repo.CodeExists(ctx, item.Scope(), item.UniqueCode, item.ID)
	if err != nil {
		return err
	}
	if exists {
		return ErrCodeDuplicate.WithDetails(map[string]string{"uniqueCode": item.UniqueCode})
	}
	return nil
}

// resolveRelations 校验给出的关联ID
func (s *service) resolveRelations(ctx context.Context, item *Item, authorID, publisherID, categoryID *uuid.UUID) error {
	checks := []struct {
		kind reference.Kind
		id   *uuid.UUID
	}{
		{reference.KindAuthor, authorID},
		{reference.KindPublisher, publisherID},
		{reference.KindCategory, categoryID},
	}

	for _, c := range checks {
		if c.id == nil {
			continue
		}
		ref, err := s.refs.Resolve(ctx, c.kind, *c.id)
		if err != nil {
			return err
		}
		if c.kind == reference.KindAuthor && item.CreatorName == "" {
			item.CreatorName = ref.Name
		}
	}
	return nil
}

// IsNotFound 是否为商品不存在
func IsNotFound(err error) bool {
	return errors.Is(err, ErrItemNotFound)
}
