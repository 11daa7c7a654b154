package reference

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const maxNameLength = 100

// Service 关联实体领域服务
type Service interface {
	// Create 创建作者/出版社/分类,同类型名称不能重复
	Create(ctx context.Context, kind Kind, name string) (*Reference, error)

	// Ensure 按名称查找,不存在则创建(种子数据使用)
	Ensure(ctx context.Context, kind Kind, name string) (*Reference, error)

	// Resolve 校验关联ID存在并返回实体
	Resolve(ctx context.Context, kind Kind, id uuid.UUID) (*Reference, error)

	List(ctx context.Context, kind Kind) ([]*Reference, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService 创建关联实体服务
func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Create(ctx context.Context, kind Kind, name string) (*Reference, error) {
	ref := NewReference(kind, name, s.now())
	if ref.Name == "" || len([]rune(ref.Name)) > maxNameLength {
		return nil, ErrInvalidName
	}

	existing, err := s.repo.FindByName(ctx, kind, ref.Name)
	if err != nil && !errors.Is(err, ErrReferenceNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrNameDuplicate
	}

	if err := s.repo.Create(ctx, ref); err != nil {
		return nil, err
	}
	return ref, nil
}

func (s *service) Ensure(ctx context.Context, kind Kind, name string) (*Reference, error) {
	ref, err := s.Create(ctx, kind, name)
	if errors.Is(err, ErrNameDuplicate) {
		return s.repo.FindByName(ctx, kind, strings.TrimSpace(name))
	}
	return ref, err
}

func (s *service) Resolve(ctx context.Context, kind Kind, id uuid.UUID) (*Reference, error) {
	ref, err := s.repo.FindByID(ctx, kind, id)
	if err != nil {
		if errors.Is(err, ErrReferenceNotFound) {
			return nil, ErrReferenceNotFound.WithDetails(map[string]string{string(kind) + "Id": id.String()})
		}
		return nil, err
	}
	return ref, nil
}

func (s *service) List(ctx context.Context, kind Kind) ([]*Reference, error) {
	return s.repo.List(ctx, kind)
}
