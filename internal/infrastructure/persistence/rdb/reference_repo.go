package rdb

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/xiebiao/catalogstore/internal/domain/reference"
	apperrors "github.com/xiebiao/catalogstore/pkg/errors"
)

type referenceRepository struct {
	db *gorm.DB
}

// NewReferenceRepository 创建作者/出版社/分类仓储
func NewReferenceRepository(db *gorm.DB) reference.Repository {
	return &referenceRepository{db: db}
}

func (r *referenceRepository) Create(ctx context.Context, ref *reference.Reference) error {
	// 唯一索引区分大小写(PostgreSQL),先按小写查一次
	if _, err := r.FindByName(ctx, ref.Kind, ref.Name); err == nil {
		return reference.ErrNameDuplicate
	}

	model := &ReferenceModel{
		ID:        ref.ID,
		Kind:      string(ref.Kind),
		Name:      ref.Name,
		CreatedAt: ref.CreatedAt,
	}
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return reference.ErrNameDuplicate
		}
		return apperrors.WrapStore(err, "创建关联实体失败")
	}
	return nil
}

func (r *referenceRepository) FindByID(ctx context.Context, kind reference.Kind, id uuid.UUID) (*reference.Reference, error) {
	var model ReferenceModel
	err := getDB(ctx, r.db).Where("kind = ? AND id = ?", string(kind), id).First(&model).Error
	if err != nil {
		if isNotFound(err) {
			return nil, reference.ErrReferenceNotFound
		}
		return nil, apperrors.WrapStore(err, "查询关联实体失败")
	}
	return toReferenceEntity(&model), nil
}

func (r *referenceRepository) FindByName(ctx context.Context, kind reference.Kind, name string) (*reference.Reference, error) {
	var model ReferenceModel
	err := getDB(ctx, r.db).
		Where("kind = ? AND LOWER(name) = ?", string(kind), strings.ToLower(name)).
		First(&model).Error
	if err != nil {
		if isNotFound(err) {
			return nil, reference.ErrReferenceNotFound
		}
		return nil, apperrors.WrapStore(err, "查询关联实体失败")
	}
	return toReferenceEntity(&model), nil
}

func (r *referenceRepository) List(ctx context.Context, kind reference.Kind) ([]*reference.Reference, error) {
	var models []ReferenceModel
	if err := getDB(ctx, r.db).Where("kind = ?", string(kind)).Order("name ASC").Find(&models).Error; err != nil {
		return nil, apperrors.WrapStore(err, "查询关联实体列表失败")
	}

	refs := make([]*reference.Reference, len(models))
	for i := range models {
		refs[i] = toReferenceEntity(&models[i])
	}
	return refs, nil
}
