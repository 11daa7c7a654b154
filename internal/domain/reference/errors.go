package reference

import (
	apperrors "github.com/xiebiao/catalogstore/pkg/errors"
)

var (
	// ErrReferenceNotFound 作者/出版社/分类不存在
	ErrReferenceNotFound = apperrors.New(apperrors.ErrCodeReferenceNotFound, "关联的作者、出版社或分类不存在")

	// ErrInvalidKind 关联类型不合法
	ErrInvalidKind = apperrors.New(apperrors.ErrCodeInvalidParams, "类型必须是author、publisher或category")

	// ErrInvalidName 名称为空或过长
	ErrInvalidName = apperrors.New(apperrors.ErrCodeInvalidParams, "名称不能为空且不能超过100个字符")

	// ErrNameDuplicate 同类型下名称重复
	ErrNameDuplicate = apperrors.New(apperrors.ErrCodeDuplicateEntry, "名称已存在")
)
