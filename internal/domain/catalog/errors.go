package catalog

import (
	apperrors "github.com/xiebiao/catalogstore/pkg/errors"
)

// 目录领域错误定义
var (
	// ErrItemNotFound 商品不存在(含已软删除)
	ErrItemNotFound = apperrors.New(apperrors.ErrCodeItemNotFound, "商品不存在")

	// ErrCatalogNotFound 目录类型不存在
	ErrCatalogNotFound = apperrors.New(apperrors.ErrCodeCatalogNotFound, "目录类型不存在")

	// ErrScopeRequired 该目录需要店铺ID
	ErrScopeRequired = apperrors.New(apperrors.ErrCodeScopeRequired, "该目录必须指定店铺")

	// ErrScopeNotSupported 单店铺目录不接受店铺ID
	ErrScopeNotSupported = apperrors.New(apperrors.ErrCodeInvalidParams, "该目录不支持店铺范围")

	// ErrInvalidStoreID 店铺ID格式错误
	ErrInvalidStoreID = apperrors.New(apperrors.ErrCodeInvalidParams, "店铺ID格式不正确")

	// ErrInvalidID 商品ID格式错误
	ErrInvalidID = apperrors.New(apperrors.ErrCodeInvalidParams, "商品ID格式不正确")

	// ErrInvalidStatus 状态值不合法
	ErrInvalidStatus = apperrors.New(apperrors.ErrCodeInvalidParams, "状态必须是ACTIVE、INACTIVE、OUT_OF_STOCK或DISCONTINUED")

	// ErrInvalidSort 排序字段不在白名单中
	ErrInvalidSort = apperrors.New(apperrors.ErrCodeInvalidSort, "不支持的排序字段")

	// ErrInvalidSortOrder 排序方向不合法
	ErrInvalidSortOrder = apperrors.New(apperrors.ErrCodeInvalidSort, "排序方向必须是asc或desc")

	// ErrCodeDuplicate ISBN/SKU重复
	ErrCodeDuplicate = apperrors.New(apperrors.ErrCodeCodeDuplicate, "商品编码已存在")

	// ErrSlugConflict slug冲突(并发创建同名商品)
	ErrSlugConflict = apperrors.New(apperrors.ErrCodeSlugConflict, "商品slug冲突,请重试")

	// ErrStockChanged 条件更新时库存已被其他请求修改
	ErrStockChanged = apperrors.New(apperrors.ErrCodeConcurrentUpdate, "库存已被修改")

	// ErrEmptyIDs 批量操作ID为空
	ErrEmptyIDs = apperrors.New(apperrors.ErrCodeInvalidParams, "ids不能为空")

	// ErrTooManyIDs 批量操作ID过多
	ErrTooManyIDs = apperrors.New(apperrors.ErrCodeInvalidParams, "单次批量操作最多100个商品")

	// ErrBulkMembership 批量操作包含不属于该范围或已删除的商品
	ErrBulkMembership = apperrors.New(apperrors.ErrCodeBulkMembers, "部分商品不存在或不属于该店铺")

	// ErrEmptyPatch 更新内容为空
	ErrEmptyPatch = apperrors.New(apperrors.ErrCodeInvalidParams, "没有需要更新的字段")
)
